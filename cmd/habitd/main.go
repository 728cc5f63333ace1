package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mrosales/habitd/internal/cli"
	"github.com/mrosales/habitd/internal/config"
	"github.com/mrosales/habitd/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path"`
	Storage string `help:"Storage path (.json or .db) or firestore://project-id. Overrides config." type:"path"`
	User    string `help:"User ID to attach to new habits and filter lists by. Overrides config."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize habitd storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add     cli.AddCmd     `cmd:"" help:"Add a new habit."`
	Edit    cli.EditCmd    `cmd:"" help:"Edit an existing habit."`
	List    cli.ListCmd    `cmd:"" help:"List habits."`
	Done    cli.DoneCmd    `cmd:"" help:"Mark a habit completed."`
	Undo    cli.UndoCmd    `cmd:"" help:"Unmark a habit completion."`
	Today   cli.TodayCmd   `cmd:"" help:"Show habits due today."`
	Stats   cli.StatsCmd   `cmd:"" help:"Show progress and streak statistics."`
	Delete  cli.DeleteCmd  `cmd:"" help:"Delete a habit."`
	Restore cli.RestoreCmd `cmd:"" help:"Restore a deleted habit."`
	Serve   cli.ServeCmd   `cmd:"" help:"Run the HTTP API server."`
	Backup  cli.BackupCmd  `cmd:"" help:"Manage storage backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("habitd"),
		kong.Description("Habit tracker with recurrence scheduling and streaks"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Storage != "" {
		cfg.Storage = CLI.Storage
	}
	if CLI.User != "" {
		cfg.UserID = CLI.User
	}

	// Determine storage type based on the configured location
	var store storage.Provider
	switch {
	case strings.HasPrefix(cfg.Storage, "firestore://"):
		store = storage.NewFirestoreStore(context.Background(), strings.TrimPrefix(cfg.Storage, "firestore://"))
	case strings.HasSuffix(cfg.Storage, ".json"):
		store = storage.NewJSONStore(cfg.Storage)
	default:
		store = storage.NewSQLiteStore(cfg.Storage)
	}

	appCtx := &cli.Context{
		Store:  store,
		Config: cfg,
		UserID: cfg.UserID,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
