// Package config loads optional user configuration from
// ~/.config/habitd/config.yaml. Missing file means defaults; flags given on
// the command line override whatever the file says.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Server struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type Config struct {
	// Storage is a path (.json or .db) or a firestore://project-id URI.
	Storage string `yaml:"storage"`
	// UserID is attached to habits created locally and used as the default
	// list filter.
	UserID string `yaml:"user_id"`
	Server Server `yaml:"server"`
}

func Default() Config {
	return Config{
		Storage: DefaultStoragePath(),
		Server: Server{
			Addr:           ":8080",
			AllowedOrigins: []string{"*"},
		},
	}
}

func DefaultStoragePath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "habitd.db"
	}
	return filepath.Join(configDir, "habitd", "habitd.db")
}

func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "habitd", "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. An empty path means the default location.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if cfg.Storage == "" {
		cfg.Storage = DefaultStoragePath()
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
	if len(cfg.Server.AllowedOrigins) == 0 {
		cfg.Server.AllowedOrigins = []string{"*"}
	}

	return cfg, nil
}
