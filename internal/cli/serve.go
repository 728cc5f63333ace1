package cli

import (
	"fmt"

	"github.com/mrosales/habitd/internal/server"
)

type ServeCmd struct {
	Addr string `short:"a" help:"Listen address (overrides config)."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}

	addr := c.Addr
	if addr == "" {
		addr = ctx.Config.Server.Addr
	}

	fmt.Printf("Serving habitd API on %s (store: %s)\n", addr, ctx.Store.GetConfigPath())
	return server.ListenAndServe(addr, ctx.Store, ctx.Config.Server.AllowedOrigins)
}
