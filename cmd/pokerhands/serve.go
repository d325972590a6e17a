package main

import (
	"github.com/lox/pokerhands/internal/server"
	"github.com/lox/pokerhands/poker"
)

// ServeCmd runs the websocket service
type ServeCmd struct {
	Addr  string `short:"a" help:"Address to bind to (overrides config)"`
	Rules string `help:"Rule set: standard or legacy (overrides config)"`
}

// Run serves until interrupted.
func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	r, err := rules(cfg, c.Rules)
	if err != nil {
		return err
	}

	addr := cfg.Server.Address
	if c.Addr != "" {
		addr = c.Addr
	}

	ctx, stop := signalContext()
	defer stop()

	return server.NewServer(addr, poker.NewEvaluator(r), logger).Start(ctx)
}
