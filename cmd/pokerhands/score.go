package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/pokerhands/internal/config"
	"github.com/lox/pokerhands/internal/report"
	"github.com/lox/pokerhands/internal/rounds"
	"github.com/lox/pokerhands/internal/store"
	"github.com/lox/pokerhands/internal/tally"
	"github.com/lox/pokerhands/poker"
)

// ScoreCmd scores a round file
type ScoreCmd struct {
	File    string `arg:"" help:"Round file, one round per line ('-' reads stdin)"`
	Rules   string `help:"Rule set: standard or legacy (overrides config)"`
	Workers int    `help:"Number of scoring workers (overrides config, 0 = CPU count)"`
	Styled  bool   `help:"Render a styled summary instead of the plain tally"`
	Color   string `enum:"auto,always,never" default:"auto" help:"Colour for styled output"`
	Save    bool   `help:"Save the tally to the configured store"`
}

// Run scores the round file and prints the tally.
func (c *ScoreCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	r, err := rules(cfg, c.Rules)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(c.File)
	if err != nil {
		return err
	}
	defer closeIn()

	rs, err := rounds.Read(in)
	if err != nil {
		return fmt.Errorf("%s: %w", c.File, err)
	}
	logger.Debug("Loaded rounds", "file", c.File, "rounds", len(rs))

	workers := cfg.Workers
	if c.Workers > 0 {
		workers = c.Workers
	}
	opts := []tally.Option{}
	if workers > 0 {
		opts = append(opts, tally.WithWorkers(workers))
	}

	ctx, stop := signalContext()
	defer stop()

	clock := quartz.NewReal()
	rep, err := tally.NewRunner(poker.NewEvaluator(r), logger, append(opts, tally.WithClock(clock))...).Run(ctx, rs)
	if err != nil {
		return err
	}

	if c.Styled {
		err = report.NewPrinter(os.Stdout, report.ColorMode(c.Color)).Tally(rep)
	} else {
		err = report.Plain(os.Stdout, rep)
	}
	if err != nil {
		return err
	}

	if c.Save {
		return c.save(ctx, cfg, logger, rep, clock)
	}
	return nil
}

func (c *ScoreCmd) save(ctx context.Context, cfg *config.Config, logger *log.Logger, rep tally.Report, clock quartz.Clock) error {
	st, release, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer release()

	rec := store.NewRecord(c.File, rep.Rules, rep.Score, clock)
	if err := st.Save(ctx, rec); err != nil {
		return err
	}
	logger.Info("Saved tally", "id", rec.ID, "backend", cfg.Store.Backend)
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
