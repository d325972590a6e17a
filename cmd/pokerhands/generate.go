package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/lox/pokerhands/internal/rounds"
	"github.com/lox/pokerhands/poker"
)

// GenerateCmd deals random rounds, each from a fresh shuffle of one deck
type GenerateCmd struct {
	Count  int    `short:"n" default:"1000" help:"Number of rounds to deal"`
	Seed   *int64 `help:"Random seed for reproducible output"`
	Output string `short:"o" help:"Write to a file instead of stdout"`
}

// Run deals the rounds and writes them in the round file format.
func (c *GenerateCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	var seed int64
	if c.Seed != nil {
		seed = *c.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	logger.Debug("Dealing rounds", "count", c.Count, "seed", seed)

	deck := poker.NewDeck(rand.New(rand.NewSource(seed)))
	rs := make([]poker.Round, c.Count)
	for i := range rs {
		rs[i] = deck.DealRound()
	}

	if c.Output == "" {
		return rounds.Write(os.Stdout, rs)
	}

	var buf bytes.Buffer
	if err := rounds.Write(&buf, rs); err != nil {
		return err
	}
	return writeFileAtomic(c.Output, buf.Bytes())
}

// writeFileAtomic writes via a temp file in the same directory and renames it
// into place, so a scorer reading the file never sees a partial round list.
func writeFileAtomic(filename string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), filename)
}
