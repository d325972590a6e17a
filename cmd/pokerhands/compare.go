package main

import (
	"fmt"
	"os"

	"github.com/lox/pokerhands/internal/report"
	"github.com/lox/pokerhands/poker"
)

// CompareCmd evaluates a single round
type CompareCmd struct {
	Player1 string `arg:"" name:"player1" help:"Player 1 hand, e.g. '5H 5C 6S 7D 9S'"`
	Player2 string `arg:"" name:"player2" help:"Player 2 hand"`
	Rules   string `help:"Rule set: standard or legacy (overrides config)"`
	Color   string `enum:"auto,always,never" default:"auto" help:"Colour output"`
}

// Run evaluates the two hands and prints the result with an explanation.
func (c *CompareCmd) Run(g *Globals) error {
	cfg, _, err := g.setup()
	if err != nil {
		return err
	}
	r, err := rules(cfg, c.Rules)
	if err != nil {
		return err
	}

	h1, err := poker.ParseHand(c.Player1)
	if err != nil {
		return fmt.Errorf("player 1: %w", err)
	}
	h2, err := poker.ParseHand(c.Player2)
	if err != nil {
		return fmt.Errorf("player 2: %w", err)
	}

	res := poker.NewEvaluator(r).Evaluate(poker.Round{Player1: h1, Player2: h2})
	return report.NewPrinter(os.Stdout, report.ColorMode(c.Color)).Round(res)
}
