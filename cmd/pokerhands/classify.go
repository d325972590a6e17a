package main

import (
	"fmt"

	"github.com/lox/pokerhands/poker"
)

// ClassifyCmd prints a hand's category
type ClassifyCmd struct {
	Hand string `arg:"" help:"Hand to classify, e.g. 'TH JH QH KH AH'"`
}

// Run prints the category of the hand.
func (c *ClassifyCmd) Run() error {
	h, err := poker.ParseHand(c.Hand)
	if err != nil {
		return err
	}
	_, err = fmt.Println(poker.Classify(h))
	return err
}
