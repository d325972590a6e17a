// Package rounds reads and writes the round file format: one round per
// line, ten space separated card tokens, the first five belonging to
// player 1 and the last five to player 2.
package rounds

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lox/pokerhands/poker"
)

var (
	// ErrMalformedLine is returned when a line does not hold exactly ten cards.
	ErrMalformedLine = errors.New("malformed round")

	// ErrDuplicateCard is returned when a card appears twice in one round.
	ErrDuplicateCard = errors.New("duplicate card")
)

const cardsPerRound = 2 * poker.HandSize

// ParseLine parses a single round.
func ParseLine(line string) (poker.Round, error) {
	tokens := strings.Fields(line)
	if len(tokens) != cardsPerRound {
		return poker.Round{}, fmt.Errorf("%w: got %d cards, want %d", ErrMalformedLine, len(tokens), cardsPerRound)
	}

	cards := make([]poker.Card, 0, cardsPerRound)
	for i, tok := range tokens {
		c, err := poker.ParseCard(tok)
		if err != nil {
			return poker.Round{}, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}

	h1, err := poker.NewHand(cards[:poker.HandSize]...)
	if err != nil {
		return poker.Round{}, fmt.Errorf("player 1: %w", err)
	}
	h2, err := poker.NewHand(cards[poker.HandSize:]...)
	if err != nil {
		return poker.Round{}, fmt.Errorf("player 2: %w", err)
	}
	return NewRound(h1, h2)
}

// NewRound pairs two hands, rejecting a card that appears twice across them.
func NewRound(h1, h2 poker.Hand) (poker.Round, error) {
	seen := make(map[poker.Card]bool, cardsPerRound)
	for _, h := range [...]poker.Hand{h1, h2} {
		for _, c := range h {
			if seen[c] {
				return poker.Round{}, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
			}
			seen[c] = true
		}
	}
	return poker.Round{Player1: h1, Player2: h2}, nil
}

// Read parses every non-blank line of r. Errors carry the 1-based line number.
func Read(r io.Reader) ([]poker.Round, error) {
	var out []poker.Round
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		round, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, round)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading rounds: %w", err)
	}
	return out, nil
}

// Format renders a round as a line of the round file format.
func Format(r poker.Round) string {
	return r.Player1.String() + " " + r.Player2.String()
}

// Write writes rounds one per line.
func Write(w io.Writer, rounds []poker.Round) error {
	bw := bufio.NewWriter(w)
	for _, r := range rounds {
		if _, err := fmt.Fprintln(bw, Format(r)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
