package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HandSize is the number of cards in a hand.
const HandSize = 5

// ErrMalformedHand is returned when a hand does not have exactly five cards.
var ErrMalformedHand = errors.New("malformed hand")

// Hand is five cards in the order they were dealt. Duplicate cards are not
// rejected here; the round parser is responsible for that.
type Hand [HandSize]Card

// NewHand builds a hand from exactly five cards.
func NewHand(cards ...Card) (Hand, error) {
	var h Hand
	if len(cards) != HandSize {
		return h, fmt.Errorf("%w: got %d cards, want %d", ErrMalformedHand, len(cards), HandSize)
	}
	for i, c := range cards {
		if !c.Rank.Valid() || !c.Suit.Valid() {
			return h, fmt.Errorf("%w: card %d", ErrInvalidCard, i+1)
		}
	}
	copy(h[:], cards)
	return h, nil
}

// ParseHand parses five whitespace separated card tokens, e.g. "5H 5C 6S 7D 9S".
func ParseHand(s string) (Hand, error) {
	tokens := strings.Fields(s)
	if len(tokens) != HandSize {
		return Hand{}, fmt.Errorf("%w: got %d cards, want %d", ErrMalformedHand, len(tokens), HandSize)
	}

	cards := make([]Card, 0, HandSize)
	for i, tok := range tokens {
		c, err := ParseCard(tok)
		if err != nil {
			return Hand{}, fmt.Errorf("card %d: %w", i+1, err)
		}
		cards = append(cards, c)
	}
	return NewHand(cards...)
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand '%s': %v", s, err))
	}
	return h
}

// SortedRanks returns the five ranks in ascending order.
func (h Hand) SortedRanks() [HandSize]Rank {
	var r [HandSize]Rank
	for i, c := range h {
		r[i] = c.Rank
	}
	slices.Sort(r[:])
	return r
}

// Suits returns the suits in dealt order.
func (h Hand) Suits() [HandSize]Suit {
	var s [HandSize]Suit
	for i, c := range h {
		s[i] = c.Suit
	}
	return s
}

// Flush reports whether all five cards share a suit.
func (h Hand) Flush() bool {
	for _, c := range h[1:] {
		if c.Suit != h[0].Suit {
			return false
		}
	}
	return true
}

// Cards returns the hand as a slice.
func (h Hand) Cards() []Card {
	return h[:]
}

// String renders the hand as space separated tokens.
func (h Hand) String() string {
	var sb strings.Builder
	for i, c := range h {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(c.String())
	}
	return sb.String()
}
