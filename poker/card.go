package poker

import (
	"errors"
	"fmt"
)

// ErrInvalidCard is returned when a rank or suit is outside the 13 ranks or 4 suits.
var ErrInvalidCard = errors.New("invalid card")

// Rank is a card's face value. The numeric value equals the face value, so
// Two is 2 and Ace is 14, which gives the total order used for comparisons.
type Rank uint8

// Rank constants
const (
	Two   Rank = 2
	Three Rank = 3
	Four  Rank = 4
	Five  Rank = 5
	Six   Rank = 6
	Seven Rank = 7
	Eight Rank = 8
	Nine  Rank = 9
	Ten   Rank = 10
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
	Ace   Rank = 14
)

// Suit is a card family. Suits are only ever compared for equality.
type Suit uint8

// Suit constants
const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const (
	rankSymbols = "23456789TJQKA"
	suitSymbols = "CDHS"
)

// Valid reports whether r is one of the 13 ranks.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the single character symbol for the rank ("2".."9", "T", "J", "Q", "K", "A").
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankSymbols[r-Two])
}

// Valid reports whether s is one of the 4 suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// String returns the single character symbol for the suit.
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(suitSymbols[s])
}

// Card is a single playing card.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard creates a card, rejecting ranks and suits outside the standard deck.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d", ErrInvalidCard, rank)
	}
	if !suit.Valid() {
		return Card{}, fmt.Errorf("%w: suit %d", ErrInvalidCard, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// String returns the two character token, e.g. "TH" or "2C".
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseRank parses a rank symbol. Face symbols are accepted in either case.
func ParseRank(c byte) (Rank, error) {
	switch c {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(c-'0'), nil
	case 'T', 't':
		return Ten, nil
	case 'J', 'j':
		return Jack, nil
	case 'Q', 'q':
		return Queen, nil
	case 'K', 'k':
		return King, nil
	case 'A', 'a':
		return Ace, nil
	default:
		return 0, fmt.Errorf("%w: unknown rank '%c'", ErrInvalidCard, c)
	}
}

// ParseSuit parses a suit symbol (C, D, H, S in either case).
func ParseSuit(c byte) (Suit, error) {
	switch c {
	case 'C', 'c':
		return Clubs, nil
	case 'D', 'd':
		return Diamonds, nil
	case 'H', 'h':
		return Hearts, nil
	case 'S', 's':
		return Spades, nil
	default:
		return 0, fmt.Errorf("%w: unknown suit '%c'", ErrInvalidCard, c)
	}
}

// ParseCard parses a two character token like "AS" or "9d".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be 2 characters", ErrInvalidCard, s)
	}

	rank, err := ParseRank(s[0])
	if err != nil {
		return Card{}, err
	}
	suit, err := ParseSuit(s[1])
	if err != nil {
		return Card{}, err
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card '%s': %v", s, err))
	}
	return c
}
