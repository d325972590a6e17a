package poker

import (
	"math/rand"
)

// DeckSize is the number of cards in a standard deck.
const DeckSize = 52

// Deck represents a standard 52-card deck
type Deck struct {
	cards [DeckSize]Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}

	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = Card{Rank: rank, Suit: suit}
			i++
		}
	}

	d.Shuffle()
	return d
}

// Shuffle shuffles the deck using Fisher-Yates
func (d *Deck) Shuffle() {
	d.next = 0
	for i := len(d.cards) - 1; i > 0; i-- {
		var j int
		if d.rng != nil {
			j = d.rng.Intn(i + 1)
		} else {
			j = rand.Intn(i + 1)
		}
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal deals n cards from the deck, or nil if fewer than n remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > len(d.cards) {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// DealHand deals five cards as a hand.
func (d *Deck) DealHand() (Hand, bool) {
	cards := d.Deal(HandSize)
	if cards == nil {
		return Hand{}, false
	}
	var h Hand
	copy(h[:], cards)
	return h, true
}

// DealRound reshuffles and deals two hands from the same deck, so the
// round never contains a repeated card.
func (d *Deck) DealRound() Round {
	d.Shuffle()
	h1, _ := d.DealHand()
	h2, _ := d.DealHand()
	return Round{Player1: h1, Player2: h2}
}

// CardsRemaining returns the number of cards left in the deck
func (d *Deck) CardsRemaining() int {
	return len(d.cards) - d.next
}
