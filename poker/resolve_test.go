package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		hand1    string
		hand2    string
		category Category
		standard Outcome
		legacy   Outcome
	}{
		{"high card decided by top card", "2C 5D 8H JS AD", "3C 5H 8D JC KS", HighCard, Player1Wins, Player1Wins},
		{"high card decided by lowest card", "2C 5D 8H JS KD", "3C 5H 8D JC KS", HighCard, Player2Wins, Draw},
		{"straight", "5C 6D 7H 8S 9C", "6C 7D 8H 9S TC", Straight, Player2Wins, Player2Wins},
		{"straight tie", "5C 6D 7H 8S 9C", "5D 6H 7S 8C 9D", Straight, Draw, Draw},
		{"flush decided by lowest card", "2D 7D 9D JD KD", "3H 7H 9H JH KH", Flush, Player2Wins, Draw},
		{"flush decided by second card", "2D 6D 9D JD KD", "2H 7H 9H JH KH", Flush, Player2Wins, Player2Wins},
		{"straight flush", "9C TC JC QC KC", "2H 3H 4H 5H 6H", StraightFlush, Player1Wins, Player1Wins},
		{"royal flush tie", "TH JH QH KH AH", "TC JC QC KC AC", RoyalFlush, Draw, Draw},
		{"four of a kind", "3S 3D 3C 3H KS", "AS AD AC AH 2S", FourOfAKind, Player2Wins, Player2Wins},
		{"full house", "4S 4D 9C 9H 9S", "TS TD TC 2H 2S", FullHouse, Player2Wins, Player2Wins},
		{"full house trips beat pair", "AS AD AC 2H 2S", "KS KD KC QH QS", FullHouse, Player1Wins, Player1Wins},
		{"three of a kind", "7C 7D 7H 9S KC", "2C 3D 8H 8S 8C", ThreeOfAKind, Player2Wins, Player2Wins},
		{"two pairs higher pair", "4H 4D 9C 9S KH", "4C 4S 6H 6D AC", TwoPairs, Player1Wins, Player1Wins},
		{"two pairs lower pair", "4H 4D 9C 9S KH", "3C 3S 9H 9D AC", TwoPairs, Player1Wins, Player1Wins},
		{"two pairs kicker", "4H 4D 9C 9S KH", "4C 4S 9H 9D AC", TwoPairs, Player2Wins, Player2Wins},
		{"two pairs low kicker", "2H 4D 4C 9S 9H", "3H 4H 4S 9C 9D", TwoPairs, Player2Wins, Player2Wins},
		{"two pairs exact tie", "4H 4D 9C 9S KH", "4C 4S 9H 9D KC", TwoPairs, Draw, Player2Wins},
		{"pair value", "2C 2D 3H 4S 5D", "3C 3D 4H 5S 6D", Pair, Player2Wins, Player2Wins},
		{"pair value beats kickers", "AC AD 2H 3S 4D", "KC KD QH JS TD", Pair, Player1Wins, Player1Wins},
		{"pair top kicker", "5H 5C 6S 7D AS", "5D 5S 6H 7C KC", Pair, Player1Wins, Player1Wins},
		{"pair lowest kicker", "5H 5C 3S 7D AS", "5D 5S 2H 7C AC", Pair, Player1Wins, Player2Wins},
		{"pair exact tie", "5H 5C 6S 7D 9S", "5C 5D 6H 7S 9C", Pair, Draw, Player2Wins},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h1, h2 := MustParseHand(tt.hand1), MustParseHand(tt.hand2)
			require.Equal(t, tt.category, Classify(h1), "hand1 %s", tt.hand1)
			require.Equal(t, tt.category, Classify(h2), "hand2 %s", tt.hand2)

			assert.Equal(t, tt.standard, Resolve(tt.category, h1, h2), "standard")
			assert.Equal(t, tt.standard, RulesStandard.Resolve(tt.category, h1, h2), "standard")
			assert.Equal(t, tt.legacy, RulesLegacy.Resolve(tt.category, h1, h2), "legacy")
		})
	}
}

func TestResolveIgnoresSuits(t *testing.T) {
	h1 := MustParseHand("2C 5D 8H JS KD")
	h2 := MustParseHand("2S 5S 8S JD KS")
	assert.Equal(t, Draw, Resolve(HighCard, h1, h2))
}

func TestResolveAntiSymmetric(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(2024)))
	sameCategory := 0

	for i := 0; i < 20000; i++ {
		round := deck.DealRound()
		c1, c2 := Classify(round.Player1), Classify(round.Player2)
		if c1 != c2 {
			continue
		}
		sameCategory++

		forward := Resolve(c1, round.Player1, round.Player2)
		backward := Resolve(c1, round.Player2, round.Player1)
		if forward != backward.Swap() {
			t.Fatalf("Resolve(%s, %s, %s) = %s but reversed = %s",
				c1, round.Player1, round.Player2, forward, backward)
		}
	}
	assert.Positive(t, sameCategory)
}
