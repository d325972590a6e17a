package poker

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		hand string
		want Category
	}{
		{"royal flush", "TH JH QH KH AH", RoyalFlush},
		{"royal flush unordered", "AS KS TS QS JS", RoyalFlush},
		{"straight flush", "2H 3H 4H 5H 6H", StraightFlush},
		{"king high straight flush", "9C TC JC QC KC", StraightFlush},
		{"four of a kind high", "AS AD AC AH KS", FourOfAKind},
		{"four of a kind low", "3S 3D 3C 3H KS", FourOfAKind},
		{"full house trips low", "4S 4D 4C 9H 9S", FullHouse},
		{"full house trips high", "4S 4D 9C 9H 9S", FullHouse},
		{"flush", "2D 7D 9D JD KD", Flush},
		{"straight", "5C 6D 7H 8S 9C", Straight},
		{"ace high straight", "TC JD QH KS AC", Straight},
		{"wheel is not a straight", "AC 2D 3H 4S 5C", HighCard},
		{"suited wheel is a flush", "AH 2H 3H 4H 5H", Flush},
		{"three of a kind low", "7C 7D 7H 9S KC", ThreeOfAKind},
		{"set in the middle reads as two pairs", "2C 7D 7H 7S KC", TwoPairs},
		{"three of a kind high", "2C 3D 7H 7S 7C", ThreeOfAKind},
		{"two pairs kicker high", "4H 4D 9C 9S KH", TwoPairs},
		{"two pairs kicker middle", "4H 4D 6C 9S 9H", TwoPairs},
		{"two pairs kicker low", "2H 4D 4C 9S 9H", TwoPairs},
		{"pair", "2C 2D 3H 4S 5D", Pair},
		{"pair at top", "3C 5D 8H AS AD", Pair},
		{"high card", "2C 5D 8H JS KD", HighCard},
		{"almost straight", "2C 3D 4H 5S 7D", HighCard},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := MustParseHand(tt.hand)
			assert.Equal(t, tt.want, Classify(h), "hand %s", tt.hand)
			assert.Equal(t, Classify(h), Classify(h), "classification should be stable")
		})
	}
}

// A set in sorted positions 1-3 matches neither end of the three of a kind
// check, so it falls through to the two pairs check (both "pairs" are the set).
func TestMiddleSetResolvesAsTwoPairs(t *testing.T) {
	set := MustParseHand("2C 7D 7H 7S KC")
	twoPairs := MustParseHand("3C 3D KH KS 4C")
	require.Equal(t, TwoPairs, Classify(set))

	for _, rules := range []Rules{RulesStandard, RulesLegacy} {
		res := NewEvaluator(rules).Evaluate(Round{Player1: set, Player2: twoPairs})
		assert.Equal(t, Player2Wins, res.Outcome, "rules=%s: kings over threes beat sevens over sevens", rules)
	}

	other := MustParseHand("4C 8C 8H 8S 9D")
	require.Equal(t, TwoPairs, Classify(other))
	assert.Equal(t, Player2Wins, EvaluateRound(set, other), "higher set wins as the top pair")
}

func TestClassifyPermutationInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	deck := NewDeck(rng)

	for i := 0; i < 2000; i++ {
		h := deck.DealRound().Player1
		want := Classify(h)

		for j := 0; j < 5; j++ {
			shuffled := h
			rng.Shuffle(HandSize, func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
			if got := Classify(shuffled); got != want {
				t.Fatalf("Classify(%s) = %s, but Classify(%s) = %s", h, want, shuffled, got)
			}
		}
	}
}

func TestCategoryOrder(t *testing.T) {
	for i := 1; i < len(Categories); i++ {
		assert.Equal(t, 1, Categories[i].Compare(Categories[i-1]), "%s should beat %s", Categories[i], Categories[i-1])
		assert.Equal(t, -1, Categories[i-1].Compare(Categories[i]))
	}
	assert.Equal(t, Category(1), HighCard)
	assert.Equal(t, Category(10), RoyalFlush)
	assert.Equal(t, "Unknown", Category(0).String())
}

func TestEveryCategoryReachable(t *testing.T) {
	seen := make(map[Category]int)
	deck := NewDeck(rand.New(rand.NewSource(1)))
	for i := 0; i < 50000; i++ {
		seen[Classify(deck.DealRound().Player1)]++
	}
	// Royal and straight flushes are too rare to show up in a random sample.
	for _, c := range []Category{HighCard, Pair, TwoPairs, ThreeOfAKind, Straight, Flush, FullHouse} {
		assert.Positive(t, seen[c], "expected some %s hands", c)
	}
	assert.Greater(t, seen[HighCard], seen[Pair]/2)
	assert.Greater(t, seen[Pair], seen[TwoPairs])
}
