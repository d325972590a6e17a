package poker

import (
	"math/rand"
	"testing"

	ref "github.com/paulhankin/poker"
	"github.com/stretchr/testify/require"
)

// toReference converts a hand to the reference evaluator's card encoding,
// where ranks run 1 (ace) to 13 (king).
func toReference(t *testing.T, h Hand) *[5]ref.Card {
	t.Helper()
	var out [5]ref.Card
	for i, c := range h {
		r := int(c.Rank)
		if c.Rank == Ace {
			r = 1
		}
		card, err := ref.MakeCard(ref.Suit(c.Suit), ref.Rank(r))
		require.NoError(t, err)
		out[i] = card
	}
	return &out
}

func isWheel(h Hand) bool {
	return h.SortedRanks() == [HandSize]Rank{Two, Three, Four, Five, Ace}
}

// hasMiddleSet reports a set in sorted positions 1-3, which Classify treats as
// two pairs.
func hasMiddleSet(h Hand) bool {
	r := h.SortedRanks()
	return r[1] == r[3] && r[0] != r[1] && r[3] != r[4]
}

func differsFromReference(h Hand) bool {
	return isWheel(h) || hasMiddleSet(h)
}

// Standard rules must agree with an independent evaluator on every round
// that does not involve a wheel (not a straight here) or a set in the middle
// of the sorted ranks (two pairs here).
func TestAgreesWithReferenceEvaluator(t *testing.T) {
	deck := NewDeck(rand.New(rand.NewSource(31337)))
	var e Evaluator
	compared := 0

	for i := 0; i < 20000; i++ {
		round := deck.DealRound()
		if differsFromReference(round.Player1) || differsFromReference(round.Player2) {
			continue
		}
		compared++

		s1 := ref.Eval5(toReference(t, round.Player1))
		s2 := ref.Eval5(toReference(t, round.Player2))
		want := Draw
		switch {
		case s1 > s2:
			want = Player1Wins
		case s1 < s2:
			want = Player2Wins
		}

		res := e.Evaluate(round)
		if res.Outcome != want {
			t.Fatalf("%s (%s) vs %s (%s): got %s, reference says %s",
				round.Player1, res.Category1, round.Player2, res.Category2, res.Outcome, want)
		}
	}
	require.Positive(t, compared)
}

func TestMiddleSetDetection(t *testing.T) {
	require.True(t, hasMiddleSet(MustParseHand("2C 7D 7H 7S KC")))
	require.False(t, hasMiddleSet(MustParseHand("7C 7D 7H 9S KC")))
	require.False(t, hasMiddleSet(MustParseHand("2C 3D 7H 7S 7C")))
	require.False(t, hasMiddleSet(MustParseHand("2C 7D 7H 7S 7C")), "four of a kind")
}
