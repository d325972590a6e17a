package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHand(t *testing.T) {
	cards := []Card{{Two, Clubs}, {Three, Hearts}, {Four, Spades}, {Five, Diamonds}, {Seven, Clubs}}

	t.Run("five cards", func(t *testing.T) {
		h, err := NewHand(cards...)
		require.NoError(t, err)
		assert.Equal(t, "2C 3H 4S 5D 7C", h.String())
	})

	t.Run("too few", func(t *testing.T) {
		_, err := NewHand(cards[:4]...)
		assert.ErrorIs(t, err, ErrMalformedHand)
	})

	t.Run("too many", func(t *testing.T) {
		_, err := NewHand(append(cards, Card{Ace, Spades})...)
		assert.ErrorIs(t, err, ErrMalformedHand)
	})

	t.Run("invalid card", func(t *testing.T) {
		bad := append([]Card{}, cards...)
		bad[2] = Card{Rank: 1, Suit: Clubs}
		_, err := NewHand(bad...)
		assert.ErrorIs(t, err, ErrInvalidCard)
	})
}

func TestParseHand(t *testing.T) {
	h, err := ParseHand("5H 5C 6S 7D 9S")
	require.NoError(t, err)
	assert.Equal(t, Card{Five, Hearts}, h[0])
	assert.Equal(t, Card{Nine, Spades}, h[4])

	_, err = ParseHand("5H 5C 6S 7D")
	assert.ErrorIs(t, err, ErrMalformedHand)

	_, err = ParseHand("5H 5C 6S 7D 9S 2C")
	assert.ErrorIs(t, err, ErrMalformedHand)

	_, err = ParseHand("5H 5C 6S 7D 9X")
	assert.ErrorIs(t, err, ErrInvalidCard)
	assert.Contains(t, err.Error(), "card 5")
}

func TestSortedRanks(t *testing.T) {
	h := MustParseHand("KH 2C AS 9D 2H")
	assert.Equal(t, [HandSize]Rank{Two, Two, Nine, King, Ace}, h.SortedRanks())
	// The hand itself keeps dealt order.
	assert.Equal(t, "KH 2C AS 9D 2H", h.String())
}

func TestFlush(t *testing.T) {
	assert.True(t, MustParseHand("2H 7H 9H JH KH").Flush())
	assert.False(t, MustParseHand("2H 7H 9H JH KS").Flush())
	assert.Equal(t, [HandSize]Suit{Hearts, Hearts, Hearts, Hearts, Spades}, MustParseHand("2H 7H 9H JH KS").Suits())
}
