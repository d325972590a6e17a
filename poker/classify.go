package poker

// Classify returns the category of a hand.
//
// Checks run strongest first and the first match wins. The predicates
// overlap (every straight flush is also a flush, and the three of a kind
// test fires on four of a kind ranks), so the order is what makes the
// categories mutually exclusive.
func Classify(h Hand) Category {
	return classifyRanks(h.SortedRanks(), h.Flush())
}

func classifyRanks(r [HandSize]Rank, flush bool) Category {
	switch {
	case flush && isTenToAce(r):
		return RoyalFlush
	case flush && isStraight(r):
		return StraightFlush
	case isFourOfAKind(r):
		return FourOfAKind
	case isFullHouse(r):
		return FullHouse
	case flush:
		return Flush
	case isStraight(r):
		return Straight
	case isThreeOfAKind(r):
		return ThreeOfAKind
	case isTwoPairs(r):
		return TwoPairs
	case isPair(r):
		return Pair
	default:
		return HighCard
	}
}

func isTenToAce(r [HandSize]Rank) bool {
	return r == [HandSize]Rank{Ten, Jack, Queen, King, Ace}
}

// isStraight requires five consecutive ranks. Ace is high only, so A-2-3-4-5 is not a straight.
func isStraight(r [HandSize]Rank) bool {
	for i := 1; i < HandSize; i++ {
		if r[i] != r[i-1]+1 {
			return false
		}
	}
	return true
}

// The group predicates below depend on r being sorted ascending.

func isFourOfAKind(r [HandSize]Rank) bool {
	return r[0] == r[3] || r[1] == r[4]
}

func isFullHouse(r [HandSize]Rank) bool {
	return r[0] == r[1] && r[3] == r[4] && (r[2] == r[0] || r[2] == r[4])
}

// isThreeOfAKind only looks for a set at either end of the sorted ranks. A set
// in positions 1-3 is left to isTwoPairs, which accepts it.
func isThreeOfAKind(r [HandSize]Rank) bool {
	return r[0] == r[2] || r[2] == r[4]
}

func isTwoPairs(r [HandSize]Rank) bool {
	return (r[1] == r[0] || r[1] == r[2]) && (r[3] == r[2] || r[3] == r[4])
}

func isPair(r [HandSize]Rank) bool {
	for i := 1; i < HandSize; i++ {
		if r[i] == r[i-1] {
			return true
		}
	}
	return false
}
