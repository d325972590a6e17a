package poker

// Category is the strength class of a five card hand, ordered weakest to strongest.
type Category uint8

const (
	HighCard Category = iota + 1
	Pair
	TwoPairs
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// Categories lists every category from weakest to strongest.
var Categories = [...]Category{
	HighCard, Pair, TwoPairs, ThreeOfAKind, Straight,
	Flush, FullHouse, FourOfAKind, StraightFlush, RoyalFlush,
}

// String returns the readable name of the category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPairs:
		return "Two Pairs"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Compare returns 1 if c is stronger than other, -1 if weaker and 0 if equal.
func (c Category) Compare(other Category) int {
	switch {
	case c > other:
		return 1
	case c < other:
		return -1
	}
	return 0
}
