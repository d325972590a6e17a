package poker

// Resolve picks the winner between two hands that share category cat, using
// the standard rules.
func Resolve(cat Category, h1, h2 Hand) Outcome {
	return RulesStandard.Resolve(cat, h1, h2)
}

// Resolve picks the winner between two hands that share category cat. Suits
// never break ties.
func (r Rules) Resolve(cat Category, h1, h2 Hand) Outcome {
	r1, r2 := h1.SortedRanks(), h2.SortedRanks()

	switch cat {
	case FourOfAKind, FullHouse, ThreeOfAKind:
		// The sorted middle card always belongs to the three or four of a kind.
		return r.decide(compareRank(r1[2], r2[2]))
	case TwoPairs:
		return r.decide(compareTwoPairs(r1, r2))
	case Pair:
		return r.resolvePair(r1, r2)
	default:
		return r.resolveHighest(r1, r2)
	}
}

// resolveHighest covers high card, straight, flush, straight flush and royal flush.
func (r Rules) resolveHighest(r1, r2 [HandSize]Rank) Outcome {
	cmp := compareDescending(r1[:], r2[:], r.scanStop())
	if cmp == 0 {
		// Neither rule set awards an exact tie in this group.
		return Draw
	}
	return r.decide(cmp)
}

func (r Rules) resolvePair(r1, r2 [HandSize]Rank) Outcome {
	p1, p2 := pairedRank(r1), pairedRank(r2)
	if p1 != p2 {
		return r.decide(compareRank(p1, p2))
	}
	rest1, rest2 := without(r1, p1), without(r2, p2)
	return r.decide(compareDescending(rest1, rest2, r.scanStop()))
}

// compareTwoPairs compares the higher pair, then the lower pair, then the kicker.
// In a sorted two pairs hand the pair values always sit at positions 1 and 3.
func compareTwoPairs(r1, r2 [HandSize]Rank) int {
	hi1, lo1 := max(r1[1], r1[3]), min(r1[1], r1[3])
	hi2, lo2 := max(r2[1], r2[3]), min(r2[1], r2[3])

	if cmp := compareRank(hi1, hi2); cmp != 0 {
		return cmp
	}
	if cmp := compareRank(lo1, lo2); cmp != 0 {
		return cmp
	}
	return compareRank(twoPairsKicker(r1, hi1, lo1), twoPairsKicker(r2, hi2, lo2))
}

func twoPairsKicker(r [HandSize]Rank, hi, lo Rank) Rank {
	for _, v := range r {
		if v != hi && v != lo {
			return v
		}
	}
	return 0
}

// pairedRank returns the lowest rank that appears at two adjacent sorted positions.
func pairedRank(r [HandSize]Rank) Rank {
	for i := 1; i < HandSize; i++ {
		if r[i] == r[i-1] {
			return r[i]
		}
	}
	return 0
}

// without returns the ranks of r that differ from v, keeping ascending order.
func without(r [HandSize]Rank, v Rank) []Rank {
	out := make([]Rank, 0, HandSize)
	for _, x := range r {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// compareDescending compares two ascending rank slices from the highest
// index down to stop, inclusive. The first difference decides.
func compareDescending(a, b []Rank, stop int) int {
	n := min(len(a), len(b))
	for i := n - 1; i >= stop; i-- {
		if cmp := compareRank(a[i], b[i]); cmp != 0 {
			return cmp
		}
	}
	return 0
}

func compareRank(a, b Rank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}
