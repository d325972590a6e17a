package poker

import "fmt"

// Explain describes why the round ended the way it did.
func (res Result) Explain() string {
	if res.Category1 != res.Category2 {
		win, lose := res.Category1, res.Category2
		if res.Outcome == Player2Wins {
			win, lose = lose, win
		}
		return fmt.Sprintf("%s beats %s", win, lose)
	}

	reason, a, b, found := res.firstDifference()
	switch {
	case res.Outcome == Draw:
		return fmt.Sprintf("%s each, hands tie", res.Category1)
	case !found:
		return fmt.Sprintf("%s each, exact tie awarded to player 2 (%s rules)", res.Category1, res.Rules)
	}

	if res.Outcome == Player2Wins {
		a, b = b, a
	}
	return fmt.Sprintf("%s each, %s (%s vs %s)", res.Category1, reason, a, b)
}

// firstDifference finds the comparison that separated two same-category
// hands, reporting the ranks from Player1's side first.
func (res Result) firstDifference() (string, Rank, Rank, bool) {
	r1, r2 := res.Round.Player1.SortedRanks(), res.Round.Player2.SortedRanks()
	stop := res.Rules.scanStop()

	switch res.Category1 {
	case FourOfAKind, FullHouse, ThreeOfAKind:
		if r1[2] != r2[2] {
			return "higher set", r1[2], r2[2], true
		}
	case TwoPairs:
		hi1, lo1 := max(r1[1], r1[3]), min(r1[1], r1[3])
		hi2, lo2 := max(r2[1], r2[3]), min(r2[1], r2[3])
		switch {
		case hi1 != hi2:
			return "higher top pair", hi1, hi2, true
		case lo1 != lo2:
			return "higher bottom pair", lo1, lo2, true
		}
		k1, k2 := twoPairsKicker(r1, hi1, lo1), twoPairsKicker(r2, hi2, lo2)
		if k1 != k2 {
			return "higher kicker", k1, k2, true
		}
	case Pair:
		p1, p2 := pairedRank(r1), pairedRank(r2)
		if p1 != p2 {
			return "higher pair", p1, p2, true
		}
		rest1, rest2 := without(r1, p1), without(r2, p2)
		for i := len(rest1) - 1; i >= stop; i-- {
			if rest1[i] != rest2[i] {
				return "higher kicker", rest1[i], rest2[i], true
			}
		}
	default:
		for i := HandSize - 1; i >= stop; i-- {
			if r1[i] != r2[i] {
				return "higher card", r1[i], r2[i], true
			}
		}
	}
	return "", 0, 0, false
}
