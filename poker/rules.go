package poker

import "fmt"

// Rules selects how same-category hands are resolved.
type Rules uint8

const (
	// RulesStandard scans every kicker and reports exact ties as a Draw.
	RulesStandard Rules = iota

	// RulesLegacy reproduces the scoring of the hand-history script this
	// tool replaces, so totals can be checked against it. Multi-card kicker scans
	// stop before the lowest card, exact ties in the high card group
	// (high card, straight, flush, straight flush, royal flush) score for
	// nobody, and exact ties in every other category go to Player2.
	RulesLegacy
)

// String returns the config name of the rule set.
func (r Rules) String() string {
	switch r {
	case RulesStandard:
		return "standard"
	case RulesLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseRules parses a rule set name as used in config files and flags.
func ParseRules(s string) (Rules, error) {
	switch s {
	case "", "standard":
		return RulesStandard, nil
	case "legacy":
		return RulesLegacy, nil
	default:
		return 0, fmt.Errorf("unknown rules %q (want standard or legacy)", s)
	}
}

// scanStop is the lowest index inspected by a multi-card kicker scan.
func (r Rules) scanStop() int {
	if r == RulesLegacy {
		return 1
	}
	return 0
}

// decide turns a comparison into an outcome. A zero comparison is an exact
// tie: standard rules call it a draw, legacy rules hand it to Player2.
func (r Rules) decide(cmp int) Outcome {
	switch {
	case cmp > 0:
		return Player1Wins
	case cmp < 0:
		return Player2Wins
	case r == RulesLegacy:
		return Player2Wins
	default:
		return Draw
	}
}
