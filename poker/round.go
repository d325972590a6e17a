package poker

// Outcome is the result of one round.
type Outcome uint8

const (
	// Draw means the hands tied on category and every kicker.
	Draw Outcome = iota
	Player1Wins
	Player2Wins
)

// String returns a description of the outcome
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case Player1Wins:
		return "player 1 wins"
	case Player2Wins:
		return "player 2 wins"
	default:
		return "unknown"
	}
}

// Swap returns the outcome seen from the other seat.
func (o Outcome) Swap() Outcome {
	switch o {
	case Player1Wins:
		return Player2Wins
	case Player2Wins:
		return Player1Wins
	default:
		return o
	}
}

// Round is one comparison between two hands.
type Round struct {
	Player1 Hand
	Player2 Hand
}

// Result records how a round was decided.
type Result struct {
	Round     Round
	Category1 Category
	Category2 Category
	Outcome   Outcome
	Rules     Rules
}

// Score holds the running tally. It is a value: Add returns the updated score
// and leaves the receiver untouched.
type Score struct {
	Player1 int `json:"player1"`
	Player2 int `json:"player2"`
	Draws   int `json:"draws"`
}

// Add returns s with the counter for o incremented by one.
func (s Score) Add(o Outcome) Score {
	switch o {
	case Player1Wins:
		s.Player1++
	case Player2Wins:
		s.Player2++
	default:
		s.Draws++
	}
	return s
}

// Merge returns the sum of two scores.
func (s Score) Merge(other Score) Score {
	return Score{
		Player1: s.Player1 + other.Player1,
		Player2: s.Player2 + other.Player2,
		Draws:   s.Draws + other.Draws,
	}
}

// Rounds returns the number of rounds counted.
func (s Score) Rounds() int {
	return s.Player1 + s.Player2 + s.Draws
}

// EvaluateRound decides a round under the standard rules.
func EvaluateRound(h1, h2 Hand) Outcome {
	return Evaluator{}.Evaluate(Round{Player1: h1, Player2: h2}).Outcome
}

// Evaluator decides rounds under a rule set. The zero value uses the standard rules.
type Evaluator struct {
	Rules Rules
}

// NewEvaluator creates an evaluator for the given rules
func NewEvaluator(rules Rules) Evaluator {
	return Evaluator{Rules: rules}
}

// Evaluate classifies both hands. A higher category wins outright; equal
// categories go to the tie-break resolver.
func (e Evaluator) Evaluate(round Round) Result {
	res := Result{
		Round:     round,
		Category1: Classify(round.Player1),
		Category2: Classify(round.Player2),
		Rules:     e.Rules,
	}

	switch res.Category1.Compare(res.Category2) {
	case 1:
		res.Outcome = Player1Wins
	case -1:
		res.Outcome = Player2Wins
	default:
		res.Outcome = e.Rules.Resolve(res.Category1, round.Player1, round.Player2)
	}
	return res
}

// Tally folds rounds into a score, in order.
func (e Evaluator) Tally(rounds []Round) Score {
	var s Score
	for _, r := range rounds {
		s = s.Add(e.Evaluate(r).Outcome)
	}
	return s
}
