// Package tally scores large sets of rounds, fanning the work out across
// workers and reducing their partial scores.
package tally

import (
	"context"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/pokerhands/poker"
)

// checkEvery is how many rounds a worker scores between cancellation checks.
const checkEvery = 1024

// CategoryCounts counts hands per category, indexed by poker.Category.
type CategoryCounts [poker.RoyalFlush + 1]int

// Report is the outcome of scoring a set of rounds.
type Report struct {
	Rules      poker.Rules
	Score      poker.Score
	Player1    CategoryCounts
	Player2    CategoryCounts
	StartedAt  time.Time
	FinishedAt time.Time
}

// Rounds returns the number of rounds scored.
func (r Report) Rounds() int {
	return r.Score.Rounds()
}

// Elapsed returns how long scoring took.
func (r Report) Elapsed() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

func (r *Report) add(res poker.Result) {
	r.Score = r.Score.Add(res.Outcome)
	r.Player1[res.Category1]++
	r.Player2[res.Category2]++
}

func (r *Report) merge(other Report) {
	r.Score = r.Score.Merge(other.Score)
	for i := range r.Player1 {
		r.Player1[i] += other.Player1[i]
		r.Player2[i] += other.Player2[i]
	}
}

// Runner scores rounds with a fixed evaluator.
type Runner struct {
	evaluator poker.Evaluator
	workers   int
	clock     quartz.Clock
	logger    *log.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers sets the number of workers. Values below one mean one.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		r.workers = n
	}
}

// WithClock replaces the real clock, mainly for tests.
func WithClock(c quartz.Clock) Option {
	return func(r *Runner) {
		r.clock = c
	}
}

// NewRunner creates a runner. Workers default to the CPU count, capped at 8.
func NewRunner(evaluator poker.Evaluator, logger *log.Logger, opts ...Option) *Runner {
	r := &Runner{
		evaluator: evaluator,
		workers:   min(runtime.NumCPU(), 8),
		clock:     quartz.NewReal(),
		logger:    logger.WithPrefix("tally"),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workers < 1 {
		r.workers = 1
	}
	return r
}

// Run scores every round. Totals do not depend on the worker count.
func (r *Runner) Run(ctx context.Context, rounds []poker.Round) (Report, error) {
	report := Report{
		Rules:     r.evaluator.Rules,
		StartedAt: r.clock.Now(),
	}

	workers := min(r.workers, len(rounds))
	if workers <= 1 {
		partial, err := r.score(ctx, rounds)
		if err != nil {
			return Report{}, err
		}
		report.merge(partial)
	} else {
		if err := r.fanOut(ctx, rounds, workers, &report); err != nil {
			return Report{}, err
		}
	}

	report.FinishedAt = r.clock.Now()
	r.logger.Debug("Scored rounds",
		"rounds", report.Rounds(),
		"workers", max(workers, 1),
		"rules", report.Rules,
		"elapsed", report.Elapsed())
	return report, nil
}

func (r *Runner) fanOut(ctx context.Context, rounds []poker.Round, workers int, report *Report) error {
	g, ctx := errgroup.WithContext(ctx)
	results := make(chan Report, workers)

	chunk := (len(rounds) + workers - 1) / workers
	for start := 0; start < len(rounds); start += chunk {
		part := rounds[start:min(start+chunk, len(rounds))]
		g.Go(func() error {
			partial, err := r.score(ctx, part)
			if err != nil {
				return err
			}
			results <- partial
			return nil
		})
	}

	err := g.Wait()
	close(results)
	if err != nil {
		return err
	}

	for partial := range results {
		report.merge(partial)
	}
	return nil
}

func (r *Runner) score(ctx context.Context, rounds []poker.Round) (Report, error) {
	var partial Report
	for i, round := range rounds {
		if i%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return Report{}, err
			}
		}
		partial.add(r.evaluator.Evaluate(round))
	}
	return partial, nil
}
