package app

import (
	"context"

	"github.com/quantmind-br/mcpcheck-go/internal/domain"
	"github.com/quantmind-br/mcpcheck-go/internal/utils"
)

// Sink receives each outcome as soon as it is produced, in input order.
// Used for incremental display; the full ordered sequence is returned
// by Run regardless.
type Sink func(domain.CheckOutcome)

// Runner iterates a list of origins through the Checker, strictly one
// at a time and in input order. No entry's processing depends on
// another's result.
type Runner struct {
	checker *Checker
	log     *utils.Logger
}

// NewRunner creates a new batch runner
func NewRunner(checker *Checker, log *utils.Logger) *Runner {
	if log == nil {
		log = utils.NewDefaultLogger()
	}
	return &Runner{
		checker: checker,
		log:     log.WithComponent("runner"),
	}
}

// Run checks every origin sequentially and accumulates the outcomes.
// Per-request timeouts are the only cancellation points; a batch runs
// to completion once started.
func (r *Runner) Run(ctx context.Context, origins []string, sink Sink) *domain.BatchResult {
	result := &domain.BatchResult{
		Outcomes: make([]domain.CheckOutcome, 0, len(origins)),
	}

	for _, origin := range origins {
		outcome := r.checker.Check(ctx, origin)

		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Valid {
			result.DetectedCount++
		}

		if sink != nil {
			sink(outcome)
		}
	}

	r.log.Info().
		Int("origins", len(origins)).
		Int("detected", result.DetectedCount).
		Msg("batch complete")

	return result
}
