// Package search - stop criteria.
//
// A StopCriterion is a predicate over the read-only State view of a
// running search. Registered criteria are ORed: the first satisfied
// criterion requests termination. Criteria are evaluated in two modes —
// immediately at each step boundary, and periodically from the background
// checker — so cheap predicates are expected.
//
// Built-ins: MaxRuntime, MaxSteps, MaxStepsWithoutImprovement,
// MaxTimeWithoutImprovement, MinDelta. All constructors validate their
// bound strictly (fail fast, no clamping).
package search

import "time"

// State is the read-only view of a search consulted by stop criteria.
// It reflects the current run only: counters reset on every Start.
type State interface {
	// Runtime returns the elapsed time of the current run.
	Runtime() time.Duration

	// Steps returns the number of completed steps in the current run.
	Steps() int64

	// TimeWithoutImprovement returns the time since the best solution last
	// improved (or since the run started, if it never improved).
	TimeWithoutImprovement() time.Duration

	// StepsWithoutImprovement returns the number of steps since the best
	// solution last improved.
	StepsWithoutImprovement() int64

	// LastImprovementDelta returns the evaluation delta of the most recent
	// best-solution improvement in this run, or +Inf before the first one.
	LastImprovementDelta() float64
}

// StopCriterion decides whether a search should terminate.
type StopCriterion interface {
	// SearchShouldStop reports whether the search observed through s must
	// stop. Implementations must be cheap and side-effect free.
	SearchShouldStop(s State) bool
}

// MaxRuntime stops a search after a fixed wall-clock budget.
type MaxRuntime struct {
	max time.Duration
}

// NewMaxRuntime returns a runtime bound; d must be positive.
func NewMaxRuntime(d time.Duration) (MaxRuntime, error) {
	if d <= 0 {
		return MaxRuntime{}, ErrBadStopCriterion
	}

	return MaxRuntime{max: d}, nil
}

// SearchShouldStop implements StopCriterion.
func (c MaxRuntime) SearchShouldStop(s State) bool { return s.Runtime() >= c.max }

// MaxSteps stops a search after a fixed number of steps.
type MaxSteps struct {
	max int64
}

// NewMaxSteps returns a step bound; n must be positive.
func NewMaxSteps(n int64) (MaxSteps, error) {
	if n <= 0 {
		return MaxSteps{}, ErrBadStopCriterion
	}

	return MaxSteps{max: n}, nil
}

// SearchShouldStop implements StopCriterion.
func (c MaxSteps) SearchShouldStop(s State) bool { return s.Steps() >= c.max }

// MaxStepsWithoutImprovement stops a search once the best solution has not
// improved for a fixed number of steps.
type MaxStepsWithoutImprovement struct {
	max int64
}

// NewMaxStepsWithoutImprovement returns the bound; n must be positive.
func NewMaxStepsWithoutImprovement(n int64) (MaxStepsWithoutImprovement, error) {
	if n <= 0 {
		return MaxStepsWithoutImprovement{}, ErrBadStopCriterion
	}

	return MaxStepsWithoutImprovement{max: n}, nil
}

// SearchShouldStop implements StopCriterion.
func (c MaxStepsWithoutImprovement) SearchShouldStop(s State) bool {
	return s.StepsWithoutImprovement() >= c.max
}

// MaxTimeWithoutImprovement stops a search once the best solution has not
// improved for a fixed duration.
type MaxTimeWithoutImprovement struct {
	max time.Duration
}

// NewMaxTimeWithoutImprovement returns the bound; d must be positive.
func NewMaxTimeWithoutImprovement(d time.Duration) (MaxTimeWithoutImprovement, error) {
	if d <= 0 {
		return MaxTimeWithoutImprovement{}, ErrBadStopCriterion
	}

	return MaxTimeWithoutImprovement{max: d}, nil
}

// SearchShouldStop implements StopCriterion.
func (c MaxTimeWithoutImprovement) SearchShouldStop(s State) bool {
	return s.TimeWithoutImprovement() >= c.max
}

// MinDelta stops a search once the improvement delta between consecutive
// best-solution updates drops below a threshold. It never triggers before
// the first improvement of the run.
type MinDelta struct {
	min float64
}

// NewMinDelta returns the threshold; delta must be positive.
func NewMinDelta(delta float64) (MinDelta, error) {
	if delta <= 0 {
		return MinDelta{}, ErrBadStopCriterion
	}

	return MinDelta{min: delta}, nil
}

// SearchShouldStop implements StopCriterion.
func (c MinDelta) SearchShouldStop(s State) bool {
	return s.LastImprovementDelta() < c.min
}
