// Package search - the current-solution layer.
//
// LocalSearch extends Search with a mutable current solution and its
// evaluation/validation. On the first start of a run without a preset
// current solution, a random one is generated from the problem, scored,
// and promoted to current (and, when not rejected, best).
//
// Ownership: the current solution is exclusively owned by the search while
// it runs; the engine records copies whenever a solution leaves the step
// loop (best solution, listener events receive the live reference and must
// not mutate it).
package search

import (
	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/eval"
)

// LocalSearch is a Search with a mutable current solution.
type LocalSearch[S core.Solution[S]] struct {
	*Search[S]

	cur      S
	hasCur   bool
	curEval  eval.Evaluation
	curValid eval.Validation
}

// NewLocalSearch constructs the current-solution layer around a problem
// and step strategy. Intended for algorithm implementations.
func NewLocalSearch[S core.Solution[S]](name string, problem core.Problem[S], stepper Stepper, opts ...Option) (*LocalSearch[S], error) {
	base, err := New(name, problem, stepper, opts...)
	if err != nil {
		return nil, err
	}

	return &LocalSearch[S]{Search: base}, nil
}

// SearchStarted implements StartHandler: when no current solution has been
// set (first run, or never preset), a random solution is generated,
// evaluated, validated and installed as current and (if not rejected)
// best. Subsequent runs resume from the retained current solution.
func (l *LocalSearch[S]) SearchStarted() error {
	if l.hasCur {
		return nil
	}
	sol := l.Problem().RandomSolution(l.RNG())
	l.UpdateCurrentAndBest(sol, l.Problem().Evaluate(sol), l.Problem().Validate(sol))

	return nil
}

// SetCurrentSolution installs sol as the current solution, scoring it
// through the problem. Call between runs only, never while running.
func (l *LocalSearch[S]) SetCurrentSolution(sol S) {
	l.UpdateCurrentAndBest(sol, l.Problem().Evaluate(sol), l.Problem().Validate(sol))
}

// CurrentSolution returns the current solution and whether one is set.
// The returned solution is engine-owned; callers must not mutate it.
func (l *LocalSearch[S]) CurrentSolution() (S, bool) {
	return l.cur, l.hasCur
}

// CurrentEvaluation returns the evaluation of the current solution (nil
// when none is set).
func (l *LocalSearch[S]) CurrentEvaluation() eval.Evaluation { return l.curEval }

// CurrentValidation returns the validation of the current solution (nil
// when none is set).
func (l *LocalSearch[S]) CurrentValidation() eval.Validation { return l.curValid }

// UpdateCurrentAndBest installs the given triple as the current state,
// notifies NewCurrent listeners, and — unless the problem rejects the
// solution — offers it as a new best. Returns whether the best solution
// was improved.
func (l *LocalSearch[S]) UpdateCurrentAndBest(sol S, e eval.Evaluation, v eval.Validation) bool {
	l.cur = sol
	l.hasCur = true
	l.curEval = e
	l.curValid = v
	l.fireNewCurrent(sol, e, v)

	if l.Problem().Reject(sol) {
		return false
	}

	return l.UpdateBest(sol, e, v)
}
