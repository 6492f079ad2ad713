// Package search - sentinel errors.
//
// Errors:
//
//	ErrNilProblem       - search constructed without a problem.
//	ErrNilStepper       - search constructed without a step strategy.
//	ErrNotIdle          - start/dispose attempted outside IDLE.
//	ErrDisposed         - any operation on a disposed search.
//	ErrNilListener      - nil listener registered.
//	ErrNilStopCriterion - nil stop criterion registered.
//	ErrBadPeriod        - non-positive stop-criterion check period.
//	ErrBadStopCriterion - non-positive bound passed to a built-in criterion.
package search

import "errors"

var (
	// ErrNilProblem indicates a search was constructed without a problem.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNilStepper indicates a search was constructed without a step
	// strategy.
	ErrNilStepper = errors.New("search: stepper is nil")

	// ErrNotIdle indicates a lifecycle operation that is only legal from
	// IDLE (start, dispose) was attempted in another state. The state is
	// left unchanged.
	ErrNotIdle = errors.New("search: search is not idle")

	// ErrDisposed indicates an operation on a disposed search.
	ErrDisposed = errors.New("search: search is disposed")

	// ErrNilListener indicates a nil listener was registered.
	ErrNilListener = errors.New("search: listener is nil")

	// ErrNilStopCriterion indicates a nil stop criterion was registered.
	ErrNilStopCriterion = errors.New("search: stop criterion is nil")

	// ErrBadPeriod indicates a non-positive stop-criterion check period.
	ErrBadPeriod = errors.New("search: check period must be positive")

	// ErrBadStopCriterion indicates an invalid bound passed to a built-in
	// stop criterion constructor.
	ErrBadStopCriterion = errors.New("search: invalid stop criterion bound")
)
