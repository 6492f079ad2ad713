// Package search - listener fan-out.
//
// A Listener is a plain struct of optional callbacks: leave a field nil to
// ignore that event (the "no-op default" without an interface hierarchy).
// Listeners are invoked in registration order, synchronously on the
// goroutine driving the step loop — never from the background
// stop-criterion checker.
package search

import (
	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/eval"
)

// Listener receives search events. Register and remove listeners while the
// search is idle; callbacks must not mutate the solutions they receive
// (best/current solutions are engine-owned copies or live state).
type Listener[S core.Solution[S]] struct {
	// Started fires when a run enters INITIALIZING.
	Started func()

	// Stopped fires when a run finishes terminating, before the search
	// returns to IDLE.
	Stopped func()

	// StatusChanged fires on every lifecycle transition.
	StatusChanged func(status Status)

	// StepCompleted fires after each completed search step with the
	// current run's step count.
	StepCompleted func(steps int64)

	// NewBest fires when the best solution is improved.
	NewBest func(sol S, e eval.Evaluation, v eval.Validation)

	// NewCurrent fires when a local search replaces its current solution.
	NewCurrent func(sol S, e eval.Evaluation, v eval.Validation)
}

func (s *Search[S]) fireStarted() {
	for _, l := range s.snapshotListeners() {
		if l.Started != nil {
			l.Started()
		}
	}
}

func (s *Search[S]) fireStopped() {
	for _, l := range s.snapshotListeners() {
		if l.Stopped != nil {
			l.Stopped()
		}
	}
}

func (s *Search[S]) fireStatusChanged(status Status) {
	for _, l := range s.snapshotListeners() {
		if l.StatusChanged != nil {
			l.StatusChanged(status)
		}
	}
}

func (s *Search[S]) fireStepCompleted(steps int64) {
	for _, l := range s.snapshotListeners() {
		if l.StepCompleted != nil {
			l.StepCompleted(steps)
		}
	}
}

func (s *Search[S]) fireNewBest(sol S, e eval.Evaluation, v eval.Validation) {
	for _, l := range s.snapshotListeners() {
		if l.NewBest != nil {
			l.NewBest(sol, e, v)
		}
	}
}

func (s *Search[S]) fireNewCurrent(sol S, e eval.Evaluation, v eval.Validation) {
	for _, l := range s.snapshotListeners() {
		if l.NewCurrent != nil {
			l.NewCurrent(sol, e, v)
		}
	}
}
