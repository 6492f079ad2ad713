// Package search - the abstract search state machine.
//
// Search drives the lifecycle around an algorithm's Step strategy:
//
//	IDLE → INITIALIZING (hooks, listeners, background checking)
//	     → RUNNING      (step loop until stop requested or step error)
//	     → TERMINATING  (join checker, hooks, listeners)
//	     → IDLE
//
// A search can be started multiple times; each run resumes from the
// retained best (and, for local searches, current) state while per-run
// counters reset. Dispose is legal only from IDLE and is terminal.
//
// Concurrency: the status field is guarded by a mutex so Stop/Dispose may
// arrive from other goroutines while the loop runs; the stop request is an
// atomic flag observed between steps (cooperative, never preemptive); all
// remaining bookkeeping is guarded by a read-write mutex because the
// background checker reads it. Listener callbacks always run on the
// goroutine driving the step loop.
package search

import (
	"math"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/eval"
)

// Stepper is the algorithm strategy driven by a Search: Step is invoked
// repeatedly while the search is RUNNING. A Stepper must call the search's
// Stop when it can make no further progress (e.g. an exhausted
// neighbourhood); a returned error is fatal and aborts the run.
type Stepper interface {
	Step() error
}

// StartHandler is an optional Stepper hook invoked while INITIALIZING,
// before the first step. A returned error aborts the run before any step
// executes.
type StartHandler interface {
	SearchStarted() error
}

// StopHandler is an optional Stepper hook invoked while TERMINATING, after
// the last step.
type StopHandler interface {
	SearchStopped()
}

// IsBetter reports whether evaluation a is strictly better than b under
// the given direction. Strictness preserves first-found-wins determinism:
// ties never count as improvements.
func IsBetter(a, b eval.Evaluation, minimizing bool) bool {
	if minimizing {
		return a.Value() < b.Value()
	}

	return a.Value() > b.Value()
}

// Delta returns the signed improvement of candidate over current under the
// given direction: positive when candidate is better.
func Delta(candidate, current eval.Evaluation, minimizing bool) float64 {
	if minimizing {
		return current.Value() - candidate.Value()
	}

	return candidate.Value() - current.Value()
}

// Search is the abstract search state machine. Concrete algorithms embed
// LocalSearch or NeighbourhoodSearch (which embed Search) and provide the
// Stepper strategy.
type Search[S core.Solution[S]] struct {
	name    string
	problem core.Problem[S]
	stepper Stepper
	rng     *rand.Rand

	statusMu sync.Mutex
	status   Status

	stopRequested atomic.Bool

	regMu     sync.Mutex
	listeners []*Listener[S]
	criteria  []StopCriterion

	checkPeriod time.Duration
	checker     *stopCriterionChecker

	// Run bookkeeping; guarded by bookMu because the background checker
	// reads it while the step loop writes.
	bookMu       sync.RWMutex
	startTime    time.Time
	stopTime     time.Time
	steps        int64
	lastImpStep  int64
	lastImpTime  time.Time
	lastImpDelta float64
	best         S
	hasBest      bool
	bestEval     eval.Evaluation
	bestValid    eval.Validation
}

// New constructs a search around a problem and a step strategy. Intended
// for algorithm implementations; most callers construct a concrete
// algorithm instead.
func New[S core.Solution[S]](name string, problem core.Problem[S], stepper Stepper, opts ...Option) (*Search[S], error) {
	if problem == nil {
		return nil, ErrNilProblem
	}
	if stepper == nil {
		return nil, ErrNilStepper
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.checkPeriod <= 0 {
		return nil, ErrBadPeriod
	}

	s := &Search[S]{
		name:         name,
		problem:      problem,
		stepper:      stepper,
		rng:          core.RNG(cfg.seed),
		status:       StatusIdle,
		checkPeriod:  cfg.checkPeriod,
		lastImpDelta: math.Inf(1),
	}
	s.checker = newStopCriterionChecker(s.checkPeriod, s.criteriaSatisfied, s.Stop)

	return s, nil
}

// Name returns the search name given at construction.
func (s *Search[S]) Name() string { return s.name }

// Problem returns the problem being optimized.
func (s *Search[S]) Problem() core.Problem[S] { return s.problem }

// RNG returns the search-owned random stream. Only the goroutine driving
// the step loop may use it.
func (s *Search[S]) RNG() *rand.Rand { return s.rng }

// Status returns the current lifecycle state.
func (s *Search[S]) Status() Status {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	return s.status
}

func (s *Search[S]) setStatus(status Status) {
	s.statusMu.Lock()
	s.status = status
	s.statusMu.Unlock()
	s.fireStatusChanged(status)
}

// Start runs the search until a stop criterion fires, Stop is called, or a
// step/hook returns a fatal error (which Start propagates after the search
// has been brought back to IDLE, safe to inspect and dispose).
//
// Only legal from IDLE: ErrNotIdle / ErrDisposed otherwise.
func (s *Search[S]) Start() error {
	// IDLE → INITIALIZING, atomically against concurrent Stop/Dispose.
	s.statusMu.Lock()
	switch s.status {
	case StatusDisposed:
		s.statusMu.Unlock()

		return ErrDisposed
	case StatusIdle:
		s.status = StatusInitializing
	default:
		s.statusMu.Unlock()

		return ErrNotIdle
	}
	s.statusMu.Unlock()
	s.fireStatusChanged(StatusInitializing)

	// Per-run counters reset; best/current state is retained so repeated
	// runs resume where the previous one left off.
	s.stopRequested.Store(false)
	now := time.Now()
	s.bookMu.Lock()
	s.startTime = now
	s.stopTime = time.Time{}
	s.steps = 0
	s.lastImpStep = 0
	s.lastImpTime = now
	s.lastImpDelta = math.Inf(1)
	s.bookMu.Unlock()

	s.fireStarted()

	var runErr error
	if h, ok := s.stepper.(StartHandler); ok {
		runErr = h.SearchStarted()
	}

	if runErr == nil {
		s.setStatus(StatusRunning)
		s.checker.start()

		// An immediate check lets already-satisfied criteria (e.g.
		// MaxSteps from a previous round) stop the run before any step.
		if s.criteriaSatisfied() {
			s.Stop()
		}
		for !s.stopRequested.Load() {
			if runErr = s.stepper.Step(); runErr != nil {
				break
			}
			s.completeStep()
			if s.criteriaSatisfied() {
				s.Stop()
			}
		}

		s.setStatus(StatusTerminating)
		s.checker.stop()
	} else {
		s.setStatus(StatusTerminating)
	}

	if h, ok := s.stepper.(StopHandler); ok {
		h.SearchStopped()
	}
	s.fireStopped()

	s.bookMu.Lock()
	s.stopTime = time.Now()
	s.bookMu.Unlock()

	s.setStatus(StatusIdle)

	return runErr
}

// Stop requests termination after the current step completes. Legal (and
// idempotent) from RUNNING or INITIALIZING; a no-op in any other state.
// Safe to call from any goroutine.
func (s *Search[S]) Stop() {
	s.statusMu.Lock()
	st := s.status
	s.statusMu.Unlock()
	if st == StatusRunning || st == StatusInitializing {
		s.stopRequested.Store(true)
	}
}

// Dispose permanently retires the search. Only legal from IDLE; after
// disposal every lifecycle operation fails with ErrDisposed.
func (s *Search[S]) Dispose() error {
	s.statusMu.Lock()
	switch s.status {
	case StatusDisposed:
		s.statusMu.Unlock()

		return ErrDisposed
	case StatusIdle:
		s.status = StatusDisposed
	default:
		s.statusMu.Unlock()

		return ErrNotIdle
	}
	s.statusMu.Unlock()
	s.fireStatusChanged(StatusDisposed)

	return nil
}

// -----------------------------------------------------------------------------
// Step & improvement bookkeeping
// -----------------------------------------------------------------------------

func (s *Search[S]) completeStep() {
	s.bookMu.Lock()
	s.steps++
	n := s.steps
	s.bookMu.Unlock()
	s.fireStepCompleted(n)
}

// Runtime implements State: elapsed time of the current (or latest) run.
func (s *Search[S]) Runtime() time.Duration {
	s.bookMu.RLock()
	defer s.bookMu.RUnlock()
	if s.startTime.IsZero() {
		return 0
	}
	if s.stopTime.IsZero() {
		return time.Since(s.startTime)
	}

	return s.stopTime.Sub(s.startTime)
}

// Steps implements State: completed steps in the current run.
func (s *Search[S]) Steps() int64 {
	s.bookMu.RLock()
	defer s.bookMu.RUnlock()

	return s.steps
}

// StepsWithoutImprovement implements State.
func (s *Search[S]) StepsWithoutImprovement() int64 {
	s.bookMu.RLock()
	defer s.bookMu.RUnlock()

	return s.steps - s.lastImpStep
}

// TimeWithoutImprovement implements State.
func (s *Search[S]) TimeWithoutImprovement() time.Duration {
	s.bookMu.RLock()
	defer s.bookMu.RUnlock()
	if s.lastImpTime.IsZero() {
		return 0
	}

	return time.Since(s.lastImpTime)
}

// LastImprovementDelta implements State: the evaluation delta of the most
// recent best-solution improvement, +Inf before the first one of the run.
func (s *Search[S]) LastImprovementDelta() float64 {
	s.bookMu.RLock()
	defer s.bookMu.RUnlock()

	return s.lastImpDelta
}

// -----------------------------------------------------------------------------
// Best-solution tracking
// -----------------------------------------------------------------------------

// UpdateBest replaces the best triple iff the validation passed and the
// evaluation is strictly better than the recorded one (ties never update).
// A copy of sol is stored, so later mutation of sol cannot corrupt the
// recorded best. Listeners are notified on improvement.
//
// Returns whether the best solution was replaced.
func (s *Search[S]) UpdateBest(sol S, e eval.Evaluation, v eval.Validation) bool {
	if v == nil || !v.Passed() {
		return false
	}

	s.bookMu.Lock()
	if s.hasBest && !IsBetter(e, s.bestEval, s.problem.Minimizing()) {
		s.bookMu.Unlock()

		return false
	}
	delta := math.Inf(1)
	if s.hasBest {
		delta = math.Abs(e.Value() - s.bestEval.Value())
	}
	s.best = sol.Copy()
	s.hasBest = true
	s.bestEval = e
	s.bestValid = v
	s.lastImpStep = s.steps
	s.lastImpTime = time.Now()
	s.lastImpDelta = delta
	best := s.best
	s.bookMu.Unlock()

	s.fireNewBest(best, e, v)

	return true
}

// BestSolution returns the best solution found so far (across runs) and
// whether one exists. The returned solution is engine-owned; callers must
// not mutate it.
func (s *Search[S]) BestSolution() (S, bool) {
	s.bookMu.RLock()
	defer s.bookMu.RUnlock()

	return s.best, s.hasBest
}

// BestEvaluation returns the evaluation of the best solution (nil when no
// best solution exists yet).
func (s *Search[S]) BestEvaluation() eval.Evaluation {
	s.bookMu.RLock()
	defer s.bookMu.RUnlock()

	return s.bestEval
}

// BestValidation returns the validation of the best solution (nil when no
// best solution exists yet).
func (s *Search[S]) BestValidation() eval.Validation {
	s.bookMu.RLock()
	defer s.bookMu.RUnlock()

	return s.bestValid
}

// -----------------------------------------------------------------------------
// Stop criteria & listeners registry
// -----------------------------------------------------------------------------

// AddStopCriterion registers a stop criterion. Criteria may be added or
// removed at any time, including while running.
func (s *Search[S]) AddStopCriterion(c StopCriterion) error {
	if c == nil {
		return ErrNilStopCriterion
	}
	s.regMu.Lock()
	s.criteria = append(s.criteria, c)
	s.regMu.Unlock()

	return nil
}

// RemoveStopCriterion unregisters a previously added criterion; it reports
// whether the criterion was present.
func (s *Search[S]) RemoveStopCriterion(c StopCriterion) bool {
	s.regMu.Lock()
	defer s.regMu.Unlock()
	for i := range s.criteria {
		if s.criteria[i] == c {
			s.criteria = append(s.criteria[:i], s.criteria[i+1:]...)

			return true
		}
	}

	return false
}

func (s *Search[S]) criteriaSatisfied() bool {
	s.regMu.Lock()
	criteria := make([]StopCriterion, len(s.criteria))
	copy(criteria, s.criteria)
	s.regMu.Unlock()

	for _, c := range criteria {
		if c.SearchShouldStop(s) {
			return true
		}
	}

	return false
}

// AddSearchListener registers a listener; events fire in registration
// order. Register listeners while the search is idle.
func (s *Search[S]) AddSearchListener(l *Listener[S]) error {
	if l == nil {
		return ErrNilListener
	}
	s.regMu.Lock()
	s.listeners = append(s.listeners, l)
	s.regMu.Unlock()

	return nil
}

// RemoveSearchListener unregisters a listener by identity; it reports
// whether the listener was present.
func (s *Search[S]) RemoveSearchListener(l *Listener[S]) bool {
	s.regMu.Lock()
	defer s.regMu.Unlock()
	for i := range s.listeners {
		if s.listeners[i] == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)

			return true
		}
	}

	return false
}

func (s *Search[S]) snapshotListeners() []*Listener[S] {
	s.regMu.Lock()
	defer s.regMu.Unlock()
	out := make([]*Listener[S], len(s.listeners))
	copy(out, s.listeners)

	return out
}
