// Package algo - tabu search.
//
// Each step scans the full neighbourhood and accepts the best ELIGIBLE
// move, improving or not. A move is eligible when it is valid and either
// not tabu or aspiring: a tabu move that would yield a new best solution
// is always allowed through (the aspiration criterion). Accepted moves are
// registered with the memory; the search stops when no eligible move
// exists.
//
// Because worsening moves are accepted, tabu search never terminates on a
// local optimum by itself: bound it with a stop criterion.
package algo

import (
	"math"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/eval"
	"github.com/thalvik/descent/search"
)

// TabuSearch accepts the best eligible neighbour under a pluggable tabu
// memory.
type TabuSearch[S core.Solution[S]] struct {
	*search.NeighbourhoodSearch[S]

	memory TabuMemory[S]
}

// NewTabuSearch constructs a tabu search with the given memory
// (ErrNilMemory when nil).
func NewTabuSearch[S core.Solution[S]](
	name string,
	problem core.Problem[S],
	neigh core.Neighbourhood[S],
	memory TabuMemory[S],
	opts ...search.Option,
) (*TabuSearch[S], error) {
	if memory == nil {
		return nil, ErrNilMemory
	}
	ts := &TabuSearch[S]{memory: memory}
	ns, err := search.NewNeighbourhoodSearch(name, problem, neigh, ts, opts...)
	if err != nil {
		return nil, err
	}
	ts.NeighbourhoodSearch = ns

	return ts, nil
}

// Memory returns the tabu memory in use.
func (ts *TabuSearch[S]) Memory() TabuMemory[S] { return ts.memory }

// ClearMemory forgets all tabu state, e.g. between runs on the same
// search.
func (ts *TabuSearch[S]) ClearMemory() { ts.memory.Clear() }

// Step implements search.Stepper: accept the best eligible move, or stop.
func (ts *TabuSearch[S]) Step() error {
	cur, ok := ts.CurrentSolution()
	if !ok {
		ts.Stop()

		return nil
	}

	var (
		best      core.Move[S]
		bestDelta = math.Inf(-1)
	)
	for _, m := range ts.Neighbourhood().AllMoves(cur) {
		v, err := ts.ValidateMove(m)
		if err != nil {
			return err
		}
		if !v.Passed() {
			continue
		}
		e, err := ts.EvaluateMove(m)
		if err != nil {
			return err
		}
		if ts.memory.IsTabu(m, cur) && !ts.aspires(e) {
			continue
		}
		d := search.Delta(e, ts.CurrentEvaluation(), ts.Problem().Minimizing())
		if d > bestDelta {
			best, bestDelta = m, d
		}
	}
	if best == nil {
		ts.Stop()

		return nil
	}

	if err := ts.AcceptMove(best); err != nil {
		return err
	}
	sol, _ := ts.CurrentSolution()
	ts.memory.Register(best, sol)

	return nil
}

// aspires reports whether an evaluation beats the best solution found so
// far, lifting the tabu status of the move that produces it.
func (ts *TabuSearch[S]) aspires(e eval.Evaluation) bool {
	best := ts.BestEvaluation()
	if best == nil {
		return true
	}

	return search.IsBetter(e, best, ts.Problem().Minimizing())
}
