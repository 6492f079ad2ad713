// Package algo - variable neighbourhood search.
//
// VNS escapes the local optima its descent phase gets stuck in by
// shaking: each step applies a random move from shaking neighbourhood k to
// a copy of the current solution, descends from the shaken copy with a
// fresh sub-search, and compares the reached optimum against the current
// solution. An improvement is adopted and rewinds k to 0; otherwise the
// shaken attempt is discarded and k advances, past the end of the shaking
// list the search stops.
//
// The sub-search is built per step by a caller-supplied factory; by
// default a VariableNeighbourhoodDescent over the caller-supplied descent
// neighbourhoods. Sub-searches are disposed after use.
package algo

import (
	"fmt"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/eval"
	"github.com/thalvik/descent/search"
)

// DescentSearch is the sub-search contract of VNS: a disposable search
// that descends from an injected starting solution.
type DescentSearch[S core.Solution[S]] interface {
	SetCurrentSolution(sol S)
	Start() error
	BestSolution() (S, bool)
	BestEvaluation() eval.Evaluation
	BestValidation() eval.Validation
	Dispose() error
}

// SubSearchFactory builds a fresh descent search for one VNS step.
type SubSearchFactory[S core.Solution[S]] func(problem core.Problem[S]) (DescentSearch[S], error)

// VariableNeighbourhoodSearch alternates shaking and descent.
type VariableNeighbourhoodSearch[S core.Solution[S]] struct {
	*search.LocalSearch[S]

	shaking []core.Neighbourhood[S]
	factory SubSearchFactory[S]
	k       int
}

// NewVariableNeighbourhoodSearch constructs a VNS search. The shaking list
// must be non-empty (ErrNoNeighbourhoods); a nil factory defaults to
// VariableNeighbourhoodDescent over the descent neighbourhoods, which must
// then be non-empty themselves.
func NewVariableNeighbourhoodSearch[S core.Solution[S]](
	name string,
	problem core.Problem[S],
	shaking []core.Neighbourhood[S],
	descent []core.Neighbourhood[S],
	factory SubSearchFactory[S],
	opts ...search.Option,
) (*VariableNeighbourhoodSearch[S], error) {
	if len(shaking) == 0 {
		return nil, ErrNoNeighbourhoods
	}
	for _, n := range shaking {
		if n == nil {
			return nil, core.ErrNilNeighbourhood
		}
	}
	if factory == nil {
		if len(descent) == 0 {
			return nil, ErrNoNeighbourhoods
		}
		sub := append([]core.Neighbourhood[S](nil), descent...)
		factory = func(p core.Problem[S]) (DescentSearch[S], error) {
			return NewVariableNeighbourhoodDescent(name+"-descent", p, sub)
		}
	}

	vns := &VariableNeighbourhoodSearch[S]{
		shaking: append([]core.Neighbourhood[S](nil), shaking...),
		factory: factory,
	}
	local, err := search.NewLocalSearch(name, problem, vns, opts...)
	if err != nil {
		return nil, err
	}
	vns.LocalSearch = local

	return vns, nil
}

// SearchStarted implements search.StartHandler: rewind the shaking index
// on every run.
func (vns *VariableNeighbourhoodSearch[S]) SearchStarted() error {
	vns.k = 0

	return vns.LocalSearch.SearchStarted()
}

// Step implements search.Stepper: shake, descend, adopt or advance.
func (vns *VariableNeighbourhoodSearch[S]) Step() error {
	cur, ok := vns.CurrentSolution()
	if !ok {
		vns.Stop()

		return nil
	}

	shaken := cur.Copy()
	if m := vns.shaking[vns.k].RandomMove(shaken, vns.RNG()); m != nil {
		if err := m.Apply(shaken); err != nil {
			return fmt.Errorf("shaking move: %w", err)
		}
	}

	sub, err := vns.factory(vns.Problem())
	if err != nil {
		return err
	}
	sub.SetCurrentSolution(shaken)
	if err = sub.Start(); err != nil {
		return err
	}
	reached, found := sub.BestSolution()
	rEval, rValid := sub.BestEvaluation(), sub.BestValidation()
	if derr := sub.Dispose(); derr != nil {
		return derr
	}

	if found && vns.adopts(rEval, rValid) {
		vns.UpdateCurrentAndBest(reached.Copy(), rEval, rValid)
		vns.k = 0

		return nil
	}

	vns.k++
	if vns.k >= len(vns.shaking) {
		vns.Stop()
	}

	return nil
}

// adopts reports whether a descent result should replace the current
// solution: it must be valid and strictly better, unless the current
// solution is itself invalid.
func (vns *VariableNeighbourhoodSearch[S]) adopts(e eval.Evaluation, v eval.Validation) bool {
	if v == nil || !v.Passed() {
		return false
	}
	if vns.CurrentValidation() == nil || !vns.CurrentValidation().Passed() {
		return true
	}

	return search.IsBetter(e, vns.CurrentEvaluation(), vns.Problem().Minimizing())
}
