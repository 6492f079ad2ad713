// Package search - the neighbourhood-search layer.
//
// NeighbourhoodSearch extends LocalSearch with a move generator, move
// accept/reject bookkeeping, and delta-evaluation helpers built on the
// evaluated-move cache:
//
//   - EvaluateMove / ValidateMove consult the cache before delegating to
//     the problem's delta protocol, caching the result afterwards.
//   - AcceptMove applies a move to the current solution in place, promotes
//     the cached post-move scores to current state, offers the solution as
//     a new best, clears the cache (the solution changed, so cached deltas
//     are stale) and counts the acceptance.
//   - RejectMove counts the rejection and clears the cache.
//
// Acceptance rule: an improvement is a VALID move that strictly improves
// the current evaluation — or any valid move when the current solution is
// invalid, so searches escape infeasible starting points.
package search

import (
	"fmt"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/eval"
)

// NeighbourhoodSearch is a LocalSearch over an explicit neighbourhood.
type NeighbourhoodSearch[S core.Solution[S]] struct {
	*LocalSearch[S]

	neigh    core.Neighbourhood[S]
	cache    MoveCache[S]
	accepted int64
	rejected int64
}

// NewNeighbourhoodSearch constructs the neighbourhood layer. The
// neighbourhood must be non-nil (core.ErrNilNeighbourhood); the cache
// defaults to a SingleMoveCache.
func NewNeighbourhoodSearch[S core.Solution[S]](
	name string,
	problem core.Problem[S],
	neigh core.Neighbourhood[S],
	stepper Stepper,
	opts ...Option,
) (*NeighbourhoodSearch[S], error) {
	if neigh == nil {
		return nil, core.ErrNilNeighbourhood
	}
	local, err := NewLocalSearch(name, problem, stepper, opts...)
	if err != nil {
		return nil, err
	}

	return &NeighbourhoodSearch[S]{
		LocalSearch: local,
		neigh:       neigh,
		cache:       NewSingleMoveCache[S](),
	}, nil
}

// Neighbourhood returns the move generator in use.
func (n *NeighbourhoodSearch[S]) Neighbourhood() core.Neighbourhood[S] { return n.neigh }

// SetNeighbourhood swaps the move generator between runs.
func (n *NeighbourhoodSearch[S]) SetNeighbourhood(neigh core.Neighbourhood[S]) error {
	if neigh == nil {
		return core.ErrNilNeighbourhood
	}
	n.neigh = neigh

	return nil
}

// SetMoveCache swaps the evaluated-move cache (nil restores the default
// single-slot cache). Call between runs only.
func (n *NeighbourhoodSearch[S]) SetMoveCache(cache MoveCache[S]) {
	if cache == nil {
		cache = NewSingleMoveCache[S]()
	}
	n.cache = cache
}

// AcceptedMoves returns the number of accepted moves over the search's
// lifetime.
func (n *NeighbourhoodSearch[S]) AcceptedMoves() int64 { return n.accepted }

// RejectedMoves returns the number of rejected moves over the search's
// lifetime.
func (n *NeighbourhoodSearch[S]) RejectedMoves() int64 { return n.rejected }

// EvaluateMove returns the evaluation the current solution would have
// after applying m, consulting the cache first.
func (n *NeighbourhoodSearch[S]) EvaluateMove(m core.Move[S]) (eval.Evaluation, error) {
	if e, ok := n.cache.CachedEvaluation(m); ok {
		return e, nil
	}
	e, err := n.Problem().EvaluateMove(m, n.cur, n.curEval)
	if err != nil {
		return nil, err
	}
	n.cache.CacheEvaluation(m, e)

	return e, nil
}

// ValidateMove returns the validation the current solution would have
// after applying m, consulting the cache first.
func (n *NeighbourhoodSearch[S]) ValidateMove(m core.Move[S]) (eval.Validation, error) {
	if v, ok := n.cache.CachedValidation(m); ok {
		return v, nil
	}
	v, err := n.Problem().ValidateMove(m, n.cur, n.curValid)
	if err != nil {
		return nil, err
	}
	n.cache.CacheValidation(m, v)

	return v, nil
}

// Improvement reports whether m is a valid move that strictly improves the
// current solution (any valid move counts when the current solution is
// itself invalid).
func (n *NeighbourhoodSearch[S]) Improvement(m core.Move[S]) (bool, error) {
	v, err := n.ValidateMove(m)
	if err != nil {
		return false, err
	}
	if !v.Passed() {
		return false, nil
	}
	if n.curValid != nil && !n.curValid.Passed() {
		return true, nil
	}
	e, err := n.EvaluateMove(m)
	if err != nil {
		return false, err
	}

	return Delta(e, n.curEval, n.Problem().Minimizing()) > 0, nil
}

// MoveDelta returns the signed improvement m would bring over the current
// evaluation (positive is better).
func (n *NeighbourhoodSearch[S]) MoveDelta(m core.Move[S]) (float64, error) {
	e, err := n.EvaluateMove(m)
	if err != nil {
		return 0, err
	}

	return Delta(e, n.curEval, n.Problem().Minimizing()), nil
}

// AcceptMove applies m to the current solution in place, promotes the
// post-move scores to current (and best, when not rejected), clears the
// cache, and counts the acceptance. A precondition failure from the move
// is propagated untouched: it signals a broken neighbourhood/move pairing.
func (n *NeighbourhoodSearch[S]) AcceptMove(m core.Move[S]) error {
	// Score through the cache before mutating; both calls are usually
	// already cached by the probing phase of the step.
	e, err := n.EvaluateMove(m)
	if err != nil {
		return err
	}
	v, err := n.ValidateMove(m)
	if err != nil {
		return err
	}

	if err = m.Apply(n.cur); err != nil {
		return fmt.Errorf("accept move: %w", err)
	}
	n.UpdateCurrentAndBest(n.cur, e, v)
	n.cache.Clear()
	n.accepted++

	return nil
}

// RejectMove counts a rejection and clears the cache.
func (n *NeighbourhoodSearch[S]) RejectMove() {
	n.rejected++
	n.cache.Clear()
}
