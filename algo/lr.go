// Package algo - LR subset search.
//
// A greedy constructive search over subset solutions: every step performs
// L greedy best additions followed by R greedy best deletions, L != R.
// With L > R the subset grows net L-R items per step from the empty
// selection; with R > L it shrinks from the full selection. Each greedy
// pick is the single addition (deletion) with the best delta, improving or
// not. The search stops when the subset size reaches the relevant bound,
// so the run traverses the whole reachable size range exactly once.
package algo

import (
	"math"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/eval"
	"github.com/thalvik/descent/search"
	"github.com/thalvik/descent/subset"
)

// LRSubsetSearch greedily grows or shrinks a subset solution.
type LRSubsetSearch struct {
	*search.LocalSearch[*subset.Solution]

	universe []int
	l        int
	r        int
	minSize  int
	maxSize  int
}

// NewLRSubsetSearch constructs an LR search over the given universe. L and
// R must be non-negative and distinct (ErrBadLR); the size bounds must
// satisfy 0 <= minSize < maxSize <= len(universe), with maxSize <= 0
// meaning the full universe (ErrBadBounds).
func NewLRSubsetSearch(
	name string,
	problem core.Problem[*subset.Solution],
	universe []int,
	l, r int,
	minSize, maxSize int,
	opts ...search.Option,
) (*LRSubsetSearch, error) {
	if l < 0 || r < 0 || l == r {
		return nil, ErrBadLR
	}
	if maxSize <= 0 {
		maxSize = len(universe)
	}
	if minSize < 0 || minSize >= maxSize || maxSize > len(universe) {
		return nil, ErrBadBounds
	}

	lr := &LRSubsetSearch{
		universe: append([]int(nil), universe...),
		l:        l,
		r:        r,
		minSize:  minSize,
		maxSize:  maxSize,
	}
	local, err := search.NewLocalSearch(name, problem, lr, opts...)
	if err != nil {
		return nil, err
	}
	lr.LocalSearch = local

	return lr, nil
}

// SearchStarted implements search.StartHandler: the search starts from
// the empty selection when growing (L > R) and from the full selection
// when shrinking, never from a random solution.
func (lr *LRSubsetSearch) SearchStarted() error {
	if _, ok := lr.CurrentSolution(); ok {
		return nil
	}
	sol, err := subset.NewSolution(lr.universe)
	if err != nil {
		return err
	}
	if lr.r > lr.l {
		for _, id := range lr.universe {
			if err = sol.Select(id); err != nil {
				return err
			}
		}
	}
	lr.SetCurrentSolution(sol)

	return nil
}

// Step implements search.Stepper: L greedy additions, R greedy deletions,
// rescore, and stop once the target size bound is reached.
func (lr *LRSubsetSearch) Step() error {
	cur, ok := lr.CurrentSolution()
	if !ok {
		lr.Stop()

		return nil
	}
	if lr.reachedTarget(cur) {
		lr.Stop()

		return nil
	}

	e := lr.CurrentEvaluation()
	changed := false
	var err error
	for i := 0; i < lr.l; i++ {
		if e, ok, err = lr.greedyAdd(cur, e); err != nil {
			return err
		} else if ok {
			changed = true
		}
	}
	for i := 0; i < lr.r; i++ {
		if e, ok, err = lr.greedyDelete(cur, e); err != nil {
			return err
		} else if ok {
			changed = true
		}
	}
	if !changed {
		lr.Stop()

		return nil
	}
	lr.UpdateCurrentAndBest(cur, e, lr.Problem().Validate(cur))
	if cur, ok = lr.CurrentSolution(); ok && lr.reachedTarget(cur) {
		lr.Stop()
	}

	return nil
}

// reachedTarget reports whether the subset size arrived at the bound the
// search is moving towards.
func (lr *LRSubsetSearch) reachedTarget(sol *subset.Solution) bool {
	if lr.l > lr.r {
		return sol.NumSelected() >= lr.maxSize
	}

	return sol.NumSelected() <= lr.minSize
}

// greedyAdd applies the best single addition in place and returns the
// post-move evaluation; ok is false when no addition is possible. The
// upper bound is relaxed by the R deletions that follow within the same
// step, so a step may overshoot maxSize mid-way and still end within it.
func (lr *LRSubsetSearch) greedyAdd(sol *subset.Solution, e eval.Evaluation) (eval.Evaluation, bool, error) {
	if sol.NumSelected() >= lr.maxSize+lr.r {
		return e, false, nil
	}
	best, bestEval, found, err := lr.bestOf(sol, e, additionMoves(sol))
	if err != nil || !found {
		return e, false, err
	}
	if err = best.Apply(sol); err != nil {
		return e, false, err
	}

	return bestEval, true, nil
}

// greedyDelete applies the best single deletion in place and returns the
// post-move evaluation; ok is false when no deletion is possible.
func (lr *LRSubsetSearch) greedyDelete(sol *subset.Solution, e eval.Evaluation) (eval.Evaluation, bool, error) {
	if sol.NumSelected() <= lr.minSize {
		return e, false, nil
	}
	best, bestEval, found, err := lr.bestOf(sol, e, deletionMoves(sol))
	if err != nil || !found {
		return e, false, err
	}
	if err = best.Apply(sol); err != nil {
		return e, false, err
	}

	return bestEval, true, nil
}

// bestOf scores each candidate move through the delta protocol and keeps
// the one with the best post-move evaluation, improving or not.
func (lr *LRSubsetSearch) bestOf(
	sol *subset.Solution,
	e eval.Evaluation,
	moves []core.Move[*subset.Solution],
) (core.Move[*subset.Solution], eval.Evaluation, bool, error) {
	var (
		best      core.Move[*subset.Solution]
		bestEval  eval.Evaluation
		bestDelta = math.Inf(-1)
	)
	for _, m := range moves {
		me, err := lr.Problem().EvaluateMove(m, sol, e)
		if err != nil {
			return nil, nil, false, err
		}
		if d := search.Delta(me, e, lr.Problem().Minimizing()); d > bestDelta {
			best, bestEval, bestDelta = m, me, d
		}
	}

	return best, bestEval, best != nil, nil
}

func additionMoves(sol *subset.Solution) []core.Move[*subset.Solution] {
	ids := sol.UnselectedIDs()
	moves := make([]core.Move[*subset.Solution], len(ids))
	for i, id := range ids {
		moves[i] = subset.AdditionMove{ID: id}
	}

	return moves
}

func deletionMoves(sol *subset.Solution) []core.Move[*subset.Solution] {
	ids := sol.SelectedIDs()
	moves := make([]core.Move[*subset.Solution], len(ids))
	for i, id := range ids {
		moves[i] = subset.DeletionMove{ID: id}
	}

	return moves
}
