// Package subset - single-move neighbourhoods.
//
// Three generators, each producing moves of exactly one kind:
//   - SingleAdditionNeighbourhood — AdditionMove per addable ID, bounded by
//     an optional maximum subset size.
//   - SingleDeletionNeighbourhood — DeletionMove per deletable ID, bounded
//     by an optional minimum subset size.
//   - SingleSwapNeighbourhood     — SwapMove per (deletable, addable) pair.
//
// Fixed IDs are excluded on both sides: a fixed selected ID is never
// deleted, a fixed unselected ID is never added.
//
// Contracts:
//   - RandomMove returns nil when no legal candidate exists.
//   - AllMoves enumerates in ascending ID order; for swaps, deletions form
//     the outer loop. Deterministic for a given solution state.
//
// Complexity: RandomMove O(n log n) (sorted candidate views), AllMoves
// O(d·a) for swaps over d deletable and a addable IDs.
package subset

import (
	"math/rand"

	"github.com/thalvik/descent/core"
)

// SingleSwapNeighbourhood generates swap moves preserving the subset size.
type SingleSwapNeighbourhood struct {
	fixed map[int]struct{}
}

// NewSingleSwapNeighbourhood returns a swap neighbourhood; fixed IDs never
// change selection state.
func NewSingleSwapNeighbourhood(fixed ...int) *SingleSwapNeighbourhood {
	return &SingleSwapNeighbourhood{fixed: fixedSet(fixed)}
}

// RandomMove returns a uniform random swap, or nil when either side has no
// candidate.
func (n *SingleSwapNeighbourhood) RandomMove(sol *Solution, rng *rand.Rand) core.Move[*Solution] {
	deletable := filterFixed(sol.SelectedIDs(), n.fixed)
	addable := filterFixed(sol.UnselectedIDs(), n.fixed)
	if len(deletable) == 0 || len(addable) == 0 {
		return nil
	}

	return SwapMove{
		Add:    addable[rng.Intn(len(addable))],
		Delete: deletable[rng.Intn(len(deletable))],
	}
}

// AllMoves enumerates every swap, deletions outer, additions inner, both
// ascending.
func (n *SingleSwapNeighbourhood) AllMoves(sol *Solution) []core.Move[*Solution] {
	deletable := filterFixed(sol.SelectedIDs(), n.fixed)
	addable := filterFixed(sol.UnselectedIDs(), n.fixed)

	moves := make([]core.Move[*Solution], 0, len(deletable)*len(addable))
	var d, a int
	for _, d = range deletable {
		for _, a = range addable {
			moves = append(moves, SwapMove{Add: a, Delete: d})
		}
	}

	return moves
}

// SingleAdditionNeighbourhood generates addition moves, optionally bounded
// by a maximum subset size.
type SingleAdditionNeighbourhood struct {
	maxSize int // 0 means unbounded
	fixed   map[int]struct{}
}

// NewSingleAdditionNeighbourhood returns an addition neighbourhood.
// maxSize 0 means unbounded; negative values return ErrBadSize.
func NewSingleAdditionNeighbourhood(maxSize int, fixed ...int) (*SingleAdditionNeighbourhood, error) {
	if maxSize < 0 {
		return nil, ErrBadSize
	}

	return &SingleAdditionNeighbourhood{maxSize: maxSize, fixed: fixedSet(fixed)}, nil
}

// RandomMove returns a uniform random addition, or nil when the subset is
// at its maximum size or nothing is addable.
func (n *SingleAdditionNeighbourhood) RandomMove(sol *Solution, rng *rand.Rand) core.Move[*Solution] {
	if n.maxSize > 0 && sol.NumSelected() >= n.maxSize {
		return nil
	}
	addable := filterFixed(sol.UnselectedIDs(), n.fixed)
	if len(addable) == 0 {
		return nil
	}

	return AdditionMove{ID: addable[rng.Intn(len(addable))]}
}

// AllMoves enumerates every addition in ascending ID order; empty when the
// size bound is reached.
func (n *SingleAdditionNeighbourhood) AllMoves(sol *Solution) []core.Move[*Solution] {
	if n.maxSize > 0 && sol.NumSelected() >= n.maxSize {
		return nil
	}
	addable := filterFixed(sol.UnselectedIDs(), n.fixed)

	moves := make([]core.Move[*Solution], 0, len(addable))
	var id int
	for _, id = range addable {
		moves = append(moves, AdditionMove{ID: id})
	}

	return moves
}

// SingleDeletionNeighbourhood generates deletion moves, optionally bounded
// by a minimum subset size.
type SingleDeletionNeighbourhood struct {
	minSize int
	fixed   map[int]struct{}
}

// NewSingleDeletionNeighbourhood returns a deletion neighbourhood.
// minSize 0 means unbounded; negative values return ErrBadSize.
func NewSingleDeletionNeighbourhood(minSize int, fixed ...int) (*SingleDeletionNeighbourhood, error) {
	if minSize < 0 {
		return nil, ErrBadSize
	}

	return &SingleDeletionNeighbourhood{minSize: minSize, fixed: fixedSet(fixed)}, nil
}

// RandomMove returns a uniform random deletion, or nil when the subset is
// at its minimum size or nothing is deletable.
func (n *SingleDeletionNeighbourhood) RandomMove(sol *Solution, rng *rand.Rand) core.Move[*Solution] {
	if sol.NumSelected() <= n.minSize {
		return nil
	}
	deletable := filterFixed(sol.SelectedIDs(), n.fixed)
	if len(deletable) == 0 {
		return nil
	}

	return DeletionMove{ID: deletable[rng.Intn(len(deletable))]}
}

// AllMoves enumerates every deletion in ascending ID order; empty when the
// size bound is reached.
func (n *SingleDeletionNeighbourhood) AllMoves(sol *Solution) []core.Move[*Solution] {
	if sol.NumSelected() <= n.minSize {
		return nil
	}
	deletable := filterFixed(sol.SelectedIDs(), n.fixed)

	moves := make([]core.Move[*Solution], 0, len(deletable))
	var id int
	for _, id = range deletable {
		moves = append(moves, DeletionMove{ID: id})
	}

	return moves
}

func fixedSet(ids []int) map[int]struct{} {
	if len(ids) == 0 {
		return nil
	}
	m := make(map[int]struct{}, len(ids))
	var id int
	for _, id = range ids {
		m[id] = struct{}{}
	}

	return m
}

func filterFixed(ids []int, fixed map[int]struct{}) []int {
	if len(fixed) == 0 {
		return ids
	}
	out := ids[:0]
	var id int
	for _, id = range ids {
		if _, ok := fixed[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}
