// Package algo - tabu memories.
//
// A TabuMemory decides which moves are currently forbidden and records the
// moves a tabu search accepts. Two real implementations are provided:
//
//   - FullTabuMemory declares a move tabu when it would recreate one of
//     the recently visited solutions (compared with Solution.Equal). IsTabu
//     briefly applies and undoes the move on the live solution.
//   - IDBasedSubsetTabuMemory declares a subset move tabu when it touches
//     an ID that a recently accepted move touched; far cheaper than full
//     solution comparison and usually as effective.
//
// NeverTabuMemory and AlwaysTabuMemory are degenerate memories for
// composing and testing acceptance rules.
package algo

import (
	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/subset"
)

// TabuMemory tracks forbidden moves for a tabu search.
type TabuMemory[S core.Solution[S]] interface {
	// IsTabu reports whether applying m to sol is currently forbidden.
	IsTabu(m core.Move[S], sol S) bool

	// Register records that m was accepted, with sol the solution after
	// the move was applied.
	Register(m core.Move[S], sol S)

	// Clear forgets everything.
	Clear()
}

// FullTabuMemory remembers the last n visited solutions and forbids moves
// leading back to any of them.
type FullTabuMemory[S core.Solution[S]] struct {
	visited []S
	next    int
	full    bool
}

// NewFullTabuMemory returns a memory holding the size most recently
// visited solutions; size must be positive (ErrBadMemorySize).
func NewFullTabuMemory[S core.Solution[S]](size int) (*FullTabuMemory[S], error) {
	if size <= 0 {
		return nil, ErrBadMemorySize
	}

	return &FullTabuMemory[S]{visited: make([]S, 0, size)}, nil
}

// IsTabu implements TabuMemory. The move is applied and undone on sol to
// compare the post-move solution; sol must tolerate the round trip.
func (t *FullTabuMemory[S]) IsTabu(m core.Move[S], sol S) bool {
	if len(t.visited) == 0 {
		return false
	}
	if err := m.Apply(sol); err != nil {
		return false
	}
	tabu := false
	for i := range t.visited {
		if sol.Equal(t.visited[i]) {
			tabu = true

			break
		}
	}
	_ = m.Undo(sol)

	return tabu
}

// Register implements TabuMemory, storing a copy of the visited solution.
func (t *FullTabuMemory[S]) Register(_ core.Move[S], sol S) {
	if len(t.visited) < cap(t.visited) {
		t.visited = append(t.visited, sol.Copy())

		return
	}
	t.visited[t.next] = sol.Copy()
	t.next = (t.next + 1) % cap(t.visited)
}

// Clear implements TabuMemory.
func (t *FullTabuMemory[S]) Clear() {
	t.visited = t.visited[:0]
	t.next = 0
}

// IDBasedSubsetTabuMemory forbids subset moves touching recently moved
// IDs, held in a fixed-size ring buffer.
type IDBasedSubsetTabuMemory struct {
	ids  []int
	next int
	size int
}

// NewIDBasedSubsetTabuMemory returns a memory remembering the size most
// recently touched IDs; size must be positive (ErrBadMemorySize).
func NewIDBasedSubsetTabuMemory(size int) (*IDBasedSubsetTabuMemory, error) {
	if size <= 0 {
		return nil, ErrBadMemorySize
	}

	return &IDBasedSubsetTabuMemory{ids: make([]int, 0, size), size: size}, nil
}

// IsTabu implements TabuMemory. Moves of unknown kinds are never tabu.
func (t *IDBasedSubsetTabuMemory) IsTabu(m core.Move[*subset.Solution], _ *subset.Solution) bool {
	for _, id := range touchedIDs(m) {
		for i := range t.ids {
			if t.ids[i] == id {
				return true
			}
		}
	}

	return false
}

// Register implements TabuMemory, remembering every ID the move touched.
func (t *IDBasedSubsetTabuMemory) Register(m core.Move[*subset.Solution], _ *subset.Solution) {
	for _, id := range touchedIDs(m) {
		if len(t.ids) < t.size {
			t.ids = append(t.ids, id)

			continue
		}
		t.ids[t.next] = id
		t.next = (t.next + 1) % t.size
	}
}

// Clear implements TabuMemory.
func (t *IDBasedSubsetTabuMemory) Clear() {
	t.ids = t.ids[:0]
	t.next = 0
}

func touchedIDs(m core.Move[*subset.Solution]) []int {
	switch mv := m.(type) {
	case subset.AdditionMove:
		return []int{mv.ID}
	case subset.DeletionMove:
		return []int{mv.ID}
	case subset.SwapMove:
		return []int{mv.Add, mv.Delete}
	default:
		return nil
	}
}

// NeverTabuMemory forbids nothing; tabu search degenerates to steepest
// ascent/descent that accepts worsening moves.
type NeverTabuMemory[S core.Solution[S]] struct{}

// IsTabu implements TabuMemory.
func (NeverTabuMemory[S]) IsTabu(core.Move[S], S) bool { return false }

// Register implements TabuMemory.
func (NeverTabuMemory[S]) Register(core.Move[S], S) {}

// Clear implements TabuMemory.
func (NeverTabuMemory[S]) Clear() {}

// AlwaysTabuMemory forbids everything; only the aspiration criterion can
// accept a move.
type AlwaysTabuMemory[S core.Solution[S]] struct{}

// IsTabu implements TabuMemory.
func (AlwaysTabuMemory[S]) IsTabu(core.Move[S], S) bool { return true }

// Register implements TabuMemory.
func (AlwaysTabuMemory[S]) Register(core.Move[S], S) {}

// Clear implements TabuMemory.
func (AlwaysTabuMemory[S]) Clear() {}
