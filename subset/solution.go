// Package subset - the subset solution type.
//
// Invariants maintained by every mutator:
//   - selected ∪ unselected == universe, selected ∩ unselected == ∅.
//   - Select/Deselect are O(1); sorted views are rebuilt on demand.
package subset

import (
	"math/rand"
	"sort"
)

// Solution is a mutable subset of integer IDs over a fixed universe.
// It implements core.Solution[*Solution]. Not safe for concurrent use;
// the engine mutates it from the step-loop goroutine only and records
// copies everywhere else.
type Solution struct {
	selected   map[int]struct{}
	unselected map[int]struct{}
}

// NewSolution returns an empty subset over the given universe (duplicates
// collapse). The universe must be non-empty (ErrEmptyUniverse).
func NewSolution(universe []int) (*Solution, error) {
	if len(universe) == 0 {
		return nil, ErrEmptyUniverse
	}
	s := &Solution{
		selected:   make(map[int]struct{}),
		unselected: make(map[int]struct{}, len(universe)),
	}
	var id int
	for _, id = range universe {
		s.unselected[id] = struct{}{}
	}

	return s, nil
}

// RandomSolution returns a subset of the given size drawn uniformly from
// universe using rng. size must lie in [0, |universe|] (ErrBadSize).
func RandomSolution(universe []int, size int, rng *rand.Rand) (*Solution, error) {
	s, err := NewSolution(universe)
	if err != nil {
		return nil, err
	}
	if size < 0 || size > len(s.unselected) {
		return nil, ErrBadSize
	}

	// Partial Fisher-Yates over the sorted universe.
	ids := s.UnselectedIDs()
	var i, j int
	for i = 0; i < size; i++ {
		j = i + rng.Intn(len(ids)-i)
		ids[i], ids[j] = ids[j], ids[i]
		if err = s.Select(ids[i]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Select marks id as selected. ErrUnknownID when id is outside the
// universe, ErrAlreadySelected when already selected.
func (s *Solution) Select(id int) error {
	if _, ok := s.unselected[id]; !ok {
		if _, sel := s.selected[id]; sel {
			return ErrAlreadySelected
		}

		return ErrUnknownID
	}
	delete(s.unselected, id)
	s.selected[id] = struct{}{}

	return nil
}

// Deselect marks id as unselected. ErrUnknownID when id is outside the
// universe, ErrNotSelected when not currently selected.
func (s *Solution) Deselect(id int) error {
	if _, ok := s.selected[id]; !ok {
		if _, unsel := s.unselected[id]; unsel {
			return ErrNotSelected
		}

		return ErrUnknownID
	}
	delete(s.selected, id)
	s.unselected[id] = struct{}{}

	return nil
}

// Selected reports whether id is currently selected.
func (s *Solution) Selected(id int) bool {
	_, ok := s.selected[id]

	return ok
}

// Contains reports whether id belongs to the universe.
func (s *Solution) Contains(id int) bool {
	if _, ok := s.selected[id]; ok {
		return true
	}
	_, ok := s.unselected[id]

	return ok
}

// NumSelected returns the current subset size.
func (s *Solution) NumSelected() int { return len(s.selected) }

// UniverseSize returns the number of IDs in the universe.
func (s *Solution) UniverseSize() int { return len(s.selected) + len(s.unselected) }

// SelectedIDs returns the selected IDs in ascending order (fresh slice).
func (s *Solution) SelectedIDs() []int { return sortedKeys(s.selected) }

// UnselectedIDs returns the unselected IDs in ascending order (fresh slice).
func (s *Solution) UnselectedIDs() []int { return sortedKeys(s.unselected) }

// Copy implements core.Solution: a deep copy sharing no state.
func (s *Solution) Copy() *Solution {
	c := &Solution{
		selected:   make(map[int]struct{}, len(s.selected)),
		unselected: make(map[int]struct{}, len(s.unselected)),
	}
	var id int
	for id = range s.selected {
		c.selected[id] = struct{}{}
	}
	for id = range s.unselected {
		c.unselected[id] = struct{}{}
	}

	return c
}

// Equal implements core.Solution: same universe, same selection.
func (s *Solution) Equal(other *Solution) bool {
	if other == nil || len(s.selected) != len(other.selected) || len(s.unselected) != len(other.unselected) {
		return false
	}
	var id int
	for id = range s.selected {
		if _, ok := other.selected[id]; !ok {
			return false
		}
	}
	for id = range s.unselected {
		if _, ok := other.unselected[id]; !ok {
			return false
		}
	}

	return true
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	var id int
	for id = range m {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
