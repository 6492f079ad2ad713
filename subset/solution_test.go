package subset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/subset"
)

func newSol(t *testing.T, universe ...int) *subset.Solution {
	t.Helper()
	s, err := subset.NewSolution(universe)
	require.NoError(t, err)

	return s
}

func TestNewSolution_EmptyUniverse(t *testing.T) {
	_, err := subset.NewSolution(nil)
	assert.ErrorIs(t, err, subset.ErrEmptyUniverse)
}

func TestSolution_SelectDeselect(t *testing.T) {
	s := newSol(t, 1, 2, 3)

	require.NoError(t, s.Select(2))
	assert.True(t, s.Selected(2))
	assert.Equal(t, 1, s.NumSelected())
	assert.Equal(t, []int{2}, s.SelectedIDs())
	assert.Equal(t, []int{1, 3}, s.UnselectedIDs())

	// Precondition violations are sentinel errors, never silent.
	assert.ErrorIs(t, s.Select(2), subset.ErrAlreadySelected)
	assert.ErrorIs(t, s.Select(9), subset.ErrUnknownID)
	assert.ErrorIs(t, s.Deselect(1), subset.ErrNotSelected)
	assert.ErrorIs(t, s.Deselect(9), subset.ErrUnknownID)

	require.NoError(t, s.Deselect(2))
	assert.Equal(t, 0, s.NumSelected())
	assert.Equal(t, 3, s.UniverseSize())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(9))
}

// TestSolution_CopyIsDeep mutates the original after copying and checks the
// copy is unaffected — this is what protects recorded best solutions.
func TestSolution_CopyIsDeep(t *testing.T) {
	s := newSol(t, 1, 2, 3)
	require.NoError(t, s.Select(1))

	c := s.Copy()
	assert.True(t, s.Equal(c))

	require.NoError(t, s.Select(2))
	assert.False(t, s.Equal(c))
	assert.False(t, c.Selected(2))
}

func TestSolution_Equal(t *testing.T) {
	a := newSol(t, 1, 2, 3)
	b := newSol(t, 1, 2, 3)
	assert.True(t, a.Equal(b))

	require.NoError(t, a.Select(1))
	assert.False(t, a.Equal(b))
	require.NoError(t, b.Select(1))
	assert.True(t, a.Equal(b))

	// Different universes are never equal, even with equal selections.
	assert.False(t, a.Equal(newSol(t, 1, 2, 4)))
	assert.False(t, a.Equal(nil))
}

func TestRandomSolution(t *testing.T) {
	universe := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	s, err := subset.RandomSolution(universe, 4, core.RNG(11))
	require.NoError(t, err)
	assert.Equal(t, 4, s.NumSelected())

	// Deterministic for a fixed seed.
	s2, err := subset.RandomSolution(universe, 4, core.RNG(11))
	require.NoError(t, err)
	assert.True(t, s.Equal(s2))

	_, err = subset.RandomSolution(universe, -1, core.RNG(1))
	assert.ErrorIs(t, err, subset.ErrBadSize)
	_, err = subset.RandomSolution(universe, 11, core.RNG(1))
	assert.ErrorIs(t, err, subset.ErrBadSize)
}
