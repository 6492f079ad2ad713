package subset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/subset"
)

// TestMoves_Reversibility applies and undoes every move kind and checks the
// solution is reconstructed field-by-field.
func TestMoves_Reversibility(t *testing.T) {
	s := newSol(t, 1, 2, 3, 4)
	require.NoError(t, s.Select(1))
	require.NoError(t, s.Select(2))
	before := s.Copy()

	moves := []core.Move[*subset.Solution]{
		subset.AdditionMove{ID: 3},
		subset.DeletionMove{ID: 1},
		subset.SwapMove{Add: 4, Delete: 2},
	}
	for _, m := range moves {
		require.NoError(t, m.Apply(s))
		assert.False(t, s.Equal(before), "%+v must change the solution", m)
		require.NoError(t, m.Undo(s))
		assert.True(t, s.Equal(before), "%+v must undo exactly", m)
	}
}

// TestMoves_Preconditions checks that every illegal application surfaces
// the underlying sentinel and leaves the solution untouched.
func TestMoves_Preconditions(t *testing.T) {
	s := newSol(t, 1, 2, 3)
	require.NoError(t, s.Select(1))
	before := s.Copy()

	cases := []struct {
		move core.Move[*subset.Solution]
		want error
	}{
		{subset.AdditionMove{ID: 1}, subset.ErrAlreadySelected},
		{subset.AdditionMove{ID: 9}, subset.ErrUnknownID},
		{subset.DeletionMove{ID: 2}, subset.ErrNotSelected},
		{subset.DeletionMove{ID: 9}, subset.ErrUnknownID},
		{subset.SwapMove{Add: 2, Delete: 3}, subset.ErrNotSelected},
		// Deletion leg succeeds, addition leg fails: must roll back.
		{subset.SwapMove{Add: 9, Delete: 1}, subset.ErrUnknownID},
	}
	for _, tc := range cases {
		err := tc.move.Apply(s)
		assert.ErrorIs(t, err, tc.want, "%+v", tc.move)
		assert.True(t, s.Equal(before), "%+v must leave the solution untouched", tc.move)
	}
}

// TestSwapMove_KeepsSize pins the size-preserving property of swaps.
func TestSwapMove_KeepsSize(t *testing.T) {
	s := newSol(t, 1, 2, 3)
	require.NoError(t, s.Select(1))

	m := subset.SwapMove{Add: 3, Delete: 1}
	require.NoError(t, m.Apply(s))
	assert.Equal(t, 1, s.NumSelected())
	assert.True(t, s.Selected(3))
	assert.False(t, s.Selected(1))
}
