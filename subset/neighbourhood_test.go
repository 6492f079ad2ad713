package subset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/subset"
)

func TestSwapNeighbourhood_AllMoves_DeterministicOrder(t *testing.T) {
	s := newSol(t, 0, 1, 2, 3)
	require.NoError(t, s.Select(2))
	require.NoError(t, s.Select(3))

	n := subset.NewSingleSwapNeighbourhood()
	moves := n.AllMoves(s)

	// Deletions {2,3} outer, additions {0,1} inner, both ascending.
	want := []core.Move[*subset.Solution]{
		subset.SwapMove{Add: 0, Delete: 2},
		subset.SwapMove{Add: 1, Delete: 2},
		subset.SwapMove{Add: 0, Delete: 3},
		subset.SwapMove{Add: 1, Delete: 3},
	}
	assert.Equal(t, want, moves)
}

func TestSwapNeighbourhood_RespectsFixedIDs(t *testing.T) {
	s := newSol(t, 0, 1, 2, 3)
	require.NoError(t, s.Select(0))
	require.NoError(t, s.Select(1))

	// 0 may not be deleted, 2 may not be added.
	n := subset.NewSingleSwapNeighbourhood(0, 2)
	moves := n.AllMoves(s)
	assert.Equal(t, []core.Move[*subset.Solution]{subset.SwapMove{Add: 3, Delete: 1}}, moves)

	rng := core.RNG(3)
	for i := 0; i < 16; i++ {
		assert.Equal(t, subset.SwapMove{Add: 3, Delete: 1}, n.RandomMove(s, rng))
	}
}

// TestSwapNeighbourhood_Exhausted covers the nil contract: nothing to
// delete (empty selection) or nothing to add (full selection).
func TestSwapNeighbourhood_Exhausted(t *testing.T) {
	n := subset.NewSingleSwapNeighbourhood()
	rng := core.RNG(1)

	empty := newSol(t, 1, 2)
	assert.Nil(t, n.RandomMove(empty, rng))
	assert.Empty(t, n.AllMoves(empty))

	full := newSol(t, 1, 2)
	require.NoError(t, full.Select(1))
	require.NoError(t, full.Select(2))
	assert.Nil(t, n.RandomMove(full, rng))
	assert.Empty(t, n.AllMoves(full))
}

func TestAdditionNeighbourhood_SizeBound(t *testing.T) {
	_, err := subset.NewSingleAdditionNeighbourhood(-1)
	assert.ErrorIs(t, err, subset.ErrBadSize)

	n, err := subset.NewSingleAdditionNeighbourhood(2)
	require.NoError(t, err)

	s := newSol(t, 1, 2, 3)
	require.NoError(t, s.Select(1))
	assert.Len(t, n.AllMoves(s), 2)

	require.NoError(t, s.Select(2))
	assert.Empty(t, n.AllMoves(s))
	assert.Nil(t, n.RandomMove(s, core.RNG(1)))
}

func TestDeletionNeighbourhood_SizeBound(t *testing.T) {
	_, err := subset.NewSingleDeletionNeighbourhood(-1)
	assert.ErrorIs(t, err, subset.ErrBadSize)

	n, err := subset.NewSingleDeletionNeighbourhood(1)
	require.NoError(t, err)

	s := newSol(t, 1, 2, 3)
	require.NoError(t, s.Select(1))
	require.NoError(t, s.Select(2))
	assert.Len(t, n.AllMoves(s), 2)

	require.NoError(t, s.Deselect(2))
	assert.Empty(t, n.AllMoves(s))
	assert.Nil(t, n.RandomMove(s, core.RNG(1)))
}
