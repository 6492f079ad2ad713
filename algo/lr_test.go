package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalvik/descent/algo"
	"github.com/thalvik/descent/subset"
)

func TestLRSubsetSearch_ParameterValidation(t *testing.T) {
	prob := newIDSumProblem(t, 10, 5)
	u := universe(10)

	_, err := algo.NewLRSubsetSearch("lr", prob, u, 2, 2, 0, 5)
	assert.ErrorIs(t, err, algo.ErrBadLR)
	_, err = algo.NewLRSubsetSearch("lr", prob, u, -1, 0, 0, 5)
	assert.ErrorIs(t, err, algo.ErrBadLR)
	_, err = algo.NewLRSubsetSearch("lr", prob, u, 2, -1, 0, 5)
	assert.ErrorIs(t, err, algo.ErrBadLR)

	_, err = algo.NewLRSubsetSearch("lr", prob, u, 2, 1, 5, 5)
	assert.ErrorIs(t, err, algo.ErrBadBounds)
	_, err = algo.NewLRSubsetSearch("lr", prob, u, 2, 1, -1, 5)
	assert.ErrorIs(t, err, algo.ErrBadBounds)
	_, err = algo.NewLRSubsetSearch("lr", prob, u, 2, 1, 0, 11)
	assert.ErrorIs(t, err, algo.ErrBadBounds)
}

// Growing with L=2, R=1: each step adds the two best candidates and drops
// the worst selected one, so the selection is always the top IDs of its
// size and the run ends at the best 5-subset after exactly 5 steps.
func TestLRSubsetSearch_GrowsToBestSubset(t *testing.T) {
	const n, k = 10, 5
	prob := newIDSumProblem(t, n, k)
	lr, err := algo.NewLRSubsetSearch("lr-grow", prob, universe(n), 2, 1, 0, k)
	require.NoError(t, err)

	require.NoError(t, lr.Start())
	assert.Equal(t, int64(k), lr.Steps())

	cur, ok := lr.CurrentSolution()
	require.True(t, ok)
	assert.Equal(t, bestIDs(n, k), cur.SelectedIDs())
	assert.Equal(t, bestValue(n, k), lr.BestEvaluation().Value())
}

// Shrinking with L=0, R=1 starts from the full selection and greedily
// deletes the cheapest ID per step until the lower bound.
func TestLRSubsetSearch_ShrinksToBound(t *testing.T) {
	const n, minSize = 10, 5
	prob := newIDSumProblem(t, n, minSize)
	lr, err := algo.NewLRSubsetSearch("lr-shrink", prob, universe(n), 0, 1, minSize, n)
	require.NoError(t, err)

	require.NoError(t, lr.Start())

	cur, ok := lr.CurrentSolution()
	require.True(t, ok)
	assert.Equal(t, minSize, cur.NumSelected())
	assert.Equal(t, bestIDs(n, minSize), cur.SelectedIDs())

	// The full selection was visited first and sums higher, so it stays
	// the recorded best.
	assert.Equal(t, 45.0, lr.BestEvaluation().Value())
}

// A preset current solution survives the start and the search grows it
// from there.
func TestLRSubsetSearch_ResumesFromPresetSolution(t *testing.T) {
	const n, k = 10, 5
	prob := newIDSumProblem(t, n, k)
	lr, err := algo.NewLRSubsetSearch("lr-preset", prob, universe(n), 2, 1, 0, k)
	require.NoError(t, err)

	sol, err := subset.NewSolution(universe(n))
	require.NoError(t, err)
	require.NoError(t, sol.Select(9))
	require.NoError(t, sol.Select(8))
	lr.SetCurrentSolution(sol)

	require.NoError(t, lr.Start())

	cur, ok := lr.CurrentSolution()
	require.True(t, ok)
	assert.Equal(t, bestIDs(n, k), cur.SelectedIDs())
}
