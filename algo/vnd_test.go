package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalvik/descent/algo"
	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/search"
	"github.com/thalvik/descent/subset"
)

func TestVariableNeighbourhoodDescent_RequiresNeighbourhoods(t *testing.T) {
	prob := newIDSumProblem(t, 10, 5)
	_, err := algo.NewVariableNeighbourhoodDescent[*subset.Solution]("vnd", prob, nil)
	assert.ErrorIs(t, err, algo.ErrNoNeighbourhoods)

	_, err = algo.NewVariableNeighbourhoodDescent[*subset.Solution]("vnd", prob,
		[]core.Neighbourhood[*subset.Solution]{subset.NewSingleSwapNeighbourhood(), nil})
	assert.ErrorIs(t, err, core.ErrNilNeighbourhood)
}

// Over the single swap neighbourhood VND degenerates to steepest descent
// and must reach the identical optimum.
func TestVariableNeighbourhoodDescent_MatchesSteepestOnOneNeighbourhood(t *testing.T) {
	const n, k = 10, 5
	prob := newIDSumProblem(t, n, k)
	vnd, err := algo.NewVariableNeighbourhoodDescent[*subset.Solution]("vnd", prob,
		[]core.Neighbourhood[*subset.Solution]{subset.NewSingleSwapNeighbourhood()})
	require.NoError(t, err)
	vnd.SetCurrentSolution(worstSolution(t, n, k))

	require.NoError(t, vnd.Start())
	assert.Equal(t, bestValue(n, k), vnd.BestEvaluation().Value())

	best, ok := vnd.BestSolution()
	require.True(t, ok)
	assert.Equal(t, bestIDs(n, k), best.SelectedIDs())
}

// With swaps and bounded additions stacked, VND grows the subset whenever
// swapping stalls and ends at a solution that is locally optimal for BOTH
// neighbourhoods: the 5 largest IDs.
func TestVariableNeighbourhoodDescent_DescendsThroughList(t *testing.T) {
	const n = 10
	prob := newIDSumProblem(t, n, 2)
	add, err := subset.NewSingleAdditionNeighbourhood(5)
	require.NoError(t, err)
	vnd, err := algo.NewVariableNeighbourhoodDescent[*subset.Solution]("vnd-list", prob,
		[]core.Neighbourhood[*subset.Solution]{subset.NewSingleSwapNeighbourhood(), add})
	require.NoError(t, err)
	vnd.SetCurrentSolution(worstSolution(t, n, 2))

	require.NoError(t, vnd.Start())

	best, ok := vnd.BestSolution()
	require.True(t, ok)
	assert.Equal(t, bestIDs(n, 5), best.SelectedIDs())
	assert.Equal(t, bestValue(n, 5), vnd.BestEvaluation().Value())
}

// VNS with swap shaking over the same descent neighbourhood: the first
// step already descends to the optimum, the remaining shakes cannot
// improve on it, and the search stops by itself with the optimum as best.
func TestVariableNeighbourhoodSearch_FindsOptimum(t *testing.T) {
	const n, k = 10, 5
	prob := newIDSumProblem(t, n, k)
	swap := subset.NewSingleSwapNeighbourhood()
	vns, err := algo.NewVariableNeighbourhoodSearch[*subset.Solution]("vns", prob,
		[]core.Neighbourhood[*subset.Solution]{swap},
		[]core.Neighbourhood[*subset.Solution]{swap},
		nil,
		search.WithSeed(29))
	require.NoError(t, err)
	vns.SetCurrentSolution(worstSolution(t, n, k))

	require.NoError(t, vns.Start())
	assert.Equal(t, search.StatusIdle, vns.Status())
	assert.Equal(t, bestValue(n, k), vns.BestEvaluation().Value())

	best, ok := vns.BestSolution()
	require.True(t, ok)
	assert.Equal(t, bestIDs(n, k), best.SelectedIDs())
}

func TestVariableNeighbourhoodSearch_RequiresShakingAndDescent(t *testing.T) {
	prob := newIDSumProblem(t, 10, 5)
	swap := subset.NewSingleSwapNeighbourhood()

	_, err := algo.NewVariableNeighbourhoodSearch[*subset.Solution]("vns", prob,
		nil, []core.Neighbourhood[*subset.Solution]{swap}, nil)
	assert.ErrorIs(t, err, algo.ErrNoNeighbourhoods)

	// Default factory needs descent neighbourhoods.
	_, err = algo.NewVariableNeighbourhoodSearch[*subset.Solution]("vns", prob,
		[]core.Neighbourhood[*subset.Solution]{swap}, nil, nil)
	assert.ErrorIs(t, err, algo.ErrNoNeighbourhoods)
}
