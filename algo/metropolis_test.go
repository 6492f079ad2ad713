package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalvik/descent/algo"
	"github.com/thalvik/descent/search"
	"github.com/thalvik/descent/subset"
)

func TestMetropolisSearch_ConstructorValidation(t *testing.T) {
	prob := newIDSumProblem(t, 10, 5)
	neigh := subset.NewSingleSwapNeighbourhood()

	_, err := algo.NewMetropolisSearch[*subset.Solution]("m", prob, neigh, 0, 1)
	assert.ErrorIs(t, err, algo.ErrBadTemperature)
	_, err = algo.NewMetropolisSearch[*subset.Solution]("m", prob, neigh, -1, 1)
	assert.ErrorIs(t, err, algo.ErrBadTemperature)
	_, err = algo.NewMetropolisSearch[*subset.Solution]("m", prob, neigh, 1, 0)
	assert.ErrorIs(t, err, algo.ErrBadScale)

	ms, err := algo.NewMetropolisSearch[*subset.Solution]("m", prob, neigh, 2, 0.5)
	require.NoError(t, err)
	assert.Equal(t, 2.0, ms.Temperature())
	assert.Equal(t, 0.5, ms.Scale())
	assert.ErrorIs(t, ms.SetTemperature(0), algo.ErrBadTemperature)
	require.NoError(t, ms.SetTemperature(3))
	assert.Equal(t, 3.0, ms.Temperature())
}

// At a near-zero temperature the acceptance probability of any worsening
// swap is exp(-delta/0.001) and underflows to zero: across 1000 sampled
// moves from the optimum, not a single worsening move may be accepted.
func TestMetropolisSearch_FreezesAtLowTemperature(t *testing.T) {
	const n, k = 10, 5
	prob := newIDSumProblem(t, n, k)
	ms, err := algo.NewMetropolisSearch[*subset.Solution](
		"frozen", prob, subset.NewSingleSwapNeighbourhood(), 0.001, 1, search.WithSeed(5))
	require.NoError(t, err)

	// Start at the optimum: every swap strictly worsens.
	opt, err := subset.NewSolution(universe(n))
	require.NoError(t, err)
	for _, id := range bestIDs(n, k) {
		require.NoError(t, opt.Select(id))
	}
	ms.SetCurrentSolution(opt)

	bound, err := search.NewMaxSteps(1000)
	require.NoError(t, err)
	require.NoError(t, ms.AddStopCriterion(bound))

	require.NoError(t, ms.Start())
	assert.Equal(t, int64(1000), ms.Steps())
	assert.Equal(t, int64(0), ms.AcceptedMoves())
	assert.Equal(t, int64(1000), ms.RejectedMoves())

	cur, ok := ms.CurrentSolution()
	require.True(t, ok)
	assert.Equal(t, bestIDs(n, k), cur.SelectedIDs())
}

// At a huge temperature essentially every move passes the exp test, so the
// chain wanders freely.
func TestMetropolisSearch_WandersAtHighTemperature(t *testing.T) {
	const n, k = 10, 5
	prob := newIDSumProblem(t, n, k)
	ms, err := algo.NewMetropolisSearch[*subset.Solution](
		"hot", prob, subset.NewSingleSwapNeighbourhood(), 1e9, 1, search.WithSeed(5))
	require.NoError(t, err)
	ms.SetCurrentSolution(worstSolution(t, n, k))

	bound, err := search.NewMaxSteps(200)
	require.NoError(t, err)
	require.NoError(t, ms.AddStopCriterion(bound))

	require.NoError(t, ms.Start())
	assert.Greater(t, ms.AcceptedMoves(), int64(150))
}
