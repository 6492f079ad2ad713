package algo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalvik/descent/algo"
	"github.com/thalvik/descent/eval"
	"github.com/thalvik/descent/search"
	"github.com/thalvik/descent/subset"
)

// Steepest descent over fixed-size swaps must climb from the worst
// 5-subset of {0..9} to the unique optimum {5..9} without ever letting the
// current evaluation regress, and terminate in at most k*(n-k) improving
// steps plus the final empty scan.
func TestSteepestDescent_ReachesOptimum(t *testing.T) {
	const n, k = 10, 5
	prob := newIDSumProblem(t, n, k)
	sd, err := algo.NewSteepestDescent[*subset.Solution](
		"steepest", prob, subset.NewSingleSwapNeighbourhood())
	require.NoError(t, err)
	sd.SetCurrentSolution(worstSolution(t, n, k))

	last := sd.CurrentEvaluation().Value()
	require.NoError(t, sd.AddSearchListener(&search.Listener[*subset.Solution]{
		NewCurrent: func(_ *subset.Solution, e eval.Evaluation, _ eval.Validation) {
			assert.GreaterOrEqual(t, e.Value(), last)
			last = e.Value()
		},
	}))

	require.NoError(t, sd.Start())

	best, ok := sd.BestSolution()
	require.True(t, ok)
	assert.Equal(t, bestIDs(n, k), best.SelectedIDs())
	assert.Equal(t, bestValue(n, k), sd.BestEvaluation().Value())
	assert.LessOrEqual(t, sd.Steps(), int64(k*(n-k)+1))

	cur, ok := sd.CurrentSolution()
	require.True(t, ok)
	assert.True(t, cur.Equal(best))
}

// Without a current solution a descent step has nothing to do and the
// search terminates immediately after generating the initial solution and
// descending from it.
func TestSteepestDescent_FromRandomStart(t *testing.T) {
	const n, k = 10, 5
	prob := newIDSumProblem(t, n, k)
	sd, err := algo.NewSteepestDescent[*subset.Solution](
		"steepest-random", prob, subset.NewSingleSwapNeighbourhood(), search.WithSeed(3))
	require.NoError(t, err)

	require.NoError(t, sd.Start())
	assert.Equal(t, bestValue(n, k), sd.BestEvaluation().Value())
}

func TestRandomDescent_EmptyNeighbourhoodStopsAfterOneStep(t *testing.T) {
	const n = 3
	prob := newIDSumProblem(t, n, n)
	rd, err := algo.NewRandomDescent[*subset.Solution](
		"random-empty", prob, subset.NewSingleSwapNeighbourhood())
	require.NoError(t, err)

	// All of the universe is selected: no swap exists.
	rd.SetCurrentSolution(worstSolution(t, n, n))
	require.NoError(t, rd.Start())
	assert.Equal(t, int64(1), rd.Steps())
	assert.Equal(t, int64(0), rd.AcceptedMoves())
}

// Random descent only ever accepts improving moves, so with a generous
// step budget it reaches the optimum of the swap landscape, which has no
// other local maxima.
func TestRandomDescent_ClimbsToOptimum(t *testing.T) {
	const n, k = 10, 5
	prob := newIDSumProblem(t, n, k)
	rd, err := algo.NewRandomDescent[*subset.Solution](
		"random", prob, subset.NewSingleSwapNeighbourhood(), search.WithSeed(17))
	require.NoError(t, err)
	rd.SetCurrentSolution(worstSolution(t, n, k))

	ms, err := search.NewMaxSteps(5000)
	require.NoError(t, err)
	require.NoError(t, rd.AddStopCriterion(ms))

	require.NoError(t, rd.Start())
	assert.Equal(t, bestValue(n, k), rd.BestEvaluation().Value())
	assert.Greater(t, rd.AcceptedMoves(), int64(0))
	assert.Greater(t, rd.RejectedMoves(), int64(0))
}
