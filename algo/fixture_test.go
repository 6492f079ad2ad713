package algo_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/eval"
	"github.com/thalvik/descent/subset"
)

// The scenario fixture throughout this package: maximize the sum of the
// selected IDs over universe {0..n-1}, with subset size controlled by the
// neighbourhood. The unique optimum of a fixed size k is the k largest
// IDs, the worst solution the k smallest, and every swap delta is known in
// closed form, so trajectories are easy to reason about.
type idSumObjective struct{}

func (idSumObjective) Evaluate(sol *subset.Solution, _ struct{}) eval.Evaluation {
	var total int
	for _, id := range sol.SelectedIDs() {
		total += id
	}

	return eval.NewSimpleEvaluation(float64(total))
}

func (idSumObjective) Minimizing() bool { return false }

func (idSumObjective) EvaluateMove(
	m core.Move[*subset.Solution],
	_ *subset.Solution,
	cur eval.Evaluation,
	_ struct{},
) (eval.Evaluation, error) {
	switch mv := m.(type) {
	case subset.AdditionMove:
		return eval.NewSimpleEvaluation(cur.Value() + float64(mv.ID)), nil
	case subset.DeletionMove:
		return eval.NewSimpleEvaluation(cur.Value() - float64(mv.ID)), nil
	case subset.SwapMove:
		return eval.NewSimpleEvaluation(cur.Value() + float64(mv.Add) - float64(mv.Delete)), nil
	default:
		return nil, core.ErrIncompatibleMove
	}
}

func universe(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	return ids
}

func newIDSumProblem(t *testing.T, n, size int) *core.GenericProblem[*subset.Solution, struct{}] {
	t.Helper()
	prob, err := core.NewGenericProblem[*subset.Solution, struct{}](
		idSumObjective{},
		struct{}{},
		func(rng *rand.Rand, _ struct{}) *subset.Solution {
			sol, genErr := subset.RandomSolution(universe(n), size, rng)
			require.NoError(t, genErr)

			return sol
		},
	)
	require.NoError(t, err)

	return prob
}

// worstSolution selects the k smallest IDs of universe {0..n-1}.
func worstSolution(t *testing.T, n, k int) *subset.Solution {
	t.Helper()
	sol, err := subset.NewSolution(universe(n))
	require.NoError(t, err)
	for id := 0; id < k; id++ {
		require.NoError(t, sol.Select(id))
	}

	return sol
}

// bestIDs returns the k largest IDs of universe {0..n-1}, ascending.
func bestIDs(n, k int) []int {
	ids := make([]int, k)
	for i := range ids {
		ids[i] = n - k + i
	}

	return ids
}

// bestValue is the evaluation of the optimal fixed-size solution.
func bestValue(n, k int) float64 {
	var total int
	for _, id := range bestIDs(n, k) {
		total += id
	}

	return float64(total)
}
