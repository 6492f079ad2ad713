package eval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thalvik/descent/eval"
)

// TestSimpleEvaluation_Value checks the trivial wrapper round-trip.
func TestSimpleEvaluation_Value(t *testing.T) {
	assert.Equal(t, 3.5, eval.NewSimpleEvaluation(3.5).Value())
	assert.Equal(t, -1.0, eval.NewSimpleEvaluation(-1).Value())
}

// TestPenalizedEvaluation_Direction verifies that a penalty always worsens
// the value: added when minimizing, subtracted when maximizing.
func TestPenalizedEvaluation_Direction(t *testing.T) {
	base := eval.NewSimpleEvaluation(10)

	minimized := eval.NewPenalizedEvaluation(base, 4, true)
	assert.Equal(t, 14.0, minimized.Value())

	maximized := eval.NewPenalizedEvaluation(base, 4, false)
	assert.Equal(t, 6.0, maximized.Value())

	assert.Equal(t, 4.0, minimized.Penalty())
	assert.Equal(t, 10.0, minimized.Base().Value())
}

// TestPenalizedEvaluation_ZeroPenalty is the no-violation case: the value
// must equal the base value in both directions.
func TestPenalizedEvaluation_ZeroPenalty(t *testing.T) {
	base := eval.NewSimpleEvaluation(7)
	assert.Equal(t, 7.0, eval.NewPenalizedEvaluation(base, 0, true).Value())
	assert.Equal(t, 7.0, eval.NewPenalizedEvaluation(base, 0, false).Value())
}
