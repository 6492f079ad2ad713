// Package eval - evaluation value types.
//
// Evaluation exposes a single comparable Value(); composite forms (penalized
// evaluations) still collapse into one number so that every algorithm can
// compare candidates uniformly through the problem's minimizing flag.
package eval

// Evaluation is the immutable result of scoring a solution.
type Evaluation interface {
	// Value returns the numeric quality of the evaluated solution.
	// Interpretation (lower-is-better vs higher-is-better) belongs to the
	// problem, never to the evaluation itself.
	Value() float64
}

// SimpleEvaluation wraps a plain double score.
type SimpleEvaluation struct {
	value float64
}

// NewSimpleEvaluation returns an evaluation with the given value.
func NewSimpleEvaluation(value float64) SimpleEvaluation {
	return SimpleEvaluation{value: value}
}

// Value implements Evaluation.
func (e SimpleEvaluation) Value() float64 { return e.value }

// PenalizedEvaluation combines a base evaluation with the total penalty
// assigned by penalizing constraints. The penalty worsens the value: it is
// added when minimizing and subtracted when maximizing.
type PenalizedEvaluation struct {
	base       Evaluation
	penalty    float64
	minimizing bool
}

// NewPenalizedEvaluation wraps base with a total penalty ≥ 0.
// The minimizing flag must match the owning problem's direction.
func NewPenalizedEvaluation(base Evaluation, penalty float64, minimizing bool) PenalizedEvaluation {
	return PenalizedEvaluation{base: base, penalty: penalty, minimizing: minimizing}
}

// Value returns the penalized score.
func (e PenalizedEvaluation) Value() float64 {
	if e.minimizing {
		return e.base.Value() + e.penalty
	}

	return e.base.Value() - e.penalty
}

// Base returns the unpenalized evaluation.
func (e PenalizedEvaluation) Base() Evaluation { return e.base }

// Penalty returns the total penalty folded into Value.
func (e PenalizedEvaluation) Penalty() float64 { return e.penalty }
