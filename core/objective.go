package core

import "github.com/thalvik/descent/eval"

// Objective scores solutions of type S against a data payload of type D.
// The minimizing flag decides how evaluations are ordered engine-wide.
type Objective[S Solution[S], D any] interface {
	// Evaluate computes the full evaluation of sol.
	Evaluate(sol S, data D) eval.Evaluation

	// Minimizing reports whether lower evaluation values are better.
	Minimizing() bool
}

// DeltaObjective is implemented by objectives that can evaluate a move
// incrementally, without rescanning the solution.
//
// Contract (delta/full equivalence): for every legal move m,
// EvaluateMove(m, s, Evaluate(s, d), d) must equal Evaluate(s', d) where s'
// is s with m applied. EvaluateMove must not mutate sol.
//
// A move of a kind the objective cannot interpret returns
// ErrIncompatibleMove.
type DeltaObjective[S Solution[S], D any] interface {
	Objective[S, D]

	// EvaluateMove computes the evaluation sol would have after applying m,
	// starting from the pre-move evaluation cur.
	EvaluateMove(m Move[S], sol S, cur eval.Evaluation, data D) (eval.Evaluation, error)
}
