package core

import "github.com/thalvik/descent/eval"

// Constraint checks solutions of type S against a data payload of type D.
// A mandatory constraint causes solutions that fail it to be rejected
// outright; see PenalizingConstraint for the soft variant.
type Constraint[S Solution[S], D any] interface {
	// Validate computes the full validation of sol.
	Validate(sol S, data D) eval.Validation
}

// DeltaConstraint is implemented by constraints that can validate a move
// incrementally. The same delta/full equivalence contract as
// DeltaObjective.EvaluateMove applies; unknown move kinds return
// ErrIncompatibleMove.
type DeltaConstraint[S Solution[S], D any] interface {
	Constraint[S, D]

	// ValidateMove computes the validation sol would have after applying m,
	// starting from the pre-move validation cur.
	ValidateMove(m Move[S], sol S, cur eval.Validation, data D) (eval.Validation, error)
}

// PenalizingConstraint is a soft constraint: a violation degrades the
// evaluation by a penalty instead of rejecting the solution. The returned
// validation obeys penalty == 0 ⇔ passed.
type PenalizingConstraint[S Solution[S], D any] interface {
	// ValidatePenalizing computes the full penalizing validation of sol.
	ValidatePenalizing(sol S, data D) eval.PenalizingValidation
}

// DeltaPenalizingConstraint adds incremental validation to a penalizing
// constraint, with the usual delta/full equivalence contract.
type DeltaPenalizingConstraint[S Solution[S], D any] interface {
	PenalizingConstraint[S, D]

	// ValidateMovePenalizing computes the penalizing validation sol would
	// have after applying m, starting from the pre-move validation cur.
	ValidateMovePenalizing(m Move[S], sol S, cur eval.PenalizingValidation, data D) (eval.PenalizingValidation, error)
}
