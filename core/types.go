// Package core - contracts and sentinel errors.
//
// Errors:
//
//	ErrNilObjective      - problem constructed without an objective.
//	ErrNilGenerator      - problem constructed without a random-solution generator.
//	ErrNilConstraint     - nil constraint added to a problem.
//	ErrDuplicateConstraint - constraint name already registered.
//	ErrIncompatibleMove  - delta evaluator/validator received a move kind it
//	                       cannot interpret (configuration mismatch).
//	ErrNilNeighbourhood  - nil sub-neighbourhood in a composite.
//	ErrBadWeight         - non-positive weight in a composite neighbourhood.
package core

import "errors"

var (
	// ErrNilObjective indicates a problem was constructed without an objective.
	ErrNilObjective = errors.New("core: objective is nil")

	// ErrNilGenerator indicates a problem was constructed without a
	// random-solution generator.
	ErrNilGenerator = errors.New("core: random solution generator is nil")

	// ErrNilConstraint indicates a nil constraint was added to a problem.
	ErrNilConstraint = errors.New("core: constraint is nil")

	// ErrDuplicateConstraint indicates a constraint name is already registered.
	ErrDuplicateConstraint = errors.New("core: duplicate constraint name")

	// ErrIncompatibleMove indicates a delta evaluator or validator received a
	// move of a kind it cannot interpret. This is a fatal configuration
	// mismatch: the wrong neighbourhood was paired with the objective or
	// constraint, and the error is always propagated, never swallowed.
	ErrIncompatibleMove = errors.New("core: incompatible move type for delta computation")

	// ErrNilNeighbourhood indicates a nil sub-neighbourhood was supplied to a
	// composite neighbourhood.
	ErrNilNeighbourhood = errors.New("core: neighbourhood is nil")

	// ErrBadWeight indicates a composite neighbourhood weight that is not
	// strictly positive, or a weight list whose length does not match the
	// neighbourhood list.
	ErrBadWeight = errors.New("core: bad composite neighbourhood weight")
)
