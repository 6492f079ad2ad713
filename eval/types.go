package eval

import "errors"

var (
	// ErrBadPenalty is returned when a failed penalizing validation is
	// constructed with a penalty that is not strictly positive, or a passed
	// one with a negative penalty. The invariant penalty == 0 ⇔ passed
	// would otherwise be violated.
	ErrBadPenalty = errors.New("eval: penalty inconsistent with passed flag")

	// ErrNilValidation is returned when a nil sub-validation is added to a
	// composite validation.
	ErrNilValidation = errors.New("eval: nil validation")
)
