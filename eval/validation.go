// Package eval - validation value types.
//
// Variants:
//   - SimpleValidation            — plain pass/fail.
//   - SimplePenalizingValidation  — pass/fail plus a penalty ≥ 0, with the
//     invariant penalty == 0 ⇔ passed.
//   - UnanimousValidation         — logical AND over keyed sub-validations,
//     computed lazily and cached until the next mutation.
//   - TabuValidation              — pass iff not tabu and the underlying
//     validation passed.
package eval

// Validation is the immutable result of checking a solution against
// constraints.
type Validation interface {
	// Passed reports whether the solution satisfies the constraints.
	Passed() bool
}

// PenalizingValidation extends Validation with a penalty that degrades the
// evaluation instead of rejecting the solution. Invariant: Penalty() == 0
// if and only if Passed().
type PenalizingValidation interface {
	Validation

	// Penalty returns the assigned penalty, ≥ 0.
	Penalty() float64
}

// SimpleValidation is a plain pass/fail verdict.
type SimpleValidation struct {
	passed bool
}

// Exported singletons for the two trivial verdicts.
var (
	ValidationPassed = SimpleValidation{passed: true}
	ValidationFailed = SimpleValidation{passed: false}
)

// NewSimpleValidation returns a validation with the given verdict.
func NewSimpleValidation(passed bool) SimpleValidation {
	return SimpleValidation{passed: passed}
}

// Passed implements Validation.
func (v SimpleValidation) Passed() bool { return v.passed }

// SimplePenalizingValidation is the canonical PenalizingValidation.
type SimplePenalizingValidation struct {
	passed  bool
	penalty float64
}

// NewSimplePenalizingValidation builds a penalizing validation.
//
// Contract:
//   - passed == true  ⇒ the penalty is forced to 0 regardless of input,
//     provided the input is not negative.
//   - passed == false ⇒ penalty must be strictly positive.
//
// Violations return ErrBadPenalty.
func NewSimplePenalizingValidation(passed bool, penalty float64) (SimplePenalizingValidation, error) {
	if penalty < 0 {
		return SimplePenalizingValidation{}, ErrBadPenalty
	}
	if passed {
		return SimplePenalizingValidation{passed: true, penalty: 0}, nil
	}
	if penalty <= 0 {
		return SimplePenalizingValidation{}, ErrBadPenalty
	}

	return SimplePenalizingValidation{passed: false, penalty: penalty}, nil
}

// PassedPenalizingValidation returns the canonical passed verdict
// (penalty 0). Convenience for constraint implementations.
func PassedPenalizingValidation() SimplePenalizingValidation {
	return SimplePenalizingValidation{passed: true}
}

// FailedPenalizingValidation returns a failed verdict carrying penalty.
// The penalty must be strictly positive; ErrBadPenalty otherwise.
func FailedPenalizingValidation(penalty float64) (SimplePenalizingValidation, error) {
	return NewSimplePenalizingValidation(false, penalty)
}

// Passed implements Validation.
func (v SimplePenalizingValidation) Passed() bool { return v.passed }

// Penalty implements PenalizingValidation.
func (v SimplePenalizingValidation) Penalty() float64 { return v.penalty }

// UnanimousValidation aggregates named sub-validations; it passes only when
// every sub-validation passes. The aggregate verdict is computed on first
// use and cached until the next AddValidation call.
//
// Not safe for concurrent use; the engine only touches it from the thread
// driving the step loop.
type UnanimousValidation struct {
	subs   map[string]Validation
	keys   []string // insertion order, for deterministic iteration
	cached *bool
}

// NewUnanimousValidation returns an empty aggregate (vacuously passed).
func NewUnanimousValidation() *UnanimousValidation {
	return &UnanimousValidation{subs: make(map[string]Validation)}
}

// AddValidation registers (or replaces) the sub-validation stored under key
// and invalidates the cached verdict. A nil validation returns
// ErrNilValidation.
func (u *UnanimousValidation) AddValidation(key string, v Validation) error {
	if v == nil {
		return ErrNilValidation
	}
	if _, ok := u.subs[key]; !ok {
		u.keys = append(u.keys, key)
	}
	u.subs[key] = v
	u.cached = nil

	return nil
}

// Validation returns the sub-validation stored under key, if any.
func (u *UnanimousValidation) Validation(key string) (Validation, bool) {
	v, ok := u.subs[key]

	return v, ok
}

// Passed reports the logical AND over all sub-validations, lazily cached.
func (u *UnanimousValidation) Passed() bool {
	if u.cached != nil {
		return *u.cached
	}
	passed := true
	var k string
	for _, k = range u.keys {
		if !u.subs[k].Passed() {
			passed = false
			break
		}
	}
	u.cached = &passed

	return passed
}

// TabuValidation decorates an underlying validation with a tabu verdict:
// the move is acceptable only when it is not tabu and the underlying
// validation passed.
type TabuValidation struct {
	tabu       bool
	underlying Validation
}

// NewTabuValidation wraps underlying with the given tabu verdict.
func NewTabuValidation(tabu bool, underlying Validation) TabuValidation {
	return TabuValidation{tabu: tabu, underlying: underlying}
}

// Passed implements Validation: true iff !tabu and the underlying passed.
func (v TabuValidation) Passed() bool {
	return !v.tabu && v.underlying != nil && v.underlying.Passed()
}

// Tabu reports whether the move was declared tabu.
func (v TabuValidation) Tabu() bool { return v.tabu }
