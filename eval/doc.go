// Package eval defines the immutable value types produced when a candidate
// solution is scored or checked against constraints.
//
// Two families live here:
//
//   - Evaluation — a numeric measure of solution quality. The engine never
//     interprets raw values on its own: whether a lower or higher value is
//     better is decided by the owning problem's minimizing flag.
//
//   - Validation — a pass/fail verdict, optionally carrying a penalty
//     (PenalizingValidation) that degrades the evaluation instead of
//     rejecting the solution outright.
//
// Design principles:
//   - Immutability: values are created once and never mutated afterwards;
//     UnanimousValidation is the only type with internal state, and that
//     state is a lazily computed cache over immutable parts.
//   - Strict sentinels: invalid constructions (e.g. a failed penalizing
//     validation with a non-positive penalty) fail with errors from
//     types.go; nothing is silently clamped.
//   - No logging, no panics on user input.
package eval
