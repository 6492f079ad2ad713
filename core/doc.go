// Package core defines the contracts between the search engine and the
// problem domains it optimizes.
//
// The engine consumes five abstractions:
//
//   - Solution      — a mutable candidate answer, copyable and comparable.
//   - Move          — a reversible in-place edit of a solution.
//   - Neighbourhood — a generator of candidate moves for a solution.
//   - Objective     — scores solutions (and optionally move deltas).
//   - Constraint    — checks solutions (mandatory or penalizing).
//
// GenericProblem wires an objective, a data payload and constraint sets
// into the single Problem interface the engine drives, including the
// incremental (delta) evaluation protocol: for every legal move,
//
//	EvaluateMove(m, s, Evaluate(s))  ==  Evaluate(apply(m, s))
//
// must hold — this equivalence is the central correctness property of every
// delta implementation, against which the fallback paths here are written.
//
// Design principles:
//   - Deterministic: all randomness flows through explicit *rand.Rand
//     handles created by RNG/DeriveRNG; no global random state.
//   - Strict sentinels: invalid configurations fail fast with errors from
//     types.go; nothing is clamped or retried.
//   - No logging, no panics on user input.
package core
