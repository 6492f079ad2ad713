package core

// Move is a reversible edit descriptor over solutions of type S.
//
// Contracts:
//   - Apply mutates the solution in place and returns a domain error when
//     its preconditions do not hold (e.g. deleting an ID that is not
//     selected). A precondition failure indicates a broken
//     neighbourhood/move pairing and is always propagated.
//   - Undo assumes Apply previously succeeded on the same solution and that
//     the solution has not been mutated by anything else since. That
//     precondition is documented, not runtime-checked; violating it leaves
//     the solution in an unspecified state.
//   - Reversibility: for any solution s to which the move legally applies,
//     Apply followed by Undo reconstructs a solution equal to the original.
//
// Moves handed to the engine's per-step cache must be comparable values
// (small structs, not types containing slices or maps), since cached
// results are keyed by move equality.
type Move[S any] interface {
	// Apply performs the edit on sol.
	Apply(sol S) error

	// Undo reverts a previously applied edit on sol.
	Undo(sol S) error
}
