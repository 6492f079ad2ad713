package core

// Solution is the mutable candidate answer a search improves in place.
//
// The type parameter is the concrete solution type itself (the interface is
// self-referential), so Copy and Equal work on concrete values without
// casts: a domain declares `type MySolution ...` and implements
// `Solution[*MySolution]`.
//
// Ownership: a solution is exclusively owned by the search that mutates it
// during a run. Whenever the engine records a solution (best solution,
// replica hand-off), it stores a Copy, so later in-place mutation of the
// current solution can never corrupt recorded state.
type Solution[S any] interface {
	// Copy returns a deep copy sharing no mutable state with the receiver.
	Copy() S

	// Equal reports observable-state equality with other.
	Equal(other S) bool
}
