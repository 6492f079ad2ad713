package subset

import "errors"

var (
	// ErrUnknownID indicates an ID outside the solution's universe.
	ErrUnknownID = errors.New("subset: ID not in universe")

	// ErrAlreadySelected indicates an attempt to select a selected ID.
	ErrAlreadySelected = errors.New("subset: ID already selected")

	// ErrNotSelected indicates an attempt to deselect an unselected ID.
	ErrNotSelected = errors.New("subset: ID not selected")

	// ErrEmptyUniverse indicates a solution constructed over no IDs.
	ErrEmptyUniverse = errors.New("subset: empty universe")

	// ErrBadSize indicates a negative or out-of-range subset size bound.
	ErrBadSize = errors.New("subset: bad subset size")
)
