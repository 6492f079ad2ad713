// Package subset - typed moves over subset solutions.
//
// All moves are small comparable value structs (cache-keyable) with exact
// undo. Preconditions are enforced by Apply and reported with the sentinel
// errors from types.go; a precondition failure means the neighbourhood and
// solution disagree and is always propagated.
package subset

import "fmt"

// AdditionMove selects one currently unselected ID.
type AdditionMove struct {
	// ID is the ID to add to the selection.
	ID int
}

// Apply selects the ID; fails when it is already selected or unknown.
func (m AdditionMove) Apply(sol *Solution) error {
	if err := sol.Select(m.ID); err != nil {
		return fmt.Errorf("add %d: %w", m.ID, err)
	}

	return nil
}

// Undo deselects the ID added by Apply.
func (m AdditionMove) Undo(sol *Solution) error {
	if err := sol.Deselect(m.ID); err != nil {
		return fmt.Errorf("undo add %d: %w", m.ID, err)
	}

	return nil
}

// DeletionMove deselects one currently selected ID.
type DeletionMove struct {
	// ID is the ID to remove from the selection.
	ID int
}

// Apply deselects the ID; fails when it is not selected or unknown.
func (m DeletionMove) Apply(sol *Solution) error {
	if err := sol.Deselect(m.ID); err != nil {
		return fmt.Errorf("delete %d: %w", m.ID, err)
	}

	return nil
}

// Undo reselects the ID removed by Apply.
func (m DeletionMove) Undo(sol *Solution) error {
	if err := sol.Select(m.ID); err != nil {
		return fmt.Errorf("undo delete %d: %w", m.ID, err)
	}

	return nil
}

// SwapMove exchanges one selected ID for one unselected ID, keeping the
// subset size constant.
type SwapMove struct {
	// Add is the unselected ID to bring into the selection.
	Add int
	// Delete is the selected ID to drop.
	Delete int
}

// Apply performs the swap atomically: if the addition fails after the
// deletion succeeded, the deletion is rolled back before returning.
func (m SwapMove) Apply(sol *Solution) error {
	if err := sol.Deselect(m.Delete); err != nil {
		return fmt.Errorf("swap %d->%d: %w", m.Delete, m.Add, err)
	}
	if err := sol.Select(m.Add); err != nil {
		// Roll back; the deletion above guarantees this succeeds.
		_ = sol.Select(m.Delete)

		return fmt.Errorf("swap %d->%d: %w", m.Delete, m.Add, err)
	}

	return nil
}

// Undo reverts the swap.
func (m SwapMove) Undo(sol *Solution) error {
	if err := sol.Deselect(m.Add); err != nil {
		return fmt.Errorf("undo swap %d->%d: %w", m.Delete, m.Add, err)
	}
	if err := sol.Select(m.Delete); err != nil {
		_ = sol.Select(m.Add)

		return fmt.Errorf("undo swap %d->%d: %w", m.Delete, m.Add, err)
	}

	return nil
}
