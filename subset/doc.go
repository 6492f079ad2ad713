// Package subset is the bundled subset-selection domain: solutions are
// subsets of integer IDs drawn from a fixed universe.
//
// It provides:
//
//   - Solution      — selected/unselected ID sets with O(1) select/deselect
//     and deterministic sorted views.
//   - Moves         — AdditionMove, DeletionMove, SwapMove; small comparable
//     value types with exact undo and precondition errors.
//   - Neighbourhoods — single-addition, single-deletion and single-swap
//     generators with optional fixed IDs and subset-size bounds.
//
// The package carries no objective or data of its own: pair it with a
// core.GenericProblem whose objective scores subsets. The greedy LR subset
// search and the ID-based tabu memory in package algo are built on these
// types, as are the engine's scenario tests.
//
// Determinism: AllMoves enumerates in ascending ID order (deletions outer,
// additions inner for swaps), so steepest-style scans break ties
// identically across runs. RandomMove draws through the caller's RNG only.
package subset
