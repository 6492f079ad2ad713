// Package descent is a local-search metaheuristics engine: plug in a
// problem, pick an algorithm, run the search.
//
// 🚀 What is descent?
//
//	A generic optimization toolkit built around delta evaluation:
//		• Core contracts: Solution, Move, Neighbourhood, Objective, Constraint
//		• Generic problems: penalizing & mandatory constraints, delta protocol
//		• Search engine: lifecycle state machine, listeners, stop criteria,
//		  background termination checks, evaluated-move caching
//		• Algorithms: steepest & random descent, Metropolis, parallel
//		  tempering, tabu search, VND/VNS, LR subset search
//		• Subset domain: ready-made solutions, moves and neighbourhoods for
//		  subset selection problems
//
// ✨ Why choose descent?
//
//   - Type-safe – generics end-to-end, no interface{} in domain code
//   - Deterministic – every random decision flows from one seedable stream
//   - Incremental – moves are scored by deltas, never full rescans, with
//     an automatic fallback when a domain cannot provide them
//   - Composable – algorithms are thin Step strategies over shared layers
//
// Everything is organized under five subpackages:
//
//	eval/   — evaluations, validations, penalties
//	core/   — solution/move/neighbourhood/problem contracts & GenericProblem
//	search/ — lifecycle engine, listeners, stop criteria, move cache
//	algo/   — the bundled algorithms
//	subset/ — the bundled subset-selection domain
//
// Start with algo.NewSteepestDescent over a subset problem, then graduate
// to tempering or tabu search when the landscape demands it.
package descent
