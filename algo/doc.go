// Package algo provides the bundled search algorithms built on the search
// engine layers:
//
//   - SteepestDescent / RandomDescent: deterministic and stochastic hill
//     climbing over a single neighbourhood.
//   - MetropolisSearch: fixed-temperature Metropolis acceptance.
//   - ParallelTempering: concurrent Metropolis replicas at ascending
//     temperatures with adjacent solution swaps.
//   - TabuSearch with pluggable TabuMemory implementations.
//   - VariableNeighbourhoodDescent / VariableNeighbourhoodSearch: ordered
//     multi-neighbourhood descent and its shaking extension.
//   - LRSubsetSearch: greedy (L,R) construction over subset solutions.
//
// Every algorithm embeds a search layer (LocalSearch or
// NeighbourhoodSearch) and supplies its Step strategy, so the full
// lifecycle, listener, stop-criterion and move-cache machinery of package
// search applies uniformly. Constructors validate their parameters
// strictly and return the sentinel errors of types.go.
package algo
