// Package algo - sentinel errors shared by the algorithm constructors.
//
//	ErrBadTemperature  - non-positive temperature
//	ErrBadScale        - non-positive temperature scale
//	ErrBadReplicaCount - fewer than two tempering replicas
//	ErrBadReplicaSteps - non-positive per-round replica step budget
//	ErrReplicaOrder    - replica temperatures not strictly ascending
//	ErrNilMemory       - nil tabu memory
//	ErrBadMemorySize   - non-positive tabu memory capacity
//	ErrNoNeighbourhoods - empty neighbourhood list
//	ErrBadLR           - invalid (L, R) parameters
//	ErrBadBounds       - invalid subset size bounds
//
// All are compared with errors.Is; constructors wrap them with parameter
// context where useful.
package algo

import "errors"

var (
	// ErrBadTemperature indicates a non-positive Metropolis temperature.
	ErrBadTemperature = errors.New("algo: temperature must be positive")

	// ErrBadScale indicates a non-positive temperature scale factor.
	ErrBadScale = errors.New("algo: temperature scale must be positive")

	// ErrBadReplicaCount indicates a parallel tempering setup with fewer
	// than two replicas.
	ErrBadReplicaCount = errors.New("algo: at least two replicas required")

	// ErrBadReplicaSteps indicates a non-positive per-round step budget for
	// tempering replicas.
	ErrBadReplicaSteps = errors.New("algo: replica steps must be positive")

	// ErrReplicaOrder indicates replica temperatures that are not strictly
	// ascending at the start of a run.
	ErrReplicaOrder = errors.New("algo: replica temperatures must be strictly ascending")

	// ErrNilMemory indicates a nil tabu memory.
	ErrNilMemory = errors.New("algo: tabu memory is nil")

	// ErrBadMemorySize indicates a non-positive tabu memory capacity.
	ErrBadMemorySize = errors.New("algo: tabu memory size must be positive")

	// ErrNoNeighbourhoods indicates an empty neighbourhood list.
	ErrNoNeighbourhoods = errors.New("algo: at least one neighbourhood required")

	// ErrBadLR indicates invalid (L, R) greedy parameters: both must be
	// non-negative and distinct.
	ErrBadLR = errors.New("algo: L and R must be non-negative and distinct")

	// ErrBadBounds indicates subset size bounds outside
	// 0 <= min < max <= universe size.
	ErrBadBounds = errors.New("algo: invalid subset size bounds")
)
