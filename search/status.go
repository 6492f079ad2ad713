package search

// Status is the lifecycle state of a search.
//
// Legal transitions:
//
//	IDLE → INITIALIZING → RUNNING → TERMINATING → IDLE
//	IDLE → DISPOSED (terminal)
//
// Every transition is reported to listeners through StatusChanged.
type Status int

const (
	// StatusIdle: the search is not running and may be started or disposed.
	StatusIdle Status = iota

	// StatusInitializing: start requested; hooks and background checking
	// are being set up.
	StatusInitializing

	// StatusRunning: the step loop is executing.
	StatusRunning

	// StatusTerminating: the step loop has exited; hooks and background
	// checking are being torn down.
	StatusTerminating

	// StatusDisposed: terminal; every further operation fails with
	// ErrDisposed.
	StatusDisposed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusInitializing:
		return "INITIALIZING"
	case StatusRunning:
		return "RUNNING"
	case StatusTerminating:
		return "TERMINATING"
	case StatusDisposed:
		return "DISPOSED"
	default:
		return "UNKNOWN"
	}
}
