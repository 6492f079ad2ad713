// Package search implements the local-search execution engine: the search
// lifecycle state machine, best-solution bookkeeping, listener fan-out,
// stop-criterion coordination, and the current-solution layers concrete
// algorithms build on.
//
// Layering (composition, not inheritance):
//
//   - Search[S]              — lifecycle (IDLE → INITIALIZING → RUNNING →
//     TERMINATING → IDLE, plus terminal DISPOSED), best-solution tracking,
//     step/time counters, listeners, stop criteria.
//   - LocalSearch[S]         — adds the mutable current-solution triple and
//     random initialization on first start.
//   - NeighbourhoodSearch[S] — adds a neighbourhood, move accept/reject
//     bookkeeping, and cache-aware delta evaluation helpers.
//
// A concrete algorithm embeds one of these layers and implements the
// Stepper strategy: Step is invoked repeatedly while the search is RUNNING
// and calls Stop when no further progress is possible. Optional
// StartHandler/StopHandler hooks run during INITIALIZING/TERMINATING.
//
// Concurrency model: one cooperative step loop per search instance. The
// background stop-criterion checker is the only concurrent task; it
// communicates through the stop-requested flag alone and is joined before
// a run returns. Stop and Dispose may be called from any goroutine; every
// listener callback fires synchronously on the goroutine driving the step
// loop.
//
// Design principles:
//   - Deterministic: each search owns a seeded *rand.Rand; no global
//     randomness anywhere.
//   - Strict sentinels: lifecycle violations and bad configuration fail
//     fast with errors from types.go.
//   - No logging; observability is the listener callbacks.
package search
