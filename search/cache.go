// Package search - the evaluated-move cache.
//
// The cache memoizes per-move evaluation, validation and rejection results
// within a single search step, so probing the same move through multiple
// algorithm phases (validate, then evaluate, then accept) computes each
// delta once.
//
// Protocol: at most one candidate move is "in flight" between clears; the
// cache exists to short-circuit repeated delta calls on the SAME move, not
// to memoize across different moves. Steepest-style scans that probe many
// candidates per step only rely on the same-move short-circuit, which a
// single slot per category serves exactly. NeighbourhoodSearch clears the
// cache whenever the current solution changes (accept) and on reject, so
// stale entries never survive a mutation.
//
// Correctness invariants (any conforming implementation):
//   - a value cached for move m is never returned for m' ≠ m;
//   - nothing is returned after Clear.
//
// Moves are compared with ==, so cached moves must be comparable values.
package search

import (
	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/eval"
)

// MoveCache memoizes per-move results within one search step.
type MoveCache[S core.Solution[S]] interface {
	// CacheEvaluation stores the delta evaluation computed for m.
	CacheEvaluation(m core.Move[S], e eval.Evaluation)

	// CachedEvaluation returns the evaluation cached for m, if any.
	CachedEvaluation(m core.Move[S]) (eval.Evaluation, bool)

	// CacheValidation stores the delta validation computed for m.
	CacheValidation(m core.Move[S], v eval.Validation)

	// CachedValidation returns the validation cached for m, if any.
	CachedValidation(m core.Move[S]) (eval.Validation, bool)

	// CacheRejection stores the rejection verdict computed for m.
	CacheRejection(m core.Move[S], rejected bool)

	// CachedRejection returns the rejection verdict cached for m, if any.
	CachedRejection(m core.Move[S]) (bool, bool)

	// Clear drops every cached entry.
	Clear()
}

// SingleMoveCache stores only the most recently cached move per category —
// the simplest conforming MoveCache, and the default.
type SingleMoveCache[S core.Solution[S]] struct {
	evalMove  core.Move[S]
	evalValue eval.Evaluation

	validMove  core.Move[S]
	validValue eval.Validation

	rejMove  core.Move[S]
	rejValue bool
}

// NewSingleMoveCache returns an empty single-slot cache.
func NewSingleMoveCache[S core.Solution[S]]() *SingleMoveCache[S] {
	return &SingleMoveCache[S]{}
}

// CacheEvaluation implements MoveCache; a new move evicts the previous one.
func (c *SingleMoveCache[S]) CacheEvaluation(m core.Move[S], e eval.Evaluation) {
	c.evalMove, c.evalValue = m, e
}

// CachedEvaluation implements MoveCache.
func (c *SingleMoveCache[S]) CachedEvaluation(m core.Move[S]) (eval.Evaluation, bool) {
	if c.evalMove == nil || c.evalMove != m {
		return nil, false
	}

	return c.evalValue, true
}

// CacheValidation implements MoveCache; a new move evicts the previous one.
func (c *SingleMoveCache[S]) CacheValidation(m core.Move[S], v eval.Validation) {
	c.validMove, c.validValue = m, v
}

// CachedValidation implements MoveCache.
func (c *SingleMoveCache[S]) CachedValidation(m core.Move[S]) (eval.Validation, bool) {
	if c.validMove == nil || c.validMove != m {
		return nil, false
	}

	return c.validValue, true
}

// CacheRejection implements MoveCache; a new move evicts the previous one.
func (c *SingleMoveCache[S]) CacheRejection(m core.Move[S], rejected bool) {
	c.rejMove, c.rejValue = m, rejected
}

// CachedRejection implements MoveCache.
func (c *SingleMoveCache[S]) CachedRejection(m core.Move[S]) (bool, bool) {
	if c.rejMove == nil || c.rejMove != m {
		return false, false
	}

	return c.rejValue, true
}

// Clear implements MoveCache.
func (c *SingleMoveCache[S]) Clear() {
	c.evalMove, c.evalValue = nil, nil
	c.validMove, c.validValue = nil, nil
	c.rejMove, c.rejValue = nil, false
}
