package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thalvik/descent/eval"
	"github.com/thalvik/descent/search"
	"github.com/thalvik/descent/subset"
)

// TestSingleMoveCache_EvictAndClear pins the single-slot semantics: a
// value cached for one move is never served for another, caching a second
// move evicts the first, and Clear drops everything.
func TestSingleMoveCache_EvictAndClear(t *testing.T) {
	c := search.NewSingleMoveCache[*subset.Solution]()
	m1 := subset.AdditionMove{ID: 1}
	m2 := subset.AdditionMove{ID: 2}

	// Empty cache: misses all around.
	_, ok := c.CachedEvaluation(m1)
	assert.False(t, ok)
	_, ok = c.CachedValidation(m1)
	assert.False(t, ok)
	_, ok = c.CachedRejection(m1)
	assert.False(t, ok)

	c.CacheEvaluation(m1, eval.NewSimpleEvaluation(5))
	e, ok := c.CachedEvaluation(m1)
	require.True(t, ok)
	assert.Equal(t, 5.0, e.Value())

	// Never served for a different move.
	_, ok = c.CachedEvaluation(m2)
	assert.False(t, ok)

	// Caching m2 evicts m1.
	c.CacheEvaluation(m2, eval.NewSimpleEvaluation(7))
	_, ok = c.CachedEvaluation(m1)
	assert.False(t, ok)
	e, ok = c.CachedEvaluation(m2)
	require.True(t, ok)
	assert.Equal(t, 7.0, e.Value())

	// The three categories are independent slots.
	c.CacheValidation(m1, eval.ValidationPassed)
	c.CacheRejection(m2, true)
	v, ok := c.CachedValidation(m1)
	require.True(t, ok)
	assert.True(t, v.Passed())
	r, ok := c.CachedRejection(m2)
	require.True(t, ok)
	assert.True(t, r)
	e, ok = c.CachedEvaluation(m2) // untouched by the other categories
	require.True(t, ok)
	assert.Equal(t, 7.0, e.Value())

	// Clear drops every category.
	c.Clear()
	_, ok = c.CachedEvaluation(m2)
	assert.False(t, ok)
	_, ok = c.CachedValidation(m1)
	assert.False(t, ok)
	_, ok = c.CachedRejection(m2)
	assert.False(t, ok)
}
