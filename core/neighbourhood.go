// Package core - neighbourhood contract and weighted composition.
//
// CompositeNeighbourhood combines several sub-neighbourhoods:
//   - RandomMove draws a sub-neighbourhood with probability proportional to
//     its weight; when the drawn sub-neighbourhood has no legal move, the
//     draw is retried among the remaining ones (without replacement) until
//     a move is found or all are exhausted.
//   - AllMoves is the concatenation of the sub-neighbourhoods' move sets in
//     registration order, preserving deterministic enumeration.
//
// Complexity: RandomMove is O(k) over k sub-neighbourhoods in the worst
// case; AllMoves is the sum of the sub-enumerations.
package core

import "math/rand"

// Neighbourhood generates candidate moves for a solution. Implementations
// are stateless or lightly parameterized and never own the solution.
type Neighbourhood[S any] interface {
	// RandomMove returns a random candidate move for sol, or nil when no
	// legal move exists (e.g. every candidate violates fixed-ID or size
	// bounds).
	RandomMove(sol S, rng *rand.Rand) Move[S]

	// AllMoves enumerates every candidate move for sol, in an order that is
	// deterministic for a given solution state. Steepest-descent style
	// algorithms rely on that order for tie-breaking.
	AllMoves(sol S) []Move[S]
}

// CompositeNeighbourhood is a weighted union of sub-neighbourhoods.
type CompositeNeighbourhood[S any] struct {
	subs    []Neighbourhood[S]
	weights []float64
	total   float64
}

// NewCompositeNeighbourhood combines neighbourhoods with the given draw
// weights.
//
// Contract:
//   - at least one sub-neighbourhood, none nil (ErrNilNeighbourhood);
//   - len(weights) == len(subs), every weight > 0 (ErrBadWeight).
func NewCompositeNeighbourhood[S any](subs []Neighbourhood[S], weights []float64) (*CompositeNeighbourhood[S], error) {
	if len(subs) == 0 || len(weights) != len(subs) {
		return nil, ErrBadWeight
	}
	var (
		total float64
		i     int
	)
	for i = range subs {
		if subs[i] == nil {
			return nil, ErrNilNeighbourhood
		}
		if weights[i] <= 0 {
			return nil, ErrBadWeight
		}
		total += weights[i]
	}
	c := &CompositeNeighbourhood[S]{
		subs:    make([]Neighbourhood[S], len(subs)),
		weights: make([]float64, len(weights)),
		total:   total,
	}
	copy(c.subs, subs)
	copy(c.weights, weights)

	return c, nil
}

// RandomMove draws a weighted random move; nil when every sub-neighbourhood
// is exhausted for sol.
func (c *CompositeNeighbourhood[S]) RandomMove(sol S, rng *rand.Rand) Move[S] {
	// Working copies so exhausted sub-neighbourhoods can be excluded
	// without mutating the composite.
	live := make([]int, len(c.subs))
	var i int
	for i = range live {
		live[i] = i
	}
	remaining := c.total

	for len(live) > 0 {
		// Weighted draw over the still-live sub-neighbourhoods.
		r := rng.Float64() * remaining
		pick := 0
		var acc float64
		for i = range live {
			acc += c.weights[live[i]]
			if r < acc {
				pick = i
				break
			}
			// Floating-point edge: fall through keeps the last live entry.
			pick = i
		}

		if m := c.subs[live[pick]].RandomMove(sol, rng); m != nil {
			return m
		}

		// Drawn sub-neighbourhood has no legal move; retry without it.
		remaining -= c.weights[live[pick]]
		live = append(live[:pick], live[pick+1:]...)
	}

	return nil
}

// AllMoves returns the union of the sub-neighbourhood move sets, in
// registration order.
func (c *CompositeNeighbourhood[S]) AllMoves(sol S) []Move[S] {
	var all []Move[S]
	var i int
	for i = range c.subs {
		all = append(all, c.subs[i].AllMoves(sol)...)
	}

	return all
}
