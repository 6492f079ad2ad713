// Package algo - random descent.
//
// Each step samples a single random move; an improving valid move is
// accepted, anything else is rejected and the step completes anyway (so
// step-based stop criteria keep ticking on plateaus). Only an exhausted
// neighbourhood (nil move) stops the search, since a random sample proves
// nothing about local optimality.
package algo

import (
	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/search"
)

// RandomDescent accepts improving moves sampled uniformly from the
// neighbourhood.
type RandomDescent[S core.Solution[S]] struct {
	*search.NeighbourhoodSearch[S]
}

// NewRandomDescent constructs a random descent search over the given
// neighbourhood.
func NewRandomDescent[S core.Solution[S]](
	name string,
	problem core.Problem[S],
	neigh core.Neighbourhood[S],
	opts ...search.Option,
) (*RandomDescent[S], error) {
	rd := &RandomDescent[S]{}
	ns, err := search.NewNeighbourhoodSearch(name, problem, neigh, rd, opts...)
	if err != nil {
		return nil, err
	}
	rd.NeighbourhoodSearch = ns

	return rd, nil
}

// Step implements search.Stepper: sample one move, accept if improving.
func (rd *RandomDescent[S]) Step() error {
	cur, ok := rd.CurrentSolution()
	if !ok {
		rd.Stop()

		return nil
	}
	m := rd.Neighbourhood().RandomMove(cur, rd.RNG())
	if m == nil {
		rd.Stop()

		return nil
	}

	imp, err := rd.Improvement(m)
	if err != nil {
		return err
	}
	if !imp {
		rd.RejectMove()

		return nil
	}

	return rd.AcceptMove(m)
}
