// Package algo - steepest descent.
//
// Each step scans every move of the neighbourhood, keeps the valid move
// with the strictly largest improvement (first found wins ties, so a
// deterministic neighbourhood yields a deterministic trajectory), accepts
// it, and stops the search when no improving move exists: the current
// solution is then a local optimum of the neighbourhood.
//
// Complexity per step: one delta validation per move plus one delta
// evaluation per valid move.
package algo

import (
	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/search"
)

// SteepestDescent repeatedly applies the best improving move until none
// exists.
type SteepestDescent[S core.Solution[S]] struct {
	*search.NeighbourhoodSearch[S]
}

// NewSteepestDescent constructs a steepest descent search over the given
// neighbourhood.
func NewSteepestDescent[S core.Solution[S]](
	name string,
	problem core.Problem[S],
	neigh core.Neighbourhood[S],
	opts ...search.Option,
) (*SteepestDescent[S], error) {
	sd := &SteepestDescent[S]{}
	ns, err := search.NewNeighbourhoodSearch(name, problem, neigh, sd, opts...)
	if err != nil {
		return nil, err
	}
	sd.NeighbourhoodSearch = ns

	return sd, nil
}

// Step implements search.Stepper: accept the best improving move, or stop.
func (sd *SteepestDescent[S]) Step() error {
	best, found, err := bestImprovingMove(sd.NeighbourhoodSearch)
	if err != nil {
		return err
	}
	if !found {
		sd.Stop()

		return nil
	}

	return sd.AcceptMove(best)
}

// bestImprovingMove scans the full neighbourhood of the current solution
// and returns the valid move with the strictly best positive delta (any
// valid move qualifies when the current solution is invalid). Shared by
// steepest descent and variable neighbourhood descent.
func bestImprovingMove[S core.Solution[S]](ns *search.NeighbourhoodSearch[S]) (core.Move[S], bool, error) {
	cur, ok := ns.CurrentSolution()
	if !ok {
		return nil, false, nil
	}

	var (
		best      core.Move[S]
		bestDelta float64
		curValid  = ns.CurrentValidation() != nil && ns.CurrentValidation().Passed()
	)
	for _, m := range ns.Neighbourhood().AllMoves(cur) {
		v, err := ns.ValidateMove(m)
		if err != nil {
			return nil, false, err
		}
		if !v.Passed() {
			continue
		}
		if !curValid {
			// Escaping an invalid solution: the first valid move wins.
			return m, true, nil
		}
		d, err := ns.MoveDelta(m)
		if err != nil {
			return nil, false, err
		}
		if d > bestDelta {
			best, bestDelta = m, d
		}
	}

	return best, best != nil, nil
}
