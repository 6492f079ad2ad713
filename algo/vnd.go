// Package algo - variable neighbourhood descent.
//
// VND descends through an ordered list of neighbourhoods: each step scans
// neighbourhood k for its best improving move. On success the move is
// accepted and the scan restarts from the first neighbourhood; on failure
// the next neighbourhood is tried, and the search stops once the last one
// yields nothing. The result is a local optimum of EVERY neighbourhood in
// the list.
package algo

import (
	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/search"
)

// VariableNeighbourhoodDescent descends through an ordered neighbourhood
// list.
type VariableNeighbourhoodDescent[S core.Solution[S]] struct {
	*search.NeighbourhoodSearch[S]

	neighbourhoods []core.Neighbourhood[S]
	k              int
}

// NewVariableNeighbourhoodDescent constructs a VND search over the given
// neighbourhood list (ErrNoNeighbourhoods when empty, the nil entries are
// rejected with core.ErrNilNeighbourhood).
func NewVariableNeighbourhoodDescent[S core.Solution[S]](
	name string,
	problem core.Problem[S],
	neighbourhoods []core.Neighbourhood[S],
	opts ...search.Option,
) (*VariableNeighbourhoodDescent[S], error) {
	if len(neighbourhoods) == 0 {
		return nil, ErrNoNeighbourhoods
	}
	for _, n := range neighbourhoods {
		if n == nil {
			return nil, core.ErrNilNeighbourhood
		}
	}
	vnd := &VariableNeighbourhoodDescent[S]{
		neighbourhoods: append([]core.Neighbourhood[S](nil), neighbourhoods...),
	}
	ns, err := search.NewNeighbourhoodSearch(name, problem, neighbourhoods[0], vnd, opts...)
	if err != nil {
		return nil, err
	}
	vnd.NeighbourhoodSearch = ns

	return vnd, nil
}

// SearchStarted implements search.StartHandler: rewind to the first
// neighbourhood on every run.
func (vnd *VariableNeighbourhoodDescent[S]) SearchStarted() error {
	vnd.k = 0
	if err := vnd.SetNeighbourhood(vnd.neighbourhoods[0]); err != nil {
		return err
	}

	return vnd.LocalSearch.SearchStarted()
}

// Step implements search.Stepper: best improving move of neighbourhood k.
func (vnd *VariableNeighbourhoodDescent[S]) Step() error {
	best, found, err := bestImprovingMove(vnd.NeighbourhoodSearch)
	if err != nil {
		return err
	}
	if !found {
		vnd.k++
		if vnd.k >= len(vnd.neighbourhoods) {
			vnd.Stop()

			return nil
		}

		return vnd.SetNeighbourhood(vnd.neighbourhoods[vnd.k])
	}

	if err = vnd.AcceptMove(best); err != nil {
		return err
	}
	vnd.k = 0

	return vnd.SetNeighbourhood(vnd.neighbourhoods[0])
}
