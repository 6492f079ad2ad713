// Package algo - parallel tempering (replica exchange).
//
// A ParallelTempering search owns N >= 2 Metropolis replicas at strictly
// ascending temperatures. Each outer step runs every replica concurrently
// for a fixed number of inner steps (one goroutine per replica, each with
// its own derived random stream and its own solution), joins them, then
// sweeps the adjacent temperature pairs: the cooler replica takes the
// hotter one's solution when it is better, and otherwise with the replica
// exchange probability exp(d * (1/t1 - 1/t2) / scale), d being the (non
// positive) improvement of the hotter solution over the cooler one.
//
// The temperature ordering is revalidated at the start of every run, since
// replica temperatures may be retuned between runs; a corrupted ordering
// fails the run with ErrReplicaOrder before any step executes. A failing
// replica aborts the outer step with its error.
package algo

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/search"
)

// ParallelTempering runs Metropolis replicas at ascending temperatures and
// swaps solutions between temperature neighbours.
type ParallelTempering[S core.Solution[S]] struct {
	*search.LocalSearch[S]

	replicas     []*MetropolisSearch[S]
	replicaSteps int64
	scale        float64
}

// NewParallelTempering constructs a tempering search with numReplicas
// temperatures evenly spaced across [minTemperature, maxTemperature].
func NewParallelTempering[S core.Solution[S]](
	name string,
	problem core.Problem[S],
	neigh core.Neighbourhood[S],
	numReplicas int,
	minTemperature, maxTemperature float64,
	replicaSteps int64,
	opts ...search.Option,
) (*ParallelTempering[S], error) {
	if numReplicas < 2 {
		return nil, ErrBadReplicaCount
	}
	if minTemperature <= 0 || maxTemperature <= minTemperature {
		return nil, ErrBadTemperature
	}
	temperatures := make([]float64, numReplicas)
	span := maxTemperature - minTemperature
	for i := range temperatures {
		temperatures[i] = minTemperature + span*float64(i)/float64(numReplicas-1)
	}

	return NewParallelTemperingWithTemperatures(name, problem, neigh, temperatures, replicaSteps, opts...)
}

// NewParallelTemperingWithTemperatures constructs a tempering search with
// an explicit, strictly ascending temperature per replica.
func NewParallelTemperingWithTemperatures[S core.Solution[S]](
	name string,
	problem core.Problem[S],
	neigh core.Neighbourhood[S],
	temperatures []float64,
	replicaSteps int64,
	opts ...search.Option,
) (*ParallelTempering[S], error) {
	if len(temperatures) < 2 {
		return nil, ErrBadReplicaCount
	}
	for i, temp := range temperatures {
		if temp <= 0 {
			return nil, ErrBadTemperature
		}
		if i > 0 && temp <= temperatures[i-1] {
			return nil, ErrReplicaOrder
		}
	}
	if replicaSteps <= 0 {
		return nil, ErrBadReplicaSteps
	}
	if neigh == nil {
		return nil, core.ErrNilNeighbourhood
	}

	pt := &ParallelTempering[S]{replicaSteps: replicaSteps, scale: 1}
	local, err := search.NewLocalSearch(name, problem, pt, opts...)
	if err != nil {
		return nil, err
	}
	pt.LocalSearch = local

	pt.replicas = make([]*MetropolisSearch[S], len(temperatures))
	for i, temp := range temperatures {
		// Replica streams derive from the tempering stream, so a seeded
		// tempering run is reproducible end to end.
		seed := core.DeriveSeed(pt.RNG().Int63(), uint64(i))
		replica, rerr := NewMetropolisSearch(
			fmt.Sprintf("%s-replica-%d", name, i),
			problem, neigh, temp, pt.scale,
			search.WithSeed(seed),
		)
		if rerr != nil {
			return nil, rerr
		}
		bound, rerr := search.NewMaxSteps(replicaSteps)
		if rerr != nil {
			return nil, rerr
		}
		if rerr = replica.AddStopCriterion(bound); rerr != nil {
			return nil, rerr
		}
		pt.replicas[i] = replica
	}

	return pt, nil
}

// NumReplicas returns the number of replicas.
func (pt *ParallelTempering[S]) NumReplicas() int { return len(pt.replicas) }

// Temperatures returns the replica temperatures in replica order.
func (pt *ParallelTempering[S]) Temperatures() []float64 {
	out := make([]float64, len(pt.replicas))
	for i, r := range pt.replicas {
		out[i] = r.Temperature()
	}

	return out
}

// SetTemperature retunes a single replica between runs. The ordering
// across replicas is only revalidated at the next Start.
func (pt *ParallelTempering[S]) SetTemperature(replica int, temperature float64) error {
	if replica < 0 || replica >= len(pt.replicas) {
		return ErrBadReplicaCount
	}

	return pt.replicas[replica].SetTemperature(temperature)
}

// SetNeighbourhood broadcasts a new neighbourhood to every replica.
func (pt *ParallelTempering[S]) SetNeighbourhood(neigh core.Neighbourhood[S]) error {
	if neigh == nil {
		return core.ErrNilNeighbourhood
	}
	for _, r := range pt.replicas {
		if err := r.SetNeighbourhood(neigh); err != nil {
			return err
		}
	}

	return nil
}

// SearchStarted implements search.StartHandler: validate the temperature
// ordering, initialize the tempering solution, and hand every replica
// without a solution its own copy of it.
func (pt *ParallelTempering[S]) SearchStarted() error {
	for i := 1; i < len(pt.replicas); i++ {
		if pt.replicas[i].Temperature() <= pt.replicas[i-1].Temperature() {
			return ErrReplicaOrder
		}
	}
	if err := pt.LocalSearch.SearchStarted(); err != nil {
		return err
	}
	cur, ok := pt.CurrentSolution()
	if !ok {
		return nil
	}
	for _, r := range pt.replicas {
		if _, has := r.CurrentSolution(); !has {
			r.SetCurrentSolution(cur.Copy())
		}
	}

	return nil
}

// Step implements search.Stepper: one replica round, then the adjacent
// swap sweep, then promotion of the best replica solution.
func (pt *ParallelTempering[S]) Step() error {
	var g errgroup.Group
	for _, r := range pt.replicas {
		g.Go(r.Start)
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("tempering replica round: %w", err)
	}

	pt.swapSweep()
	pt.promoteBestReplica()

	return nil
}

// swapSweep walks the adjacent temperature pairs coldest-first and
// exchanges solutions with the replica exchange probability.
func (pt *ParallelTempering[S]) swapSweep() {
	minimizing := pt.Problem().Minimizing()
	for i := 0; i+1 < len(pt.replicas); i++ {
		cooler, hotter := pt.replicas[i], pt.replicas[i+1]
		s1, ok1 := cooler.CurrentSolution()
		s2, ok2 := hotter.CurrentSolution()
		if !ok1 || !ok2 {
			continue
		}
		d := search.Delta(hotter.CurrentEvaluation(), cooler.CurrentEvaluation(), minimizing)
		if d < 0 {
			exchange := math.Exp(d * (1/cooler.Temperature() - 1/hotter.Temperature()) / pt.scale)
			if pt.RNG().Float64() >= exchange {
				continue
			}
		}
		c1, c2 := s1.Copy(), s2.Copy()
		cooler.SetCurrentSolution(c2)
		hotter.SetCurrentSolution(c1)
	}
}

// promoteBestReplica offers the best replica solution as the tempering
// search's current (and possibly best) solution.
func (pt *ParallelTempering[S]) promoteBestReplica() {
	minimizing := pt.Problem().Minimizing()
	var best *MetropolisSearch[S]
	for _, r := range pt.replicas {
		if _, ok := r.CurrentSolution(); !ok {
			continue
		}
		if best == nil || search.IsBetter(r.CurrentEvaluation(), best.CurrentEvaluation(), minimizing) {
			best = r
		}
	}
	if best == nil {
		return
	}
	sol, _ := best.CurrentSolution()
	pt.UpdateCurrentAndBest(sol.Copy(), best.CurrentEvaluation(), best.CurrentValidation())
}
