// Package algo - fixed-temperature Metropolis search.
//
// Each step samples a single random move. A valid improving move is always
// accepted; a valid worsening move with improvement delta d < 0 is
// accepted with probability exp(d / (scale * temperature)); invalid moves
// are always rejected. The acceptance is asymmetric on purpose: ties
// (d = 0) pass the exp test with probability one, matching the classical
// Metropolis criterion.
//
// Temperature and scale must be positive; the temperature may be swapped
// between runs (parallel tempering relies on this).
package algo

import (
	"math"

	"github.com/thalvik/descent/core"
	"github.com/thalvik/descent/search"
)

// MetropolisSearch samples random moves and accepts worsening ones with a
// temperature-controlled probability.
type MetropolisSearch[S core.Solution[S]] struct {
	*search.NeighbourhoodSearch[S]

	temperature float64
	scale       float64
}

// NewMetropolisSearch constructs a Metropolis search at the given
// temperature. Temperature and scale must be positive (ErrBadTemperature,
// ErrBadScale); a scale of 1 leaves deltas unscaled.
func NewMetropolisSearch[S core.Solution[S]](
	name string,
	problem core.Problem[S],
	neigh core.Neighbourhood[S],
	temperature, scale float64,
	opts ...search.Option,
) (*MetropolisSearch[S], error) {
	if temperature <= 0 {
		return nil, ErrBadTemperature
	}
	if scale <= 0 {
		return nil, ErrBadScale
	}
	ms := &MetropolisSearch[S]{temperature: temperature, scale: scale}
	ns, err := search.NewNeighbourhoodSearch(name, problem, neigh, ms, opts...)
	if err != nil {
		return nil, err
	}
	ms.NeighbourhoodSearch = ns

	return ms, nil
}

// Temperature returns the current temperature.
func (ms *MetropolisSearch[S]) Temperature() float64 { return ms.temperature }

// SetTemperature replaces the temperature between runs; it must stay
// positive.
func (ms *MetropolisSearch[S]) SetTemperature(temperature float64) error {
	if temperature <= 0 {
		return ErrBadTemperature
	}
	ms.temperature = temperature

	return nil
}

// Scale returns the temperature scale factor.
func (ms *MetropolisSearch[S]) Scale() float64 { return ms.scale }

// Step implements search.Stepper: sample one move and apply the
// Metropolis acceptance criterion.
func (ms *MetropolisSearch[S]) Step() error {
	cur, ok := ms.CurrentSolution()
	if !ok {
		ms.Stop()

		return nil
	}
	m := ms.Neighbourhood().RandomMove(cur, ms.RNG())
	if m == nil {
		ms.Stop()

		return nil
	}

	v, err := ms.ValidateMove(m)
	if err != nil {
		return err
	}
	if !v.Passed() {
		ms.RejectMove()

		return nil
	}
	if ms.CurrentValidation() != nil && !ms.CurrentValidation().Passed() {
		// Any valid move escapes an invalid solution.
		return ms.AcceptMove(m)
	}

	d, err := ms.MoveDelta(m)
	if err != nil {
		return err
	}
	if d > 0 || ms.RNG().Float64() < math.Exp(d/(ms.scale*ms.temperature)) {
		return ms.AcceptMove(m)
	}
	ms.RejectMove()

	return nil
}
