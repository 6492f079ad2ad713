// Package core - the Problem contract and its generic implementation.
//
// GenericProblem composes an objective, a data payload, mandatory
// constraints and penalizing constraints into the Problem interface driven
// by the engine:
//
//   - Full evaluation folds the total penalizing-constraint penalty into a
//     PenalizedEvaluation (penalties never reject, they only worsen the
//     value in the problem's direction).
//   - Full validation aggregates mandatory constraints into a
//     UnanimousValidation keyed by constraint name.
//   - Delta paths use DeltaObjective / DeltaConstraint /
//     DeltaPenalizingConstraint when implemented; otherwise they fall back
//     to apply → full compute → undo on the live solution. The fallback
//     briefly mutates the solution inside the call; concurrent readers of
//     the solution are the caller's responsibility (the engine never reads
//     it concurrently).
//
// Complexity: full paths are one objective/constraint scan each; delta
// paths are whatever the domain implementations cost, O(move) ideally.
package core

import (
	"math/rand"

	"github.com/thalvik/descent/eval"
)

// Problem is the engine-facing view of an optimization problem.
type Problem[S Solution[S]] interface {
	// Evaluate computes the full (possibly penalized) evaluation of sol.
	Evaluate(sol S) eval.Evaluation

	// EvaluateMove computes the evaluation sol would have after applying m,
	// from the pre-move evaluation cur, without (observably) mutating sol.
	EvaluateMove(m Move[S], sol S, cur eval.Evaluation) (eval.Evaluation, error)

	// Validate computes the full validation of sol against the mandatory
	// constraints.
	Validate(sol S) eval.Validation

	// ValidateMove computes the validation sol would have after applying m,
	// from the pre-move validation cur.
	ValidateMove(m Move[S], sol S, cur eval.Validation) (eval.Validation, error)

	// Minimizing reports whether lower evaluation values are better.
	Minimizing() bool

	// RandomSolution generates a random candidate solution using rng.
	RandomSolution(rng *rand.Rand) S

	// Reject reports whether sol violates any mandatory constraint.
	// Penalizing constraints never reject.
	Reject(sol S) bool
}

type namedConstraint[S Solution[S], D any] struct {
	name string
	c    Constraint[S, D]
}

type namedPenalizing[S Solution[S], D any] struct {
	name string
	c    PenalizingConstraint[S, D]
}

// GenericProblem is the canonical Problem implementation over an objective,
// a data payload, and constraint sets.
//
// Lifecycle: constructed once per run configuration. Objective and data may
// be swapped between runs (SetObjective/SetData) but never while a search
// on this problem is running.
type GenericProblem[S Solution[S], D any] struct {
	objective  Objective[S, D]
	data       D
	generate   func(rng *rand.Rand, data D) S
	mandatory  []namedConstraint[S, D]
	penalizing []namedPenalizing[S, D]
}

// NewGenericProblem wires objective, data and a random-solution generator.
// The objective and generator must be non-nil (ErrNilObjective /
// ErrNilGenerator).
func NewGenericProblem[S Solution[S], D any](
	objective Objective[S, D],
	data D,
	generate func(rng *rand.Rand, data D) S,
) (*GenericProblem[S, D], error) {
	if objective == nil {
		return nil, ErrNilObjective
	}
	if generate == nil {
		return nil, ErrNilGenerator
	}

	return &GenericProblem[S, D]{objective: objective, data: data, generate: generate}, nil
}

// Objective returns the current objective.
func (p *GenericProblem[S, D]) Objective() Objective[S, D] { return p.objective }

// SetObjective swaps the objective between runs. Nil returns ErrNilObjective.
func (p *GenericProblem[S, D]) SetObjective(objective Objective[S, D]) error {
	if objective == nil {
		return ErrNilObjective
	}
	p.objective = objective

	return nil
}

// Data returns the current data payload.
func (p *GenericProblem[S, D]) Data() D { return p.data }

// SetData swaps the data payload between runs.
func (p *GenericProblem[S, D]) SetData(data D) { p.data = data }

// AddMandatoryConstraint registers a hard constraint under a unique name.
func (p *GenericProblem[S, D]) AddMandatoryConstraint(name string, c Constraint[S, D]) error {
	if c == nil {
		return ErrNilConstraint
	}
	var i int
	for i = range p.mandatory {
		if p.mandatory[i].name == name {
			return ErrDuplicateConstraint
		}
	}
	p.mandatory = append(p.mandatory, namedConstraint[S, D]{name: name, c: c})

	return nil
}

// RemoveMandatoryConstraint unregisters the named hard constraint; it
// reports whether the name was present.
func (p *GenericProblem[S, D]) RemoveMandatoryConstraint(name string) bool {
	var i int
	for i = range p.mandatory {
		if p.mandatory[i].name == name {
			p.mandatory = append(p.mandatory[:i], p.mandatory[i+1:]...)

			return true
		}
	}

	return false
}

// AddPenalizingConstraint registers a soft constraint under a unique name.
func (p *GenericProblem[S, D]) AddPenalizingConstraint(name string, c PenalizingConstraint[S, D]) error {
	if c == nil {
		return ErrNilConstraint
	}
	var i int
	for i = range p.penalizing {
		if p.penalizing[i].name == name {
			return ErrDuplicateConstraint
		}
	}
	p.penalizing = append(p.penalizing, namedPenalizing[S, D]{name: name, c: c})

	return nil
}

// RemovePenalizingConstraint unregisters the named soft constraint; it
// reports whether the name was present.
func (p *GenericProblem[S, D]) RemovePenalizingConstraint(name string) bool {
	var i int
	for i = range p.penalizing {
		if p.penalizing[i].name == name {
			p.penalizing = append(p.penalizing[:i], p.penalizing[i+1:]...)

			return true
		}
	}

	return false
}

// Minimizing implements Problem, delegating to the objective.
func (p *GenericProblem[S, D]) Minimizing() bool { return p.objective.Minimizing() }

// RandomSolution implements Problem.
func (p *GenericProblem[S, D]) RandomSolution(rng *rand.Rand) S {
	return p.generate(rng, p.data)
}

// Evaluate implements Problem: objective score plus folded penalties.
func (p *GenericProblem[S, D]) Evaluate(sol S) eval.Evaluation {
	e := p.objective.Evaluate(sol, p.data)
	if len(p.penalizing) == 0 {
		return e
	}
	var (
		total float64
		i     int
	)
	for i = range p.penalizing {
		total += p.penalizing[i].c.ValidatePenalizing(sol, p.data).Penalty()
	}

	return eval.NewPenalizedEvaluation(e, total, p.Minimizing())
}

// EvaluateMove implements Problem.
//
// The pre-move evaluation cur is unwrapped when penalized so the delta
// objective always sees its own evaluation type.
func (p *GenericProblem[S, D]) EvaluateMove(m Move[S], sol S, cur eval.Evaluation) (eval.Evaluation, error) {
	curBase := cur
	if pe, ok := cur.(eval.PenalizedEvaluation); ok {
		curBase = pe.Base()
	}

	var (
		base eval.Evaluation
		err  error
	)
	if do, ok := p.objective.(DeltaObjective[S, D]); ok {
		base, err = do.EvaluateMove(m, sol, curBase, p.data)
		if err != nil {
			return nil, err
		}
	} else {
		// Fallback: apply, score, undo. Briefly mutates sol.
		if err = m.Apply(sol); err != nil {
			return nil, err
		}
		base = p.objective.Evaluate(sol, p.data)
		if err = m.Undo(sol); err != nil {
			return nil, err
		}
	}

	if len(p.penalizing) == 0 {
		return base, nil
	}

	var (
		total float64
		i     int
	)
	for i = range p.penalizing {
		pc := p.penalizing[i].c
		if dc, ok := pc.(DeltaPenalizingConstraint[S, D]); ok {
			var v eval.PenalizingValidation
			v, err = dc.ValidateMovePenalizing(m, sol, pc.ValidatePenalizing(sol, p.data), p.data)
			if err != nil {
				return nil, err
			}
			total += v.Penalty()
		} else {
			if err = m.Apply(sol); err != nil {
				return nil, err
			}
			penalty := pc.ValidatePenalizing(sol, p.data).Penalty()
			if err = m.Undo(sol); err != nil {
				return nil, err
			}
			total += penalty
		}
	}

	return eval.NewPenalizedEvaluation(base, total, p.Minimizing()), nil
}

// Validate implements Problem: mandatory constraints aggregated into a
// UnanimousValidation keyed by constraint name. With no constraints the
// validation trivially passes.
func (p *GenericProblem[S, D]) Validate(sol S) eval.Validation {
	if len(p.mandatory) == 0 {
		return eval.ValidationPassed
	}
	u := eval.NewUnanimousValidation()
	var i int
	for i = range p.mandatory {
		// Names are unique by construction; AddValidation cannot fail here.
		_ = u.AddValidation(p.mandatory[i].name, p.mandatory[i].c.Validate(sol, p.data))
	}

	return u
}

// ValidateMove implements Problem. When cur is the UnanimousValidation from
// a previous Validate/ValidateMove call, per-constraint sub-validations are
// reused as the delta starting point; otherwise they are recomputed.
func (p *GenericProblem[S, D]) ValidateMove(m Move[S], sol S, cur eval.Validation) (eval.Validation, error) {
	if len(p.mandatory) == 0 {
		return eval.ValidationPassed, nil
	}
	curU, _ := cur.(*eval.UnanimousValidation)

	u := eval.NewUnanimousValidation()
	var (
		i   int
		err error
	)
	for i = range p.mandatory {
		nc := p.mandatory[i]
		var v eval.Validation
		if dc, ok := nc.c.(DeltaConstraint[S, D]); ok {
			var curSub eval.Validation
			if curU != nil {
				curSub, _ = curU.Validation(nc.name)
			}
			if curSub == nil {
				curSub = nc.c.Validate(sol, p.data)
			}
			v, err = dc.ValidateMove(m, sol, curSub, p.data)
			if err != nil {
				return nil, err
			}
		} else {
			// Fallback: apply, validate, undo. Briefly mutates sol.
			if err = m.Apply(sol); err != nil {
				return nil, err
			}
			v = nc.c.Validate(sol, p.data)
			if err = m.Undo(sol); err != nil {
				return nil, err
			}
		}
		_ = u.AddValidation(nc.name, v)
	}

	return u, nil
}

// Reject implements Problem: true when any mandatory constraint fails,
// short-circuiting on the first violation.
func (p *GenericProblem[S, D]) Reject(sol S) bool {
	var i int
	for i = range p.mandatory {
		if !p.mandatory[i].c.Validate(sol, p.data).Passed() {
			return true
		}
	}

	return false
}
