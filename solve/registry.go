package solve

import (
	"go.uber.org/multierr"

	"github.com/billx09/hpp-core/projector"
	"github.com/billx09/hpp-core/shooter"
	"github.com/billx09/hpp-core/validation"
)

// ValidatorFactory builds a validation.Validator for a Problem.
type ValidatorFactory func(p *Problem) (validation.Validator, error)

// ProjectorFactory builds a projector.Projector for a Problem.
type ProjectorFactory func(p *Problem) (projector.Projector, error)

// OptimizerFactory builds a PathOptimizer (the post-solve smoothing /
// shortcutting pass) for a Problem.
type OptimizerFactory func(p *Problem) (PathOptimizer, error)

// ShooterFactory builds a shooter.Shooter for a Problem.
type ShooterFactory func(p *Problem) (shooter.Shooter, error)

// PathOptimizer is an optional post-solve pass over an extracted path. No
// type in this core implements it; the driver's own smoothing pass is the
// plain function simpleSmooth (smooth.go), called directly by FinishSolve.
type PathOptimizer interface {
	Optimize(waypoints []Waypoint) ([]Waypoint, error)
}

// RegisterValidator adds factory under name.
func (p *Problem) RegisterValidator(name string, factory ValidatorFactory) {
	p.validators[name] = factory
}

// Validator instantiates the validator registered under name.
func (p *Problem) Validator(name string) (validation.Validator, error) {
	factory, ok := p.validators[name]
	if !ok {
		return nil, unknownFactoryError("validator", name)
	}
	return factory(p)
}

// RegisterProjector adds factory under name.
func (p *Problem) RegisterProjector(name string, factory ProjectorFactory) {
	p.projectors[name] = factory
}

// Projector instantiates the projector registered under name.
func (p *Problem) Projector(name string) (projector.Projector, error) {
	factory, ok := p.projectors[name]
	if !ok {
		return nil, unknownFactoryError("projector", name)
	}
	return factory(p)
}

// RegisterOptimizer adds factory under name.
func (p *Problem) RegisterOptimizer(name string, factory OptimizerFactory) {
	p.optimizers[name] = factory
}

// Optimizer instantiates the optimizer registered under name.
func (p *Problem) Optimizer(name string) (PathOptimizer, error) {
	factory, ok := p.optimizers[name]
	if !ok {
		return nil, unknownFactoryError("optimizer", name)
	}
	return factory(p)
}

// RegisterShooter adds factory under name.
func (p *Problem) RegisterShooter(name string, factory ShooterFactory) {
	p.shooters[name] = factory
}

// Shooter instantiates the shooter registered under name.
func (p *Problem) Shooter(name string) (shooter.Shooter, error) {
	factory, ok := p.shooters[name]
	if !ok {
		return nil, unknownFactoryError("shooter", name)
	}
	return factory(p)
}

// Selection names every factory key the CLI or a Problem caller wants
// instantiated at once.
type Selection struct {
	Planner   string
	Validator string
	Projector string
	Shooter   string
}

// Resolved bundles the instances a Selection resolved to.
type Resolved struct {
	Planner   PathPlanner
	Validator validation.Validator
	Projector projector.Projector
	Shooter   shooter.Shooter
}

// ResolveAll looks up every factory named in sel, aggregating every unknown-
// name failure via multierr.Append rather than stopping at the first, so a
// caller misconfiguring several keys at once sees the whole list. Returns a
// non-nil error, with a partially populated Resolved, if any lookup failed.
func (p *Problem) ResolveAll(sel Selection) (Resolved, error) {
	var resolved Resolved
	var errs error

	if planner, err := p.Planner(sel.Planner); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		resolved.Planner = planner
	}

	if validator, err := p.Validator(sel.Validator); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		resolved.Validator = validator
	}

	if proj, err := p.Projector(sel.Projector); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		resolved.Projector = proj
	}

	if shoot, err := p.Shooter(sel.Shooter); err != nil {
		errs = multierr.Append(errs, err)
	} else {
		resolved.Shooter = shoot
	}

	return resolved, errs
}
