// Package solve implements the solve driver: start-solve / one-step /
// finish-solve orchestration, the per-problem string-keyed parameter values
// and factory registries, result extraction, and cooperative cancellation.
// The driver hands the step loop to a goroutine and waits on a channel so a
// panicking step surfaces as an error rather than crashing the process, and
// options follow a JSON-driven pattern.
package solve

import (
	"github.com/billx09/hpp-core/param"
)

// PlannerFactory builds a PathPlanner (see planner.go) for a Problem.
type PlannerFactory func(p *Problem) (PathPlanner, error)

// Problem carries the per-solve configuration: named parameter values and
// the planner/validator/projector/optimizer/shooter selection surface. Each
// registry is an explicit map owned by this Problem instance, not a
// package-level singleton, so multiple solves never share mutable state.
type Problem struct {
	parameters map[string]float64

	planners   map[string]PlannerFactory
	validators map[string]ValidatorFactory
	projectors map[string]ProjectorFactory
	optimizers map[string]OptimizerFactory
	shooters   map[string]ShooterFactory
}

// NewProblem builds an empty Problem. Parameter reads fall back to the
// defaults declared in package param until overridden with SetParameter.
func NewProblem() *Problem {
	return &Problem{
		parameters: map[string]float64{},
		planners:   map[string]PlannerFactory{},
		validators: map[string]ValidatorFactory{},
		projectors: map[string]ProjectorFactory{},
		optimizers: map[string]OptimizerFactory{},
		shooters:   map[string]ShooterFactory{},
	}
}

// GetParameter returns the problem's value for key, falling back to the
// declared default (param.Lookup) and then to 0 if the key was never
// declared by any package.
func (p *Problem) GetParameter(key string) float64 {
	if v, ok := p.parameters[key]; ok {
		return v
	}
	if d, ok := param.Lookup(key); ok {
		return d.Default
	}
	return 0
}

// SetParameter overrides key's value for this problem.
func (p *Problem) SetParameter(key string, value float64) {
	p.parameters[key] = value
}

// RegisterPlanner adds factory under name to this problem's planner
// registry.
func (p *Problem) RegisterPlanner(name string, factory PlannerFactory) {
	p.planners[name] = factory
}

// Planner looks up and instantiates the planner registered under name,
// surfacing an unknown name as an error.
func (p *Problem) Planner(name string) (PathPlanner, error) {
	factory, ok := p.planners[name]
	if !ok {
		return nil, unknownFactoryError("planner", name)
	}
	return factory(p)
}
