// Package constraint defines the opaque Constraint / ConfigProjector
// collaborators the core drives but never interprets. Concrete constraint
// sets (joint limits, task-space manifolds, etc.) live outside this core;
// this package only fixes the interface the steering method, path
// projector, and planner are allowed to call.
package constraint

import "github.com/billx09/hpp-core/config"

// LineSearch selects the line-search strategy a ConfigProjector uses while
// projecting onto its manifold. The steering method sets this to Backtracking
// when it rebinds a copied constraint's right-hand side (see
// path.Straight.Steer, and steering-method/straight.cc's
// lineSearchType(Backtracking) call).
type LineSearch int

// Line-search strategies a ConfigProjector may be asked to use.
const (
	// Default leaves whatever line search the projector was built with.
	Default LineSearch = iota
	// Backtracking is the strategy the straight-line steering method
	// requests after rebinding a copied constraint's right-hand side.
	Backtracking
)

// ConfigProjector projects configurations onto a constraint manifold. It is
// opaque to this core beyond this interface: the manifold's shape, and how
// projection is actually performed, belong to the caller's problem
// definition.
type ConfigProjector interface {
	// ProjectOnKernel finds qOut on the tangent space at qFrom that satisfies
	// the manifold while moving toward qTo. Returns false if no such point
	// was found within the projector's own iteration budget.
	ProjectOnKernel(qFrom, qTo config.Configuration) (qOut config.Configuration, ok bool)
	// Apply returns q projected onto the manifold, reporting success.
	Apply(q config.Configuration) (config.Configuration, bool)
	// RightHandSideFromConfig rebinds the projector's target manifold value
	// to the one implied by q (e.g. "stay at this relative transform").
	RightHandSideFromConfig(q config.Configuration)
	// LineSearchType selects the line-search strategy used during Apply.
	LineSearchType(kind LineSearch)
}

// Set is an opaque, possibly-nil constraint attachment carried by a Path. A
// nil Set means "no constraints attached" and every method is a no-op /
// returns ok=false for ConfigProjector().
type Set struct {
	projector ConfigProjector
}

// NewSet wraps a ConfigProjector in a Set. Passing nil yields a Set with no
// projector, equivalent to "no constraints".
func NewSet(projector ConfigProjector) *Set {
	if projector == nil {
		return nil
	}
	return &Set{projector: projector}
}

// ConfigProjector returns the set's projector, or (nil, false) if this Set
// carries none.
func (s *Set) ConfigProjector() (ConfigProjector, bool) {
	if s == nil || s.projector == nil {
		return nil, false
	}
	return s.projector, true
}

// Copy is used by the straight-line steering method to bind a fresh
// right-hand side before attaching the result to a new path: copying a
// constraint set must not let two paths share mutable projector state.
// Concrete ConfigProjector implementations are responsible for their own deep
// copy semantics; Copy requires the projector to implement Copier, and falls
// back to sharing the same projector if it doesn't (stateless projectors are
// fine to share).
func (s *Set) Copy() *Set {
	if s == nil || s.projector == nil {
		return s
	}
	if c, ok := s.projector.(Copier); ok {
		return &Set{projector: c.Copy()}
	}
	return &Set{projector: s.projector}
}

// Copier is implemented by ConfigProjectors that carry mutable state (a
// bound right-hand side, a line-search mode) and so must be deep-copied
// before steering rebinds that state for a new path.
type Copier interface {
	Copy() ConfigProjector
}
