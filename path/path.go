// Package path defines the Path abstraction the core drives: an opaque
// parametrised trajectory between two configurations, together with the
// straight-line SteeringMethod that builds the simplest concrete instance of
// one.
package path

import (
	"fmt"

	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/constraint"
)

// Path is an opaque evaluable trajectory between two configurations. A path
// may carry an attached constraint set; it is never mutated after creation.
type Path interface {
	// Length returns the path's total non-negative length.
	Length() float64
	// TimeRange returns [t0, t1], the domain over which At is defined.
	TimeRange() (t0, t1 float64)
	// At evaluates the path at time t, which must lie within TimeRange.
	At(t float64) (config.Configuration, error)
	// Start is shorthand for At(t0).
	Start() config.Configuration
	// End is shorthand for At(t1).
	End() config.Configuration
	// Reverse returns a path traversing the same configurations in reverse.
	Reverse() Path
	// Extract returns the sub-path over [a,b], a,b within TimeRange.
	Extract(a, b float64) (Path, error)
	// Constraints returns the path's attached constraint set, or nil.
	Constraints() *constraint.Set
}

// ErrOutOfRange is returned by At/Extract when the requested time lies
// outside the path's TimeRange.
type ErrOutOfRange struct {
	T, T0, T1 float64
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("path: time %g outside range [%g, %g]", e.T, e.T0, e.T1)
}
