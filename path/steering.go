package path

import (
	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/constraint"
)

// SteeringMethod produces a parametrised local path between two
// configurations, ignoring obstacles; it may fail and return a nil Path.
type SteeringMethod interface {
	// Steer builds a path from q1 to q2. A nil result without an error means
	// steering found no local path between the two configurations; this is a
	// local sampling failure, not an error.
	Steer(q1, q2 config.Configuration) (Path, error)
	// Copy returns an independent SteeringMethod carrying the same
	// constraints, for use by components (e.g. a PathProjector) that must not
	// share mutable steering state with the planner's own instance.
	Copy() SteeringMethod
	// Constraints returns the constraint set currently attached to paths this
	// method produces, or nil.
	Constraints() *constraint.Set
	// WithConstraints returns a copy of this method with cons attached.
	WithConstraints(cons *constraint.Set) SteeringMethod
}

// Straight is the straight-line SteeringMethod: it computes length =
// distance(q1, q2) and returns a constant-velocity interpolation of that
// length.
type Straight struct {
	distance config.Distance
	cons     *constraint.Set
}

// NewStraight builds a Straight steering method using the given distance
// metric and (optionally nil) constraint set.
func NewStraight(distance config.Distance, cons *constraint.Set) *Straight {
	return &Straight{distance: distance, cons: cons}
}

// Steer implements SteeringMethod. If constraints are attached and carry a
// ConfigProjector, the returned path's constraint set is a deep copy whose
// right-hand side is bound to q1 and whose line search is set to
// Backtracking. Rebinding a copy rather than reusing the steering method's
// own constraints() keeps concurrent steers from racing on the same
// projector state.
func (s *Straight) Steer(q1, q2 config.Configuration) (Path, error) {
	length := s.distance(q1, q2)

	var c *constraint.Set
	if s.cons != nil {
		if _, ok := s.cons.ConfigProjector(); ok {
			c = s.cons.Copy()
			if proj, ok := c.ConfigProjector(); ok {
				proj.RightHandSideFromConfig(q1)
				proj.LineSearchType(constraint.Backtracking)
			}
		} else {
			c = s.cons
		}
	}

	return NewStraightPath(q1, q2, length, 0, length, c), nil
}

// Copy implements SteeringMethod.
func (s *Straight) Copy() SteeringMethod {
	return &Straight{distance: s.distance, cons: s.cons}
}

// Constraints implements SteeringMethod.
func (s *Straight) Constraints() *constraint.Set { return s.cons }

// WithConstraints implements SteeringMethod.
func (s *Straight) WithConstraints(cons *constraint.Set) SteeringMethod {
	return &Straight{distance: s.distance, cons: cons}
}
