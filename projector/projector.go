// Package projector implements the PathProjector collaborator: given a path,
// it returns a constraint-satisfying path close to it, or fails. Its
// construction tuple is fixed (distance, steering method, tolerance), with
// an option to strip the steering method's own constraints before
// projecting.
package projector

import (
	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/constraint"
	"github.com/billx09/hpp-core/param"
	"github.com/billx09/hpp-core/path"
)

func init() {
	param.Declare(param.Description{
		Key:     "PathProjection/HessianBound",
		Default: DefaultHessianBound,
		Doc:     "Forwarded to the projector; negative means ignored",
	})
	param.Declare(param.Description{
		Key:     "PathProjection/MinimalDist",
		Default: DefaultMinimalDist,
		Doc:     "Projector halting threshold: stop once consecutive interpolation points are this close",
	})
	param.Declare(param.Description{
		Key:     "PathProjection/RecursiveHermite/Beta",
		Default: DefaultBeta,
		Doc:     "RecursiveHermite subdivision constant",
	})
}

// Default parameter values, named identically to the problem parameters so
// solve.Problem can declare them against these.
const (
	// DefaultHessianBound is "PathProjection/HessianBound": negative means
	// ignored.
	DefaultHessianBound = -1.0
	// DefaultMinimalDist is "PathProjection/MinimalDist": the threshold which
	// stops the projection (distance between consecutive interpolation
	// points).
	DefaultMinimalDist = 1e-3
	// DefaultBeta is "PathProjection/RecursiveHermite/Beta".
	DefaultBeta = 0.9
)

// Projector is the PathProjector interface: apply(path) -> projected_path?.
// A nil result (with no error) means projection failed: this is a local
// sampling failure the planner retries from, not an error.
type Projector interface {
	Apply(p path.Path) (path.Path, error)
}

// RecursiveHermite is a PathProjector that recursively bisects the input
// path, pulling each interpolation point onto the constraint manifold via
// its ConfigProjector, stopping once consecutive points are within
// MinimalDist of each other or after 32 subdivisions. It is named for the
// "PathProjection/RecursiveHermite/Beta" parameter, a Hermite-style
// subdivision constant this core uses only as the fraction of the current
// interval at which each intermediate point is placed; a failed projection
// is not retried, it fails the whole Apply. Full Hermite tangent
// reconstruction is out of scope.
type RecursiveHermite struct {
	distance     config.Distance
	steering     path.SteeringMethod
	minimalDist  float64
	hessianBound float64
	beta         float64
}

// New builds a RecursiveHermite projector from the (distance, steering
// method, tolerance) construction tuple. If keepSteeringMethodConstraints
// is false, the copied steering method has its constraints stripped before
// projecting.
func New(distance config.Distance, steeringMethod path.SteeringMethod, minimalDist float64, keepSteeringMethodConstraints bool) *RecursiveHermite {
	sm := steeringMethod.Copy()
	if !keepSteeringMethodConstraints {
		sm = sm.WithConstraints(nil)
	}
	if minimalDist <= 0 {
		minimalDist = DefaultMinimalDist
	}
	return &RecursiveHermite{
		distance:     distance,
		steering:     sm,
		minimalDist:  minimalDist,
		hessianBound: DefaultHessianBound,
		beta:         DefaultBeta,
	}
}

// WithHessianBound sets the hessian-bound parameter (negative means
// ignored), matching "PathProjection/HessianBound".
func (r *RecursiveHermite) WithHessianBound(bound float64) *RecursiveHermite {
	r.hessianBound = bound
	return r
}

// WithBeta sets the "PathProjection/RecursiveHermite/Beta" constant.
func (r *RecursiveHermite) WithBeta(beta float64) *RecursiveHermite {
	r.beta = beta
	return r
}

// Apply implements Projector. If the path carries no constraints (or its
// constraints carry no ConfigProjector), the path is returned unchanged,
// since there is nothing to project onto.
func (r *RecursiveHermite) Apply(p path.Path) (path.Path, error) {
	cons := p.Constraints()
	if cons == nil {
		return p, nil
	}
	proj, ok := cons.ConfigProjector()
	if !ok {
		return p, nil
	}

	q0 := p.Start()
	q1 := p.End()
	projected, ok := r.subdivide(proj, q0, q1, 0)
	if !ok {
		return nil, nil
	}

	length := r.distance(q0, projected)
	return path.NewStraightPath(q0, projected, length, 0, length, cons), nil
}

// subdivide recursively projects the midpoint of [qa, qb] onto the
// manifold, halving the interval (biased by beta) until consecutive points
// are within minimalDist or a depth cap is hit, returning the final point it
// converged to.
func (r *RecursiveHermite) subdivide(proj constraint.ConfigProjector, qa, qb config.Configuration, depth int) (config.Configuration, bool) {
	const maxDepth = 32
	if r.distance(qa, qb) <= r.minimalDist || depth >= maxDepth {
		out, ok := proj.Apply(qb)
		if !ok {
			return nil, false
		}
		return out, true
	}

	mid := make(config.Configuration, len(qa))
	for i := range qa {
		mid[i] = qa[i] + r.beta*(qb[i]-qa[i])
	}
	projectedMid, ok := proj.ProjectOnKernel(qa, mid)
	if !ok {
		return nil, false
	}
	return r.subdivide(proj, projectedMid, qb, depth+1)
}

// Identity is a PathProjector that never modifies its input; used when a
// problem has no projector configured (birrtstar.New substitutes it for a
// nil projector), and in tests.
type Identity struct{}

// Apply implements Projector by returning p unchanged.
func (Identity) Apply(p path.Path) (path.Path, error) { return p, nil }
