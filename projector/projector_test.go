package projector

import (
	"testing"

	"go.viam.com/test"

	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/constraint"
	"github.com/billx09/hpp-core/path"
)

// clampProjector projects any configuration onto the half-space x[0] <= 1 by
// clamping, exercising the bisection loop with a real (if trivial) manifold.
type clampProjector struct{ bound float64 }

func (c *clampProjector) ProjectOnKernel(qFrom, qTo config.Configuration) (config.Configuration, bool) {
	return c.Apply(qTo)
}

func (c *clampProjector) Apply(q config.Configuration) (config.Configuration, bool) {
	out := q.Clone()
	if out[0] > c.bound {
		out[0] = c.bound
	}
	return out, true
}

func (c *clampProjector) RightHandSideFromConfig(q config.Configuration) {}
func (c *clampProjector) LineSearchType(kind constraint.LineSearch)      {}

func TestIdentityApplyReturnsInput(t *testing.T) {
	p := path.NewStraightPath(config.Configuration{0}, config.Configuration{1}, 1, 0, 1, nil)
	out, err := Identity{}.Apply(p)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, p)
}

func TestApplyWithNoConstraintsIsNoop(t *testing.T) {
	sm := path.NewStraight(config.L2Distance, nil)
	rh := New(config.L2Distance, sm, DefaultMinimalDist, false)

	p := path.NewStraightPath(config.Configuration{0}, config.Configuration{1}, 1, 0, 1, nil)
	out, err := rh.Apply(p)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldEqual, p)
}

func TestApplyProjectsOntoManifold(t *testing.T) {
	cons := constraint.NewSet(&clampProjector{bound: 1})
	sm := path.NewStraight(config.L2Distance, cons)
	rh := New(config.L2Distance, sm, 1e-3, true)

	p := path.NewStraightPath(config.Configuration{0, 0}, config.Configuration{5, 0}, 5, 0, 5, cons)
	out, err := rh.Apply(p)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldNotBeNil)
	test.That(t, out.End()[0], test.ShouldBeLessThanOrEqualTo, 1.0)
}

func TestNewStripsStringingMethodConstraintsByDefault(t *testing.T) {
	cons := constraint.NewSet(&clampProjector{bound: 1})
	sm := path.NewStraight(config.L2Distance, cons)

	rh := New(config.L2Distance, sm, DefaultMinimalDist, false)
	test.That(t, rh.steering.Constraints(), test.ShouldBeNil)

	rh2 := New(config.L2Distance, sm, DefaultMinimalDist, true)
	test.That(t, rh2.steering.Constraints(), test.ShouldNotBeNil)
}
