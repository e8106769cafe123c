package solve

import (
	"context"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"github.com/billx09/hpp-core/birrtstar"
	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/path"
	"github.com/billx09/hpp-core/projector"
	"github.com/billx09/hpp-core/roadmap"
	"github.com/billx09/hpp-core/robot"
	"github.com/billx09/hpp-core/shooter"
	"github.com/billx09/hpp-core/validation"
)

// fixedShooter replays a fixed list of samples, one per Shoot call,
// repeating the last one once exhausted.
type fixedShooter struct {
	samples []config.Configuration
	i       int
}

func (s *fixedShooter) Shoot() config.Configuration {
	if s.i >= len(s.samples) {
		return s.samples[len(s.samples)-1].Clone()
	}
	q := s.samples[s.i]
	s.i++
	return q.Clone()
}

func newTrivialDriver(t *testing.T) (*Driver, *roadmap.Roadmap) {
	t.Helper()
	rm := roadmap.New(config.L2Distance)
	initNode := rm.AddNode(config.Configuration{0, 0})
	rm.SetInitNode(initNode)
	rm.AddGoalNode(rm.AddNode(config.Configuration{1, 0}))

	sm := path.NewStraight(config.L2Distance, nil)
	rob := robot.NewFixed(2, 0, 2)
	shoot := &fixedShooter{samples: []config.Configuration{{1, 0}}}

	planner := birrtstar.New(rm, config.L2Distance, sm, projector.Identity{}, validation.AlwaysValid{}, shoot, rob, birrtstar.NewDefaultOptions(), golog.NewTestLogger(t))

	opts := NewBasicPlannerOptions()
	opts.MaxSteps = 10
	opts.Smooth = false
	return NewDriver(planner, rm, opts, golog.NewTestLogger(t)), rm
}

func TestDriverFinishSolveTrivialPath(t *testing.T) {
	d, _ := newTrivialDriver(t)
	test.That(t, d.Start(), test.ShouldBeNil)

	waypoints, err := d.FinishSolve(context.Background(), nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(waypoints), test.ShouldBeGreaterThanOrEqualTo, 2)
	test.That(t, waypoints[0], test.ShouldResemble, config.Configuration{0, 0})
	test.That(t, waypoints[len(waypoints)-1], test.ShouldResemble, config.Configuration{1, 0})
}

func TestDriverInterruptStopsBeforeSolving(t *testing.T) {
	d, rm := newTrivialDriver(t)
	test.That(t, d.Start(), test.ShouldBeNil)
	d.Interrupt()

	before := len(rm.Nodes())
	err := d.Step()
	test.That(t, err, test.ShouldEqual, ErrInterrupted)
	test.That(t, len(rm.Nodes()), test.ShouldEqual, before)
}

func TestDriverFinishSolveCancelledContext(t *testing.T) {
	d, _ := newTrivialDriver(t)
	test.That(t, d.Start(), test.ShouldBeNil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := d.FinishSolve(ctx, nil)
	test.That(t, err, test.ShouldEqual, context.Canceled)
}

func TestDriverFinishSolveAppliesSmoothing(t *testing.T) {
	d, _ := newTrivialDriver(t)
	d.opts.Smooth = true
	test.That(t, d.Start(), test.ShouldBeNil)

	alwaysDirect := func(a, b config.Configuration) bool { return true }
	waypoints, err := d.FinishSolve(context.Background(), alwaysDirect)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(waypoints), test.ShouldEqual, 2)
}

var _ shooter.Shooter = (*fixedShooter)(nil)
