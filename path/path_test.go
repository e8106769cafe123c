package path

import (
	"testing"

	"go.viam.com/test"

	"github.com/billx09/hpp-core/config"
)

func TestStraightPathAt(t *testing.T) {
	p := NewStraightPath(config.Configuration{0, 0}, config.Configuration{2, 4}, 1, 0, 1, nil)

	mid, err := p.At(0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mid[0], test.ShouldAlmostEqual, 1.0)
	test.That(t, mid[1], test.ShouldAlmostEqual, 2.0)
}

func TestStraightPathOutOfRange(t *testing.T) {
	p := NewStraightPath(config.Configuration{0}, config.Configuration{1}, 1, 0, 1, nil)
	_, err := p.At(1.5)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestStraightPathReverse(t *testing.T) {
	p := NewStraightPath(config.Configuration{0, 0}, config.Configuration{1, 1}, 1.5, 0, 1.5, nil)
	r := p.Reverse()

	test.That(t, r.Start(), test.ShouldResemble, config.Configuration{1, 1})
	test.That(t, r.End(), test.ShouldResemble, config.Configuration{0, 0})
	test.That(t, r.Length(), test.ShouldEqual, p.Length())

	rr := r.Reverse()
	test.That(t, rr.Start(), test.ShouldResemble, p.Start())
	test.That(t, rr.End(), test.ShouldResemble, p.End())
	test.That(t, rr.Length(), test.ShouldEqual, p.Length())
}

func TestStraightPathExtract(t *testing.T) {
	p := NewStraightPath(config.Configuration{0}, config.Configuration{10}, 10, 0, 10, nil)

	sub, err := p.Extract(2, 6)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, sub.Length(), test.ShouldAlmostEqual, 4.0)
	test.That(t, sub.Length(), test.ShouldBeLessThanOrEqualTo, p.Length())

	start, err := sub.At(2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, start[0], test.ShouldAlmostEqual, 2.0)
}

func TestStraightSteer(t *testing.T) {
	sm := NewStraight(config.L2Distance, nil)
	p, err := sm.Steer(config.Configuration{0, 0}, config.Configuration{3, 4})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Length(), test.ShouldAlmostEqual, 5.0)
	test.That(t, p.Constraints(), test.ShouldBeNil)
}
