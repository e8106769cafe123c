package solve

import (
	"testing"

	"go.viam.com/test"

	"github.com/billx09/hpp-core/config"
)

func TestSimpleSmoothElidesRedundantWaypoint(t *testing.T) {
	waypoints := []Waypoint{
		{0, 0}, {0.5, 0.01}, {1, 0}, {1.5, 0.01}, {2, 0},
	}
	// everything is directly reachable: fully smooths to the two endpoints.
	always := func(a, b config.Configuration) bool { return true }

	out := simpleSmooth(waypoints, always)
	test.That(t, len(out), test.ShouldEqual, 2)
	test.That(t, out[0], test.ShouldResemble, config.Configuration{0, 0})
	test.That(t, out[len(out)-1], test.ShouldResemble, config.Configuration{2, 0})
}

func TestSimpleSmoothKeepsNecessaryWaypoints(t *testing.T) {
	waypoints := []Waypoint{
		{0, 0}, {1, 0}, {2, 0},
	}
	never := func(a, b config.Configuration) bool { return false }

	out := simpleSmooth(waypoints, never)
	test.That(t, out, test.ShouldResemble, waypoints)
}

func TestSimpleSmoothShortPathIsNoop(t *testing.T) {
	waypoints := []Waypoint{{0, 0}, {1, 0}}
	always := func(a, b config.Configuration) bool { return true }

	out := simpleSmooth(waypoints, always)
	test.That(t, out, test.ShouldResemble, waypoints)
}
