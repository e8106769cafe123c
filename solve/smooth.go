package solve

import "github.com/billx09/hpp-core/config"

// Waypoint is one configuration along an extracted result path.
type Waypoint = config.Configuration

// checkPath reports whether a direct, collision-free local path exists
// between two configurations: steer, project, then validate the full
// result. Used by simpleSmooth to decide whether an intermediate waypoint
// can be elided.
type checkPath func(a, b config.Configuration) bool

// simpleSmooth repeatedly elides a redundant middle waypoint of a triplet
// whenever the outer two can be joined directly, shortening the path
// without resampling. This is a deterministic, cheap corner-cutting pass
// suitable as the default PlannerOptions.Smooth behaviour.
func simpleSmooth(waypoints []Waypoint, check checkPath) []Waypoint {
	original := len(waypoints)
	for i := 2; i < len(waypoints); i++ {
		if !check(waypoints[i-2], waypoints[i]) {
			continue
		}
		waypoints = append(waypoints[:i-1], waypoints[i:]...)
		i--
	}
	if len(waypoints) != original {
		return simpleSmooth(waypoints, check)
	}
	return waypoints
}
