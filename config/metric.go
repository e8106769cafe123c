package config

import "gonum.org/v1/gonum/floats"

// L2Distance is the default Distance: the Euclidean norm of the per-axis
// difference between q1 and q2.
func L2Distance(q1, q2 Configuration) float64 {
	diff := make([]float64, len(q1))
	for i := range q1 {
		diff[i] = q1[i] - q2[i]
	}
	return floats.Norm(diff, 2)
}

// WeightedL2Distance returns a Distance that scales each axis by weights
// before taking the L2 norm, for callers whose extra-config-space suffix
// (e.g. velocities) should not be weighted the same as the kinematic prefix.
func WeightedL2Distance(weights []float64) Distance {
	w := make([]float64, len(weights))
	copy(w, weights)
	return func(q1, q2 Configuration) float64 {
		diff := make([]float64, len(q1))
		for i := range q1 {
			d := q1[i] - q2[i]
			if i < len(w) {
				d *= w[i]
			}
			diff[i] = d
		}
		return floats.Norm(diff, 2)
	}
}
