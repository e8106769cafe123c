// Package shooter implements the ConfigurationShooter collaborator: produces
// a uniform (or user-weighted) random configuration within caller-supplied
// per-axis bounds.
package shooter

import (
	"gonum.org/v1/gonum/stat/distuv"
	"golang.org/x/exp/rand"

	"github.com/billx09/hpp-core/config"
)

// Shooter is the ConfigurationShooter interface: shoot() -> q.
type Shooter interface {
	Shoot() config.Configuration
}

// Bounds gives the [Min, Max] range to sample each axis from.
type Bounds struct {
	Min, Max float64
}

// Uniform samples each axis independently from its Bounds, using a
// caller-supplied *rand.Rand so planning runs can be seeded. Determinism
// across runs holds only if the shooter itself is deterministic.
type Uniform struct {
	bounds []Bounds
	rng    *rand.Rand
}

// NewUniform builds a Uniform shooter over the given per-axis bounds.
func NewUniform(bounds []Bounds, rng *rand.Rand) *Uniform {
	if rng == nil {
		//nolint:gosec // determinism of the planner across processes is not guaranteed
		rng = rand.New(rand.NewSource(1))
	}
	b := make([]Bounds, len(bounds))
	copy(b, bounds)
	return &Uniform{bounds: b, rng: rng}
}

// Shoot implements Shooter.
func (u *Uniform) Shoot() config.Configuration {
	q := make(config.Configuration, len(u.bounds))
	for i, b := range u.bounds {
		if b.Max <= b.Min {
			q[i] = b.Min
			continue
		}
		d := distuv.Uniform{Min: b.Min, Max: b.Max, Src: u.rng}
		q[i] = d.Rand()
	}
	return q
}

// Weighted samples from a discrete mixture of Uniform shooters, each picked
// with probability proportional to its Weight. This is the user-weighted
// variant allowed in place of plain Uniform, e.g. to bias sampling toward a
// region near an obstacle gap.
type Weighted struct {
	shooters []*Uniform
	weights  []float64
	rng      *rand.Rand
}

// NewWeighted builds a Weighted shooter. shooters and weights must be the
// same length; weights need not sum to 1.
func NewWeighted(shooters []*Uniform, weights []float64, rng *rand.Rand) *Weighted {
	if rng == nil {
		//nolint:gosec // see Uniform
		rng = rand.New(rand.NewSource(1))
	}
	s := make([]*Uniform, len(shooters))
	copy(s, shooters)
	w := make([]float64, len(weights))
	copy(w, weights)
	return &Weighted{shooters: s, weights: w, rng: rng}
}

// Shoot implements Shooter.
func (w *Weighted) Shoot() config.Configuration {
	total := 0.0
	for _, v := range w.weights {
		total += v
	}
	if total <= 0 || len(w.shooters) == 0 {
		return nil
	}
	r := w.rng.Float64() * total
	acc := 0.0
	for i, v := range w.weights {
		acc += v
		if r <= acc {
			return w.shooters[i].Shoot()
		}
	}
	return w.shooters[len(w.shooters)-1].Shoot()
}
