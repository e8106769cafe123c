package path

import (
	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/constraint"
)

// StraightPath is a constant-velocity interpolation between two
// configurations, the concrete Path produced by the Straight steering
// method. Evaluation is linear in t across its time range [t0, t1].
type StraightPath struct {
	q0, q1 config.Configuration
	length float64
	t0, t1 float64
	cons   *constraint.Set
}

// NewStraightPath builds a StraightPath from q0 to q1 with the given total
// length over the time range [t0, t1]. cons may be nil.
func NewStraightPath(q0, q1 config.Configuration, length, t0, t1 float64, cons *constraint.Set) *StraightPath {
	return &StraightPath{q0: q0.Clone(), q1: q1.Clone(), length: length, t0: t0, t1: t1, cons: cons}
}

// Length implements Path.
func (p *StraightPath) Length() float64 { return p.length }

// TimeRange implements Path.
func (p *StraightPath) TimeRange() (float64, float64) { return p.t0, p.t1 }

// At implements Path.
func (p *StraightPath) At(t float64) (config.Configuration, error) {
	if t < p.t0 || t > p.t1 {
		return nil, &ErrOutOfRange{T: t, T0: p.t0, T1: p.t1}
	}
	if p.t1 == p.t0 {
		return p.q0.Clone(), nil
	}
	u := (t - p.t0) / (p.t1 - p.t0)
	out := make(config.Configuration, len(p.q0))
	for i := range p.q0 {
		out[i] = p.q0[i] + u*(p.q1[i]-p.q0[i])
	}
	return out, nil
}

// Start implements Path.
func (p *StraightPath) Start() config.Configuration { return p.q0.Clone() }

// End implements Path.
func (p *StraightPath) End() config.Configuration { return p.q1.Clone() }

// Reverse implements Path: a StraightPath traversing q1 -> q0, same length.
func (p *StraightPath) Reverse() Path {
	return &StraightPath{q0: p.q1.Clone(), q1: p.q0.Clone(), length: p.length, t0: p.t0, t1: p.t1, cons: p.cons}
}

// Extract implements Path: returns the sub-path covering [a,b] of the
// current time range, scaling length proportionally since the interpolation
// is constant-velocity.
func (p *StraightPath) Extract(a, b float64) (Path, error) {
	if a < p.t0 || b > p.t1 || a > b {
		return nil, &ErrOutOfRange{T: a, T0: p.t0, T1: p.t1}
	}
	qa, err := p.At(a)
	if err != nil {
		return nil, err
	}
	qb, err := p.At(b)
	if err != nil {
		return nil, err
	}
	frac := 1.0
	if p.t1 != p.t0 {
		frac = (b - a) / (p.t1 - p.t0)
	}
	return &StraightPath{q0: qa, q1: qb, length: p.length * frac, t0: a, t1: b, cons: p.cons}, nil
}

// Constraints implements Path.
func (p *StraightPath) Constraints() *constraint.Set { return p.cons }
