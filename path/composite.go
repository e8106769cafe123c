package path

import (
	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/constraint"
)

// Composite concatenates an ordered sequence of paths end to end (segment
// i's end must equal segment i+1's start, up to the distance metric's
// tolerance) into a single Path, parametrised by cumulative length over
// [0, Length()]. Used by the solve driver to turn a tree's parent-chain of
// edges into the single Path handed back to the caller; concatenation isn't
// a capability every Path needs, so this lives alongside StraightPath as a
// second concrete Path rather than being part of the interface.
type Composite struct {
	segments []Path
	offsets  []float64
	length   float64
}

// NewComposite builds a Composite from segments. segments may be empty,
// giving a zero-length Composite on which At fails and Start/End are nil.
func NewComposite(segments []Path) *Composite {
	offsets := make([]float64, len(segments))
	total := 0.0
	for i, seg := range segments {
		offsets[i] = total
		total += seg.Length()
	}
	return &Composite{segments: segments, offsets: offsets, length: total}
}

// Length implements Path.
func (c *Composite) Length() float64 { return c.length }

// Segments returns the ordered sub-paths this Composite concatenates, for
// callers (the solve driver's result extraction) that want the original
// breakpoints rather than a continuous reparametrisation.
func (c *Composite) Segments() []Path { return c.segments }

// TimeRange implements Path: Composite is parametrised by cumulative length.
func (c *Composite) TimeRange() (float64, float64) { return 0, c.length }

// At implements Path by locating which segment covers t and evaluating it
// proportionally within that segment's own time range.
func (c *Composite) At(t float64) (config.Configuration, error) {
	if len(c.segments) == 0 || t < 0 || t > c.length {
		return nil, &ErrOutOfRange{T: t, T0: 0, T1: c.length}
	}
	idx := len(c.segments) - 1
	for i, off := range c.offsets {
		end := off + c.segments[i].Length()
		if t <= end || i == len(c.segments)-1 {
			idx = i
			break
		}
	}
	seg := c.segments[idx]
	localLen := t - c.offsets[idx]
	segLen := seg.Length()

	t0, t1 := seg.TimeRange()
	frac := 0.0
	if segLen > 0 {
		frac = localLen / segLen
	}
	return seg.At(t0 + frac*(t1-t0))
}

// Start implements Path.
func (c *Composite) Start() config.Configuration {
	q, _ := c.At(0)
	return q
}

// End implements Path.
func (c *Composite) End() config.Configuration {
	q, _ := c.At(c.length)
	return q
}

// Reverse implements Path: reverses both the segment order and each
// segment.
func (c *Composite) Reverse() Path {
	out := make([]Path, len(c.segments))
	for i, seg := range c.segments {
		out[len(c.segments)-1-i] = seg.Reverse()
	}
	return NewComposite(out)
}

// Extract implements Path by collecting the (possibly partial) segments
// overlapping [a,b] and re-wrapping them in a new Composite.
func (c *Composite) Extract(a, b float64) (Path, error) {
	if a < 0 || b > c.length || a > b {
		return nil, &ErrOutOfRange{T: a, T0: 0, T1: c.length}
	}
	var out []Path
	for i, seg := range c.segments {
		segStart := c.offsets[i]
		segEnd := segStart + seg.Length()
		lo := max(a, segStart)
		hi := min(b, segEnd)
		if lo >= hi {
			continue
		}
		t0, t1 := seg.TimeRange()
		segLen := seg.Length()
		localA, localB := t0, t1
		if segLen > 0 {
			localA = t0 + ((lo-segStart)/segLen)*(t1-t0)
			localB = t0 + ((hi-segStart)/segLen)*(t1-t0)
		}
		sub, err := seg.Extract(localA, localB)
		if err != nil {
			return nil, err
		}
		out = append(out, sub)
	}
	if len(out) == 0 {
		return NewComposite(nil), nil
	}
	return NewComposite(out), nil
}

// Constraints implements Path by returning the first segment's, if any
// (Composite itself never attaches constraints beyond what its segments
// already carry).
func (c *Composite) Constraints() *constraint.Set {
	if len(c.segments) == 0 {
		return nil
	}
	return c.segments[0].Constraints()
}

func max(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func min(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
