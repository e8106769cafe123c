// Package validation implements the PathValidation collaborator: given a
// path, return the maximal collision/constraint-free prefix. Concrete
// collision checking (forward kinematics, geometry) is out of scope; this
// package only fixes the interface and ships a discretized validator
// driven by a caller-supplied per-configuration checker, stepping along
// the path at fixed resolution.
package validation

import (
	"fmt"

	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/path"
)

// Report describes why validation stopped short of the path's end, if it
// did. A nil Report means the path validated in full.
type Report struct {
	// FailureTime is the path parameter at which the first invalid
	// configuration was found.
	FailureTime float64
	// Reason is a human-readable description of the failure (e.g. which
	// checker rejected the configuration).
	Reason string
}

func (r *Report) String() string {
	if r == nil {
		return "<valid>"
	}
	return fmt.Sprintf("invalid at t=%g: %s", r.FailureTime, r.Reason)
}

// Validator is the PathValidation interface: validate(path, reverse) ->
// (validPrefix, report). validPrefix may equal path, a proper prefix, or be
// empty (an empty path has zero length and Start()==path.Start()).
type Validator interface {
	Validate(p path.Path, reverse bool) (validPrefix path.Path, report *Report, err error)
}

// CollisionChecker reports whether a single configuration is valid (e.g.
// free of robot/obstacle collision and within joint limits). It is the
// validator's only external collaborator; this core never interprets why a
// configuration failed.
type CollisionChecker func(q config.Configuration) (bool, string, error)

// Discretized is a PathValidation that checks configurations at fixed
// arc-length intervals of `resolution` along the path, returning the
// maximal prefix before the first rejected sample.
type Discretized struct {
	checker    CollisionChecker
	resolution float64
}

// NewDiscretized builds a Discretized validator. resolution must be
// positive; checks are made roughly every `resolution` of path length.
func NewDiscretized(checker CollisionChecker, resolution float64) *Discretized {
	if resolution <= 0 {
		resolution = 1.0
	}
	return &Discretized{checker: checker, resolution: resolution}
}

// Validate implements Validator. When reverse is true, the path is walked
// from its end toward its start by validating p.Reverse(); the returned
// validPrefix starts at p.Start() in the ordinary case, or at p.End() when
// reverse is requested, extracted via Path.Reverse()+Extract.
func (d *Discretized) Validate(p path.Path, reverse bool) (path.Path, *Report, error) {
	walked := p
	if reverse {
		walked = p.Reverse()
	}

	t0, t1 := walked.TimeRange()
	length := walked.Length()
	if length == 0 {
		q, err := walked.At(t0)
		if err != nil {
			return nil, nil, err
		}
		ok, reason, err := d.checker(q)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			empty, err := walked.Extract(t0, t0)
			if err != nil {
				return nil, nil, err
			}
			return empty, &Report{FailureTime: t0, Reason: reason}, nil
		}
		return walked, nil, nil
	}

	steps := int(length/d.resolution) + 1
	dt := (t1 - t0) / float64(steps)

	lastGood := t0
	for i := 0; i <= steps; i++ {
		t := t0 + float64(i)*dt
		if t > t1 {
			t = t1
		}
		q, err := walked.At(t)
		if err != nil {
			return nil, nil, err
		}
		ok, reason, err := d.checker(q)
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			prefix, err := walked.Extract(t0, lastGood)
			if err != nil {
				return nil, nil, err
			}
			return prefix, &Report{FailureTime: t, Reason: reason}, nil
		}
		lastGood = t
		if t == t1 {
			break
		}
	}
	return walked, nil, nil
}

// AlwaysValid is a Validator that never rejects a configuration, useful when
// the problem has no obstacles and in tests.
type AlwaysValid struct{}

// Validate implements Validator by returning p unchanged.
func (AlwaysValid) Validate(p path.Path, reverse bool) (path.Path, *Report, error) {
	if reverse {
		return p.Reverse(), nil, nil
	}
	return p, nil, nil
}
