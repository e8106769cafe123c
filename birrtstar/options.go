package birrtstar

import "math"

// Default parameter values, named identically to the problem parameters so
// solve.Problem can declare them against these ("BiRRT*/maxStepLength",
// "BiRRT*/gamma").
const (
	// DefaultMaxStepLength is "BiRRT*/maxStepLength": non-positive means
	// "derive from DOF" (sqrt(DOF)).
	DefaultMaxStepLength = -1.0
	// DefaultGamma is "BiRRT*/gamma", the rewiring-radius scale.
	DefaultGamma = 1.0
)

// Options are the BiRRT*-specific tunables declared as problem parameters.
type Options struct {
	MaxStepLength float64
	Gamma         float64
}

// NewDefaultOptions builds Options carrying the documented defaults.
func NewDefaultOptions() *Options {
	return &Options{MaxStepLength: DefaultMaxStepLength, Gamma: DefaultGamma}
}

// ExtendMaxLength resolves MaxStepLength against dof: a positive
// MaxStepLength is used verbatim, otherwise sqrt(dof).
func (o *Options) ExtendMaxLength(dof int) float64 {
	if o.MaxStepLength > 0 {
		return o.MaxStepLength
	}
	return math.Sqrt(float64(dof))
}
