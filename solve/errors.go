package solve

import "github.com/pkg/errors"

// ErrInterrupted is returned by Driver.Step, and so by FinishSolve, once
// Driver.Interrupt has been called. A cancelled context is reported by
// FinishSolve as the context's own error instead.
var ErrInterrupted = errors.New("solve: interrupted before a path was found")

// ErrNoPath is returned by FinishSolve when OneStep never merged the two
// trees into a single connected component before the step budget ran out.
var ErrNoPath = errors.New("solve: no path found within the step budget")

func unknownFactoryError(kind, name string) error {
	return errors.Errorf("solve: no %s registered under name %q", kind, name)
}
