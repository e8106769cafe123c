package birrtstar

import "github.com/pkg/errors"

// ErrGoalCount is the precondition failure StartSolve returns when the
// roadmap does not carry exactly one goal node.
var ErrGoalCount = errors.New("birrtstar: startSolve requires exactly one goal node")

// ErrNoInitNode is returned by StartSolve when the roadmap has no init node
// set, a precondition this core treats the same way as a bad goal count.
var ErrNoInitNode = errors.New("birrtstar: roadmap has no init node")
