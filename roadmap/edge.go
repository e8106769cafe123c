package roadmap

import (
	"github.com/google/uuid"

	"github.com/billx09/hpp-core/path"
)

// Edge is a directed pair (From, To) of nodes with an attached path whose
// endpoints equal the configurations of From and To. Edges are never
// mutated after insertion. The roadmap never inserts two edges per
// connection: the planner adds an edge in the direction it was grown and
// then adds the reverse edge itself, with a second AddEdge call carrying
// the reversed path.
type Edge struct {
	ID uuid.UUID

	From, To *Node
	Path     path.Path
}

// Length returns the edge's path length, used as the cost of traversing it.
func (e *Edge) Length() float64 {
	return e.Path.Length()
}
