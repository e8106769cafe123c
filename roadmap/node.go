package roadmap

import (
	"github.com/google/uuid"

	"github.com/billx09/hpp-core/config"
)

// Node owns a configuration and belongs to exactly one ConnectedComponent at
// any instant. Identity is by address/handle (the *Node pointer), not
// configuration: two nodes with equal configurations are still distinct.
type Node struct {
	// ID is a stable, printable identity independent of pointer value, for
	// logging and diagnostics.
	ID uuid.UUID

	q  config.Configuration
	cc *component

	// seq is the node's insertion index into its roadmap, used to break
	// nearest-neighbour ties deterministically, independent of the connected
	// component's map iteration order.
	seq int

	outEdges []*Edge
	inEdges  []*Edge
}

// Q returns the node's configuration.
func (n *Node) Q() config.Configuration { return n.q }

// OutEdges returns the node's outbound edges. The returned slice must not be
// mutated by callers.
func (n *Node) OutEdges() []*Edge { return n.outEdges }

// InEdges returns the node's inbound edges. The returned slice must not be
// mutated by callers.
func (n *Node) InEdges() []*Edge { return n.inEdges }

// ConnectedComponent returns the component this node currently belongs to.
func (n *Node) ConnectedComponent() *ConnectedComponent {
	return n.cc.find().public()
}
