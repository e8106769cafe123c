// Package roadmap implements the bidirected graph of Nodes and Edges that
// BiRRT* incrementally builds: nearest-neighbour and radius queries,
// connected-component tracking via union-find, and the initNode/goalNodes
// bookkeeping the planner drives its two trees from. Every edge's endpoints
// are nodes of this roadmap, inEdges(n) is exactly the edges with to==n, and
// component membership tracks edge reachability.
package roadmap

import (
	"github.com/google/uuid"
	"go.uber.org/multierr"

	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/path"
)

// endpointTolerance bounds how far an edge's path endpoints may drift from
// its node configurations before CheckInvariants flags it.
const endpointTolerance = 1e-6

// Roadmap owns every node and edge created during one solve; they persist
// for the lifetime of the roadmap, with no node removal during a solve.
type Roadmap struct {
	distance config.Distance

	all      []*Node
	initNode *Node
	goals    []*Node
}

// New builds an empty Roadmap using distance for nearest/ball queries.
func New(distance config.Distance) *Roadmap {
	return &Roadmap{distance: distance}
}

// coincidentTolerance bounds how close a proposed configuration must be to an
// existing node before AddNode treats it as that node rather than inserting a
// fresh one. This is how two trees bridge: when one tree's extend lands
// exactly on a configuration the other tree already holds a node for,
// AddNode hands back that existing node instead of a new singleton, so the
// caller's addEdge unions the two components.
const coincidentTolerance = 1e-16

// AddNode returns the existing node whose configuration coincides with q
// (within coincidentTolerance), searching the whole roadmap rather than any
// single component. Otherwise it inserts a fresh node holding q, in a new
// singleton connected component, and returns that.
func (r *Roadmap) AddNode(q config.Configuration) *Node {
	if existing, dist := r.NearestNode(q, nil); existing != nil && dist < coincidentTolerance {
		return existing
	}
	n := &Node{ID: uuid.New(), q: q.Clone(), seq: len(r.all)}
	n.cc = newComponent(n)
	r.all = append(r.all, n)
	return n
}

// SetInitNode designates n as the roadmap's single init node.
func (r *Roadmap) SetInitNode(n *Node) {
	r.initNode = n
}

// InitNode returns the roadmap's init node, or nil if none was set.
func (r *Roadmap) InitNode() *Node {
	return r.initNode
}

// AddGoalNode appends n to the roadmap's goal-node list.
func (r *Roadmap) AddGoalNode(n *Node) {
	r.goals = append(r.goals, n)
}

// GoalNodes returns the roadmap's goal nodes. BiRRT* requires exactly one;
// the roadmap itself does not enforce that count, so other planners sharing
// this structure may use more.
func (r *Roadmap) GoalNodes() []*Node {
	return r.goals
}

// AddEdge inserts a directed edge from -> to carrying p, merging from's and
// to's connected components if they differ. Callers that want bidirectional
// traversal must call AddEdge again for the reverse direction themselves.
func (r *Roadmap) AddEdge(from, to *Node, p path.Path) *Edge {
	e := &Edge{ID: uuid.New(), From: from, To: to, Path: p}
	from.outEdges = append(from.outEdges, e)
	to.inEdges = append(to.inEdges, e)
	union(from.cc, to.cc)
	return e
}

// NearestNode returns the node minimising distance(q, ·) among the nodes of
// cc (or among all nodes, if cc is nil), and that minimal distance. Ties are
// broken by earliest insertion order, which is deterministic for a
// deterministic distance metric. Returns (nil, 0) if the candidate set is
// empty.
func (r *Roadmap) NearestNode(q config.Configuration, cc *ConnectedComponent) (*Node, float64) {
	candidates := r.all
	if cc != nil {
		candidates = cc.Nodes()
	}

	var best *Node
	bestDist := 0.0
	for _, n := range candidates {
		d := r.distance(n.q, q)
		switch {
		case best == nil:
			best, bestDist = n, d
		case d < bestDist:
			best, bestDist = n, d
		case d == bestDist && n.seq < best.seq:
			best, bestDist = n, d
		}
	}
	return best, bestDist
}

// NodesWithinBall returns every node of cc within distance r of q. Order is
// unspecified.
func (r *Roadmap) NodesWithinBall(q config.Configuration, cc *ConnectedComponent, radius float64) []*Node {
	var candidates []*Node
	if cc != nil {
		candidates = cc.Nodes()
	} else {
		candidates = r.all
	}

	out := make([]*Node, 0, len(candidates))
	for _, n := range candidates {
		if r.distance(n.q, q) <= radius {
			out = append(out, n)
		}
	}
	return out
}

// ConnectedComponents returns one ConnectedComponent handle per distinct
// component currently present in the roadmap.
func (r *Roadmap) ConnectedComponents() []*ConnectedComponent {
	seen := make(map[*component]*ConnectedComponent)
	var out []*ConnectedComponent
	for _, n := range r.all {
		root := n.cc.find()
		if _, ok := seen[root]; !ok {
			cc := root.public()
			seen[root] = cc
			out = append(out, cc)
		}
	}
	return out
}

// Nodes returns every node in the roadmap, in insertion order.
func (r *Roadmap) Nodes() []*Node {
	out := make([]*Node, len(r.all))
	copy(out, r.all)
	return out
}

// PathExists reports whether initNode and some goal node currently share a
// connected component.
func (r *Roadmap) PathExists() bool {
	if r.initNode == nil {
		return false
	}
	for _, g := range r.goals {
		if g.ConnectedComponent().Same(r.initNode.ConnectedComponent()) {
			return true
		}
	}
	return false
}

// CheckInvariants verifies the roadmap's structural invariants against its
// current state, aggregating every violation found (rather than stopping at
// the first) via multierr.Append so a caller debugging a corrupted roadmap
// sees the whole picture at once. Returns nil if the roadmap is consistent.
func (r *Roadmap) CheckInvariants() error {
	var errs error

	inEdgesOf := make(map[*Node][]*Edge, len(r.all))
	for _, n := range r.all {
		for _, e := range n.outEdges {
			if r.distance(e.Path.Start(), e.From.q) > endpointTolerance {
				errs = multierr.Append(errs, badEndpointError(e, "start", e.From))
			}
			if r.distance(e.Path.End(), e.To.q) > endpointTolerance {
				errs = multierr.Append(errs, badEndpointError(e, "end", e.To))
			}
			if e.From.cc.find() != e.To.cc.find() {
				errs = multierr.Append(errs, componentMismatchError(e))
			}
			inEdgesOf[e.To] = append(inEdgesOf[e.To], e)
		}
	}

	for _, n := range r.all {
		if len(inEdgesOf[n]) != len(n.inEdges) {
			errs = multierr.Append(errs, inEdgesMismatchError(n, len(inEdgesOf[n]), len(n.inEdges)))
		}
	}

	return errs
}
