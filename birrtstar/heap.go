package birrtstar

import (
	"container/heap"

	"github.com/billx09/hpp-core/roadmap"
)

// weighedNode is one entry of the parent-map rebuild's priority queue: a
// node, the edge it was reached by (nil for the root), and the cost of
// reaching it along that edge.
type weighedNode struct {
	node   *roadmap.Node
	parent *roadmap.Edge
	cost   float64
}

// nodeQueue is a max-heap on cost: Pop always returns the largest cost
// currently queued. computeParentMap relies on this inverted ordering for
// its upward-relaxation pass; do not "fix" this to a min-heap.
type nodeQueue []*weighedNode

func (q nodeQueue) Len() int            { return len(q) }
func (q nodeQueue) Less(i, j int) bool  { return q[i].cost > q[j].cost }
func (q nodeQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *nodeQueue) Push(x interface{}) { *q = append(*q, x.(*weighedNode)) }
func (q *nodeQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// computeParentMap runs a best-first traversal from root over the roadmap's
// outbound edges, producing a parent map where each reachable node maps to
// the incoming edge along the shortest-length path found from root, and
// root itself maps to nil ("no edge"). A node already visited is overwritten
// when re-popped with a higher stored cost than the just-popped cost
// (upward relaxation); because the queue is a max-heap, the node's true
// shortest-path cost is whatever it holds once the queue drains, not
// whatever it holds after its first visit.
func computeParentMap(root *roadmap.Node) map[*roadmap.Node]*roadmap.Edge {
	visited := make(map[*roadmap.Node]*weighedNode)

	q := &nodeQueue{}
	heap.Init(q)
	heap.Push(q, &weighedNode{node: root, parent: nil, cost: 0})

	for q.Len() > 0 {
		current := heap.Pop(q).(*weighedNode)

		existing, ok := visited[current.node]
		addChildren := false
		if !ok {
			visited[current.node] = current
			addChildren = true
		} else if existing.cost > current.cost {
			existing.cost = current.cost
			existing.parent = current.parent
			addChildren = true
		}

		if !addChildren {
			continue
		}
		for _, edge := range current.node.OutEdges() {
			heap.Push(q, &weighedNode{
				node:   edge.To,
				parent: edge,
				cost:   current.cost + edge.Length(),
			})
		}
	}

	result := make(map[*roadmap.Node]*roadmap.Edge, len(visited))
	for n, wn := range visited {
		result[n] = wn.parent
	}
	return result
}
