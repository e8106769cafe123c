package roadmap

import "github.com/pkg/errors"

func badEndpointError(e *Edge, which string, n *Node) error {
	return errors.Errorf("roadmap: edge %s %s endpoint does not match node %s's configuration", e.ID, which, n.ID)
}

func componentMismatchError(e *Edge) error {
	return errors.Errorf("roadmap: edge %s connects nodes %s and %s in different connected components", e.ID, e.From.ID, e.To.ID)
}

func inEdgesMismatchError(n *Node, wantCount, gotCount int) error {
	return errors.Errorf("roadmap: node %s has %d recorded inEdges, but %d out-edges reference it as their target", n.ID, gotCount, wantCount)
}
