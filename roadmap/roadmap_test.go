package roadmap

import (
	"testing"

	"go.viam.com/test"

	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/path"
)

func TestAddNodeSingletonComponent(t *testing.T) {
	rm := New(config.L2Distance)
	a := rm.AddNode(config.Configuration{0, 0})
	b := rm.AddNode(config.Configuration{1, 0})

	test.That(t, a.ConnectedComponent().Same(b.ConnectedComponent()), test.ShouldBeFalse)
	test.That(t, a.ConnectedComponent().Size(), test.ShouldEqual, 1)
}

func TestAddEdgeMergesComponents(t *testing.T) {
	rm := New(config.L2Distance)
	a := rm.AddNode(config.Configuration{0, 0})
	b := rm.AddNode(config.Configuration{1, 0})

	p := path.NewStraightPath(a.Q(), b.Q(), 1, 0, 1, nil)
	rm.AddEdge(a, b, p)

	test.That(t, a.ConnectedComponent().Same(b.ConnectedComponent()), test.ShouldBeTrue)
	test.That(t, a.ConnectedComponent().Size(), test.ShouldEqual, 2)
	test.That(t, len(a.OutEdges()), test.ShouldEqual, 1)
	test.That(t, len(b.InEdges()), test.ShouldEqual, 1)
}

func TestAddEdgeRequiresExplicitReverse(t *testing.T) {
	rm := New(config.L2Distance)
	a := rm.AddNode(config.Configuration{0, 0})
	b := rm.AddNode(config.Configuration{1, 0})

	p := path.NewStraightPath(a.Q(), b.Q(), 1, 0, 1, nil)
	rm.AddEdge(a, b, p)

	test.That(t, len(a.InEdges()), test.ShouldEqual, 0)
	test.That(t, len(b.OutEdges()), test.ShouldEqual, 0)

	rm.AddEdge(b, a, p.Reverse())
	test.That(t, len(a.InEdges()), test.ShouldEqual, 1)
	test.That(t, len(b.OutEdges()), test.ShouldEqual, 1)
}

func TestNearestNodeTieBreaksByInsertionOrder(t *testing.T) {
	rm := New(config.L2Distance)
	first := rm.AddNode(config.Configuration{0, 1})
	rm.AddNode(config.Configuration{0, -1})

	nearest, dist := rm.NearestNode(config.Configuration{0, 0}, nil)
	test.That(t, nearest, test.ShouldEqual, first)
	test.That(t, dist, test.ShouldAlmostEqual, 1.0)
}

func TestNearestNodeRestrictedToComponent(t *testing.T) {
	rm := New(config.L2Distance)
	a := rm.AddNode(config.Configuration{0, 0})
	far := rm.AddNode(config.Configuration{10, 0})
	p := path.NewStraightPath(a.Q(), far.Q(), 10, 0, 10, nil)
	rm.AddEdge(a, far, p)
	rm.AddEdge(far, a, p.Reverse())

	rm.AddNode(config.Configuration{0.1, 0})

	nearest, _ := rm.NearestNode(config.Configuration{0, 0}, a.ConnectedComponent())
	test.That(t, nearest, test.ShouldEqual, a)
}

func TestNodesWithinBall(t *testing.T) {
	rm := New(config.L2Distance)
	a := rm.AddNode(config.Configuration{0, 0})
	b := rm.AddNode(config.Configuration{0.5, 0})
	rm.AddNode(config.Configuration{5, 0})
	rm.AddEdge(a, b, path.NewStraightPath(a.Q(), b.Q(), 0.5, 0, 0.5, nil))

	within := rm.NodesWithinBall(config.Configuration{0, 0}, a.ConnectedComponent(), 1.0)
	test.That(t, len(within), test.ShouldEqual, 2)
}

func TestPathExists(t *testing.T) {
	rm := New(config.L2Distance)
	initNode := rm.AddNode(config.Configuration{0, 0})
	goalNode := rm.AddNode(config.Configuration{1, 0})
	rm.SetInitNode(initNode)
	rm.AddGoalNode(goalNode)

	test.That(t, rm.PathExists(), test.ShouldBeFalse)

	p := path.NewStraightPath(initNode.Q(), goalNode.Q(), 1, 0, 1, nil)
	rm.AddEdge(initNode, goalNode, p)
	rm.AddEdge(goalNode, initNode, p.Reverse())

	test.That(t, rm.PathExists(), test.ShouldBeTrue)
}

func TestConnectedComponentsCount(t *testing.T) {
	rm := New(config.L2Distance)
	a := rm.AddNode(config.Configuration{0, 0})
	b := rm.AddNode(config.Configuration{1, 0})
	rm.AddNode(config.Configuration{2, 0})

	test.That(t, len(rm.ConnectedComponents()), test.ShouldEqual, 3)

	p := path.NewStraightPath(a.Q(), b.Q(), 1, 0, 1, nil)
	rm.AddEdge(a, b, p)
	rm.AddEdge(b, a, p.Reverse())

	test.That(t, len(rm.ConnectedComponents()), test.ShouldEqual, 2)
}

func TestCheckInvariantsCleanRoadmap(t *testing.T) {
	rm := New(config.L2Distance)
	a := rm.AddNode(config.Configuration{0, 0})
	b := rm.AddNode(config.Configuration{1, 0})
	p := path.NewStraightPath(a.Q(), b.Q(), 1, 0, 1, nil)
	rm.AddEdge(a, b, p)
	rm.AddEdge(b, a, p.Reverse())

	test.That(t, rm.CheckInvariants(), test.ShouldBeNil)
}

func TestCheckInvariantsCatchesBadEndpoint(t *testing.T) {
	rm := New(config.L2Distance)
	a := rm.AddNode(config.Configuration{0, 0})
	b := rm.AddNode(config.Configuration{1, 0})
	// path endpoints don't match either node's configuration.
	mismatched := path.NewStraightPath(config.Configuration{5, 5}, config.Configuration{6, 6}, 1, 0, 1, nil)
	rm.AddEdge(a, b, mismatched)

	test.That(t, rm.CheckInvariants(), test.ShouldNotBeNil)
}
