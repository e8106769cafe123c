// Package birrtstar implements the bidirectional RRT* planner: two
// simultaneously grown trees over a shared roadmap, rewired as better
// parents are discovered, driven by sample/extend/connect/improve.
package birrtstar

import (
	"fmt"
	"math"

	"github.com/edaniels/golog"

	"github.com/billx09/hpp-core/config"
	"github.com/billx09/hpp-core/path"
	"github.com/billx09/hpp-core/projector"
	"github.com/billx09/hpp-core/roadmap"
	"github.com/billx09/hpp-core/robot"
	"github.com/billx09/hpp-core/shooter"
	"github.com/billx09/hpp-core/validation"
)

// Sentinel thresholds: design constants, not tunable parameters.
const (
	nearestNodeEpsilon = 1e-16
	minPathLength      = 1e-10
)

// ParentMap maps a tree node to the edge it was reached by; the tree's root
// maps to nil ("no edge").
type ParentMap map[*roadmap.Node]*roadmap.Edge

// Planner owns the two-tree BiRRT* state: two roots, two parent maps, and
// the cached tunables derived from Options at StartSolve time.
type Planner struct {
	rm        *roadmap.Roadmap
	distance  config.Distance
	steering  path.SteeringMethod
	projector projector.Projector
	validator validation.Validator
	shooter   shooter.Shooter
	robot     robot.Robot
	logger    golog.Logger

	opts *Options

	roots           [2]*roadmap.Node
	toRoot          [2]ParentMap
	extendMaxLength float64
	gamma           float64
}

// New builds a Planner over an already-populated roadmap (its init node and
// goal nodes must be set before StartSolve). proj may be projector.Identity{}
// for problems with no constraint manifold.
func New(
	rm *roadmap.Roadmap,
	distance config.Distance,
	steering path.SteeringMethod,
	proj projector.Projector,
	validator validation.Validator,
	shoot shooter.Shooter,
	rob robot.Robot,
	opts *Options,
	logger golog.Logger,
) *Planner {
	if opts == nil {
		opts = NewDefaultOptions()
	}
	if proj == nil {
		proj = projector.Identity{}
	}
	return &Planner{
		rm:        rm,
		distance:  distance,
		steering:  steering,
		projector: proj,
		validator: validator,
		shooter:   shoot,
		robot:     rob,
		logger:    logger,
		opts:      opts,
	}
}

// StartSolve validates preconditions and initialises both trees.
func (p *Planner) StartSolve() error {
	if p.rm.InitNode() == nil {
		return ErrNoInitNode
	}
	if len(p.rm.GoalNodes()) != 1 {
		return ErrGoalCount
	}

	p.extendMaxLength = p.opts.ExtendMaxLength(p.robot.NumberDof())
	p.gamma = p.opts.Gamma

	p.roots[0] = p.rm.InitNode()
	p.roots[1] = p.rm.GoalNodes()[0]

	p.toRoot[0] = ParentMap{p.roots[0]: nil}
	p.toRoot[1] = ParentMap{p.roots[1]: nil}

	p.logger.Debugf("birrtstar: startSolve extendMaxLength=%g gamma=%g", p.extendMaxLength, p.gamma)
	return nil
}

// OneStep samples one configuration and advances the planner by exactly one
// iteration of the two-component or one-component phase.
func (p *Planner) OneStep() error {
	q := p.shooter.Shoot()

	if len(p.rm.ConnectedComponents()) == 2 {
		return p.oneStepTwoComponents(q)
	}
	return p.oneStepOneComponent(q)
}

func (p *Planner) oneStepTwoComponents(q config.Configuration) error {
	reached, qReached, err := p.extend(p.roots[0], p.toRoot[0], q)
	if err != nil {
		return err
	}
	if reached {
		// In the unlikely event that extend connected the two trees, one
		// parent map is now stale; abort this step rather than trying to
		// salvage it. No connect call, no swap.
		if p.roots[0].ConnectedComponent().Same(p.roots[1].ConnectedComponent()) {
			p.logger.Debugf("birrtstar: extend accidentally merged the trees, aborting step")
			return nil
		}
		// Tree 1 must steer toward the configuration tree 0 actually
		// reached, not the raw sample: extend may have truncated q to
		// extendMaxLength, and only the truncated endpoint is the node
		// extend just added to the roadmap.
		if _, err := p.connect(p.roots[1], p.toRoot[1], qReached); err != nil {
			return err
		}
	}

	p.swapTrees()
	return nil
}

func (p *Planner) oneStepOneComponent(q config.Configuration) error {
	if _, ok := p.toRoot[1][p.roots[0]]; !ok {
		p.logger.Debugf("birrtstar: rebuilding parent maps after tree merge")
		p.toRoot[0] = computeParentMap(p.roots[0])
		p.toRoot[1] = computeParentMap(p.roots[1])
	}
	_, err := p.improve(q)
	return err
}

func (p *Planner) swapTrees() {
	p.roots[0], p.roots[1] = p.roots[1], p.roots[0]
	p.toRoot[0], p.toRoot[1] = p.toRoot[1], p.toRoot[0]
}

// candidatePath records, per near-node considered in extend/improve,
// whether its buildPath result has already been validated and what that
// path currently is (nil once found invalid, so it is skipped by rewiring).
type candidatePath struct {
	validated bool
	path      path.Path
}

// extend grows target's tree one step toward q, rewiring neighbours along
// the way, and reports whether a new node was added. It also returns the
// configuration actually reached, which may be a truncated prefix of q:
// the caller needs the truncated endpoint, not the raw sample, since that
// endpoint is what gets added to the roadmap.
func (p *Planner) extend(target *roadmap.Node, parentMap ParentMap, q config.Configuration) (bool, config.Configuration, error) {
	cc := target.ConnectedComponent()

	near, dist := p.rm.NearestNode(q, cc)
	if dist < nearestNodeEpsilon {
		return false, q, nil
	}

	pth, err := p.buildPath(near.Q(), q, p.extendMaxLength, true)
	if err != nil {
		return false, q, err
	}
	if pth == nil || pth.Length() < minPathLength {
		return false, q, nil
	}
	q = pth.End()

	radius := p.rewireRadius()
	nearNodes := p.rm.NodesWithinBall(q, cc, radius)

	costQ := p.cost(parentMap, near) + pth.Length()
	candidates := make(map[*roadmap.Node]*candidatePath, len(nearNodes))

	for _, nb := range nearNodes {
		if nb == near {
			candidates[nb] = &candidatePath{validated: true, path: pth}
			continue
		}

		nb2new, err := p.buildPath(nb.Q(), q, -1, false)
		if err != nil {
			return false, q, err
		}
		candidates[nb] = &candidatePath{validated: false, path: nb2new}
		if nb2new == nil {
			continue
		}

		candidateCost := p.cost(parentMap, nb) + nb2new.Length()
		if candidateCost < costQ {
			candidates[nb].validated = true
			if p.fullyValid(nb2new) {
				costQ = candidateCost
				near = nb
				pth = nb2new
			} else {
				candidates[nb].path = nil
			}
		}
	}

	qnew := p.rm.AddNode(q)
	edge := p.rm.AddEdge(near, qnew, pth)
	p.rm.AddEdge(qnew, near, pth.Reverse())
	setParent(parentMap, qnew, edge)

	p.rewire(parentMap, nearNodes, near, qnew, costQ, candidates)

	return true, q, nil
}

// connect repeatedly extends a fresh copy of q toward target's tree until
// the two trees merge or an extend fails outright. The loop terminates on
// "components merged", never on "reached q".
func (p *Planner) connect(target *roadmap.Node, parentMap ParentMap, q config.Configuration) (bool, error) {
	for len(p.rm.ConnectedComponents()) == 2 {
		qCopy := q.Clone()
		reached, _, err := p.extend(target, parentMap, qCopy)
		if err != nil {
			return false, err
		}
		if !reached {
			return false, nil
		}
	}
	return true, nil
}

// improve runs the adopt-and-rewire pass twice, once per tree, sharing a
// single new node across both trees' parent maps. It reuses the original
// (untruncated) q in both passes and carries `near` across the two passes
// rather than resetting it.
func (p *Planner) improve(q config.Configuration) (bool, error) {
	cc := p.roots[0].ConnectedComponent()

	near, dist := p.rm.NearestNode(q, cc)
	if dist < nearestNodeEpsilon {
		return false, nil
	}

	pth, err := p.buildPath(near.Q(), q, p.extendMaxLength, true)
	if err != nil {
		return false, err
	}
	if pth == nil || pth.Length() < minPathLength {
		return false, nil
	}

	radius := p.rewireRadius()
	nearNodes := p.rm.NodesWithinBall(q, cc, radius)

	qnew := p.rm.AddNode(q)

	for k := 0; k < 2; k++ {
		toQnew := pth
		costQ := p.cost(p.toRoot[k], near) + toQnew.Length()
		candidates := make(map[*roadmap.Node]*candidatePath, len(nearNodes))

		for _, nb := range nearNodes {
			if nb == near {
				candidates[nb] = &candidatePath{validated: true, path: toQnew}
				continue
			}

			nb2new, err := p.buildPath(nb.Q(), q, -1, false)
			if err != nil {
				return false, err
			}
			candidates[nb] = &candidatePath{validated: false, path: nb2new}
			if nb2new == nil {
				continue
			}

			candidateCost := p.cost(p.toRoot[k], nb) + nb2new.Length()
			if candidateCost < costQ {
				candidates[nb].validated = true
				if p.fullyValid(nb2new) {
					costQ = candidateCost
					near = nb
					toQnew = nb2new
				} else {
					candidates[nb].path = nil
				}
			}
		}

		edge := p.rm.AddEdge(near, qnew, toQnew)
		p.rm.AddEdge(qnew, near, toQnew.Reverse())
		setParent(p.toRoot[k], qnew, edge)

		p.rewire(p.toRoot[k], nearNodes, near, qnew, costQ, candidates)
	}

	return true, nil
}

// rewire implements the common "adopt a cheaper parent" loop shared by
// extend and each pass of improve.
func (p *Planner) rewire(
	parentMap ParentMap,
	nearNodes []*roadmap.Node,
	near, qnew *roadmap.Node,
	costQ float64,
	candidates map[*roadmap.Node]*candidatePath,
) {
	for _, nb := range nearNodes {
		if nb == near {
			continue
		}
		cand := candidates[nb]
		if cand == nil || cand.path == nil {
			continue
		}

		if costQ+cand.path.Length() >= p.cost(parentMap, nb) {
			continue
		}

		if !cand.validated && !p.fullyValid(cand.path) {
			continue
		}

		p.rm.AddEdge(nb, qnew, cand.path)
		back := p.rm.AddEdge(qnew, nb, cand.path.Reverse())
		setParent(parentMap, nb, back)
	}
}

// rewireRadius computes r = min(gamma * (log n / n)^(1/DOF), extendMaxLength).
func (p *Planner) rewireRadius() float64 {
	n := float64(len(p.rm.Nodes()))
	dof := float64(p.robot.NumberDof())
	r := p.gamma * math.Pow(math.Log(n)/n, 1.0/dof)
	return math.Min(r, p.extendMaxLength)
}

// fullyValid reports whether validating pth returned the path unchanged.
func (p *Planner) fullyValid(pth path.Path) bool {
	_, report, err := p.validator.Validate(pth, false)
	return err == nil && report == nil
}

// buildPath steers from q0 toward q1, applies the constraint projector,
// truncates to maxLength if positive, and optionally validates the result,
// returning the validated prefix.
func (p *Planner) buildPath(q0, q1 config.Configuration, maxLength float64, validatePath bool) (path.Path, error) {
	pth, err := p.steering.Steer(q0, q1)
	if err != nil {
		return nil, err
	}
	if pth == nil {
		return nil, nil
	}

	projected, err := p.projector.Apply(pth)
	if err != nil {
		return nil, err
	}
	if projected == nil {
		return nil, nil
	}
	pth = projected

	if maxLength > 0 && pth.Length() > maxLength {
		t0, _ := pth.TimeRange()
		extracted, err := pth.Extract(t0, t0+maxLength)
		if err != nil {
			return nil, err
		}
		pth = extracted
	}

	if !validatePath {
		return pth, nil
	}

	validPrefix, _, err := p.validator.Validate(pth, false)
	if err != nil {
		return nil, err
	}
	return validPrefix, nil
}

// cost walks n -> parentMap[n].from -> ... until the edge is nil (root),
// summing edge.Length(). A referenced `from` missing from the map is an
// invariant violation and panics with a diagnostic naming the offending node.
func (p *Planner) cost(parentMap ParentMap, n *roadmap.Node) float64 {
	total := 0.0
	cur := n
	for {
		edge, ok := parentMap[cur]
		if !ok {
			panic(fmt.Sprintf("birrtstar: parent map inconsistency: node %s missing parent entry", cur.ID))
		}
		if edge == nil {
			return total
		}
		total += edge.Length()
		cur = edge.From
	}
}

// setParent records parentMap[n] = e, panicking if e's From endpoint is not
// itself already a key of parentMap (the same invariant cost relies on).
func setParent(parentMap ParentMap, n *roadmap.Node, e *roadmap.Edge) {
	if e != nil {
		if _, ok := parentMap[e.From]; !ok {
			panic(fmt.Sprintf("birrtstar: setParent: edge.From %s not present in parent map", e.From.ID))
		}
	}
	parentMap[n] = e
}

// ResultPath extracts the single Path from the roadmap's init node to its
// goal node, for use once PathExists() is true. It rebuilds a fresh parent
// map rooted at init via computeParentMap rather than reusing the planner's
// own toRoot maps, since those are planning-time bookkeeping whose root
// identities swap every step; result extraction wants a stable answer
// independent of which tree happened to be "tree 0" on the last step.
func (p *Planner) ResultPath() (path.Path, bool) {
	init := p.rm.InitNode()
	goals := p.rm.GoalNodes()
	if init == nil || len(goals) != 1 {
		return nil, false
	}
	goal := goals[0]
	if !init.ConnectedComponent().Same(goal.ConnectedComponent()) {
		return nil, false
	}
	if init == goal {
		return path.NewComposite(nil), true
	}

	parentMap := computeParentMap(init)

	var edges []*roadmap.Edge
	cur := goal
	for cur != init {
		edge, ok := parentMap[cur]
		if !ok || edge == nil {
			return nil, false
		}
		edges = append(edges, edge)
		cur = edge.From
	}

	segments := make([]path.Path, len(edges))
	for i, e := range edges {
		segments[len(edges)-1-i] = e.Path
	}
	return path.NewComposite(segments), true
}
