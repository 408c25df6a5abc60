package motionplan

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"go.viam.com/motionplan/spatialmath"
)

// extendStatus is the outcome of one Extend step toward a target (spec.md
// §4.6.2).
type extendStatus int

const (
	trapped extendStatus = iota
	advanced
	reached
)

// rrtConnectTree is one of the two trees RRTConnectPlanner grows. isStart
// tags which end of the problem it is rooted at, so the final stitch can
// orient the path start -> goal regardless of which tree played "Ta" in the
// iteration that found the connection.
type rrtConnectTree struct {
	nodes   []*node
	isStart bool
}

// RRTConnectPlanner is the bidirectional variant of RRT: a tree grown from
// the start and a tree grown from a goal sample, each alternately extended
// and greedily connected toward the other (spec.md §4.6.2). It requires a
// GoalSampleable goal.
type RRTConnectPlanner struct {
	maxDistance float64
	rng         *rand.Rand
	logger      *zap.SugaredLogger

	space       spatialmath.StateSpace
	goal        Goal
	goalSampler GoalSampleable
	checker     StateValidityChecker

	trees [2]*rrtConnectTree
	aIdx  int
	setup bool
}

// NewRRTConnectPlanner constructs a bidirectional RRT planner. maxDistance
// caps the length of any single Extend step and must be positive.
func NewRRTConnectPlanner(maxDistance float64, config PlannerConfig) (*RRTConnectPlanner, error) {
	if maxDistance <= 0 {
		return nil, ErrInvalidBounds
	}
	return &RRTConnectPlanner{
		maxDistance: maxDistance,
		rng:         config.rng(),
		logger:      config.logger(),
	}, nil
}

// Setup stores the problem, resets both trees, and records the goal as
// GoalSampleable. It must be called before Solve.
func (p *RRTConnectPlanner) Setup(pd *ProblemDefinition, checker StateValidityChecker) error {
	sampler, ok := pd.Goal().(GoalSampleable)
	if !ok {
		return ErrGoalRegionUnsatisfiable
	}
	p.space = pd.Space()
	p.goal = pd.Goal()
	p.goalSampler = sampler
	p.checker = checker
	start := pd.StartStates()[0]
	p.trees[0] = &rrtConnectTree{nodes: []*node{{state: start, parent: -1}}, isStart: true}
	p.trees[1] = &rrtConnectTree{isStart: false}
	p.aIdx = 0
	p.setup = true
	return nil
}

// Solve alternately extends the two trees toward random samples and toward
// each other until they meet, timeout elapses, or the start state is found
// invalid.
func (p *RRTConnectPlanner) Solve(timeout time.Duration) (*Path, error) {
	if !p.setup {
		return nil, errPlannerUninitialised()
	}
	start := p.trees[0].nodes[0].state
	if !p.space.SatisfiesBounds(start) || !safeIsValid(p.checker, start) {
		return nil, errInvalidStartState(nil)
	}
	if p.goal.IsSatisfied(start) {
		return newPath([]spatialmath.State{start}), nil
	}

	deadline := time.Now().Add(timeout)
	for {
		if time.Now().After(deadline) {
			return nil, errTimeout()
		}

		ta := p.trees[p.aIdx]
		tb := p.trees[1-p.aIdx]

		qRand, err := p.space.SampleUniform(p.rng)
		if err != nil {
			p.aIdx = 1 - p.aIdx
			continue
		}

		status, qNewIdx := p.extend(ta, qRand)
		if status != trapped {
			qNew := ta.nodes[qNewIdx].state
			statusB, qNewIdxB := p.connect(tb, qNew)
			if statusB == reached {
				var startPath, goalPath []spatialmath.State
				if ta.isStart {
					startPath = pathFromRoot(ta.nodes, qNewIdx)
					goalPath = pathFromRoot(tb.nodes, qNewIdxB)
				} else {
					startPath = pathFromRoot(tb.nodes, qNewIdxB)
					goalPath = pathFromRoot(ta.nodes, qNewIdx)
				}
				reverseStates(goalPath)
				full := append(startPath, goalPath[1:]...)
				path := newPath(full)
				p.logger.Infow("rrt-connect solved", "nodes_a", len(p.trees[0].nodes), "nodes_b", len(p.trees[1].nodes), "path_id", path.ID())
				return path, nil
			}
		}

		p.aIdx = 1 - p.aIdx
	}
}

// extend grows tree by at most maxDistance toward target, lazily drawing a
// goal sample as the tree's root the first time a goal-rooted tree is
// grown.
func (p *RRTConnectPlanner) extend(tree *rrtConnectTree, target spatialmath.State) (extendStatus, int) {
	if len(tree.nodes) == 0 {
		root, err := p.goalSampler.SampleGoal(p.rng)
		if err != nil || !p.space.SatisfiesBounds(root) || !safeIsValid(p.checker, root) {
			return trapped, -1
		}
		tree.nodes = append(tree.nodes, &node{state: root, parent: -1})
	}

	nearIdx := nearestNeighbor(p.space, tree.nodes, target)
	near := tree.nodes[nearIdx].state
	dist := p.space.Distance(near, target)
	if dist == 0 {
		return reached, nearIdx
	}

	step := p.maxDistance / dist
	arrived := step >= 1
	if arrived {
		step = 1
	}
	newState := near.Clone()
	p.space.Interpolate(near, target, step, newState)

	if !p.space.SatisfiesBounds(newState) || !safeIsValid(p.checker, newState) {
		return trapped, -1
	}
	if !motionValid(p.space, p.checker, near, newState) {
		return trapped, -1
	}

	tree.nodes = append(tree.nodes, &node{state: newState, parent: nearIdx})
	idx := len(tree.nodes) - 1
	if arrived {
		return reached, idx
	}
	return advanced, idx
}

// connect repeatedly extends tree toward target until it arrives or gets
// blocked.
func (p *RRTConnectPlanner) connect(tree *rrtConnectTree, target spatialmath.State) (extendStatus, int) {
	for {
		status, idx := p.extend(tree, target)
		if status != advanced {
			return status, idx
		}
	}
}

// pathFromRoot walks parent links from nodes[idx] to the root and returns
// them in root -> idx order.
func pathFromRoot(nodes []*node, idx int) []spatialmath.State {
	var states []spatialmath.State
	for i := idx; i != -1; i = nodes[i].parent {
		states = append(states, nodes[i].state)
	}
	reverseStates(states)
	return states
}

func reverseStates(states []spatialmath.State) {
	for l, r := 0, len(states)-1; l < r; l, r = l+1, r-1 {
		states[l], states[r] = states[r], states[l]
	}
}
