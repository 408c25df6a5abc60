package motionplan

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"go.viam.com/motionplan/spatialmath"
)

// RRTPlanner is a single-tree, goal-biased rapidly-exploring random tree
// (spec.md §4.6.1). Call Setup once per problem, then Solve; Solve may be
// called again after a Timeout and continues growing the same tree.
type RRTPlanner struct {
	maxDistance float64
	goalBias    float64
	rng         *rand.Rand
	logger      *zap.SugaredLogger

	space   spatialmath.StateSpace
	goal    Goal
	checker StateValidityChecker
	nodes   []*node
	setup   bool
}

// NewRRTPlanner constructs an RRT planner. maxDistance caps the length of
// any single tree-growth step and must be positive; goalBias is the
// per-iteration probability of sampling the goal instead of the space and
// must lie in [0, 1).
func NewRRTPlanner(maxDistance, goalBias float64, config PlannerConfig) (*RRTPlanner, error) {
	if maxDistance <= 0 {
		return nil, ErrInvalidBounds
	}
	if goalBias < 0 || goalBias >= 1 {
		return nil, ErrInvalidBounds
	}
	return &RRTPlanner{
		maxDistance: maxDistance,
		goalBias:    goalBias,
		rng:         config.rng(),
		logger:      config.logger(),
	}, nil
}

// Setup stores the problem and validity checker and clears any tree from a
// previous problem. It must be called before Solve.
func (p *RRTPlanner) Setup(pd *ProblemDefinition, checker StateValidityChecker) {
	p.space = pd.Space()
	p.goal = pd.Goal()
	p.checker = checker
	start := pd.StartStates()[0]
	p.nodes = []*node{{state: start, parent: -1}}
	p.setup = true
}

// Solve grows the tree until the goal is reached, timeout elapses, or the
// planner gives up on a malformed start state.
func (p *RRTPlanner) Solve(timeout time.Duration) (*Path, error) {
	if !p.setup {
		return nil, errPlannerUninitialised()
	}
	start := p.nodes[0].state
	if !p.space.SatisfiesBounds(start) || !safeIsValid(p.checker, start) {
		return nil, errInvalidStartState(nil)
	}
	if p.goal.IsSatisfied(start) {
		return newPath([]spatialmath.State{start}), nil
	}

	goalSampler, _ := p.goal.(GoalSampleable)
	deadline := time.Now().Add(timeout)

	for {
		if time.Now().After(deadline) {
			p.logger.Debugw("rrt timeout", "nodes", len(p.nodes))
			return nil, errTimeout()
		}

		sample, err := p.sample(goalSampler)
		if err != nil {
			continue
		}

		nearIdx := nearestNeighbor(p.space, p.nodes, sample)
		near := p.nodes[nearIdx].state
		dist := p.space.Distance(near, sample)
		if dist == 0 {
			continue
		}
		step := p.maxDistance / dist
		if step > 1 {
			step = 1
		}
		newState := near.Clone()
		p.space.Interpolate(near, sample, step, newState)

		if !p.space.SatisfiesBounds(newState) || !safeIsValid(p.checker, newState) {
			continue
		}
		if !motionValid(p.space, p.checker, near, newState) {
			continue
		}

		p.nodes = append(p.nodes, &node{state: newState, parent: nearIdx})

		if p.goal.IsSatisfied(newState) {
			path := reconstructPath(p.nodes, len(p.nodes)-1)
			p.logger.Infow("rrt solved", "nodes", len(p.nodes), "path_id", path.ID())
			return path, nil
		}
	}
}

func (p *RRTPlanner) sample(goalSampler GoalSampleable) (spatialmath.State, error) {
	if goalSampler != nil && p.rng.Float64() < p.goalBias {
		s, err := goalSampler.SampleGoal(p.rng)
		if err == nil {
			return s, nil
		}
	}
	return p.space.SampleUniform(p.rng)
}

// reconstructPath walks parent links from nodes[idx] back to the root and
// reverses, yielding a path ordered start -> goal.
func reconstructPath(nodes []*node, idx int) *Path {
	var states []spatialmath.State
	for i := idx; i != -1; i = nodes[i].parent {
		states = append(states, nodes[i].state)
	}
	for l, r := 0, len(states)-1; l < r; l, r = l+1, r-1 {
		states[l], states[r] = states[r], states[l]
	}
	return newPath(states)
}
