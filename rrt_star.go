package motionplan

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"go.viam.com/motionplan/spatialmath"
)

// RRTStarPlanner is the asymptotically-optimal rewiring variant of RRT
// (spec.md §4.6.3): every insertion picks the cheapest valid parent within
// searchRadius, then rewires nearby nodes through the new one when that
// lowers their cost, propagating the cost delta to their descendants.
type RRTStarPlanner struct {
	maxDistance  float64
	goalBias     float64
	searchRadius float64
	rng          *rand.Rand
	logger       *zap.SugaredLogger

	space   spatialmath.StateSpace
	goal    Goal
	checker StateValidityChecker

	nodes    []*node
	children [][]int

	bestGoalIdx  int
	bestGoalCost float64
	goalNodes    []int

	setup bool
}

// NewRRTStarPlanner constructs an RRT* planner. maxDistance caps the
// steering step, goalBias is the per-iteration probability of steering
// toward a goal sample, and searchRadius bounds the parent/rewire
// neighbourhood.
func NewRRTStarPlanner(maxDistance, goalBias, searchRadius float64, config PlannerConfig) (*RRTStarPlanner, error) {
	if maxDistance <= 0 || searchRadius <= 0 {
		return nil, ErrInvalidBounds
	}
	if goalBias < 0 || goalBias >= 1 {
		return nil, ErrInvalidBounds
	}
	return &RRTStarPlanner{
		maxDistance:  maxDistance,
		goalBias:     goalBias,
		searchRadius: searchRadius,
		rng:          config.rng(),
		logger:       config.logger(),
	}, nil
}

// Setup stores the problem and resets the tree. It must be called before
// Solve.
func (p *RRTStarPlanner) Setup(pd *ProblemDefinition, checker StateValidityChecker) {
	p.space = pd.Space()
	p.goal = pd.Goal()
	p.checker = checker
	start := pd.StartStates()[0]
	p.nodes = []*node{{state: start, parent: -1, cost: 0}}
	p.children = [][]int{nil}
	p.bestGoalIdx = -1
	p.goalNodes = nil
	p.setup = true
}

// Solve grows the tree, rewiring as it goes, until timeout. It returns the
// cheapest goal-satisfying path found so far on timeout, or NoSolutionFound
// if none was ever found.
func (p *RRTStarPlanner) Solve(timeout time.Duration) (*Path, error) {
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
			return p.best()
		}
		p.step(goalSampler)
	}
}

func (p *RRTStarPlanner) best() (*Path, error) {
	if p.bestGoalIdx == -1 {
		return nil, errNoSolutionFound()
	}
	path := reconstructPath(p.nodes, p.bestGoalIdx)
	p.logger.Infow("rrt* timeout, returning best", "cost", p.bestGoalCost, "nodes", len(p.nodes), "path_id", path.ID())
	return path, nil
}

func (p *RRTStarPlanner) step(goalSampler GoalSampleable) {
	sample, err := p.sample(goalSampler)
	if err != nil {
		return
	}

	nearIdx := nearestNeighbor(p.space, p.nodes, sample)
	near := p.nodes[nearIdx].state
	dist := p.space.Distance(near, sample)
	if dist == 0 {
		return
	}
	step := p.maxDistance / dist
	if step > 1 {
		step = 1
	}
	newState := near.Clone()
	p.space.Interpolate(near, sample, step, newState)

	if !p.space.SatisfiesBounds(newState) || !safeIsValid(p.checker, newState) {
		return
	}

	neighbors := withinRadius(p.space, p.nodes, newState, p.searchRadius)
	var candidates []int
	for _, i := range neighbors {
		if motionValid(p.space, p.checker, p.nodes[i].state, newState) {
			candidates = append(candidates, i)
		}
	}
	if len(candidates) == 0 {
		if !motionValid(p.space, p.checker, near, newState) {
			return
		}
		candidates = []int{nearIdx}
	}

	parentIdx := candidates[0]
	bestCost := p.nodes[parentIdx].cost + p.space.Distance(p.nodes[parentIdx].state, newState)
	for _, i := range candidates[1:] {
		c := p.nodes[i].cost + p.space.Distance(p.nodes[i].state, newState)
		if c < bestCost {
			bestCost = c
			parentIdx = i
		}
	}

	newIdx := len(p.nodes)
	p.nodes = append(p.nodes, &node{state: newState, parent: parentIdx, cost: bestCost})
	p.children = append(p.children, nil)
	p.children[parentIdx] = append(p.children[parentIdx], newIdx)

	for _, j := range candidates {
		if j == parentIdx {
			continue
		}
		candidateCost := bestCost + p.space.Distance(newState, p.nodes[j].state)
		if candidateCost < p.nodes[j].cost && motionValid(p.space, p.checker, newState, p.nodes[j].state) {
			oldParent := p.nodes[j].parent
			p.children[oldParent] = removeChild(p.children[oldParent], j)
			delta := candidateCost - p.nodes[j].cost
			p.nodes[j].parent = newIdx
			p.nodes[j].cost = candidateCost
			p.children[newIdx] = append(p.children[newIdx], j)
			p.propagateCost(j, delta)
		}
	}

	if p.goal.IsSatisfied(newState) {
		p.goalNodes = append(p.goalNodes, newIdx)
	}
	// Rewiring can lower the cost of earlier goal nodes, so the best is
	// re-chosen from every goal node's current cost.
	p.bestGoalIdx = -1
	for _, g := range p.goalNodes {
		if p.bestGoalIdx == -1 || p.nodes[g].cost < p.bestGoalCost {
			p.bestGoalIdx, p.bestGoalCost = g, p.nodes[g].cost
		}
	}
}

func (p *RRTStarPlanner) propagateCost(idx int, delta float64) {
	for _, c := range p.children[idx] {
		p.nodes[c].cost += delta
		p.propagateCost(c, delta)
	}
}

func (p *RRTStarPlanner) sample(goalSampler GoalSampleable) (spatialmath.State, error) {
	if goalSampler != nil && p.rng.Float64() < p.goalBias {
		s, err := goalSampler.SampleGoal(p.rng)
		if err == nil {
			return s, nil
		}
	}
	return p.space.SampleUniform(p.rng)
}

func removeChild(children []int, idx int) []int {
	for i, c := range children {
		if c == idx {
			return append(children[:i], children[i+1:]...)
		}
	}
	return children
}
