package motionplan

import (
	"container/heap"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"go.viam.com/motionplan/spatialmath"
)

// prmEdge is one undirected roadmap connection; weight is the edge's
// space.Distance at the time it was added.
type prmEdge struct {
	to     int
	weight float64
}

// PRMPlanner builds a roadmap of validated milestones (Phase A) and answers
// queries against it with Dijkstra's shortest path (Phase B), resolving the
// query-phase behaviour spec.md §9 leaves as an open question (spec.md
// §4.6.4). Unlike the tree planners, the roadmap persists across Solve
// calls and grows incrementally.
type PRMPlanner struct {
	numSamples       int
	connectionRadius float64
	rng              *rand.Rand
	logger           *zap.SugaredLogger

	space   spatialmath.StateSpace
	goal    Goal
	checker StateValidityChecker
	start   spatialmath.State

	milestones []*node
	adjacency  [][]prmEdge

	setup bool
}

// NewPRMPlanner constructs a PRM planner. numSamples is how many milestones
// Solve grows the roadmap by the first time it is called; connectionRadius
// bounds which milestone pairs are tested for a valid edge.
func NewPRMPlanner(numSamples int, connectionRadius float64, config PlannerConfig) (*PRMPlanner, error) {
	if numSamples <= 0 || connectionRadius <= 0 {
		return nil, ErrInvalidBounds
	}
	return &PRMPlanner{
		numSamples:       numSamples,
		connectionRadius: connectionRadius,
		rng:              config.rng(),
		logger:           config.logger(),
	}, nil
}

// Setup stores the problem and clears any roadmap from a previous problem.
// It must be called before Solve.
func (p *PRMPlanner) Setup(pd *ProblemDefinition, checker StateValidityChecker) {
	p.space = pd.Space()
	p.goal = pd.Goal()
	p.checker = checker
	p.start = pd.StartStates()[0]
	p.milestones = nil
	p.adjacency = nil
	p.setup = true
}

// GrowRoadmap adds up to n more valid milestones to the roadmap, connecting
// each to every existing milestone within connectionRadius whose edge is
// motion-valid. It can be called directly to pre-build a roadmap Solve will
// reuse across queries.
func (p *PRMPlanner) GrowRoadmap(n int, deadline time.Time) {
	added := 0
	for added < n {
		if !deadline.IsZero() && time.Now().After(deadline) {
			return
		}
		s, err := p.space.SampleUniform(p.rng)
		if err != nil {
			continue
		}
		if !safeIsValid(p.checker, s) {
			continue
		}
		p.addMilestone(s)
		added++
	}
}

// addMilestone appends s as a new milestone and wires it to every existing
// milestone within connectionRadius, returning its index.
func (p *PRMPlanner) addMilestone(s spatialmath.State) int {
	idx := len(p.milestones)
	p.milestones = append(p.milestones, &node{state: s, parent: -1})
	p.adjacency = append(p.adjacency, nil)
	for j := 0; j < idx; j++ {
		other := p.milestones[j].state
		d := p.space.Distance(other, s)
		if d <= p.connectionRadius && motionValid(p.space, p.checker, other, s) {
			p.adjacency[idx] = append(p.adjacency[idx], prmEdge{to: j, weight: d})
			p.adjacency[j] = append(p.adjacency[j], prmEdge{to: idx, weight: d})
		}
	}
	return idx
}

// Solve grows the roadmap to numSamples milestones if it is still empty,
// connects the start and any reachable goal samples into it, and runs
// Dijkstra from start to the nearest connected goal milestone.
func (p *PRMPlanner) Solve(timeout time.Duration) (*Path, error) {
	if !p.setup {
		return nil, errPlannerUninitialised()
	}
	if !p.space.SatisfiesBounds(p.start) || !safeIsValid(p.checker, p.start) {
		return nil, errInvalidStartState(nil)
	}
	deadline := time.Now().Add(timeout)

	if len(p.milestones) == 0 {
		p.GrowRoadmap(p.numSamples, deadline)
	}

	startIdx := p.addMilestone(p.start)

	var goalIndices []int
	for i, m := range p.milestones {
		if i == startIdx {
			continue
		}
		if p.goal.IsSatisfied(m.state) {
			goalIndices = append(goalIndices, i)
		}
	}
	if sampler, ok := p.goal.(GoalSampleable); ok {
		if s, err := sampler.SampleGoal(p.rng); err == nil && safeIsValid(p.checker, s) {
			goalIndices = append(goalIndices, p.addMilestone(s))
		}
	}
	if len(goalIndices) == 0 {
		return nil, errNoSolutionFound()
	}

	dist, prev := dijkstra(p.adjacency, startIdx)

	best := -1
	for _, g := range goalIndices {
		if math.IsInf(dist[g], 1) {
			continue
		}
		if best == -1 || dist[g] < dist[best] {
			best = g
		}
	}
	if best == -1 {
		return nil, errNoSolutionFound()
	}

	var states []spatialmath.State
	for i := best; i != -1; i = prev[i] {
		states = append(states, p.milestones[i].state)
	}
	reverseStates(states)
	path := newPath(states)
	p.logger.Infow("prm solved", "milestones", len(p.milestones), "cost", dist[best], "path_id", path.ID())
	return path, nil
}

// dijkstra runs single-source shortest path from startIdx over the
// roadmap's adjacency, in the shape of a textbook binary-heap Dijkstra: a
// min-heap of (index, distance) pairs, lazily skipping entries that were
// already finalized with a shorter distance.
func dijkstra(adjacency [][]prmEdge, startIdx int) (dist []float64, prev []int) {
	n := len(adjacency)
	dist = make([]float64, n)
	prev = make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		prev[i] = -1
	}
	dist[startIdx] = 0

	pq := &dijkstraQueue{{idx: startIdx, dist: 0}}
	heap.Init(pq)
	visited := make([]bool, n)

	for pq.Len() > 0 {
		u := heap.Pop(pq).(dijkstraItem)
		if visited[u.idx] {
			continue
		}
		visited[u.idx] = true
		for _, e := range adjacency[u.idx] {
			if visited[e.to] {
				continue
			}
			nd := dist[u.idx] + e.weight
			if nd < dist[e.to] {
				dist[e.to] = nd
				prev[e.to] = u.idx
				heap.Push(pq, dijkstraItem{idx: e.to, dist: nd})
			}
		}
	}
	return dist, prev
}

type dijkstraItem struct {
	idx  int
	dist float64
}

type dijkstraQueue []dijkstraItem

func (q dijkstraQueue) Len() int            { return len(q) }
func (q dijkstraQueue) Less(i, j int) bool  { return q[i].dist < q[j].dist }
func (q dijkstraQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *dijkstraQueue) Push(x interface{}) { *q = append(*q, x.(dijkstraItem)) }
func (q *dijkstraQueue) Pop() interface{} {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
