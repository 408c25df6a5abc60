package motionplan

import "go.viam.com/motionplan/spatialmath"

// node is a single vertex in a planner's tree or roadmap. Nodes reference
// their parent by index into a contiguous arena rather than by pointer, so
// the graph has no cycles and no separate ownership bookkeeping (spec.md
// §9). parent is -1 for a root. cost is only meaningful for RRT*; RRT and
// RRT-Connect leave it at zero.
type node struct {
	state  spatialmath.State
	parent int
	cost   float64
}

// nearestNeighbor does a linear scan over nodes for the one closest to
// target under space.Distance, breaking ties toward the earliest-inserted
// (lowest-index) candidate (spec.md §4.5). nodes must be non-empty.
func nearestNeighbor(space spatialmath.StateSpace, nodes []*node, target spatialmath.State) int {
	best := -1
	bestDist := 0.0
	for i, n := range nodes {
		d := space.Distance(n.state, target)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// withinRadius returns the indices of every node within radius of target
// under space.Distance, in ascending (insertion) order.
func withinRadius(space spatialmath.StateSpace, nodes []*node, target spatialmath.State, radius float64) []int {
	var out []int
	for i, n := range nodes {
		if space.Distance(n.state, target) <= radius {
			out = append(out, i)
		}
	}
	return out
}
