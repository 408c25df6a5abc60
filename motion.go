package motionplan

import (
	"math"

	"go.viam.com/motionplan/spatialmath"
)

// motionValid discretises the edge (a, b) into n = max(1, ceil(distance/L))
// segments, where L is space's longest valid segment length, and checks
// every interior/ end sample with checker (spec.md §4.4). a is assumed
// already validated by its prior insertion into the graph, so only the n
// interpolated points from i=1..n are tested. out is reused across the
// whole edge to avoid per-segment allocation, since this loop dominates
// planner runtime.
func motionValid(space spatialmath.StateSpace, checker StateValidityChecker, a, b spatialmath.State) bool {
	dist := space.Distance(a, b)
	l := space.LongestValidSegmentLength()
	n := 1
	if l > 0 && !math.IsInf(l, 1) {
		n = int(math.Ceil(dist / l))
		if n < 1 {
			n = 1
		}
	}

	out := a.Clone()
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		space.Interpolate(a, b, t, out)
		if !safeIsValid(checker, out) {
			return false
		}
	}
	return true
}
