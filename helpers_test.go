package motionplan

import (
	"testing"

	"github.com/golang/geo/r1"

	"go.viam.com/motionplan/spatialmath"
)

// alwaysValid reports every state as collision-free.
type alwaysValid struct{}

func (alwaysValid) IsValid(spatialmath.State) bool { return true }

// boxObstacle2D treats a single axis-aligned rectangle in a 2-D RealVector
// space as the only obstacle.
type boxObstacle2D struct {
	xBounds, yBounds r1.Interval
}

func (b boxObstacle2D) IsValid(state spatialmath.State) bool {
	v := state.(*spatialmath.RealVectorState).Values
	x, y := v[0], v[1]
	inBox := x >= b.xBounds.Lo && x <= b.xBounds.Hi && y >= b.yBounds.Lo && y <= b.yBounds.Hi
	return !inBox
}

func rInterval(lo, hi float64) r1.Interval {
	return r1.Interval{Lo: lo, Hi: hi}
}

func new2DSpace(t *testing.T, bound float64) spatialmath.StateSpace {
	t.Helper()
	bounds := []*r1.Interval{{Lo: -bound, Hi: bound}, {Lo: -bound, Hi: bound}}
	sp, err := spatialmath.NewRealVectorSpace(2, bounds)
	if err != nil {
		t.Fatalf("new2DSpace: %v", err)
	}
	return sp
}
