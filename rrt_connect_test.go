package motionplan

import (
	"testing"
	"time"

	"go.viam.com/test"

	"go.viam.com/motionplan/spatialmath"
)

func TestRRTConnectNarrowGap(t *testing.T) {
	space := new2DSpace(t, 5)
	start := spatialmath.NewRealVectorState([]float64{-2, 0})
	target := spatialmath.NewRealVectorState([]float64{2, 0})
	goal, err := NewGoalRegion(space, target, 0.3)
	test.That(t, err, test.ShouldBeNil)
	pd, err := NewProblemDefinition(space, []spatialmath.State{start}, goal)
	test.That(t, err, test.ShouldBeNil)

	planner, err := NewRRTConnectPlanner(0.5, PlannerConfig{Seed: 11})
	test.That(t, err, test.ShouldBeNil)
	err = planner.Setup(pd, boxObstacle2D{xBounds: rInterval(-0.5, 0.5), yBounds: rInterval(-2, 2)})
	test.That(t, err, test.ShouldBeNil)

	path, err := planner.Solve(2 * time.Second)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, path.Len(), test.ShouldBeGreaterThanOrEqualTo, 3)

	states := path.States()
	first := states[0].(*spatialmath.RealVectorState)
	test.That(t, first.Values[0], test.ShouldAlmostEqual, -2)
	last := states[len(states)-1]
	test.That(t, space.Distance(last, target), test.ShouldBeLessThanOrEqualTo, 0.3)
}

func TestRRTConnectRejectsNonSampleableGoal(t *testing.T) {
	space := new2DSpace(t, 5)
	start := spatialmath.NewRealVectorState([]float64{0, 0})
	goal := nonSampleableGoal{}
	pd, err := NewProblemDefinition(space, []spatialmath.State{start}, goal)
	test.That(t, err, test.ShouldBeNil)

	planner, err := NewRRTConnectPlanner(0.5, PlannerConfig{})
	test.That(t, err, test.ShouldBeNil)
	err = planner.Setup(pd, alwaysValid{})
	test.That(t, err, test.ShouldNotBeNil)
}

type nonSampleableGoal struct{}

func (nonSampleableGoal) IsSatisfied(spatialmath.State) bool { return false }
