package motionplan

import (
	"math"
	"testing"
	"time"

	"go.viam.com/test"

	"go.viam.com/motionplan/spatialmath"
)

func TestRRTStarConvergesNearOptimal(t *testing.T) {
	space := new2DSpace(t, 5)
	start := spatialmath.NewRealVectorState([]float64{0, 0})
	target := spatialmath.NewRealVectorState([]float64{5, 5})
	goal, err := NewGoalRegion(space, target, 0.1)
	test.That(t, err, test.ShouldBeNil)
	pd, err := NewProblemDefinition(space, []spatialmath.State{start}, goal)
	test.That(t, err, test.ShouldBeNil)

	planner, err := NewRRTStarPlanner(0.5, 0.1, 1.0, PlannerConfig{Seed: 17})
	test.That(t, err, test.ShouldBeNil)
	planner.Setup(pd, alwaysValid{})

	path, err := planner.Solve(2 * time.Second)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, planner.bestGoalCost, test.ShouldBeLessThanOrEqualTo, 1.15*math.Sqrt(50))
	test.That(t, path.Len(), test.ShouldBeGreaterThanOrEqualTo, 2)
}

func TestRRTStarBestCostIsMonotoneNonIncreasing(t *testing.T) {
	space := new2DSpace(t, 5)
	start := spatialmath.NewRealVectorState([]float64{0, 0})
	target := spatialmath.NewRealVectorState([]float64{5, 5})
	goal, err := NewGoalRegion(space, target, 0.2)
	test.That(t, err, test.ShouldBeNil)
	pd, err := NewProblemDefinition(space, []spatialmath.State{start}, goal)
	test.That(t, err, test.ShouldBeNil)

	planner, err := NewRRTStarPlanner(0.5, 0.1, 1.0, PlannerConfig{Seed: 23})
	test.That(t, err, test.ShouldBeNil)
	planner.Setup(pd, alwaysValid{})

	goalSampler, _ := planner.goal.(GoalSampleable)
	last := math.Inf(1)
	for i := 0; i < 2000; i++ {
		planner.step(goalSampler)
		if planner.bestGoalIdx != -1 {
			test.That(t, planner.bestGoalCost, test.ShouldBeLessThanOrEqualTo, last)
			last = planner.bestGoalCost
		}
	}
}

func TestRRTStarNoSolutionFoundWhenGoalUnreachable(t *testing.T) {
	space := new2DSpace(t, 5)
	start := spatialmath.NewRealVectorState([]float64{0, 0})
	target := spatialmath.NewRealVectorState([]float64{4, 4})
	goal, err := NewGoalRegion(space, target, 0.01)
	test.That(t, err, test.ShouldBeNil)
	pd, err := NewProblemDefinition(space, []spatialmath.State{start}, goal)
	test.That(t, err, test.ShouldBeNil)

	planner, err := NewRRTStarPlanner(0.5, 0.0, 1.0, PlannerConfig{Seed: 29})
	test.That(t, err, test.ShouldBeNil)
	planner.Setup(pd, boxObstacle2D{xBounds: rInterval(1, 5), yBounds: rInterval(-5, 5)})

	_, err = planner.Solve(50 * time.Millisecond)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.(*PlanningError).Kind(), test.ShouldEqual, KindNoSolutionFound)
}
