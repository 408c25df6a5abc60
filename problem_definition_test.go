package motionplan

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/motionplan/spatialmath"
)

func TestNewProblemDefinitionRejectsOutOfBoundsStart(t *testing.T) {
	space := new2DSpace(t, 5)
	target := spatialmath.NewRealVectorState([]float64{0, 0})
	goal, err := NewGoalRegion(space, target, 0.1)
	test.That(t, err, test.ShouldBeNil)

	start := spatialmath.NewRealVectorState([]float64{100, 100})
	_, err = NewProblemDefinition(space, []spatialmath.State{start}, goal)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewProblemDefinitionRejectsEmptyStartStates(t *testing.T) {
	space := new2DSpace(t, 5)
	target := spatialmath.NewRealVectorState([]float64{0, 0})
	goal, err := NewGoalRegion(space, target, 0.1)
	test.That(t, err, test.ShouldBeNil)
	_, err = NewProblemDefinition(space, nil, goal)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestNewProblemDefinitionAccepts(t *testing.T) {
	space := new2DSpace(t, 5)
	target := spatialmath.NewRealVectorState([]float64{4, 4})
	goal, err := NewGoalRegion(space, target, 0.1)
	test.That(t, err, test.ShouldBeNil)

	start := spatialmath.NewRealVectorState([]float64{0, 0})
	pd, err := NewProblemDefinition(space, []spatialmath.State{start}, goal)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, pd.StartStates()[0], test.ShouldResemble, start)
	test.That(t, pd.Space(), test.ShouldEqual, space)
	test.That(t, pd.Goal(), test.ShouldEqual, goal)
}
