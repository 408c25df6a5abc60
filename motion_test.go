package motionplan

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/motionplan/spatialmath"
)

func TestMotionValidDetectsObstacle(t *testing.T) {
	space := new2DSpace(t, 5)
	checker := boxObstacle2D{xBounds: rInterval(-0.5, 0.5), yBounds: rInterval(-2, 2)}

	a := spatialmath.NewRealVectorState([]float64{-2, 0})
	b := spatialmath.NewRealVectorState([]float64{2, 0})
	test.That(t, motionValid(space, checker, a, b), test.ShouldBeFalse)
}

func TestMotionValidClearEdge(t *testing.T) {
	space := new2DSpace(t, 5)
	checker := boxObstacle2D{xBounds: rInterval(-0.5, 0.5), yBounds: rInterval(-2, 2)}

	a := spatialmath.NewRealVectorState([]float64{-2, 3})
	b := spatialmath.NewRealVectorState([]float64{2, 3})
	test.That(t, motionValid(space, checker, a, b), test.ShouldBeTrue)
}

func TestMotionValidAlwaysValidChecker(t *testing.T) {
	space := new2DSpace(t, 5)
	a := spatialmath.NewRealVectorState([]float64{0, 0})
	b := spatialmath.NewRealVectorState([]float64{1, 1})
	test.That(t, motionValid(space, alwaysValid{}, a, b), test.ShouldBeTrue)
}
