package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r1"
	"go.viam.com/test"
)

func newSE2CompoundSpace(t *testing.T) *CompoundSpace {
	t.Helper()
	r2Bounds := []*r1.Interval{{Lo: -5, Hi: 5}, {Lo: -5, Hi: 5}}
	r2, err := NewRealVectorSpace(2, r2Bounds)
	test.That(t, err, test.ShouldBeNil)
	so2, err := NewSO2Space(nil)
	test.That(t, err, test.ShouldBeNil)
	sp, err := NewCompoundSpace([]StateSpace{r2, so2}, []float64{1.0, 0.5})
	test.That(t, err, test.ShouldBeNil)
	return sp
}

func TestCompoundDistanceIsWeightedEuclideanSum(t *testing.T) {
	sp := newSE2CompoundSpace(t)
	a := NewCompoundState(NewRealVectorState([]float64{-2, 0}), NewSO2State(0))
	b := NewCompoundState(NewRealVectorState([]float64{2, 0}), NewSO2State(math.Pi))

	dTrans := 4.0
	dRot := math.Pi
	want := math.Sqrt(1.0*1.0*dTrans*dTrans + 0.5*0.5*dRot*dRot)
	test.That(t, sp.Distance(a, b), test.ShouldAlmostEqual, want)
}

func TestCompoundSampleAndBounds(t *testing.T) {
	sp := newSE2CompoundSpace(t)
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 50; i++ {
		s, err := sp.SampleUniform(rng)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, sp.SatisfiesBounds(s), test.ShouldBeTrue)
	}
}

func TestCompoundInterpolateEndpoints(t *testing.T) {
	sp := newSE2CompoundSpace(t)
	a := NewCompoundState(NewRealVectorState([]float64{-2, 0}), NewSO2State(0))
	b := NewCompoundState(NewRealVectorState([]float64{2, 0}), NewSO2State(math.Pi / 2))
	out := a.Clone().(*CompoundState)

	sp.Interpolate(a, b, 0, out)
	test.That(t, sp.Distance(a, out), test.ShouldAlmostEqual, 0)

	sp.Interpolate(a, b, 1, out)
	test.That(t, sp.Distance(b, out), test.ShouldAlmostEqual, 0)
}

func TestCompoundRejectsMismatchedLengths(t *testing.T) {
	r2, err := NewRealVectorSpace(2, nil)
	test.That(t, err, test.ShouldBeNil)
	_, err = NewCompoundSpace([]StateSpace{r2}, []float64{1.0, 2.0})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestCompoundRejectsNonPositiveWeight(t *testing.T) {
	r2, err := NewRealVectorSpace(2, nil)
	test.That(t, err, test.ShouldBeNil)
	_, err = NewCompoundSpace([]StateSpace{r2}, []float64{0})
	test.That(t, err, test.ShouldNotBeNil)
}
