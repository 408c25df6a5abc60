package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"go.viam.com/test"
)

func TestSO3DistanceSignFlipInvariant(t *testing.T) {
	sp, err := NewSO3Space(nil, 0)
	test.That(t, err, test.ShouldBeNil)

	a := NewSO3State(0.1, 0.2, 0.3, 0.9)
	b := NewSO3State(0.4, 0.1, 0.2, 0.85)
	negA := NewSO3State(-a.X(), -a.Y(), -a.Z(), -a.W())
	negB := NewSO3State(-b.X(), -b.Y(), -b.Z(), -b.W())

	d := sp.Distance(a, b)
	test.That(t, sp.Distance(negA, b), test.ShouldAlmostEqual, d)
	test.That(t, sp.Distance(a, negB), test.ShouldAlmostEqual, d)
	test.That(t, sp.Distance(negA, negB), test.ShouldAlmostEqual, d)
}

func TestSO3DistanceZeroIffEqual(t *testing.T) {
	sp, err := NewSO3Space(nil, 0)
	test.That(t, err, test.ShouldBeNil)
	a := IdentitySO3State()
	test.That(t, sp.Distance(a, a), test.ShouldAlmostEqual, 0)

	negA := NewSO3State(-a.X(), -a.Y(), -a.Z(), -a.W())
	test.That(t, sp.Distance(a, negA), test.ShouldAlmostEqual, 0)
}

func TestSO3SampleIsNormalized(t *testing.T) {
	sp, err := NewSO3Space(nil, 0)
	test.That(t, err, test.ShouldBeNil)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		s, err := sp.SampleUniform(rng)
		test.That(t, err, test.ShouldBeNil)
		q := s.(*SO3State).Q
		norm := math.Sqrt(q.Real*q.Real + q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
		test.That(t, norm, test.ShouldAlmostEqual, 1.0)
	}
}

func TestSO3InterpolateEndpointsAndMetric(t *testing.T) {
	sp, err := NewSO3Space(nil, 0)
	test.That(t, err, test.ShouldBeNil)
	a := IdentitySO3State()
	b := NewSO3State(0, 0, math.Sin(math.Pi/4), math.Cos(math.Pi/4)) // 90 deg about Z
	out := IdentitySO3State()

	sp.Interpolate(a, b, 0, out)
	test.That(t, sp.Distance(a, out), test.ShouldAlmostEqual, 0)

	sp.Interpolate(a, b, 1, out)
	test.That(t, sp.Distance(b, out), test.ShouldAlmostEqual, 0)

	sp.Interpolate(a, b, 0.5, out)
	full := sp.Distance(a, b)
	test.That(t, sp.Distance(a, out), test.ShouldAlmostEqual, 0.5*full)
}

func TestSO3BoundedSpaceRestrictsSamples(t *testing.T) {
	center := IdentitySO3State()
	maxAngle := 0.3
	sp, err := NewSO3Space(center, maxAngle)
	test.That(t, err, test.ShouldBeNil)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 30; i++ {
		s, err := sp.SampleUniform(rng)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, sp.Distance(center, s), test.ShouldBeLessThanOrEqualTo, maxAngle+1e-9)
	}
}
