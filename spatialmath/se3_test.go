package spatialmath

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

func TestSE3DistanceAndInterpolate(t *testing.T) {
	bounds := []*r1.Interval{{Lo: -10, Hi: 10}, {Lo: -10, Hi: 10}, {Lo: -10, Hi: 10}}
	sp, err := NewSE3Space(1.0, bounds)
	test.That(t, err, test.ShouldBeNil)

	a := NewSE3State(r3.Vector{X: 0, Y: 0, Z: 0}, IdentitySO3State())
	b := NewSE3State(r3.Vector{X: 1, Y: 2, Z: 3}, IdentitySO3State())

	out := NewSE3State(r3.Vector{}, IdentitySO3State())
	sp.Interpolate(a, b, 0, out)
	test.That(t, out.Translation, test.ShouldResemble, a.Translation)
	sp.Interpolate(a, b, 1, out)
	test.That(t, out.Translation, test.ShouldResemble, b.Translation)

	test.That(t, sp.Distance(a, b), test.ShouldEqual, sp.Distance(b, a))
}

func TestSE3SampleSatisfiesBounds(t *testing.T) {
	bounds := []*r1.Interval{{Lo: -5, Hi: 5}, {Lo: -5, Hi: 5}, {Lo: -5, Hi: 5}}
	sp, err := NewSE3Space(1.0, bounds)
	test.That(t, err, test.ShouldBeNil)
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 50; i++ {
		s, err := sp.SampleUniform(rng)
		test.That(t, err, test.ShouldBeNil)
		test.That(t, sp.SatisfiesBounds(s), test.ShouldBeTrue)
	}
}
