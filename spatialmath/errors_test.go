package spatialmath

import (
	"errors"
	"testing"

	"github.com/golang/geo/r1"
	"go.viam.com/test"
)

func TestSpaceErrorKindAndUnwrap(t *testing.T) {
	_, err := NewRealVectorSpace(0, nil)
	test.That(t, err, test.ShouldNotBeNil)
	spaceErr, ok := err.(*SpaceError)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, spaceErr.Kind(), test.ShouldEqual, KindInvalidDimension)
	test.That(t, errors.Is(spaceErr, ErrInvalidDimension), test.ShouldBeTrue)
}

func TestSpaceErrorInvalidBounds(t *testing.T) {
	_, err := NewSO2Space(&r1.Interval{Lo: 1, Hi: -1})
	test.That(t, err, test.ShouldNotBeNil)
	spaceErr, ok := err.(*SpaceError)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, spaceErr.Kind(), test.ShouldEqual, KindInvalidBounds)
	test.That(t, errors.Is(spaceErr, ErrInvalidBounds), test.ShouldBeTrue)
}
