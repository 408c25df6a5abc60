package motionplan

import (
	"errors"
	"testing"

	"go.viam.com/test"
)

func TestPlanningErrorKindAndUnwrap(t *testing.T) {
	err := errTimeout()
	test.That(t, err.Kind(), test.ShouldEqual, KindTimeout)
	test.That(t, errors.Is(err, ErrTimeout), test.ShouldBeTrue)
}

func TestInvalidStartStateWrapsCause(t *testing.T) {
	err := errInvalidStartState(errors.New("outside bounds"))
	test.That(t, errors.Is(err, ErrInvalidStartState), test.ShouldBeTrue)
	test.That(t, err.Kind(), test.ShouldEqual, KindInvalidStartState)
}
