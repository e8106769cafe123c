package config

import (
	"testing"

	"go.viam.com/test"
)

func TestSpaceKinematicDim(t *testing.T) {
	s, err := NewSpace(7, 2)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.KinematicDim(), test.ShouldEqual, 5)
}

func TestNewSpaceRejectsInvalidDimensions(t *testing.T) {
	_, err := NewSpace(2, 3)
	test.That(t, err, test.ShouldNotBeNil)

	_, err = NewSpace(-1, 0)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestSpaceValidate(t *testing.T) {
	s, err := NewSpace(3, 1)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, s.Validate(Configuration{1, 2, 3}), test.ShouldBeNil)
	test.That(t, s.Validate(Configuration{1, 2}), test.ShouldNotBeNil)
}

func TestConfigurationEqual(t *testing.T) {
	a := Configuration{1, 2, 3}
	b := a.Clone()
	test.That(t, a.Equal(b), test.ShouldBeTrue)

	b[0] = 9
	test.That(t, a.Equal(b), test.ShouldBeFalse)
	test.That(t, a.Equal(Configuration{1, 2}), test.ShouldBeFalse)
}

func TestL2Distance(t *testing.T) {
	d := L2Distance(Configuration{0, 0}, Configuration{3, 4})
	test.That(t, d, test.ShouldAlmostEqual, 5.0)
}

func TestWeightedL2Distance(t *testing.T) {
	d := WeightedL2Distance([]float64{2, 1})
	got := d(Configuration{0, 0}, Configuration{3, 4})
	test.That(t, got, test.ShouldAlmostEqual, 7.211102550927978)
}
