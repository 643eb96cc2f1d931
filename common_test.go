package touchboard

import (
	"testing"

	"github.com/pkg/errors"
	"tinygo.org/x/drivers"
)

func TestMapRange(t *testing.T) {
	for _, tc := range []struct {
		value, lowIn, highIn, lowOut, highOut int
		result                                int
	}{
		{0, 0, 320, 0, 319, 0},
		{320, 0, 320, 0, 319, 319},
		{160, 0, 320, 0, 319, 159}, // 159.5, rounded down
		{1, 0, 320, 0, 319, 0},     // 0.997, rounded down
		{-1, 0, 320, 0, 319, 0},    // -0.997, truncated toward zero
		{-2, 0, 320, 0, 319, -1},   // outside the range: not clamped
		{400, 0, 320, 0, 319, 398},
		{150, 100, 200, 0, 99, 49}, // offset input range
		{150, 100, 200, 10, 20, 15},
	} {
		result := mapRange(tc.value, tc.lowIn, tc.highIn, tc.lowOut, tc.highOut)
		if result != tc.result {
			t.Errorf("mapRange(%d, %d, %d, %d, %d): expected %d but got %d", tc.value, tc.lowIn, tc.highIn, tc.lowOut, tc.highOut, tc.result, result)
		}
	}
}

func TestBoundsSwapped(t *testing.T) {
	b := Bounds{MinX: 1, MaxX: 2, MinY: 3, MaxY: 4}
	if got, want := b.Swapped(), (Bounds{MinX: 3, MaxX: 4, MinY: 1, MaxY: 2}); got != want {
		t.Errorf("expected %+v but got %+v", want, got)
	}
	if b.Swapped().Swapped() != b {
		t.Error("swapping twice should return the original bounds")
	}
}

func TestRotationNames(t *testing.T) {
	for _, tc := range []struct {
		name     string
		rotation Rotation
		driver   drivers.Rotation
	}{
		{"normal", RotationNormal, drivers.Rotation0},
		{"inverted", RotationInverted, drivers.Rotation180},
		{"left", RotationLeft, drivers.Rotation270},
		{"RIGHT", RotationRight, drivers.Rotation90},
	} {
		rotation, err := ParseRotation(tc.name)
		if err != nil {
			t.Errorf("could not parse %q: %v", tc.name, err)
			continue
		}
		if rotation != tc.rotation {
			t.Errorf("parse %q: expected %v but got %v", tc.name, tc.rotation, rotation)
		}
		if rotation.DriverRotation() != tc.driver {
			t.Errorf("%v: expected driver rotation %d but got %d", rotation, tc.driver, rotation.DriverRotation())
		}
	}

	if _, err := ParseRotation("sideways"); !errors.Is(err, ErrUnsupportedRotation) {
		t.Errorf("expected ErrUnsupportedRotation, got %v", err)
	}
	if s := Rotation(7).String(); s != "rotation(7)" {
		t.Errorf("unexpected name for an invalid rotation: %s", s)
	}
}
