package touchboard

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"
)

// Dummy touch driver that doesn't read any input.
// Used when no touch controller is wired up, so that the rest of the program
// can poll the adapter as usual.
type noTouch struct{}

func (t noTouch) Configure() error {
	return nil
}

func (t noTouch) SetRotation(rotation drivers.Rotation) error {
	return nil
}

func (t noTouch) ReadTouch() ([]touch.Point, error) {
	return nil, nil
}
