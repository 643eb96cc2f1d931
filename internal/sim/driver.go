//go:build !tinygo

// Package sim simulates a capacitive touch controller. Touches are either
// injected directly (for tests) or come from mouse input in a desktop window.
//
// Like the real chip, the simulated controller reports points in its own
// width x height coordinate space, rotated according to SetRotation.
package sim

import (
	"fmt"
	"strings"
	"sync"

	"github.com/aykevl/touchboard/ft6336"
	"github.com/pkg/errors"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"
)

// Driver is a simulated touch controller.
type Driver struct {
	width  int
	height int
	title  string
	window bool

	lock       sync.Mutex
	configured bool
	rotation   drivers.Rotation
	touching   bool
	touch      touch.Point
	points     [1]touch.Point
	reads      int
}

// New returns a simulated controller with the given sensor size, without a
// window. Touches must be injected with Press, Move and Release.
func New(width, height int) *Driver {
	return &Driver{
		width:  width,
		height: height,
	}
}

// Open returns a simulated controller backed by a desktop window. The window
// is started when the driver is configured.
func Open(title string, width, height int) *Driver {
	d := New(width, height)
	d.title = title
	d.window = true
	return d
}

// Configure starts the simulator window, if there is one.
func (d *Driver) Configure() error {
	d.lock.Lock()
	d.configured = true
	d.lock.Unlock()
	if d.window {
		return startWindow(d)
	}
	return nil
}

func (d *Driver) SetRotation(rotation drivers.Rotation) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.rotation = rotation % 4
	return nil
}

// ReadTouch returns the current touch, if any.
func (d *Driver) ReadTouch() ([]touch.Point, error) {
	d.lock.Lock()
	defer d.lock.Unlock()

	if !d.configured {
		return nil, errors.New("sim: not configured")
	}
	d.reads++
	if !d.touching {
		return nil, nil
	}
	x, y := ft6336.RotatePoint(d.rotation, d.touch.X, d.touch.Y, d.width, d.height)
	d.points[0] = touch.Point{X: x, Y: y, Z: d.touch.Z}
	return d.points[:1], nil
}

// Reads returns the number of read cycles done so far.
func (d *Driver) Reads() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.reads
}

// Press starts a touch at the given sensor position.
func (d *Driver) Press(x, y int) {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.touching = true
	d.touch = touch.Point{X: x, Y: y, Z: 1}
}

// Move moves the active touch, if there is one.
func (d *Driver) Move(x, y int) {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.touching {
		d.touch.X = x
		d.touch.Y = y
	}
}

// Release ends the active touch.
func (d *Driver) Release() {
	d.lock.Lock()
	defer d.lock.Unlock()
	d.touching = false
	d.touch = touch.Point{}
}

// HandleEvent applies a single event line as sent by the simulator window:
//
//	mousedown <x> <y>
//	mousemove <x> <y>
//	mouseup
func (d *Driver) HandleEvent(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return errors.New("sim: empty event")
	}
	cmd := fields[0]
	switch cmd {
	case "mousedown", "mousemove":
		var x, y int
		if _, err := fmt.Sscanf(line, "%s %d %d", &cmd, &x, &y); err != nil {
			return errors.Wrapf(err, "sim: parse %q", strings.TrimSpace(line))
		}
		if cmd == "mousedown" {
			d.Press(x, y)
		} else {
			d.Move(x, y)
		}
	case "mouseup":
		d.Release()
	default:
		return errors.Errorf("sim: unknown event %q", cmd)
	}
	return nil
}

// Mark highlights a display position in the simulator window. The window
// shows the sensor surface, so the position is converted back through the
// current rotation using the display size. Mark does nothing when there is no
// window.
func (d *Driver) Mark(x, y, width, height int) {
	if !d.window {
		return
	}
	x, y = d.sensorPoint(x, y, width, height)
	windowSendCommand(fmt.Sprintf("mark %d %d", x, y))
}

// Convert a point on a width x height display into sensor coordinates. This
// is the inverse of the rotation applied in ReadTouch, after scaling the
// display to the rotated sensor size.
func (d *Driver) sensorPoint(x, y, width, height int) (int, int) {
	d.lock.Lock()
	rotation := d.rotation
	d.lock.Unlock()

	rotW, rotH := d.width, d.height
	if rotation == drivers.Rotation90 || rotation == drivers.Rotation270 {
		rotW, rotH = rotH, rotW
	}
	if width > 0 && height > 0 {
		x = x * rotW / width
		y = y * rotH / height
	}

	switch rotation {
	case drivers.Rotation90:
		return d.width - y, x
	case drivers.Rotation180:
		return d.width - x, d.height - y
	case drivers.Rotation270:
		return y, d.height - x
	default:
		return x, y
	}
}
