package touchboard

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrInvalidGeometry is returned by Init when the display size isn't positive.
var ErrInvalidGeometry = errors.New("touchboard: invalid display size")

// Adapter translates raw touch controller samples into display coordinates.
//
// An Adapter is meant to be polled from a single goroutine (typically the UI
// loop). It does no locking of its own.
type Adapter struct {
	driver Driver
	config Config
	log    logrus.FieldLogger

	initialized bool
	width       int16
	height      int16
	rotation    Rotation
	bounds      Bounds
	last        TouchPoint
}

// New returns an adapter for the given driver. Init must be called before
// polling.
func New(driver Driver, config Config) *Adapter {
	log := config.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Adapter{
		driver: driver,
		config: config,
		log:    log,
	}
}

// Init selects the calibration bounds for the given rotation, brings up the
// touch controller and stores the display geometry.
//
// For the normal and inverted orientations the native sensor bounds are used
// as-is. For left and right the X and Y bounds are swapped, as the display is
// rotated by 90° while the sensor axes stay fixed.
//
// The adapter is only updated when Init succeeds. Until then, Poll reports no
// touches.
func (a *Adapter) Init(width, height int16, rotation Rotation) error {
	if !rotation.valid() {
		return errors.Wrapf(ErrUnsupportedRotation, "%d", rotation)
	}
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidGeometry, "%dx%d", width, height)
	}

	bounds := a.config.Native
	if rotation == RotationLeft || rotation == RotationRight {
		bounds = bounds.Swapped()
	}

	a.log.WithFields(logrus.Fields{
		"width":    width,
		"height":   height,
		"rotation": rotation,
		"bounds":   bounds,
		"swapXY":   a.config.SwapXY,
	}).Info("touch: init")

	if err := a.driver.Configure(); err != nil {
		return errors.Wrap(err, "touch: configure")
	}
	if err := a.driver.SetRotation(rotation.DriverRotation()); err != nil {
		return errors.Wrap(err, "touch: set rotation")
	}

	a.width = width
	a.height = height
	a.rotation = rotation
	a.bounds = bounds
	a.initialized = true
	return nil
}

// Poll reads the touch controller once. It returns true if the screen is
// currently touched, in which case LastTouch returns the new position.
// Otherwise the last touch position is left unchanged.
//
// Positions that fall outside the int16 range (possible with raw samples far
// outside a narrow calibration range) are saturated.
//
// This call blocks for the duration of a bus transaction. It returns false
// without reading the controller if Init hasn't succeeded yet.
func (a *Adapter) Poll() bool {
	if !a.initialized {
		return false
	}
	points, err := a.driver.ReadTouch()
	if err != nil {
		a.log.WithError(err).Debug("touch: read failed")
		return false
	}
	if len(points) == 0 {
		return false
	}

	// Only the first touch point is used.
	raw := points[0]
	if a.config.SwapXY {
		native := a.config.Native
		a.last.X = saturate16(mapRange(raw.Y, native.MinY, native.MaxY, 0, int(a.width)-1))
		a.last.Y = saturate16(mapRange(raw.X, native.MinX, native.MaxX, 0, int(a.height)-1))
	} else {
		a.last.X = saturate16(mapRange(raw.X, a.bounds.MinX, a.bounds.MaxX, 0, int(a.width)-1))
		a.last.Y = saturate16(mapRange(raw.Y, a.bounds.MinY, a.bounds.MaxY, 0, int(a.height)-1))
	}
	return true
}

// LastTouch returns the display position of the most recent touch. It is only
// meaningful right after Poll returned true.
func (a *Adapter) LastTouch() TouchPoint {
	return a.last
}

// HasSignal always returns true: the controller doesn't report whether it is
// connected.
func (a *Adapter) HasSignal() bool {
	return true
}

// Released always returns true. Press/release transitions aren't tracked.
func (a *Adapter) Released() bool {
	return true
}

// Bounds returns the calibration bounds selected by Init.
func (a *Adapter) Bounds() Bounds {
	return a.bounds
}

// Size returns the display size passed to Init.
func (a *Adapter) Size() (width, height int16) {
	return a.width, a.height
}

// Rotation returns the display rotation passed to Init.
func (a *Adapter) Rotation() Rotation {
	return a.rotation
}

// Close releases the resources held by the driver, if any.
func (a *Adapter) Close() error {
	if c, ok := a.driver.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Map an input value from one range to another. Values outside the input range
// are not clamped. Division truncates toward zero.
func mapRange(value, lowIn, highIn, lowOut, highOut int) int {
	rangeIn := highIn - lowIn
	rangeOut := highOut - lowOut
	return (value-lowIn)*rangeOut/rangeIn + lowOut
}

// Convert to int16, saturating at the limits of the type.
func saturate16(n int) int16 {
	if n > math.MaxInt16 {
		return math.MaxInt16
	}
	if n < math.MinInt16 {
		return math.MinInt16
	}
	return int16(n)
}
