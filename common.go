package touchboard

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"
)

// Default settings for the touch controller. These match an FT6336 wired to
// an ESP32-S3 board with a 320x480 portrait display. They can be modified at
// any time, but the changes only take effect for adapters created afterwards.
var DefaultConfig = Config{
	Pins: Pins{
		SCL:       35,
		SDA:       37,
		Interrupt: NoPin,
		Reset:     36,
	},
	Address: 0x38,
	Native: Bounds{
		MinX: 0,
		MaxX: 320,
		MinY: 0,
		MaxY: 480,
	},

	// Portrait mode: the sensor axes already match the display axes.
	SwapXY: false,
}

// NoPin is used in Pins to indicate a line is not connected.
const NoPin = -1

// Pins lists the lines the touch controller is wired to.
type Pins struct {
	SCL       int
	SDA       int
	Interrupt int // optional, NoPin when polling
	Reset     int // optional
}

// Config is the static configuration of a touch controller.
type Config struct {
	Pins Pins

	// I2C bus name, only used on Linux hosts (for example "1" for
	// /dev/i2c-1). Empty means the first available bus.
	Bus string

	// I2C address of the controller.
	Address uint16

	// The active rectangle of the sensor in its own coordinate space.
	// Max must be larger than Min on both axes.
	Native Bounds

	// SwapXY feeds the raw Y coordinate into display X and the raw X
	// coordinate into display Y.
	SwapXY bool

	// Logger receives diagnostic output. Nil means logrus.StandardLogger().
	Logger logrus.FieldLogger
}

// Bounds is a rectangle in raw sensor coordinates.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

// Swapped returns the bounds with the X and Y pairs exchanged.
func (b Bounds) Swapped() Bounds {
	return Bounds{
		MinX: b.MinY,
		MaxX: b.MaxY,
		MinY: b.MinX,
		MaxY: b.MaxX,
	}
}

// TouchPoint is a touch position in display pixels.
type TouchPoint struct {
	X, Y int16
}

// Driver is the low-level touch controller driver used by an Adapter.
type Driver interface {
	// Configure brings up the controller (reset, register setup).
	Configure() error

	// SetRotation informs the driver of the display orientation. The driver
	// may use this to rotate points within its own coordinate space.
	SetRotation(rotation drivers.Rotation) error

	// ReadTouch performs a single read cycle. It returns the currently active
	// touch points, or an empty slice when the screen isn't touched.
	ReadTouch() ([]touch.Point, error)
}

// Rotation is one of the four fixed display orientations.
type Rotation uint8

// List of all supported rotations.
const (
	RotationNormal Rotation = iota
	RotationInverted
	RotationLeft
	RotationRight
)

var rotationNames = [...]string{
	RotationNormal:   "normal",
	RotationInverted: "inverted",
	RotationLeft:     "left",
	RotationRight:    "right",
}

// ErrUnsupportedRotation is returned for rotation values outside the four
// known orientations.
var ErrUnsupportedRotation = errors.New("touchboard: unsupported rotation")

func (r Rotation) valid() bool {
	return int(r) < len(rotationNames)
}

func (r Rotation) String() string {
	if !r.valid() {
		return "rotation(" + strconv.Itoa(int(r)) + ")"
	}
	return rotationNames[r]
}

// ParseRotation returns the rotation for the given name, as returned by
// Rotation.String.
func ParseRotation(s string) (Rotation, error) {
	for r, name := range rotationNames {
		if strings.EqualFold(s, name) {
			return Rotation(r), nil
		}
	}
	return 0, errors.Wrapf(ErrUnsupportedRotation, "%q", s)
}

// DriverRotation converts the orientation to the rotation used by display and
// touch drivers.
func (r Rotation) DriverRotation() drivers.Rotation {
	switch r {
	case RotationInverted:
		return drivers.Rotation180
	case RotationLeft:
		return drivers.Rotation270
	case RotationRight:
		return drivers.Rotation90
	default:
		return drivers.Rotation0
	}
}
