// Package ft6336 implements a driver for the FocalTech FT6236/FT6336
// capacitive touch controllers.
//
// Datasheet: https://www.buydisplay.com/download/ic/FT6236-FT6336-FT6436L-FT6436_Datasheet.pdf
package ft6336

import (
	"time"

	"github.com/pkg/errors"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"
)

const (
	DefaultAddress = 0x38

	// Maximum number of simultaneous touches the chip tracks.
	MaxTouches = 2
)

const (
	_TD_STATUS   = 0x02
	_TH_GROUP    = 0x80
	_CHIP_ID     = 0xa3
	_G_MODE      = 0xa4
	_VENDOR_ID   = 0xa8
	_FOCALTECHID = 0x11

	pointSize = 6
)

// ErrNoDevice is returned from Configure when the vendor register doesn't
// identify a FocalTech chip.
var ErrNoDevice = errors.New("ft6336: no device found")

// OutputPin is a digital output, like machine.Pin.
type OutputPin interface {
	Set(high bool)
}

// InputPin is a digital input, like machine.Pin.
type InputPin interface {
	Get() bool
}

type Config struct {
	// I2C address, DefaultAddress when zero.
	Address uint16

	// Sensor size, used to rotate points.
	Width  int
	Height int

	// Touch detection threshold. Zero leaves the chip default.
	Threshold uint8

	// Optional reset and interrupt lines.
	Reset     OutputPin
	Interrupt InputPin
}

type Device struct {
	bus      drivers.I2C
	config   Config
	rotation drivers.Rotation
	vendorID uint8
	chipID   uint8

	// Register address followed by TD_STATUS and two point records.
	buf    [1 + 1 + MaxTouches*pointSize]byte
	points [MaxTouches]touch.Point
}

// New returns a device on the given bus. Configure must be called before use.
func New(bus drivers.I2C, config Config) *Device {
	if config.Address == 0 {
		config.Address = DefaultAddress
	}
	return &Device{
		bus:    bus,
		config: config,
	}
}

// Configure resets the chip (if a reset pin is available), checks the chip
// is present and puts it in polling mode.
func (d *Device) Configure() error {
	if rst := d.config.Reset; rst != nil {
		rst.Set(false)
		time.Sleep(10 * time.Millisecond)
		rst.Set(true)
		// The chip needs up to 300ms to initialize after reset.
		time.Sleep(300 * time.Millisecond)
	}

	vendor, err := d.readRegister(_VENDOR_ID)
	if err != nil {
		return errors.Wrap(err, "ft6336: read vendor id")
	}
	if vendor != _FOCALTECHID {
		return errors.Wrapf(ErrNoDevice, "vendor id %#02x", vendor)
	}
	d.vendorID = vendor
	d.chipID, err = d.readRegister(_CHIP_ID)
	if err != nil {
		return errors.Wrap(err, "ft6336: read chip id")
	}

	if d.config.Threshold != 0 {
		if err := d.writeRegister(_TH_GROUP, d.config.Threshold); err != nil {
			return errors.Wrap(err, "ft6336: set threshold")
		}
	}
	// Polling mode: INT stays low for as long as the screen is touched.
	if err := d.writeRegister(_G_MODE, 0); err != nil {
		return errors.Wrap(err, "ft6336: set mode")
	}
	return nil
}

// SetRotation sets the orientation in which touch points are reported.
func (d *Device) SetRotation(rotation drivers.Rotation) error {
	d.rotation = rotation % 4
	return nil
}

// Rotation returns the current rotation.
func (d *Device) Rotation() drivers.Rotation {
	return d.rotation
}

// VendorID returns the vendor id read by Configure.
func (d *Device) VendorID() uint8 {
	return d.vendorID
}

// ChipID returns the chip id read by Configure (0x36 for the FT6236, 0x64 for
// the FT6336U).
func (d *Device) ChipID() uint8 {
	return d.chipID
}

// ReadTouch reads the active touch points. The returned slice is only valid
// until the next call.
func (d *Device) ReadTouch() ([]touch.Point, error) {
	if d.config.Interrupt != nil && d.config.Interrupt.Get() {
		// INT is active low: nothing is touching the screen.
		return nil, nil
	}
	wr := d.buf[:1]
	rd := d.buf[1:]
	wr[0] = _TD_STATUS
	if err := d.bus.Tx(d.config.Address, wr, rd); err != nil {
		return nil, err
	}

	// The status register reads 0xff while the chip is still starting up.
	num := int(rd[0] & 0x0f)
	if rd[0] == 0xff || num == 0 || num > MaxTouches {
		return nil, nil
	}
	for i := 0; i < num; i++ {
		p := rd[1+i*pointSize:]
		x := int(p[0]&0x0f)<<8 | int(p[1])
		y := int(p[2]&0x0f)<<8 | int(p[3])
		x, y = d.rotate(x, y)
		d.points[i] = touch.Point{
			X: x,
			Y: y,
			Z: int(p[4]), // touch weight
		}
	}
	return d.points[:num], nil
}

func (d *Device) rotate(x, y int) (int, int) {
	return RotatePoint(d.rotation, x, y, d.config.Width, d.config.Height)
}

// RotatePoint rotates a point within a width x height sensor area, the same
// way the chip driver does.
func RotatePoint(rotation drivers.Rotation, x, y, width, height int) (int, int) {
	switch rotation {
	case drivers.Rotation90:
		return y, width - x
	case drivers.Rotation180:
		return width - x, height - y
	case drivers.Rotation270:
		return height - y, x
	default:
		return x, y
	}
}

func (d *Device) readRegister(reg uint8) (uint8, error) {
	d.buf[0] = reg
	if err := d.bus.Tx(d.config.Address, d.buf[:1], d.buf[1:2]); err != nil {
		return 0, err
	}
	return d.buf[1], nil
}

func (d *Device) writeRegister(reg, value uint8) error {
	d.buf[0] = reg
	d.buf[1] = value
	return d.bus.Tx(d.config.Address, d.buf[:2], nil)
}
