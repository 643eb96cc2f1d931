//go:build !tinygo

// Package i2chost exposes the I2C buses and GPIO lines of a Linux host (like a
// Raspberry Pi) through the same small interfaces TinyGo drivers use.
package i2chost

import (
	"github.com/pkg/errors"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Bus is an I2C bus. It implements drivers.I2C.
type Bus struct {
	bus i2c.BusCloser
}

// Open opens the named I2C bus (for example "1" for /dev/i2c-1). An empty
// name opens the first available bus.
func Open(name string) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "i2chost: init")
	}
	bus, err := i2creg.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "i2chost: open bus %q", name)
	}
	return &Bus{bus: bus}, nil
}

// Tx does a single write-then-read transaction with the device at addr.
func (b *Bus) Tx(addr uint16, w, r []byte) error {
	return b.bus.Tx(addr, w, r)
}

func (b *Bus) Close() error {
	return b.bus.Close()
}

func (b *Bus) String() string {
	return b.bus.String()
}

// Pin is a GPIO line.
type Pin struct {
	pin gpio.PinIO
}

// Output returns the named GPIO line (for example "GPIO27") configured as an
// output, initially high.
func Output(name string) (*Pin, error) {
	p, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if err := p.pin.Out(gpio.High); err != nil {
		return nil, errors.Wrapf(err, "i2chost: configure %s", name)
	}
	return p, nil
}

// Input returns the named GPIO line configured as an input with a pull-up,
// as used for open-drain interrupt lines.
func Input(name string) (*Pin, error) {
	p, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if err := p.pin.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, errors.Wrapf(err, "i2chost: configure %s", name)
	}
	return p, nil
}

func lookup(name string) (*Pin, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "i2chost: init")
	}
	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, errors.Errorf("i2chost: unknown pin %q", name)
	}
	return &Pin{pin: pin}, nil
}

// Set drives the line high or low. Errors are ignored, like on a
// microcontroller.
func (p *Pin) Set(high bool) {
	level := gpio.Low
	if high {
		level = gpio.High
	}
	_ = p.pin.Out(level)
}

// Get returns the current level of the line.
func (p *Pin) Get() bool {
	return p.pin.Read() == gpio.High
}
