//go:build !tinygo

package touchboard

import (
	"strconv"

	"github.com/aykevl/touchboard/ft6336"
	"github.com/aykevl/touchboard/internal/i2chost"
)

// OpenDefault returns an adapter for the touch controller described by the
// config, connected to an I2C bus of a Linux host like a Raspberry Pi. Pin
// numbers are GPIO numbers (GPIO27 is 27).
// Init must still be called before polling, and Close releases the bus.
func OpenDefault(config Config) (*Adapter, error) {
	if !config.hasBus() {
		return New(noTouch{}, config), nil
	}
	bus, err := i2chost.Open(config.Bus)
	if err != nil {
		return nil, err
	}

	chip := config.chipConfig()
	if config.Pins.Reset != NoPin {
		rst, err := i2chost.Output(gpioName(config.Pins.Reset))
		if err != nil {
			bus.Close()
			return nil, err
		}
		chip.Reset = rst
	}
	if config.Pins.Interrupt != NoPin {
		irq, err := i2chost.Input(gpioName(config.Pins.Interrupt))
		if err != nil {
			bus.Close()
			return nil, err
		}
		chip.Interrupt = irq
	}
	return New(hostDriver{ft6336.New(bus, chip), bus}, config), nil
}

// Chip driver that owns its bus.
type hostDriver struct {
	*ft6336.Device
	bus *i2chost.Bus
}

func (d hostDriver) Close() error {
	return d.bus.Close()
}

func gpioName(pin int) string {
	return "GPIO" + strconv.Itoa(pin)
}
