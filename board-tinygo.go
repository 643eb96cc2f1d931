//go:build tinygo

package touchboard

import (
	"machine"

	"github.com/aykevl/touchboard/ft6336"
	"github.com/pkg/errors"
)

// OpenDefault returns an adapter for the touch controller described by the
// config, connected to the first I2C peripheral of the chip.
// Init must still be called before polling.
func OpenDefault(config Config) (*Adapter, error) {
	if !config.hasBus() {
		return New(noTouch{}, config), nil
	}

	// Run I2C at a high speed (400KHz).
	bus := machine.I2C0
	err := bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SCL:       machine.Pin(config.Pins.SCL),
		SDA:       machine.Pin(config.Pins.SDA),
	})
	if err != nil {
		return nil, errors.Wrap(err, "touch: configure I2C")
	}

	chip := config.chipConfig()
	if config.Pins.Reset != NoPin {
		rst := machine.Pin(config.Pins.Reset)
		rst.Configure(machine.PinConfig{Mode: machine.PinOutput})
		rst.High()
		chip.Reset = rst
	}
	if config.Pins.Interrupt != NoPin {
		irq := machine.Pin(config.Pins.Interrupt)
		irq.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
		chip.Interrupt = irq
	}
	return New(ft6336.New(bus, chip), config), nil
}
