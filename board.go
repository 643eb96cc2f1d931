package touchboard

import "github.com/aykevl/touchboard/ft6336"

// Whether the config has a touch controller bus wired up at all.
func (c Config) hasBus() bool {
	return c.Pins.SCL != NoPin && c.Pins.SDA != NoPin
}

// Chip driver settings for the given config. The driver's sensor size is the
// far corner of the native bounds.
func (c Config) chipConfig() ft6336.Config {
	return ft6336.Config{
		Address: c.Address,
		Width:   max(c.Native.MinX, c.Native.MaxX),
		Height:  max(c.Native.MinY, c.Native.MaxY),
	}
}
