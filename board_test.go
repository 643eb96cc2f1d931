//go:build !tinygo

package touchboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDefaultWithoutBus(t *testing.T) {
	config := DefaultConfig
	config.Pins.SCL = NoPin
	config.Logger = quietLogger()
	a, err := OpenDefault(config)
	require.NoError(t, err)
	require.NoError(t, a.Init(320, 480, RotationNormal))
	assert.False(t, a.Poll())
	assert.True(t, a.HasSignal())
	assert.NoError(t, a.Close())
}

func TestChipConfig(t *testing.T) {
	config := DefaultConfig
	config.Native = Bounds{MinX: 300, MaxX: 20, MinY: 10, MaxY: 470}
	chip := config.chipConfig()
	assert.Equal(t, 300, chip.Width)
	assert.Equal(t, 470, chip.Height)
	assert.Equal(t, uint16(0x38), chip.Address)
}

func TestGPIOName(t *testing.T) {
	assert.Equal(t, "GPIO27", gpioName(27))
}
