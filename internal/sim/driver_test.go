//go:build !tinygo

package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/touch"
)

func TestReadBeforeConfigure(t *testing.T) {
	d := New(320, 480)
	_, err := d.ReadTouch()
	assert.Error(t, err)
}

func TestEvents(t *testing.T) {
	d := New(320, 480)
	require.NoError(t, d.Configure())

	points, err := d.ReadTouch()
	require.NoError(t, err)
	assert.Empty(t, points)

	require.NoError(t, d.HandleEvent("mousemove 1 2\n"))
	points, _ = d.ReadTouch()
	assert.Empty(t, points, "move without press must not start a touch")

	require.NoError(t, d.HandleEvent("mousedown 10 20\n"))
	points, _ = d.ReadTouch()
	assert.Equal(t, []touch.Point{{X: 10, Y: 20, Z: 1}}, points)

	require.NoError(t, d.HandleEvent("mousemove 30 40\n"))
	points, _ = d.ReadTouch()
	assert.Equal(t, []touch.Point{{X: 30, Y: 40, Z: 1}}, points)

	require.NoError(t, d.HandleEvent("mouseup\n"))
	points, _ = d.ReadTouch()
	assert.Empty(t, points)

	assert.Equal(t, 5, d.Reads())
}

func TestBadEvents(t *testing.T) {
	d := New(320, 480)
	for _, line := range []string{
		"",
		"keypress 3",
		"mousedown x y",
		"mousedown 5",
	} {
		assert.Error(t, d.HandleEvent(line), "line %q", line)
	}
}

func TestRotation(t *testing.T) {
	d := New(320, 480)
	require.NoError(t, d.Configure())
	require.NoError(t, d.SetRotation(drivers.Rotation90))
	d.Press(10, 20)
	points, err := d.ReadTouch()
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, 20, points[0].X)
	assert.Equal(t, 310, points[0].Y)
}

func TestMarkWithoutWindow(t *testing.T) {
	// Must not try to talk to a window process.
	New(320, 480).Mark(1, 2, 320, 480)
}

func TestSensorPoint(t *testing.T) {
	for _, tc := range []struct {
		name          string
		rotation      drivers.Rotation
		width, height int
		x, y          int
		sensorX       int
		sensorY       int
	}{
		{"identity", drivers.Rotation0, 320, 480, 10, 20, 10, 20},
		{"scaled", drivers.Rotation0, 160, 240, 80, 120, 160, 240},
		{"rotation90", drivers.Rotation90, 480, 320, 20, 310, 10, 20},
		{"rotation180", drivers.Rotation180, 320, 480, 310, 460, 10, 20},
		{"rotation270", drivers.Rotation270, 480, 320, 80, 100, 100, 400},
	} {
		t.Run(tc.name, func(t *testing.T) {
			d := New(320, 480)
			require.NoError(t, d.SetRotation(tc.rotation))
			x, y := d.sensorPoint(tc.x, tc.y, tc.width, tc.height)
			assert.Equal(t, tc.sensorX, x, "x")
			assert.Equal(t, tc.sensorY, y, "y")
		})
	}
}

func TestSensorPointRoundTrip(t *testing.T) {
	// A press read back through the rotation must mark the same sensor spot.
	for _, rotation := range []drivers.Rotation{drivers.Rotation0, drivers.Rotation90, drivers.Rotation180, drivers.Rotation270} {
		d := New(320, 480)
		require.NoError(t, d.Configure())
		require.NoError(t, d.SetRotation(rotation))
		d.Press(100, 400)
		points, err := d.ReadTouch()
		require.NoError(t, err)
		require.Len(t, points, 1)

		width, height := 320, 480
		if rotation == drivers.Rotation90 || rotation == drivers.Rotation270 {
			width, height = height, width
		}
		x, y := d.sensorPoint(points[0].X, points[0].Y, width, height)
		assert.Equal(t, 100, x, "rotation %d", rotation)
		assert.Equal(t, 400, y, "rotation %d", rotation)
	}
}
