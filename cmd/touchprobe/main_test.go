package main

import (
	"context"
	"testing"
	"time"

	"github.com/aykevl/touchboard"
	"github.com/aykevl/touchboard/internal/sim"
	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPollLoopStops(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	driver := sim.New(320, 480)
	config := touchboard.DefaultConfig
	config.Logger = log
	touch := touchboard.New(driver, config)
	require.NoError(t, touch.Init(320, 480, touchboard.RotationNormal))
	driver.Press(160, 240)

	marks := make(chan touchboard.TouchPoint, 100)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- pollLoop(ctx, log, touch, time.Millisecond, func(p touchboard.TouchPoint) {
			select {
			case marks <- p:
			default:
			}
		})
	}()

	select {
	case p := <-marks:
		assert.Equal(t, touchboard.TouchPoint{X: 159, Y: 239}, p)
	case <-time.After(5 * time.Second):
		t.Fatal("no touch reported")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("poll loop didn't stop after cancel")
	}
	assert.Equal(t, "stopping", hook.LastEntry().Message)

	var touches int
	for _, entry := range hook.AllEntries() {
		if entry.Message == "touch" {
			touches++
		}
	}
	assert.NotZero(t, touches)
}
