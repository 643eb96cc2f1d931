package main

import (
	"time"

	"github.com/aykevl/touchboard"
)

func main() {
	touch, err := touchboard.OpenDefault(touchboard.DefaultConfig)
	if err != nil {
		println("could not open touch controller:", err.Error())
		return
	}
	if err := touch.Init(320, 480, touchboard.RotationNormal); err != nil {
		println("could not configure touch controller:", err.Error())
		return
	}

	// Assert that the adapter keeps the usual polling interface.
	var _ interface {
		Poll() bool
		HasSignal() bool
		Released() bool
		LastTouch() touchboard.TouchPoint
	} = touch

	for i := 0; i < 10; i++ {
		if touch.Poll() {
			p := touch.LastTouch()
			println("touch:", p.X, p.Y)
		}
		time.Sleep(10 * time.Millisecond)
	}
}
