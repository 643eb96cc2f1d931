// Command touchprobe polls a touch controller and logs every touch in display
// coordinates. With --simulate, touches come from a desktop window instead of
// real hardware.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin"
	"github.com/aykevl/touchboard"
	"github.com/aykevl/touchboard/internal/sim"
	"github.com/sirupsen/logrus"
)

var (
	app = kingpin.New("touchprobe", "Poll a capacitive touch controller and print touch positions.")

	bus      = app.Flag("bus", "I2C bus name (empty for the first bus)").Default(touchboard.DefaultConfig.Bus).String()
	addr     = app.Flag("addr", "I2C address of the controller").Default("0x38").Uint16()
	reset    = app.Flag("reset", "GPIO number of the reset line (-1 if not connected)").Default("-1").Int()
	irq      = app.Flag("int", "GPIO number of the interrupt line (-1 if not connected)").Default("-1").Int()
	width    = app.Flag("width", "display width in pixels").Default("320").Int16()
	height   = app.Flag("height", "display height in pixels").Default("480").Int16()
	rotation = app.Flag("rotation", "display rotation").Default("normal").Enum("normal", "inverted", "left", "right")
	swapXY   = app.Flag("swap-xy", "feed raw Y into display X and raw X into display Y").Bool()
	interval = app.Flag("interval", "poll interval").Default("20ms").Duration()
	simulate = app.Flag("simulate", "simulate the touch controller in a window").Bool()
	verbose  = app.Flag("verbose", "enable debug logging").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, log); err != nil {
		log.WithError(err).Fatal("touchprobe")
	}
}

// Open the adapter and poll it until the context is canceled. The adapter is
// closed on return, which releases the I2C bus.
func run(ctx context.Context, log *logrus.Logger) error {
	rot, err := touchboard.ParseRotation(*rotation)
	if err != nil {
		return err
	}

	config := touchboard.DefaultConfig
	config.Bus = *bus
	config.Address = *addr
	// The SCL/SDA pins of the default config are fixed by the host bus.
	config.Pins.Reset = *reset
	config.Pins.Interrupt = *irq
	config.SwapXY = *swapXY
	config.Logger = log

	var (
		touch     *touchboard.Adapter
		simulator *sim.Driver
	)
	if *simulate {
		native := config.Native
		simulator = sim.Open("touchprobe", native.MaxX-native.MinX, native.MaxY-native.MinY)
		touch = touchboard.New(simulator, config)
	} else {
		touch, err = touchboard.OpenDefault(config)
		if err != nil {
			return err
		}
	}
	defer touch.Close()

	if err := touch.Init(*width, *height, rot); err != nil {
		return err
	}

	var mark func(p touchboard.TouchPoint)
	if simulator != nil {
		mark = func(p touchboard.TouchPoint) {
			simulator.Mark(int(p.X), int(p.Y), int(*width), int(*height))
		}
	}
	return pollLoop(ctx, log, touch, *interval, mark)
}

// Poll the adapter every interval and log touches until the context is
// canceled. The optional mark callback receives every touch position.
func pollLoop(ctx context.Context, log logrus.FieldLogger, touch *touchboard.Adapter, interval time.Duration, mark func(p touchboard.TouchPoint)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	touching := false
	for {
		select {
		case <-ctx.Done():
			log.Debug("stopping")
			return nil
		case <-ticker.C:
		}
		if !touch.Poll() {
			if touching {
				log.Debug("released")
			}
			touching = false
			continue
		}
		p := touch.LastTouch()
		log.WithFields(logrus.Fields{
			"x":     p.X,
			"y":     p.Y,
			"first": !touching,
		}).Info("touch")
		touching = true
		if mark != nil {
			mark(p)
		}
	}
}
