//go:build !tinygo

package sim

// The simulator window shows the touch sensor surface. Clicking and dragging
// in it is reported as touches to the parent process.
//
// Fyne needs to own the main loop, which the polling API of this module
// doesn't provide. To work around this, the window is run in a separate
// process by starting the current executable again and communicating over
// pipes (stdin/stdout in the window process).

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/aykevl/tinygl/pixel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"
)

const runWindowCommand = "run-touch-simulator-window"

func init() {
	if len(os.Args) >= 2 && os.Args[1] == runWindowCommand {
		// This is the window process.
		windowMain()
		os.Exit(0)
	}
}

var (
	surfaceColor = pixel.NewColor[pixel.RGB888](192, 192, 192).RGBA()
	markColor    = pixel.NewColor[pixel.RGB888](255, 64, 32).RGBA()
	borderColor  = pixel.NewColor[pixel.RGB888](96, 96, 96).RGBA()
)

// State of the window process.
var (
	surfaceLock sync.Mutex
	surface     *image.RGBA
	marked      bool
	markPos     image.Point
)

// The main function for the window process.
func windowMain() {
	surface = image.NewRGBA(image.Rect(0, 0, 320, 480))
	display := &surfaceWidget{}
	display.Generator = func(w, h int) image.Image {
		surfaceLock.Lock()
		defer surfaceLock.Unlock()
		img := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.Draw(img, img.Bounds(), image.NewUniform(borderColor), image.Point{}, draw.Src)
		draw.Draw(surface, surface.Bounds(), image.NewUniform(surfaceColor), image.Point{}, draw.Src)
		if marked {
			cross := image.Rect(markPos.X-3, markPos.Y-3, markPos.X+4, markPos.Y+4)
			draw.Draw(surface, cross, image.NewUniform(markColor), image.Point{}, draw.Src)
		}
		draw.NearestNeighbor.Scale(img, img.Bounds(), surface, surface.Bounds(), draw.Src, nil)
		return img
	}

	a := app.New()
	w := a.NewWindow("Touch simulator")
	w.SetPadded(false)
	w.SetFixedSize(true)
	w.SetContent(fyne.NewContainerWithLayout(layout.NewVBoxLayout(), display))

	go windowReceiveCommands(w, display)

	w.ShowAndRun()
}

// Goroutine that listens for commands from the parent process.
func windowReceiveCommands(w fyne.Window, display *surfaceWidget) {
	r := bufio.NewReader(os.Stdin)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			// Parent process is gone.
			os.Exit(0)
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		cmd := fields[0]
		switch cmd {
		case "sensor":
			var width, height int
			fmt.Sscanf(line, "%s %d %d\n", &cmd, &width, &height)
			surfaceLock.Lock()
			surface = image.NewRGBA(image.Rect(0, 0, width, height))
			marked = false
			surfaceLock.Unlock()
			display.SetMinSize(fyne.NewSize(float32(width), float32(height)))
		case "mark":
			surfaceLock.Lock()
			fmt.Sscanf(line, "%s %d %d\n", &cmd, &markPos.X, &markPos.Y)
			marked = true
			surfaceLock.Unlock()
			display.Refresh()
		case "title":
			w.SetTitle(strings.TrimSpace(line[len("title"):]))
		default:
			fmt.Fprintln(os.Stderr, "unknown command:", cmd)
		}
	}
}

var _ desktop.Mouseable = (*surfaceWidget)(nil)
var _ fyne.Draggable = (*surfaceWidget)(nil)

// Wrapper for canvas.Raster that sends mouse events to the parent process, in
// sensor coordinates.
type surfaceWidget struct {
	canvas.Raster
}

func (r *surfaceWidget) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(&r.Raster)
}

// Convert a position in the widget to a sensor position.
func (r *surfaceWidget) sensorPos(pos fyne.Position) (int, int) {
	size := r.Size()
	surfaceLock.Lock()
	bounds := surface.Bounds()
	surfaceLock.Unlock()
	if size.Width <= 0 || size.Height <= 0 {
		return int(pos.X), int(pos.Y)
	}
	x := int(pos.X * float32(bounds.Dx()) / size.Width)
	y := int(pos.Y * float32(bounds.Dy()) / size.Height)
	return x, y
}

func (r *surfaceWidget) MouseDown(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonPrimary {
		x, y := r.sensorPos(event.Position)
		fmt.Printf("mousedown %d %d\n", x, y)
	}
}

func (r *surfaceWidget) MouseUp(event *desktop.MouseEvent) {
	if event.Button == desktop.MouseButtonPrimary {
		fmt.Printf("mouseup\n")
	}
}

func (r *surfaceWidget) Dragged(event *fyne.DragEvent) {
	x, y := r.sensorPos(event.PointEvent.Position)
	fmt.Printf("mousemove %d %d\n", x, y)
}

func (r *surfaceWidget) DragEnd() {
	// handled in MouseUp
}

var (
	windowStart  sync.Once
	windowErr    error
	windowLock   sync.Mutex
	windowStdin  io.WriteCloser
	windowStdout io.ReadCloser
)

// Ensure the window is running in a separate process, starting it if
// necessary. Events from the window are sent to the given driver.
func startWindow(d *Driver) error {
	windowStart.Do(func() {
		cmd := exec.Command(os.Args[0], runWindowCommand)
		cmd.Stderr = os.Stderr
		windowStdin, windowErr = cmd.StdinPipe()
		if windowErr != nil {
			return
		}
		windowStdout, windowErr = cmd.StdoutPipe()
		if windowErr != nil {
			return
		}
		if err := cmd.Start(); err != nil {
			windowErr = errors.Wrap(err, "sim: could not start window process")
			return
		}
		go func() {
			err := cmd.Wait()
			if err != nil {
				if exitErr, ok := err.(*exec.ExitError); ok {
					os.Exit(exitErr.ExitCode())
				}
				os.Exit(1)
			}
			// The window was closed, so exit.
			os.Exit(0)
		}()

		// Listen for touch events.
		go windowListenEvents(d)

		windowSendCommand("title " + d.title)
		windowSendCommand(fmt.Sprintf("sensor %d %d", d.width, d.height))
	})
	return windowErr
}

// Send a single-line command to the window process.
func windowSendCommand(command string) {
	windowLock.Lock()
	defer windowLock.Unlock()

	if windowStdin == nil {
		return
	}
	windowStdin.Write([]byte(command + "\n"))
}

// Goroutine that listens for mouse events from the window process.
func windowListenEvents(d *Driver) {
	r := bufio.NewReader(windowStdout)
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				logrus.WithError(err).Error("sim: failed to read events from window process")
			}
			return
		}
		if err := d.HandleEvent(line); err != nil {
			logrus.WithError(err).Warn("sim: bad window event")
		}
	}
}
