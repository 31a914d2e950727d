// Package window opens the SDL window the triangle is presented to and runs
// its event loop.
package window

import (
	"math"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/vkngwrapper/hellotriangle/graphics"
)

type Window struct {
	log    logrus.FieldLogger
	window *sdl.Window
}

// New initialises SDL video and opens a fixed-size window usable for Vulkan
// surfaces. Call it from the main OS thread.
func New(title string, size graphics.Extent2D, log logrus.FieldLogger) (*Window, error) {
	if err := checkSize(size); err != nil {
		return nil, err
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, errors.Wrap(err, "initialise SDL video")
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(size.Width),
		int32(size.Height),
		sdl.WINDOW_SHOWN|sdl.WINDOW_VULKAN)
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrapf(err, "create %s window", size)
	}

	log.WithFields(logrus.Fields{
		"title": title,
		"size":  size,
	}).Debug("Opened window")

	return &Window{log: log, window: window}, nil
}

// checkSize rejects sizes SDL cannot represent as 32-bit dimensions.
func checkSize(size graphics.Extent2D) error {
	if size.Width <= 0 || size.Height <= 0 || size.Width > math.MaxInt32 || size.Height > math.MaxInt32 {
		return errors.Errorf("window size %s out of range", size)
	}
	return nil
}

// SDL exposes the underlying window for surface creation.
func (w *Window) SDL() *sdl.Window {
	return w.window
}

// DrawableSize is the window's size in pixels, which can differ from the
// requested size on high-DPI displays.
func (w *Window) DrawableSize() graphics.Extent2D {
	width, height := w.window.VulkanGetDrawableSize()
	return graphics.Extent2D{Width: int(width), Height: int(height)}
}

// Poll implements Source over the SDL event queue.
func (w *Window) Poll() (Event, bool) {
	event := sdl.PollEvent()
	if event == nil {
		return EventNone, false
	}
	return translate(event), true
}

func translate(event sdl.Event) Event {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return EventCloseRequested
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_CLOSE {
			return EventCloseRequested
		}
	}
	return EventNone
}

func (w *Window) Destroy() {
	if w.window == nil {
		return
	}
	if err := w.window.Destroy(); err != nil {
		w.log.WithError(err).Warn("Destroying window")
	}
	w.window = nil
	sdl.Quit()
}
