package graphics

import (
	"github.com/loov/hrtime"
	"github.com/sirupsen/logrus"
)

type release struct {
	name string
	fn   func()
}

// releaseStack holds one entry per acquired driver object, in acquisition
// order.
type releaseStack struct {
	entries []release
}

func (s *releaseStack) push(name string, fn func()) {
	s.entries = append(s.entries, release{name: name, fn: fn})
}

func (s *releaseStack) len() int {
	return len(s.entries)
}

// unwind releases everything in reverse acquisition order and leaves the
// stack empty.
func (s *releaseStack) unwind(log logrus.FieldLogger) {
	for len(s.entries) > 0 {
		last := s.entries[len(s.entries)-1]
		s.entries = s.entries[:len(s.entries)-1]

		log.WithField("object", last.name).Debug("Releasing")
		last.fn()
	}
}

// Context owns every driver object of the bring-up sequence. Each object
// depends on those created before it, so Destroy releases them in exactly the
// reverse of creation order.
type Context struct {
	log    logrus.FieldLogger
	driver Driver

	Instance       Instance
	Surface        Surface
	PhysicalDevice SelectedDevice

	Device        Device
	GraphicsQueue Queue
	PresentQueue  Queue

	Swapchain           Swapchain
	SwapchainConfig     SwapchainConfig
	SwapchainImages     []Image
	SwapchainImageViews []ImageView

	ShaderModules  []ShaderModule
	RenderPass     RenderPass
	PipelineLayout PipelineLayout
	Pipeline       Pipeline

	// Viewport and Scissor cover the whole swapchain extent and are meant to
	// be set as dynamic state when commands are recorded.
	Viewport Viewport
	Scissor  Rect2D

	releases releaseStack
}

var constructionSteps = []struct {
	name string
	fn   func(*Context, Config) error
}{
	{"instance", (*Context).createInstance},
	{"surface", (*Context).createSurface},
	{"physical device", (*Context).pickPhysicalDevice},
	{"logical device", (*Context).createLogicalDevice},
	{"swapchain", (*Context).createSwapchain},
	{"image views", (*Context).createImageViews},
	{"shader modules", (*Context).createShaderModules},
	{"render pass", (*Context).createRenderPass},
	{"pipeline layout", (*Context).createPipelineLayout},
	{"graphics pipeline", (*Context).createGraphicsPipeline},
}

// NewContext loads the driver from loader and runs the whole construction
// sequence. If any step fails, everything acquired so far is released before
// the error is returned, so a failed NewContext leaks nothing.
func NewContext(loader Loader, cfg Config, log logrus.FieldLogger) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Context{log: log}

	start := hrtime.Now()
	if err := c.loadEntry(loader); err != nil {
		return nil, err
	}
	log.WithField("elapsed", hrtime.Since(start)).Debug("Loaded entry point")

	for _, step := range constructionSteps {
		start := hrtime.Now()

		if err := step.fn(c, cfg); err != nil {
			log.WithFields(logrus.Fields{
				"step":     step.name,
				"stage":    Stage(err),
				"acquired": c.releases.len(),
			}).Error("Construction failed, releasing acquired objects")
			c.releases.unwind(log)
			return nil, err
		}

		log.WithFields(logrus.Fields{
			"step":    step.name,
			"elapsed": hrtime.Since(start),
		}).Debug("Construction step complete")
	}

	return c, nil
}

// Destroy releases every owned object and zeroes the handles that referred
// to them. Calling it again does nothing.
func (c *Context) Destroy() {
	if c.releases.len() == 0 {
		return
	}

	c.log.Info("Cleaning up graphics context")
	c.releases.unwind(c.log)
	*c = Context{log: c.log}
	c.log.Info("Cleaned up graphics context")
}
