// Package config gathers the application settings from defaults, the
// environment, an optional env file and the command line.
package config

import (
	"github.com/sirupsen/logrus"

	"github.com/vkngwrapper/hellotriangle/graphics"
)

// Configuration defines every tunable setting of the application
type Configuration struct {
	Application ApplicationConfiguration
	Window      WindowConfiguration
	Swapchain   SwapchainConfiguration
	Log         LogConfiguration
}

// ApplicationConfiguration is reported to the driver at instance creation
type ApplicationConfiguration struct {
	Name       string
	EngineName string
}

// WindowConfiguration is used to open the window
type WindowConfiguration struct {
	Title  string
	Width  int
	Height int
}

// SwapchainConfiguration steers the swapchain choices
type SwapchainConfiguration struct {
	// PresentModes are tried in order, FIFO is used if none is offered
	PresentModes []graphics.PresentMode
	// ExtraImage asks for one image more than the surface minimum
	ExtraImage bool
	// ClampExtent keeps a window-sized extent within the surface limits
	ClampExtent bool
}

type LogConfiguration struct {
	Level logrus.Level
}

func Default() Configuration {
	defaults := graphics.DefaultConfig()

	return Configuration{
		Application: ApplicationConfiguration{
			Name:       defaults.ApplicationName,
			EngineName: defaults.EngineName,
		},
		Window: WindowConfiguration{
			Title:  defaults.ApplicationName,
			Width:  defaults.WindowSize.Width,
			Height: defaults.WindowSize.Height,
		},
		Swapchain: SwapchainConfiguration{
			PresentModes: defaults.PreferredPresentModes,
			ExtraImage:   defaults.PreferExtraImage,
			ClampExtent:  defaults.ClampExtent,
		},
		Log: LogConfiguration{
			Level: logrus.InfoLevel,
		},
	}
}

func (c Configuration) WindowSize() graphics.Extent2D {
	return graphics.Extent2D{Width: c.Window.Width, Height: c.Window.Height}
}

// Graphics builds the context configuration. drawable is the window's pixel
// size and is what the swapchain extent falls back to.
func (c Configuration) Graphics(drawable graphics.Extent2D, vertexShader, fragmentShader []byte) graphics.Config {
	cfg := graphics.DefaultConfig()
	cfg.ApplicationName = c.Application.Name
	cfg.EngineName = c.Application.EngineName
	cfg.WindowSize = drawable
	cfg.PreferredPresentModes = c.Swapchain.PresentModes
	cfg.PreferExtraImage = c.Swapchain.ExtraImage
	cfg.ClampExtent = c.Swapchain.ClampExtent
	cfg.VertexShader = vertexShader
	cfg.FragmentShader = fragmentShader
	return cfg
}

// NewLogger returns a text logger at the configured level.
func (c Configuration) NewLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(c.Log.Level)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return log
}
