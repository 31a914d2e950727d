package main

import (
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"

	"github.com/vkngwrapper/hellotriangle/config"
	"github.com/vkngwrapper/hellotriangle/graphics"
	"github.com/vkngwrapper/hellotriangle/graphics/vkng"
	"github.com/vkngwrapper/hellotriangle/shaders"
	"github.com/vkngwrapper/hellotriangle/window"
)

type HelloTriangleApplication struct {
	cfg config.Configuration
	log *log.Logger

	window  *window.Window
	context *graphics.Context
}

func (app *HelloTriangleApplication) Run() error {
	err := app.initWindow()
	if err != nil {
		return err
	}
	defer app.window.Destroy()

	err = app.initVulkan()
	if err != nil {
		return err
	}
	defer app.context.Destroy()

	window.Run(app.window, app.log, nil)
	return nil
}

func (app *HelloTriangleApplication) initWindow() error {
	var err error
	app.window, err = window.New(app.cfg.Window.Title, app.cfg.WindowSize(), app.log)
	return err
}

func (app *HelloTriangleApplication) initVulkan() error {
	gfx := app.cfg.Graphics(app.window.DrawableSize(), shaders.Vertex, shaders.Fragment)

	var err error
	app.context, err = graphics.NewContext(vkng.Loader(app.window.SDL(), app.log), gfx, app.log)
	return err
}

func main() {
	runtime.LockOSThread()

	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		config.Usage(os.Stdout)
		return
	} else if err != nil {
		config.Usage(os.Stderr)
		log.Fatalf("%+v\n", err)
	}

	app := &HelloTriangleApplication{
		cfg: cfg,
		log: cfg.NewLogger(),
	}

	err = app.Run()
	if err != nil {
		app.log.WithField("stage", graphics.Stage(err)).Fatalf("%+v\n", err)
	}
}
