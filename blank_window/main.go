package main

import (
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	log "github.com/sirupsen/logrus"

	"github.com/vkngwrapper/hellotriangle/config"
	"github.com/vkngwrapper/hellotriangle/window"
)

// Opens the window and runs the event loop without touching Vulkan.
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

	logger := cfg.NewLogger()

	win, err := window.New(cfg.Window.Title, cfg.WindowSize(), logger)
	if err != nil {
		logger.Fatalf("%+v\n", err)
	}
	defer win.Destroy()

	window.Run(win, logger, nil)
}
