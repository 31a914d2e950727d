package config

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vkngwrapper/hellotriangle/graphics"
)

const (
	EnvTitle        = "TRIANGLE_TITLE"
	EnvWidth        = "TRIANGLE_WIDTH"
	EnvHeight       = "TRIANGLE_HEIGHT"
	EnvPresentModes = "TRIANGLE_PRESENT_MODES"
	EnvExtraImage   = "TRIANGLE_EXTRA_IMAGE"
	EnvClampExtent  = "TRIANGLE_CLAMP_EXTENT"
	EnvLogLevel     = "TRIANGLE_LOG_LEVEL"
)

type variable struct {
	name  string
	help  string
	apply func(c *Configuration, value string) error
}

var environment = []variable{
	{EnvTitle, "Window title", func(c *Configuration, value string) error {
		c.Window.Title = value
		return nil
	}},
	{EnvWidth, "Window width in screen units, at most 16384", func(c *Configuration, value string) error {
		return parseDimension(value, &c.Window.Width)
	}},
	{EnvHeight, "Window height in screen units, at most 16384", func(c *Configuration, value string) error {
		return parseDimension(value, &c.Window.Height)
	}},
	{EnvPresentModes, "Comma separated present modes in order of preference", func(c *Configuration, value string) error {
		modes, err := parsePresentModes(value)
		c.Swapchain.PresentModes = modes
		return err
	}},
	{EnvExtraImage, "Request one swapchain image above the minimum", func(c *Configuration, value string) error {
		return parseBool(value, &c.Swapchain.ExtraImage)
	}},
	{EnvClampExtent, "Clamp the window-derived extent to the surface limits", func(c *Configuration, value string) error {
		return parseBool(value, &c.Swapchain.ClampExtent)
	}},
	{EnvLogLevel, "Log level", func(c *Configuration, value string) error {
		level, err := logrus.ParseLevel(value)
		c.Log.Level = level
		return err
	}},
}

// ApplyEnvironment overrides settings from the variables set in envy. Unset
// or empty variables leave the current value alone. Every bad value is
// reported, not only the first.
func (c *Configuration) ApplyEnvironment() error {
	var err error
	for _, v := range environment {
		value := strings.TrimSpace(envy.Get(v.name, ""))
		if value == "" {
			continue
		}

		next := *c
		if applyErr := v.apply(&next, value); applyErr != nil {
			err = errors.CombineErrors(err, errors.Wrapf(applyErr, "%s=%q", v.name, value))
			continue
		}
		*c = next
	}
	return err
}

// LoadEnvFile makes the variables of a dotenv file visible to
// ApplyEnvironment, overriding the process environment.
func LoadEnvFile(path string) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		return errors.Wrapf(err, "read env file %s", path)
	}

	for key, value := range vars {
		envy.Set(key, value)
	}
	return nil
}

// Load resolves the configuration for args, the command line without the
// program name. Precedence, lowest first: defaults, environment, env file,
// command line.
func Load(args []string) (Configuration, error) {
	cfg := Default()

	cl, err := ProcessCommandLineArgs(args)
	if err != nil {
		return cfg, err
	}

	if cl.EnvFile != "" {
		if err := LoadEnvFile(cl.EnvFile); err != nil {
			return cfg, err
		}
	}

	if err := cfg.ApplyEnvironment(); err != nil {
		return cfg, errors.Wrap(err, "environment")
	}

	if cl.LogLevel != "" {
		level, err := logrus.ParseLevel(cl.LogLevel)
		if err != nil {
			return cfg, errors.Wrap(err, "--log-level")
		}
		cfg.Log.Level = level
	}

	return cfg, nil
}

// MaxWindowDimension bounds the window width and height.
const MaxWindowDimension = 16384

func parseDimension(value string, out *int) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return err
	}
	if n <= 0 {
		return errors.Errorf("must be positive, got %d", n)
	}
	if n > MaxWindowDimension {
		return errors.Errorf("must be at most %d, got %d", MaxWindowDimension, n)
	}
	*out = n
	return nil
}

func parseBool(value string, out *bool) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return err
	}
	*out = b
	return nil
}

func parsePresentModes(value string) ([]graphics.PresentMode, error) {
	var modes []graphics.PresentMode
	for _, name := range strings.Split(value, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}
		mode, err := graphics.ParsePresentMode(name)
		if err != nil {
			return nil, err
		}
		modes = append(modes, mode)
	}
	return modes, nil
}
