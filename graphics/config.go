package graphics

import "github.com/cockroachdb/errors"

const (
	SwapchainExtensionName              = "VK_KHR_swapchain"
	PortabilitySubsetExtensionName      = "VK_KHR_portability_subset"
	PortabilityEnumerationExtensionName = "VK_KHR_portability_enumeration"
)

// Config holds everything NewContext needs besides the driver itself.
type Config struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version

	// WindowSize is used for the swapchain extent only when the surface
	// lets the application choose.
	WindowSize Extent2D

	DeviceExtensions []string

	// PreferredPresentModes is searched in order; FIFO is used when none of
	// them is offered.
	PreferredPresentModes []PresentMode
	// PreferExtraImage requests one image above the surface minimum when the
	// surface allows more than one count.
	PreferExtraImage bool
	// ClampExtent clamps a window-derived extent to the surface limits.
	ClampExtent bool

	VertexShader   []byte
	FragmentShader []byte
}

func DefaultConfig() Config {
	return Config{
		ApplicationName:    "Hello Triangle",
		ApplicationVersion: CreateVersion(1, 0, 0),
		EngineName:         "Hello Triangle Engine",
		EngineVersion:      CreateVersion(1, 0, 0),
		APIVersion:         Vulkan1_0,

		WindowSize: Extent2D{Width: 400, Height: 400},

		DeviceExtensions: []string{SwapchainExtensionName},

		PreferredPresentModes: []PresentMode{PresentModeImmediate},
		PreferExtraImage:      false,
		ClampExtent:           true,
	}
}

// Validate checks every field. The first problem found is the error message;
// the others are attached to it and show up with %+v. Missing shaders are
// tagged ErrShaderReadFailed and checked first so that tag is what
// errors.Is and Stage see.
func (c Config) Validate() error {
	var err error
	if len(c.VertexShader) == 0 {
		err = errors.CombineErrors(err, fail(nil, ErrShaderReadFailed, "no vertex shader"))
	}
	if len(c.FragmentShader) == 0 {
		err = errors.CombineErrors(err, fail(nil, ErrShaderReadFailed, "no fragment shader"))
	}
	if c.WindowSize.Width <= 0 || c.WindowSize.Height <= 0 {
		err = errors.CombineErrors(err, errors.Errorf("window size must be positive, got %s", c.WindowSize))
	}
	if len(c.DeviceExtensions) == 0 {
		err = errors.CombineErrors(err, errors.New("no device extensions: at least VK_KHR_swapchain is needed"))
	}
	return err
}
