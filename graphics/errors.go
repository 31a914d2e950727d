package graphics

import "github.com/cockroachdb/errors"

var (
	ErrUnsupportedPlatform     = errors.New("unsupported platform")
	ErrInstanceCreationFailed  = errors.New("instance creation failed")
	ErrNoValidGPU              = errors.New("no valid GPU")
	ErrDeviceCreationFailed    = errors.New("device creation failed")
	ErrNoSurfaceFormat         = errors.New("no surface format")
	ErrSwapchainCreationFailed = errors.New("swapchain creation failed")
	ErrShaderReadFailed        = errors.New("shader read failed")
	ErrPipelineCreationFailed  = errors.New("pipeline creation failed")
)

var stages = []struct {
	name string
	err  error
}{
	{"UnsupportedPlatform", ErrUnsupportedPlatform},
	{"InstanceCreationFailed", ErrInstanceCreationFailed},
	{"NoValidGPU", ErrNoValidGPU},
	{"DeviceCreationFailed", ErrDeviceCreationFailed},
	{"NoSurfaceFormat", ErrNoSurfaceFormat},
	{"SwapchainCreationFailed", ErrSwapchainCreationFailed},
	{"ShaderReadFailed", ErrShaderReadFailed},
	{"PipelineCreationFailed", ErrPipelineCreationFailed},
}

// Stage returns the name of the failure category err is tagged with, or
// "Unknown" when err did not come out of the construction sequence.
func Stage(err error) string {
	for _, stage := range stages {
		if errors.Is(err, stage.err) {
			return stage.name
		}
	}
	return "Unknown"
}

// fail tags a driver error with its failure category. The cause stays
// available through %+v and errors.Is matches the category.
func fail(cause error, kind error, format string, args ...interface{}) error {
	if cause == nil {
		return errors.Wrapf(kind, format, args...)
	}
	return errors.Mark(errors.Wrapf(cause, format, args...), kind)
}
