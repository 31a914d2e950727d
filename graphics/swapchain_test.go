package graphics

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	bgraUnorm = SurfaceFormat{Format: FormatB8G8R8A8UnsignedNormalized, ColorSpace: ColorSpaceSRGBNonlinear}
	bgraSRGB  = SurfaceFormat{Format: FormatB8G8R8A8SRGB, ColorSpace: ColorSpaceSRGBNonlinear}
	rgbaUnorm = SurfaceFormat{Format: FormatR8G8B8A8UnsignedNormalized, ColorSpace: ColorSpaceSRGBNonlinear}
)

func TestChooseSurfaceFormat_Preferred(t *testing.T) {
	format, err := ChooseSurfaceFormat([]SurfaceFormat{bgraUnorm, rgbaUnorm, bgraSRGB})
	require.NoError(t, err)
	assert.Equal(t, bgraSRGB, format)
}

func TestChooseSurfaceFormat_FallsBackToFirst(t *testing.T) {
	format, err := ChooseSurfaceFormat([]SurfaceFormat{rgbaUnorm, bgraUnorm})
	require.NoError(t, err)
	assert.Equal(t, rgbaUnorm, format)
}

func TestChooseSurfaceFormat_Empty(t *testing.T) {
	_, err := ChooseSurfaceFormat(nil)
	assert.True(t, errors.Is(err, ErrNoSurfaceFormat))
	assert.Equal(t, "NoSurfaceFormat", Stage(err))
}

func TestChoosePresentMode(t *testing.T) {
	immediate := []PresentMode{PresentModeImmediate}

	tests := []struct {
		name      string
		available []PresentMode
		preferred []PresentMode
		want      PresentMode
	}{
		{"preferred offered", []PresentMode{PresentModeFIFO, PresentModeImmediate}, immediate, PresentModeImmediate},
		{"preferred missing", []PresentMode{PresentModeFIFO, PresentModeMailbox}, immediate, PresentModeFIFO},
		{"nothing offered", nil, immediate, PresentModeFIFO},
		{"no preference", []PresentMode{PresentModeMailbox}, nil, PresentModeFIFO},
		{"preference order", []PresentMode{PresentModeImmediate, PresentModeMailbox}, []PresentMode{PresentModeMailbox, PresentModeImmediate}, PresentModeMailbox},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChoosePresentMode(tt.available, tt.preferred))
		})
	}
}

func TestChooseExtent(t *testing.T) {
	window := Extent2D{Width: 400, Height: 400}

	fixed := SurfaceCapabilities{CurrentExtent: Extent2D{Width: 800, Height: 600}}
	assert.Equal(t, Extent2D{Width: 800, Height: 600}, ChooseExtent(fixed, window))

	open := SurfaceCapabilities{CurrentExtent: Extent2D{Width: AnyExtent, Height: AnyExtent}}
	assert.Equal(t, window, ChooseExtent(open, window))

	negative := SurfaceCapabilities{CurrentExtent: Extent2D{Width: -1, Height: -1}}
	assert.Equal(t, window, ChooseExtent(negative, window))
}

func TestClampExtent(t *testing.T) {
	caps := SurfaceCapabilities{
		MinImageExtent: Extent2D{Width: 100, Height: 100},
		MaxImageExtent: Extent2D{Width: 1000, Height: 500},
	}

	assert.Equal(t, Extent2D{Width: 400, Height: 400}, ClampExtent(Extent2D{Width: 400, Height: 400}, caps))
	assert.Equal(t, Extent2D{Width: 100, Height: 500}, ClampExtent(Extent2D{Width: 10, Height: 4000}, caps))

	unbounded := SurfaceCapabilities{MinImageExtent: Extent2D{Width: 1, Height: 1}}
	assert.Equal(t, Extent2D{Width: 9000, Height: 9000}, ClampExtent(Extent2D{Width: 9000, Height: 9000}, unbounded))
}

func TestChooseImageCount(t *testing.T) {
	tests := []struct {
		name       string
		min, max   int
		extra      bool
		wantImages int
	}{
		{"minimum", 2, 8, false, 2},
		{"extra", 2, 8, true, 3},
		{"extra unbounded", 3, 0, true, 4},
		{"extra at fixed count", 2, 2, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			caps := SurfaceCapabilities{MinImageCount: tt.min, MaxImageCount: tt.max}
			assert.Equal(t, tt.wantImages, ChooseImageCount(caps, tt.extra))
		})
	}
}

func TestConfigureSwapchain_ClampsWindowExtent(t *testing.T) {
	support := SwapchainSupport{
		Capabilities: SurfaceCapabilities{
			MinImageCount:  2,
			CurrentExtent:  Extent2D{Width: -1, Height: -1},
			MinImageExtent: Extent2D{Width: 1, Height: 1},
			MaxImageExtent: Extent2D{Width: 300, Height: 300},
		},
		Formats:      []SurfaceFormat{bgraUnorm},
		PresentModes: []PresentMode{PresentModeFIFO, PresentModeImmediate},
	}

	cfg := DefaultConfig()
	swapchain, err := ConfigureSwapchain(support, cfg)
	require.NoError(t, err)
	assert.Equal(t, Extent2D{Width: 300, Height: 300}, swapchain.Extent)
	assert.Equal(t, PresentModeImmediate, swapchain.PresentMode)
	assert.Equal(t, bgraUnorm, swapchain.Format)
	assert.Equal(t, 2, swapchain.ImageCount)

	cfg.ClampExtent = false
	swapchain, err = ConfigureSwapchain(support, cfg)
	require.NoError(t, err)
	assert.Equal(t, Extent2D{Width: 400, Height: 400}, swapchain.Extent)
}

func TestConfigureSwapchain_NoFormats(t *testing.T) {
	_, err := ConfigureSwapchain(SwapchainSupport{PresentModes: []PresentMode{PresentModeFIFO}}, DefaultConfig())
	assert.True(t, errors.Is(err, ErrNoSurfaceFormat))
}
