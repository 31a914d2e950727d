package graphics

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// formatPreferences is searched in order before falling back to the first
// format the surface lists.
var formatPreferences = []SurfaceFormat{
	{Format: FormatB8G8R8A8SRGB, ColorSpace: ColorSpaceSRGBNonlinear},
}

func ChooseSurfaceFormat(availableFormats []SurfaceFormat) (SurfaceFormat, error) {
	if len(availableFormats) == 0 {
		return SurfaceFormat{}, fail(nil, ErrNoSurfaceFormat, "surface lists no formats")
	}

	for _, preferred := range formatPreferences {
		for _, format := range availableFormats {
			if format == preferred {
				return format, nil
			}
		}
	}

	return availableFormats[0], nil
}

// ChoosePresentMode returns the first of preferred that is available. FIFO is
// the fallback since every surface must support it, so it is returned even
// for an empty list.
func ChoosePresentMode(availablePresentModes []PresentMode, preferred []PresentMode) PresentMode {
	for _, want := range preferred {
		for _, presentMode := range availablePresentModes {
			if presentMode == want {
				return presentMode
			}
		}
	}

	return PresentModeFIFO
}

// ChooseExtent uses the surface's current extent unless the surface leaves
// the size to the application, in which case the window size is used.
func ChooseExtent(capabilities SurfaceCapabilities, window Extent2D) Extent2D {
	if uint32(capabilities.CurrentExtent.Width) != AnyExtent {
		return capabilities.CurrentExtent
	}

	return window
}

// ClampExtent limits extent to the surface's image extent bounds. A zero
// maximum is treated as unbounded.
func ClampExtent(extent Extent2D, capabilities SurfaceCapabilities) Extent2D {
	extent.Width = clamp(extent.Width, capabilities.MinImageExtent.Width, capabilities.MaxImageExtent.Width)
	extent.Height = clamp(extent.Height, capabilities.MinImageExtent.Height, capabilities.MaxImageExtent.Height)
	return extent
}

func clamp(value, lo, hi int) int {
	if value < lo {
		value = lo
	}
	if hi > 0 && value > hi {
		value = hi
	}
	return value
}

// ChooseImageCount starts at the surface minimum. With preferExtra it asks for
// one more image when the surface allows a range of counts.
func ChooseImageCount(capabilities SurfaceCapabilities, preferExtra bool) int {
	imageCount := capabilities.MinImageCount
	if preferExtra && capabilities.MaxImageCount != capabilities.MinImageCount {
		imageCount++
	}
	if capabilities.MaxImageCount > 0 && imageCount > capabilities.MaxImageCount {
		imageCount = capabilities.MaxImageCount
	}
	return imageCount
}

// ConfigureSwapchain derives the swapchain settings from what the device
// reported for the surface.
func ConfigureSwapchain(support SwapchainSupport, cfg Config) (SwapchainConfig, error) {
	format, err := ChooseSurfaceFormat(support.Formats)
	if err != nil {
		return SwapchainConfig{}, err
	}

	caps := support.Capabilities
	extent := ChooseExtent(caps, cfg.WindowSize)
	if cfg.ClampExtent && uint32(caps.CurrentExtent.Width) == AnyExtent {
		extent = ClampExtent(extent, caps)
	}

	return SwapchainConfig{
		Format:      format,
		PresentMode: ChoosePresentMode(support.PresentModes, cfg.PreferredPresentModes),
		Extent:      extent,
		ImageCount:  ChooseImageCount(caps, cfg.PreferExtraImage),
	}, nil
}

func (c *Context) createSwapchain(cfg Config) error {
	support := c.PhysicalDevice.Support

	swapchainConfig, err := ConfigureSwapchain(support, cfg)
	if err != nil {
		return err
	}

	indices := c.PhysicalDevice.Indices
	sharingMode := SharingModeExclusive
	var queueFamilyIndices []int
	if !indices.Shared() {
		sharingMode = SharingModeConcurrent
		queueFamilyIndices = indices.Unique()
	}

	swapchain, err := c.driver.CreateSwapchain(c.Device, SwapchainCreateInfo{
		Surface: c.Surface,

		MinImageCount:    swapchainConfig.ImageCount,
		ImageFormat:      swapchainConfig.Format.Format,
		ImageColorSpace:  swapchainConfig.Format.ColorSpace,
		ImageExtent:      swapchainConfig.Extent,
		ImageArrayLayers: 1,

		ImageSharingMode:   sharingMode,
		QueueFamilyIndices: queueFamilyIndices,

		PreTransform: support.Capabilities.CurrentTransform,
		PresentMode:  swapchainConfig.PresentMode,
		Clipped:      true,
	})
	if err != nil {
		return fail(err, ErrSwapchainCreationFailed, "create swapchain")
	}

	driver, device := c.driver, c.Device
	c.releases.push("swapchain", func() {
		driver.DestroySwapchain(device, swapchain)
	})
	c.Swapchain = swapchain
	c.SwapchainConfig = swapchainConfig

	c.log.WithFields(logrus.Fields{
		"format":      swapchainConfig.Format.Format,
		"colorSpace":  swapchainConfig.Format.ColorSpace,
		"presentMode": swapchainConfig.PresentMode,
		"extent":      swapchainConfig.Extent,
		"images":      swapchainConfig.ImageCount,
	}).Info("Created swapchain")

	return nil
}

func (c *Context) createImageViews(cfg Config) error {
	images, err := c.driver.SwapchainImages(c.Device, c.Swapchain)
	if err != nil {
		return fail(err, ErrSwapchainCreationFailed, "get swapchain images")
	}
	c.SwapchainImages = images

	for idx, image := range images {
		view, err := c.driver.CreateImageView(c.Device, ImageViewCreateInfo{
			Image:      image,
			Format:     c.SwapchainConfig.Format.Format,
			LevelCount: 1,
			LayerCount: 1,
		})
		if err != nil {
			return fail(err, ErrSwapchainCreationFailed, "create image view %d", idx)
		}

		driver, device := c.driver, c.Device
		c.releases.push(fmt.Sprintf("image view %d", idx), func() {
			driver.DestroyImageView(device, view)
		})
		c.SwapchainImageViews = append(c.SwapchainImageViews, view)
	}

	return nil
}
