package vkng

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"

	"github.com/vkngwrapper/hellotriangle/graphics"
)

func (d *Driver) CreateDevice(physicalDevice graphics.PhysicalDevice, info graphics.DeviceCreateInfo) (graphics.Device, error) {
	var queueFamilyOptions []core1_0.DeviceQueueCreateInfo
	for _, queueInfo := range info.QueueCreateInfos {
		queueFamilyOptions = append(queueFamilyOptions, core1_0.DeviceQueueCreateInfo{
			QueueFamilyIndex: queueInfo.QueueFamilyIndex,
			QueuePriorities:  queueInfo.QueuePriorities,
		})
	}

	deviceDriver, result, err := d.instanceDriver.CreateDevice(d.physicalDevices.get(physicalDevice), nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos:      queueFamilyOptions,
		EnabledExtensionNames: info.EnabledExtensionNames,
	})
	if err != nil {
		return 0, errors.Wrapf(err, "vkCreateDevice returned %v", result)
	}
	d.log.WithField("extensions", info.EnabledExtensionNames).Debug("Created device")

	return d.devices.add(&deviceState{
		driver:    deviceDriver,
		swapchain: khr_swapchain.CreateExtensionDriverFromCoreDriver(deviceDriver),
		queues:    map[queueKey]graphics.Queue{},
	}), nil
}

func (d *Driver) DestroyDevice(device graphics.Device) {
	if state, ok := d.devices.take(device); ok {
		for _, queue := range state.queues {
			d.queues.take(queue)
		}
		state.driver.DestroyDevice(nil)
	}
}

func (d *Driver) GetQueue(device graphics.Device, queueFamily int, index int) graphics.Queue {
	state := d.devices.get(device)
	key := queueKey{family: queueFamily, index: index}
	if queue, ok := state.queues[key]; ok {
		return queue
	}

	queue := d.queues.add(state.driver.GetQueue(queueFamily, index))
	state.queues[key] = queue
	return queue
}

func (d *Driver) CreateSwapchain(device graphics.Device, info graphics.SwapchainCreateInfo) (graphics.Swapchain, error) {
	swapchain, result, err := d.devices.get(device).swapchain.CreateSwapchain(nil, khr_swapchain.SwapchainCreateInfo{
		Surface: d.surfaces.get(info.Surface),

		MinImageCount:    info.MinImageCount,
		ImageFormat:      core1_0.Format(info.ImageFormat),
		ImageColorSpace:  khr_surface.ColorSpace(info.ImageColorSpace),
		ImageExtent:      toExtent(info.ImageExtent),
		ImageArrayLayers: info.ImageArrayLayers,
		ImageUsage:       core1_0.ImageUsageColorAttachment,

		ImageSharingMode:   core1_0.SharingMode(info.ImageSharingMode),
		QueueFamilyIndices: info.QueueFamilyIndices,

		PreTransform:   khr_surface.SurfaceTransformFlags(info.PreTransform),
		CompositeAlpha: khr_surface.CompositeAlphaOpaque,
		PresentMode:    khr_surface.PresentMode(info.PresentMode),
		Clipped:        info.Clipped,
	})
	if err != nil {
		return 0, errors.Wrapf(err, "vkCreateSwapchainKHR returned %v", result)
	}

	return d.swapchains.add(swapchain), nil
}

func (d *Driver) DestroySwapchain(device graphics.Device, swapchain graphics.Swapchain) {
	s, ok := d.swapchains.take(swapchain)
	if !ok {
		return
	}
	d.devices.get(device).swapchain.DestroySwapchain(s, nil)

	// Swapchain images belong to the swapchain and go with it.
	clear(d.images.values)
}

func (d *Driver) SwapchainImages(device graphics.Device, swapchain graphics.Swapchain) ([]graphics.Image, error) {
	images, _, err := d.devices.get(device).swapchain.GetSwapchainImages(d.swapchains.get(swapchain))
	if err != nil {
		return nil, err
	}

	handles := make([]graphics.Image, 0, len(images))
	for _, image := range images {
		handles = append(handles, d.images.add(image))
	}
	return handles, nil
}

func (d *Driver) CreateImageView(device graphics.Device, info graphics.ImageViewCreateInfo) (graphics.ImageView, error) {
	imageView, _, err := d.devices.get(device).driver.CreateImageView(nil, core1_0.ImageViewCreateInfo{
		Image:    d.images.get(info.Image),
		ViewType: core1_0.ImageViewType2D,
		Format:   core1_0.Format(info.Format),
		SubresourceRange: core1_0.ImageSubresourceRange{
			AspectMask:     core1_0.ImageAspectColor,
			BaseMipLevel:   0,
			LevelCount:     info.LevelCount,
			BaseArrayLayer: 0,
			LayerCount:     info.LayerCount,
		},
	})
	if err != nil {
		return 0, err
	}

	return d.imageViews.add(imageView), nil
}

func (d *Driver) DestroyImageView(device graphics.Device, view graphics.ImageView) {
	if v, ok := d.imageViews.take(view); ok {
		d.devices.get(device).driver.DestroyImageView(v, nil)
	}
}

func toExtent(extent graphics.Extent2D) core1_0.Extent2D {
	return core1_0.Extent2D{Width: extent.Width, Height: extent.Height}
}

func fromExtent(extent core1_0.Extent2D) graphics.Extent2D {
	return graphics.Extent2D{Width: extent.Width, Height: extent.Height}
}
