// Package vkng implements graphics.Driver on top of vkngwrapper, with SDL2
// providing the loader and the window surface.
package vkng

import (
	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vkngwrapper/core/v3"
	"github.com/vkngwrapper/core/v3/common"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v3/khr_surface"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"
	vkng_sdl2 "github.com/vkngwrapper/integrations/sdl2/v3"

	"github.com/vkngwrapper/hellotriangle/graphics"
)

var _ graphics.Driver = (*Driver)(nil)

type queueKey struct {
	family int
	index  int
}

type deviceState struct {
	driver    core1_0.CoreDeviceDriver
	swapchain khr_swapchain.ExtensionDriver

	// queues holds one handle per queue so that asking twice for the same
	// family and index yields the same handle.
	queues map[queueKey]graphics.Queue
}

// Driver owns the wrapper drivers for one instance and at most one device
// at a time.
type Driver struct {
	log    logrus.FieldLogger
	window *sdl.Window

	global         core1_0.GlobalDriver
	instanceDriver core1_0.CoreInstanceDriver
	surfaceDriver  khr_surface.ExtensionDriver

	handles         uint64
	surfaces        objects[graphics.Surface, khr_surface.Surface]
	physicalDevices objects[graphics.PhysicalDevice, core1_0.PhysicalDevice]
	devices         objects[graphics.Device, *deviceState]
	queues          objects[graphics.Queue, core1_0.Queue]
	swapchains      objects[graphics.Swapchain, khr_swapchain.Swapchain]
	images          objects[graphics.Image, core1_0.Image]
	imageViews      objects[graphics.ImageView, core1_0.ImageView]
	renderPasses    objects[graphics.RenderPass, core1_0.RenderPass]
	shaderModules   objects[graphics.ShaderModule, core1_0.ShaderModule]
	pipelineLayouts objects[graphics.PipelineLayout, core1_0.PipelineLayout]
	pipelines       objects[graphics.Pipeline, core1_0.Pipeline]
}

// Loader loads the Vulkan library through SDL. The window must have been
// created with sdl.WINDOW_VULKAN; surfaces are created for it.
func Loader(window *sdl.Window, log logrus.FieldLogger) graphics.Loader {
	return graphics.LoaderFunc(func() (graphics.Driver, error) {
		if err := sdl.VulkanLoadLibrary(""); err != nil {
			return nil, errors.Wrap(err, "load vulkan library")
		}

		global, err := core.CreateDriverFromProcAddr(sdl.VulkanGetVkGetInstanceProcAddr())
		if err != nil {
			sdl.VulkanUnloadLibrary()
			return nil, errors.Wrap(err, "create global driver")
		}

		return newDriver(window, global, log), nil
	})
}

func newDriver(window *sdl.Window, global core1_0.GlobalDriver, log logrus.FieldLogger) *Driver {
	d := &Driver{
		log:    log,
		window: window,
		global: global,
	}
	d.surfaces = newObjects[graphics.Surface, khr_surface.Surface](&d.handles)
	d.physicalDevices = newObjects[graphics.PhysicalDevice, core1_0.PhysicalDevice](&d.handles)
	d.devices = newObjects[graphics.Device, *deviceState](&d.handles)
	d.queues = newObjects[graphics.Queue, core1_0.Queue](&d.handles)
	d.swapchains = newObjects[graphics.Swapchain, khr_swapchain.Swapchain](&d.handles)
	d.images = newObjects[graphics.Image, core1_0.Image](&d.handles)
	d.imageViews = newObjects[graphics.ImageView, core1_0.ImageView](&d.handles)
	d.renderPasses = newObjects[graphics.RenderPass, core1_0.RenderPass](&d.handles)
	d.shaderModules = newObjects[graphics.ShaderModule, core1_0.ShaderModule](&d.handles)
	d.pipelineLayouts = newObjects[graphics.PipelineLayout, core1_0.PipelineLayout](&d.handles)
	d.pipelines = newObjects[graphics.Pipeline, core1_0.Pipeline](&d.handles)
	return d
}

func (d *Driver) Unload() {
	sdl.VulkanUnloadLibrary()
	d.global = nil
}

func (d *Driver) RequiredInstanceExtensions() ([]string, error) {
	return d.window.VulkanGetInstanceExtensions(), nil
}

func (d *Driver) AvailableInstanceExtensions() ([]string, error) {
	extensions, _, err := d.global.AvailableExtensions()
	if err != nil {
		return nil, err
	}
	return names(extensions), nil
}

func (d *Driver) CreateInstance(info graphics.InstanceCreateInfo) (graphics.Instance, error) {
	if d.instanceDriver != nil {
		return 0, errors.New("an instance already exists")
	}

	instanceOptions := core1_0.InstanceCreateInfo{
		ApplicationName:       info.ApplicationName,
		ApplicationVersion:    common.Version(info.ApplicationVersion),
		EngineName:            info.EngineName,
		EngineVersion:         common.Version(info.EngineVersion),
		APIVersion:            common.APIVersion(info.APIVersion),
		EnabledExtensionNames: info.EnabledExtensionNames,
	}
	if info.EnumeratePortability {
		instanceOptions.Flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	instanceDriver, result, err := d.global.CreateInstance(nil, instanceOptions)
	if err != nil {
		return 0, errors.Wrapf(err, "vkCreateInstance returned %v", result)
	}

	d.instanceDriver = instanceDriver
	d.surfaceDriver = khr_surface.CreateExtensionDriverFromCoreDriver(instanceDriver)
	d.handles++
	return graphics.Instance(d.handles), nil
}

func (d *Driver) DestroyInstance(instance graphics.Instance) {
	if d.instanceDriver == nil {
		return
	}
	d.instanceDriver.DestroyInstance(nil)
	d.instanceDriver = nil
	d.surfaceDriver = nil
}

func (d *Driver) CreateSurface(instance graphics.Instance) (graphics.Surface, error) {
	surface, err := vkng_sdl2.CreateSurface(d.instanceDriver.Instance(), d.surfaceDriver, d.window)
	if err != nil {
		return 0, err
	}
	return d.surfaces.add(surface), nil
}

func (d *Driver) DestroySurface(instance graphics.Instance, surface graphics.Surface) {
	if s, ok := d.surfaces.take(surface); ok {
		d.surfaceDriver.DestroySurface(s, nil)
	}
}

func (d *Driver) EnumeratePhysicalDevices(instance graphics.Instance) ([]graphics.PhysicalDevice, error) {
	physicalDevices, _, err := d.instanceDriver.EnumeratePhysicalDevices()
	if err != nil {
		return nil, err
	}

	handles := make([]graphics.PhysicalDevice, 0, len(physicalDevices))
	for _, physicalDevice := range physicalDevices {
		handles = append(handles, d.physicalDevices.add(physicalDevice))
	}
	return handles, nil
}

func (d *Driver) PhysicalDeviceProperties(device graphics.PhysicalDevice) (graphics.DeviceProperties, error) {
	props, err := d.instanceDriver.GetPhysicalDeviceProperties(d.physicalDevices.get(device))
	if err != nil {
		return graphics.DeviceProperties{}, err
	}

	return graphics.DeviceProperties{
		Name:              props.DriverName,
		Type:              graphics.DeviceType(props.DriverType),
		VendorID:          props.VendorID,
		DeviceID:          props.DeviceID,
		PipelineCacheUUID: props.PipelineCacheUUID,
	}, nil
}

func (d *Driver) DeviceExtensions(device graphics.PhysicalDevice) ([]string, error) {
	extensions, _, err := d.instanceDriver.EnumerateDeviceExtensionProperties(d.physicalDevices.get(device))
	if err != nil {
		return nil, err
	}
	return names(extensions), nil
}

func (d *Driver) QueueFamilies(device graphics.PhysicalDevice) ([]graphics.QueueFamily, error) {
	queueFamilies := d.instanceDriver.GetPhysicalDeviceQueueFamilyProperties(d.physicalDevices.get(device))

	families := make([]graphics.QueueFamily, 0, len(queueFamilies))
	for _, queueFamily := range queueFamilies {
		families = append(families, graphics.QueueFamily{
			Flags:      graphics.QueueFlags(queueFamily.QueueFlags),
			QueueCount: queueFamily.QueueCount,
		})
	}
	return families, nil
}

func (d *Driver) SurfaceSupport(device graphics.PhysicalDevice, surface graphics.Surface, queueFamily int) (bool, error) {
	supported, _, err := d.surfaceDriver.GetPhysicalDeviceSurfaceSupport(d.surfaces.get(surface), d.physicalDevices.get(device), queueFamily)
	return supported, err
}

func (d *Driver) SurfaceCapabilities(device graphics.PhysicalDevice, surface graphics.Surface) (graphics.SurfaceCapabilities, error) {
	capabilities, _, err := d.surfaceDriver.GetPhysicalDeviceSurfaceCapabilities(d.surfaces.get(surface), d.physicalDevices.get(device))
	if err != nil {
		return graphics.SurfaceCapabilities{}, err
	}

	return graphics.SurfaceCapabilities{
		MinImageCount:    capabilities.MinImageCount,
		MaxImageCount:    capabilities.MaxImageCount,
		CurrentExtent:    fromExtent(capabilities.CurrentExtent),
		MinImageExtent:   fromExtent(capabilities.MinImageExtent),
		MaxImageExtent:   fromExtent(capabilities.MaxImageExtent),
		CurrentTransform: graphics.SurfaceTransform(capabilities.CurrentTransform),
	}, nil
}

func (d *Driver) SurfaceFormats(device graphics.PhysicalDevice, surface graphics.Surface) ([]graphics.SurfaceFormat, error) {
	surfaceFormats, _, err := d.surfaceDriver.GetPhysicalDeviceSurfaceFormats(d.surfaces.get(surface), d.physicalDevices.get(device))
	if err != nil {
		return nil, err
	}

	formats := make([]graphics.SurfaceFormat, 0, len(surfaceFormats))
	for _, format := range surfaceFormats {
		formats = append(formats, graphics.SurfaceFormat{
			Format:     graphics.Format(format.Format),
			ColorSpace: graphics.ColorSpace(format.ColorSpace),
		})
	}
	return formats, nil
}

func (d *Driver) SurfacePresentModes(device graphics.PhysicalDevice, surface graphics.Surface) ([]graphics.PresentMode, error) {
	presentModes, _, err := d.surfaceDriver.GetPhysicalDeviceSurfacePresentModes(d.surfaces.get(surface), d.physicalDevices.get(device))
	if err != nil {
		return nil, err
	}

	modes := make([]graphics.PresentMode, 0, len(presentModes))
	for _, mode := range presentModes {
		modes = append(modes, graphics.PresentMode(mode))
	}
	return modes, nil
}

func names[V any](set map[string]V) []string {
	list := make([]string, 0, len(set))
	for name := range set {
		list = append(list, name)
	}
	return list
}
