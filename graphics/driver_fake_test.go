package graphics

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

type fakePhysicalDevice struct {
	props        DeviceProperties
	extensions   []string
	families     []QueueFamily
	presentable  map[int]bool
	capabilities SurfaceCapabilities
	formats      []SurfaceFormat
	presentModes []PresentMode
}

func suitableDevice(name string) fakePhysicalDevice {
	return fakePhysicalDevice{
		props: DeviceProperties{
			Name:              name,
			Type:              DeviceTypeDiscreteGPU,
			PipelineCacheUUID: uuid.New(),
		},
		extensions:  []string{SwapchainExtensionName},
		families:    []QueueFamily{{Flags: QueueGraphics | QueueCompute | QueueTransfer, QueueCount: 1}},
		presentable: map[int]bool{0: true},
		capabilities: SurfaceCapabilities{
			MinImageCount:    2,
			MaxImageCount:    8,
			CurrentExtent:    Extent2D{Width: -1, Height: -1},
			MinImageExtent:   Extent2D{Width: 1, Height: 1},
			MaxImageExtent:   Extent2D{Width: 4096, Height: 4096},
			CurrentTransform: SurfaceTransformIdentity,
		},
		formats:      []SurfaceFormat{{Format: FormatB8G8R8A8UnsignedNormalized, ColorSpace: ColorSpaceSRGBNonlinear}},
		presentModes: []PresentMode{PresentModeFIFO},
	}
}

var errFakeDriver = errors.New("fake driver failure")

// fakeDriver records every acquisition and release so tests can check
// ordering. Setting failOn to a method name makes that method fail.
type fakeDriver struct {
	windowExtensions   []string
	instanceExtensions []string
	devices            []fakePhysicalDevice
	swapchainImages    int
	failOn             string

	next      uint64
	created   []string
	destroyed []string
	live      map[string]bool
	problems  []string

	instanceInfo  InstanceCreateInfo
	deviceInfo    DeviceCreateInfo
	swapchainInfo SwapchainCreateInfo
	renderPass    RenderPassCreateInfo
	pipelineInfo  GraphicsPipelineCreateInfo
	shaderCode    [][]uint32
	queues        map[string]Queue
}

func newFakeDriver(devices ...fakePhysicalDevice) *fakeDriver {
	return &fakeDriver{
		windowExtensions:   []string{"VK_KHR_surface", "VK_KHR_xlib_surface"},
		instanceExtensions: []string{"VK_KHR_surface", "VK_KHR_xlib_surface"},
		devices:            devices,
		swapchainImages:    3,
		live:               map[string]bool{},
		queues:             map[string]Queue{},
	}
}

func (f *fakeDriver) loader() Loader {
	return LoaderFunc(func() (Driver, error) {
		if f.failOn == "Load" {
			return nil, errFakeDriver
		}
		f.acquire("entry", 0)
		return f, nil
	})
}

func (f *fakeDriver) mint() uint64 {
	f.next++
	return f.next
}

func (f *fakeDriver) acquire(kind string, handle uint64) {
	key := fmt.Sprintf("%s#%d", kind, handle)
	f.created = append(f.created, key)
	f.live[key] = true
}

func (f *fakeDriver) release(kind string, handle uint64) {
	key := fmt.Sprintf("%s#%d", kind, handle)
	if !f.live[key] {
		f.problems = append(f.problems, "release of dead object "+key)
	}
	delete(f.live, key)
	f.destroyed = append(f.destroyed, key)
}

func (f *fakeDriver) create(method, kind string) (uint64, error) {
	if f.failOn == method {
		return 0, errFakeDriver
	}
	handle := f.mint()
	f.acquire(kind, handle)
	return handle, nil
}

func (f *fakeDriver) device(handle PhysicalDevice) fakePhysicalDevice {
	return f.devices[int(handle)-1]
}

func (f *fakeDriver) RequiredInstanceExtensions() ([]string, error) {
	if f.failOn == "RequiredInstanceExtensions" {
		return nil, errFakeDriver
	}
	return f.windowExtensions, nil
}

func (f *fakeDriver) AvailableInstanceExtensions() ([]string, error) {
	return f.instanceExtensions, nil
}

func (f *fakeDriver) CreateInstance(info InstanceCreateInfo) (Instance, error) {
	f.instanceInfo = info
	handle, err := f.create("CreateInstance", "instance")
	return Instance(handle), err
}

func (f *fakeDriver) DestroyInstance(instance Instance) {
	f.release("instance", uint64(instance))
}

func (f *fakeDriver) CreateSurface(instance Instance) (Surface, error) {
	handle, err := f.create("CreateSurface", "surface")
	return Surface(handle), err
}

func (f *fakeDriver) DestroySurface(instance Instance, surface Surface) {
	f.release("surface", uint64(surface))
}

func (f *fakeDriver) EnumeratePhysicalDevices(instance Instance) ([]PhysicalDevice, error) {
	if f.failOn == "EnumeratePhysicalDevices" {
		return nil, errFakeDriver
	}
	var devices []PhysicalDevice
	for idx := range f.devices {
		devices = append(devices, PhysicalDevice(idx+1))
	}
	return devices, nil
}

func (f *fakeDriver) PhysicalDeviceProperties(device PhysicalDevice) (DeviceProperties, error) {
	return f.device(device).props, nil
}

func (f *fakeDriver) DeviceExtensions(device PhysicalDevice) ([]string, error) {
	return f.device(device).extensions, nil
}

func (f *fakeDriver) QueueFamilies(device PhysicalDevice) ([]QueueFamily, error) {
	return f.device(device).families, nil
}

func (f *fakeDriver) SurfaceSupport(device PhysicalDevice, surface Surface, queueFamily int) (bool, error) {
	return f.device(device).presentable[queueFamily], nil
}

func (f *fakeDriver) SurfaceCapabilities(device PhysicalDevice, surface Surface) (SurfaceCapabilities, error) {
	return f.device(device).capabilities, nil
}

func (f *fakeDriver) SurfaceFormats(device PhysicalDevice, surface Surface) ([]SurfaceFormat, error) {
	return f.device(device).formats, nil
}

func (f *fakeDriver) SurfacePresentModes(device PhysicalDevice, surface Surface) ([]PresentMode, error) {
	return f.device(device).presentModes, nil
}

func (f *fakeDriver) CreateDevice(physicalDevice PhysicalDevice, info DeviceCreateInfo) (Device, error) {
	f.deviceInfo = info
	handle, err := f.create("CreateDevice", "device")
	return Device(handle), err
}

func (f *fakeDriver) DestroyDevice(device Device) {
	f.release("device", uint64(device))
}

func (f *fakeDriver) GetQueue(device Device, queueFamily int, index int) Queue {
	key := fmt.Sprintf("%d/%d", queueFamily, index)
	if queue, ok := f.queues[key]; ok {
		return queue
	}
	queue := Queue(f.mint())
	f.queues[key] = queue
	return queue
}

func (f *fakeDriver) CreateSwapchain(device Device, info SwapchainCreateInfo) (Swapchain, error) {
	f.swapchainInfo = info
	handle, err := f.create("CreateSwapchain", "swapchain")
	return Swapchain(handle), err
}

func (f *fakeDriver) DestroySwapchain(device Device, swapchain Swapchain) {
	f.release("swapchain", uint64(swapchain))
}

func (f *fakeDriver) SwapchainImages(device Device, swapchain Swapchain) ([]Image, error) {
	if f.failOn == "SwapchainImages" {
		return nil, errFakeDriver
	}
	var images []Image
	for i := 0; i < f.swapchainImages; i++ {
		images = append(images, Image(f.mint()))
	}
	return images, nil
}

func (f *fakeDriver) CreateImageView(device Device, info ImageViewCreateInfo) (ImageView, error) {
	handle, err := f.create("CreateImageView", "image view")
	return ImageView(handle), err
}

func (f *fakeDriver) DestroyImageView(device Device, view ImageView) {
	f.release("image view", uint64(view))
}

func (f *fakeDriver) CreateRenderPass(device Device, info RenderPassCreateInfo) (RenderPass, error) {
	f.renderPass = info
	handle, err := f.create("CreateRenderPass", "render pass")
	return RenderPass(handle), err
}

func (f *fakeDriver) DestroyRenderPass(device Device, renderPass RenderPass) {
	f.release("render pass", uint64(renderPass))
}

func (f *fakeDriver) CreateShaderModule(device Device, code []uint32) (ShaderModule, error) {
	f.shaderCode = append(f.shaderCode, code)
	handle, err := f.create("CreateShaderModule", "shader module")
	return ShaderModule(handle), err
}

func (f *fakeDriver) DestroyShaderModule(device Device, module ShaderModule) {
	f.release("shader module", uint64(module))
}

func (f *fakeDriver) CreatePipelineLayout(device Device) (PipelineLayout, error) {
	handle, err := f.create("CreatePipelineLayout", "pipeline layout")
	return PipelineLayout(handle), err
}

func (f *fakeDriver) DestroyPipelineLayout(device Device, layout PipelineLayout) {
	f.release("pipeline layout", uint64(layout))
}

func (f *fakeDriver) CreateGraphicsPipeline(device Device, info GraphicsPipelineCreateInfo) (Pipeline, error) {
	f.pipelineInfo = info
	handle, err := f.create("CreateGraphicsPipeline", "pipeline")
	return Pipeline(handle), err
}

func (f *fakeDriver) DestroyPipeline(device Device, pipeline Pipeline) {
	f.release("pipeline", uint64(pipeline))
}

func (f *fakeDriver) Unload() {
	f.release("entry", 0)
}

func reversed(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[len(in)-1-i] = s
	}
	return out
}
