package graphics

// Handles are opaque references minted by a Driver. The zero value is never a
// live handle.
type (
	Instance       uint64
	Surface        uint64
	PhysicalDevice uint64
	Device         uint64
	Queue          uint64
	Swapchain      uint64
	Image          uint64
	ImageView      uint64
	RenderPass     uint64
	ShaderModule   uint64
	PipelineLayout uint64
	Pipeline       uint64
)

type Version uint32

func CreateVersion(major, minor, patch uint32) Version {
	return Version(major<<22 | minor<<12 | patch)
}

func (v Version) Major() uint32 { return uint32(v) >> 22 }
func (v Version) Minor() uint32 { return (uint32(v) >> 12) & 0x3ff }
func (v Version) Patch() uint32 { return uint32(v) & 0xfff }

const Vulkan1_0 = Version(1 << 22)

type InstanceCreateInfo struct {
	ApplicationName    string
	ApplicationVersion Version
	EngineName         string
	EngineVersion      Version
	APIVersion         Version

	EnabledExtensionNames []string
	// EnumeratePortability lets portability-subset implementations such as
	// MoltenVK show up in device enumeration.
	EnumeratePortability bool
}

type DeviceQueueCreateInfo struct {
	QueueFamilyIndex int
	QueuePriorities  []float32
}

type DeviceCreateInfo struct {
	QueueCreateInfos      []DeviceQueueCreateInfo
	EnabledExtensionNames []string
}

type SharingMode int32

const (
	SharingModeExclusive  SharingMode = 0
	SharingModeConcurrent SharingMode = 1
)

type SwapchainCreateInfo struct {
	Surface Surface

	MinImageCount    int
	ImageFormat      Format
	ImageColorSpace  ColorSpace
	ImageExtent      Extent2D
	ImageArrayLayers int

	ImageSharingMode   SharingMode
	QueueFamilyIndices []int

	PreTransform SurfaceTransform
	PresentMode  PresentMode
	Clipped      bool
}

// ImageViewCreateInfo describes a 2D color view with an identity swizzle.
type ImageViewCreateInfo struct {
	Image      Image
	Format     Format
	LevelCount int
	LayerCount int
}

// Driver is the graphics API as seen from the bring-up sequence. One Driver
// value is the loaded entry point: it is obtained from a Loader and released
// with Unload once every object it created has been destroyed.
//
// Implementations are not safe for concurrent use.
type Driver interface {
	// RequiredInstanceExtensions reports the extensions the window system
	// needs enabled on the instance to present to its windows.
	RequiredInstanceExtensions() ([]string, error)
	// AvailableInstanceExtensions reports what the loader offers.
	AvailableInstanceExtensions() ([]string, error)

	CreateInstance(info InstanceCreateInfo) (Instance, error)
	DestroyInstance(instance Instance)

	// CreateSurface binds the driver's window to the instance.
	CreateSurface(instance Instance) (Surface, error)
	DestroySurface(instance Instance, surface Surface)

	EnumeratePhysicalDevices(instance Instance) ([]PhysicalDevice, error)
	PhysicalDeviceProperties(device PhysicalDevice) (DeviceProperties, error)
	DeviceExtensions(device PhysicalDevice) ([]string, error)
	QueueFamilies(device PhysicalDevice) ([]QueueFamily, error)
	SurfaceSupport(device PhysicalDevice, surface Surface, queueFamily int) (bool, error)
	SurfaceCapabilities(device PhysicalDevice, surface Surface) (SurfaceCapabilities, error)
	SurfaceFormats(device PhysicalDevice, surface Surface) ([]SurfaceFormat, error)
	SurfacePresentModes(device PhysicalDevice, surface Surface) ([]PresentMode, error)

	CreateDevice(physicalDevice PhysicalDevice, info DeviceCreateInfo) (Device, error)
	DestroyDevice(device Device)
	GetQueue(device Device, queueFamily int, index int) Queue

	CreateSwapchain(device Device, info SwapchainCreateInfo) (Swapchain, error)
	DestroySwapchain(device Device, swapchain Swapchain)
	SwapchainImages(device Device, swapchain Swapchain) ([]Image, error)

	CreateImageView(device Device, info ImageViewCreateInfo) (ImageView, error)
	DestroyImageView(device Device, view ImageView)

	CreateRenderPass(device Device, info RenderPassCreateInfo) (RenderPass, error)
	DestroyRenderPass(device Device, renderPass RenderPass)

	CreateShaderModule(device Device, code []uint32) (ShaderModule, error)
	DestroyShaderModule(device Device, module ShaderModule)

	CreatePipelineLayout(device Device) (PipelineLayout, error)
	DestroyPipelineLayout(device Device, layout PipelineLayout)

	CreateGraphicsPipeline(device Device, info GraphicsPipelineCreateInfo) (Pipeline, error)
	DestroyPipeline(device Device, pipeline Pipeline)

	// Unload releases the entry point itself.
	Unload()
}

// Loader produces the entry point. Loading is the first acquisition of the
// construction sequence and Driver.Unload is the last release.
type Loader interface {
	Load() (Driver, error)
}

type LoaderFunc func() (Driver, error)

func (f LoaderFunc) Load() (Driver, error) {
	return f()
}
