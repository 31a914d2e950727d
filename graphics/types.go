package graphics

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
)

// Enumerations below carry the numeric values the Vulkan headers assign, so
// a driver implementation can convert them with a plain type conversion.

type Format int32

const (
	FormatUndefined                  Format = 0
	FormatR8G8B8A8UnsignedNormalized Format = 37
	FormatR8G8B8A8SRGB               Format = 43
	FormatB8G8R8A8UnsignedNormalized Format = 44
	FormatB8G8R8A8SRGB               Format = 50
)

func (f Format) String() string {
	switch f {
	case FormatUndefined:
		return "Undefined"
	case FormatR8G8B8A8UnsignedNormalized:
		return "R8G8B8A8UnsignedNormalized"
	case FormatR8G8B8A8SRGB:
		return "R8G8B8A8SRGB"
	case FormatB8G8R8A8UnsignedNormalized:
		return "B8G8R8A8UnsignedNormalized"
	case FormatB8G8R8A8SRGB:
		return "B8G8R8A8SRGB"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

type ColorSpace int32

const ColorSpaceSRGBNonlinear ColorSpace = 0

func (c ColorSpace) String() string {
	if c == ColorSpaceSRGBNonlinear {
		return "SRGBNonlinear"
	}
	return fmt.Sprintf("ColorSpace(%d)", int32(c))
}

type PresentMode int32

const (
	PresentModeImmediate   PresentMode = 0
	PresentModeMailbox     PresentMode = 1
	PresentModeFIFO        PresentMode = 2
	PresentModeFIFORelaxed PresentMode = 3
)

var presentModeNames = map[PresentMode]string{
	PresentModeImmediate:   "immediate",
	PresentModeMailbox:     "mailbox",
	PresentModeFIFO:        "fifo",
	PresentModeFIFORelaxed: "fifo_relaxed",
}

func (m PresentMode) String() string {
	if name, ok := presentModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("PresentMode(%d)", int32(m))
}

// ParsePresentMode accepts the names produced by PresentMode.String,
// case-insensitively.
func ParsePresentMode(s string) (PresentMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for mode, name := range presentModeNames {
		if name == s {
			return mode, nil
		}
	}
	return 0, errors.Errorf("unknown present mode %q", s)
}

type SurfaceTransform uint32

const SurfaceTransformIdentity SurfaceTransform = 0x1

type QueueFlags uint32

const (
	QueueGraphics QueueFlags = 0x1
	QueueCompute  QueueFlags = 0x2
	QueueTransfer QueueFlags = 0x4
)

type DeviceType int32

const (
	DeviceTypeOther DeviceType = iota
	DeviceTypeIntegratedGPU
	DeviceTypeDiscreteGPU
	DeviceTypeVirtualGPU
	DeviceTypeCPU
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeIntegratedGPU:
		return "integrated"
	case DeviceTypeDiscreteGPU:
		return "discrete"
	case DeviceTypeVirtualGPU:
		return "virtual"
	case DeviceTypeCPU:
		return "cpu"
	}
	return "other"
}

// AnyExtent is the current-extent width a surface reports when the swapchain
// may pick its own size.
const AnyExtent = 0xFFFFFFFF

type Extent2D struct {
	Width  int
	Height int
}

func (e Extent2D) String() string {
	return fmt.Sprintf("%dx%d", e.Width, e.Height)
}

type Offset2D struct {
	X int
	Y int
}

type Rect2D struct {
	Offset Offset2D
	Extent Extent2D
}

type Viewport struct {
	X, Y          float32
	Width, Height float32
	MinDepth      float32
	MaxDepth      float32
}

type SurfaceFormat struct {
	Format     Format
	ColorSpace ColorSpace
}

type SurfaceCapabilities struct {
	MinImageCount int
	// MaxImageCount is 0 when the surface places no upper bound.
	MaxImageCount int

	CurrentExtent  Extent2D
	MinImageExtent Extent2D
	MaxImageExtent Extent2D

	CurrentTransform SurfaceTransform
}

type QueueFamily struct {
	Flags      QueueFlags
	QueueCount int
}

type DeviceProperties struct {
	Name              string
	Type              DeviceType
	VendorID          uint32
	DeviceID          uint32
	PipelineCacheUUID uuid.UUID
}

// SwapchainSupport is what a physical device reports for one surface. It is
// captured once during device selection and handed to the swapchain builder.
type SwapchainSupport struct {
	Capabilities SurfaceCapabilities
	Formats      []SurfaceFormat
	PresentModes []PresentMode
}

// QueueFamilyIndices names the family used for graphics submission and the
// family used for presentation. They are usually the same family.
type QueueFamilyIndices struct {
	Graphics int
	Present  int
}

func (i QueueFamilyIndices) Shared() bool {
	return i.Graphics == i.Present
}

// Unique lists each distinct family once, graphics first.
func (i QueueFamilyIndices) Unique() []int {
	if i.Shared() {
		return []int{i.Graphics}
	}
	return []int{i.Graphics, i.Present}
}

type SwapchainConfig struct {
	Format      SurfaceFormat
	PresentMode PresentMode
	Extent      Extent2D
	ImageCount  int
}
