package graphics

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
)

// SelectedDevice is the physical device chosen for rendering together with
// everything learned about it while it was being evaluated.
type SelectedDevice struct {
	Handle     PhysicalDevice
	Properties DeviceProperties
	Extensions []string
	Indices    QueueFamilyIndices
	Support    SwapchainSupport
}

type deviceCandidate struct {
	driver   Driver
	surface  Surface
	required []string

	SelectedDevice
}

// suitabilityChecks run in order; each returns a rejection reason, or an
// empty string when the device passes.
var suitabilityChecks = []struct {
	name  string
	check func(*deviceCandidate) (string, error)
}{
	{"device extensions", checkExtensions},
	{"swapchain support", checkSwapchainSupport},
	{"queue families", checkQueueFamilies},
}

// PickPhysicalDevice returns the first device, in the order the driver
// enumerates them, that supports every required extension, offers at least
// one surface format and present mode, and can both render and present.
// Devices are not ranked.
func PickPhysicalDevice(driver Driver, instance Instance, surface Surface, required []string) (SelectedDevice, error) {
	devices, err := driver.EnumeratePhysicalDevices(instance)
	if err != nil {
		return SelectedDevice{}, fail(err, ErrNoValidGPU, "enumerate physical devices")
	}
	if len(devices) == 0 {
		return SelectedDevice{}, fail(nil, ErrNoValidGPU, "driver reported no physical devices")
	}

	var rejections []string
	for idx, device := range devices {
		reason, candidate := evaluateDevice(driver, device, surface, required)
		if reason == "" {
			return candidate.SelectedDevice, nil
		}

		name := candidate.Properties.Name
		if name == "" {
			name = "unnamed"
		}
		rejections = append(rejections, fmt.Sprintf("device %d (%s): %s", idx, name, reason))
	}

	return SelectedDevice{}, fail(nil, ErrNoValidGPU, "%s", strings.Join(rejections, "; "))
}

func evaluateDevice(driver Driver, device PhysicalDevice, surface Surface, required []string) (string, *deviceCandidate) {
	candidate := &deviceCandidate{
		driver:   driver,
		surface:  surface,
		required: required,
	}
	candidate.Handle = device

	props, err := driver.PhysicalDeviceProperties(device)
	if err != nil {
		return fmt.Sprintf("query properties: %v", err), candidate
	}
	candidate.Properties = props

	for _, check := range suitabilityChecks {
		reason, err := check.check(candidate)
		if err != nil {
			return fmt.Sprintf("%s: %v", check.name, err), candidate
		}
		if reason != "" {
			return reason, candidate
		}
	}

	return "", candidate
}

func checkExtensions(c *deviceCandidate) (string, error) {
	extensions, err := c.driver.DeviceExtensions(c.Handle)
	if err != nil {
		return "", err
	}
	c.Extensions = extensions

	if missing := missingNames(c.required, extensions); len(missing) > 0 {
		return "missing extensions " + strings.Join(missing, ", "), nil
	}
	return "", nil
}

func checkSwapchainSupport(c *deviceCandidate) (string, error) {
	support, err := QuerySwapchainSupport(c.driver, c.Handle, c.surface)
	if err != nil {
		return "", err
	}
	c.Support = support

	if len(support.Formats) == 0 {
		return "no surface formats", nil
	}
	if len(support.PresentModes) == 0 {
		return "no present modes", nil
	}
	return "", nil
}

func checkQueueFamilies(c *deviceCandidate) (string, error) {
	indices, found, err := FindQueueFamilies(c.driver, c.Handle, c.surface)
	if err != nil {
		return "", err
	}
	if !found {
		return "no queue family for graphics and presentation", nil
	}
	c.Indices = indices
	return "", nil
}

// CheckDeviceExtensionSupport reports whether every required name appears in
// available. Names are matched exactly.
func CheckDeviceExtensionSupport(required, available []string) bool {
	return len(missingNames(required, available)) == 0
}

func missingNames(required, available []string) []string {
	var missing []string
	for _, name := range required {
		if !containsName(available, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// FindQueueFamilies prefers a single family that can both render and present
// to surface. Failing that, it pairs the first graphics family with the first
// family that can present.
func FindQueueFamilies(driver Driver, device PhysicalDevice, surface Surface) (QueueFamilyIndices, bool, error) {
	families, err := driver.QueueFamilies(device)
	if err != nil {
		return QueueFamilyIndices{}, false, err
	}

	graphics, present := -1, -1
	for idx, family := range families {
		supportsGraphics := family.Flags&QueueGraphics != 0

		supportsPresent, err := driver.SurfaceSupport(device, surface, idx)
		if err != nil {
			return QueueFamilyIndices{}, false, errors.Wrapf(err, "surface support for queue family %d", idx)
		}

		if supportsGraphics && supportsPresent {
			return QueueFamilyIndices{Graphics: idx, Present: idx}, true, nil
		}
		if supportsGraphics && graphics < 0 {
			graphics = idx
		}
		if supportsPresent && present < 0 {
			present = idx
		}
	}

	if graphics < 0 || present < 0 {
		return QueueFamilyIndices{}, false, nil
	}
	return QueueFamilyIndices{Graphics: graphics, Present: present}, true, nil
}

func QuerySwapchainSupport(driver Driver, device PhysicalDevice, surface Surface) (SwapchainSupport, error) {
	var support SwapchainSupport
	var err error

	support.Capabilities, err = driver.SurfaceCapabilities(device, surface)
	if err != nil {
		return support, errors.Wrap(err, "surface capabilities")
	}

	support.Formats, err = driver.SurfaceFormats(device, surface)
	if err != nil {
		return support, errors.Wrap(err, "surface formats")
	}

	support.PresentModes, err = driver.SurfacePresentModes(device, surface)
	if err != nil {
		return support, errors.Wrap(err, "surface present modes")
	}

	return support, nil
}

func (c *Context) pickPhysicalDevice(cfg Config) error {
	selected, err := PickPhysicalDevice(c.driver, c.Instance, c.Surface, cfg.DeviceExtensions)
	if err != nil {
		return err
	}

	c.PhysicalDevice = selected
	c.log.WithFields(logrus.Fields{
		"device":         selected.Properties.Name,
		"type":           selected.Properties.Type,
		"pipelineCache":  selected.Properties.PipelineCacheUUID.String(),
		"graphicsFamily": selected.Indices.Graphics,
		"presentFamily":  selected.Indices.Present,
	}).Info("Selected physical device")

	return nil
}
