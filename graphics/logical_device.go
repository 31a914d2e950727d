package graphics

func (c *Context) createLogicalDevice(cfg Config) error {
	indices := c.PhysicalDevice.Indices

	var queueInfos []DeviceQueueCreateInfo
	queuePriority := float32(1.0)
	for _, family := range indices.Unique() {
		queueInfos = append(queueInfos, DeviceQueueCreateInfo{
			QueueFamilyIndex: family,
			QueuePriorities:  []float32{queuePriority},
		})
	}

	var extensionNames []string
	extensionNames = append(extensionNames, cfg.DeviceExtensions...)

	// Portability implementations require the subset extension to be enabled
	// whenever they advertise it.
	if containsName(c.PhysicalDevice.Extensions, PortabilitySubsetExtensionName) && !containsName(extensionNames, PortabilitySubsetExtensionName) {
		extensionNames = append(extensionNames, PortabilitySubsetExtensionName)
	}

	device, err := c.driver.CreateDevice(c.PhysicalDevice.Handle, DeviceCreateInfo{
		QueueCreateInfos:      queueInfos,
		EnabledExtensionNames: extensionNames,
	})
	if err != nil {
		return fail(err, ErrDeviceCreationFailed, "create logical device on %s", c.PhysicalDevice.Properties.Name)
	}

	driver := c.driver
	c.releases.push("device", func() {
		driver.DestroyDevice(device)
	})
	c.Device = device

	c.GraphicsQueue = c.driver.GetQueue(device, indices.Graphics, 0)
	c.PresentQueue = c.driver.GetQueue(device, indices.Present, 0)

	return nil
}
