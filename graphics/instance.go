package graphics

func (c *Context) loadEntry(loader Loader) error {
	driver, err := loader.Load()
	if err != nil {
		return fail(err, ErrInstanceCreationFailed, "load vulkan entry point")
	}

	c.driver = driver
	c.releases.push("entry", driver.Unload)
	return nil
}

func (c *Context) createInstance(cfg Config) error {
	windowExtensions, err := c.driver.RequiredInstanceExtensions()
	if err != nil {
		return fail(err, ErrUnsupportedPlatform, "query window system extensions")
	}
	if len(windowExtensions) == 0 {
		return fail(nil, ErrUnsupportedPlatform, "window system reported no instance extensions")
	}

	available, err := c.driver.AvailableInstanceExtensions()
	if err != nil {
		return fail(err, ErrInstanceCreationFailed, "query instance extensions")
	}

	info := InstanceCreateInfo{
		ApplicationName:    cfg.ApplicationName,
		ApplicationVersion: cfg.ApplicationVersion,
		EngineName:         cfg.EngineName,
		EngineVersion:      cfg.EngineVersion,
		APIVersion:         cfg.APIVersion,
	}

	for _, ext := range windowExtensions {
		if !containsName(available, ext) {
			return fail(nil, ErrInstanceCreationFailed, "missing instance extension %s", ext)
		}
		info.EnabledExtensionNames = append(info.EnabledExtensionNames, ext)
	}

	if containsName(available, PortabilityEnumerationExtensionName) {
		info.EnabledExtensionNames = append(info.EnabledExtensionNames, PortabilityEnumerationExtensionName)
		info.EnumeratePortability = true
	}

	instance, err := c.driver.CreateInstance(info)
	if err != nil {
		return fail(err, ErrInstanceCreationFailed, "create instance")
	}

	driver := c.driver
	c.releases.push("instance", func() {
		driver.DestroyInstance(instance)
	})
	c.Instance = instance
	c.log.WithField("extensions", info.EnabledExtensionNames).Debug("Created instance")

	return nil
}

func (c *Context) createSurface(cfg Config) error {
	surface, err := c.driver.CreateSurface(c.Instance)
	if err != nil {
		return fail(err, ErrUnsupportedPlatform, "create window surface")
	}

	driver, instance := c.driver, c.Instance
	c.releases.push("surface", func() {
		driver.DestroySurface(instance, surface)
	})
	c.Surface = surface

	return nil
}

func containsName(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}
