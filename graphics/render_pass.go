package graphics

type SampleCount uint32

const Samples1 SampleCount = 0x1

type AttachmentLoadOp int32

const (
	AttachmentLoadOpLoad     AttachmentLoadOp = 0
	AttachmentLoadOpClear    AttachmentLoadOp = 1
	AttachmentLoadOpDontCare AttachmentLoadOp = 2
)

type AttachmentStoreOp int32

const (
	AttachmentStoreOpStore    AttachmentStoreOp = 0
	AttachmentStoreOpDontCare AttachmentStoreOp = 1
)

type ImageLayout int32

const (
	ImageLayoutUndefined              ImageLayout = 0
	ImageLayoutColorAttachmentOptimal ImageLayout = 2
	ImageLayoutPresentSrc             ImageLayout = 1000001002
)

type PipelineStageFlags uint32

const PipelineStageColorAttachmentOutput PipelineStageFlags = 0x400

type AccessFlags uint32

const AccessColorAttachmentWrite AccessFlags = 0x100

// SubpassExternal refers to work outside the render pass in a dependency.
const SubpassExternal = -1

type AttachmentDescription struct {
	Format         Format
	Samples        SampleCount
	LoadOp         AttachmentLoadOp
	StoreOp        AttachmentStoreOp
	StencilLoadOp  AttachmentLoadOp
	StencilStoreOp AttachmentStoreOp
	InitialLayout  ImageLayout
	FinalLayout    ImageLayout
}

type AttachmentReference struct {
	Attachment int
	Layout     ImageLayout
}

// SubpassDescription is always a graphics subpass.
type SubpassDescription struct {
	ColorAttachments []AttachmentReference
}

type SubpassDependency struct {
	SrcSubpass    int
	DstSubpass    int
	SrcStageMask  PipelineStageFlags
	SrcAccessMask AccessFlags
	DstStageMask  PipelineStageFlags
	DstAccessMask AccessFlags
}

type RenderPassCreateInfo struct {
	Attachments         []AttachmentDescription
	Subpasses           []SubpassDescription
	SubpassDependencies []SubpassDependency
}

// ColorRenderPass describes a pass with one color attachment that is cleared
// on load and handed to presentation at the end of its single subpass.
func ColorRenderPass(format Format) RenderPassCreateInfo {
	return RenderPassCreateInfo{
		Attachments: []AttachmentDescription{
			{
				Format:         format,
				Samples:        Samples1,
				LoadOp:         AttachmentLoadOpClear,
				StoreOp:        AttachmentStoreOpStore,
				StencilLoadOp:  AttachmentLoadOpDontCare,
				StencilStoreOp: AttachmentStoreOpDontCare,
				InitialLayout:  ImageLayoutUndefined,
				FinalLayout:    ImageLayoutPresentSrc,
			},
		},
		Subpasses: []SubpassDescription{
			{
				ColorAttachments: []AttachmentReference{
					{
						Attachment: 0,
						Layout:     ImageLayoutColorAttachmentOptimal,
					},
				},
			},
		},
		SubpassDependencies: []SubpassDependency{
			{
				SrcSubpass: SubpassExternal,
				DstSubpass: 0,

				SrcStageMask:  PipelineStageColorAttachmentOutput,
				SrcAccessMask: 0,

				DstStageMask:  PipelineStageColorAttachmentOutput,
				DstAccessMask: AccessColorAttachmentWrite,
			},
		},
	}
}

func (c *Context) createRenderPass(cfg Config) error {
	renderPass, err := c.driver.CreateRenderPass(c.Device, ColorRenderPass(c.SwapchainConfig.Format.Format))
	if err != nil {
		return fail(err, ErrPipelineCreationFailed, "create render pass")
	}

	driver, device := c.driver, c.Device
	c.releases.push("render pass", func() {
		driver.DestroyRenderPass(device, renderPass)
	})
	c.RenderPass = renderPass

	return nil
}
