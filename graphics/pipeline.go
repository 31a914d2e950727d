package graphics

type ShaderStageFlags uint32

const (
	StageVertex   ShaderStageFlags = 0x1
	StageFragment ShaderStageFlags = 0x10
)

type PrimitiveTopology int32

const PrimitiveTopologyTriangleList PrimitiveTopology = 3

type PolygonMode int32

const PolygonModeFill PolygonMode = 0

type CullModeFlags uint32

const (
	CullModeNone CullModeFlags = 0
	CullModeBack CullModeFlags = 0x2
)

type FrontFace int32

const (
	FrontFaceCounterClockwise FrontFace = 0
	FrontFaceClockwise        FrontFace = 1
)

type BlendFactor int32

const (
	BlendFactorZero             BlendFactor = 0
	BlendFactorOne              BlendFactor = 1
	BlendFactorSrcAlpha         BlendFactor = 6
	BlendFactorOneMinusSrcAlpha BlendFactor = 7
)

type BlendOp int32

const BlendOpAdd BlendOp = 0

type ColorComponentFlags uint32

const (
	ColorComponentRed   ColorComponentFlags = 0x1
	ColorComponentGreen ColorComponentFlags = 0x2
	ColorComponentBlue  ColorComponentFlags = 0x4
	ColorComponentAlpha ColorComponentFlags = 0x8
)

type LogicOp int32

const LogicOpCopy LogicOp = 3

type DynamicState int32

const (
	DynamicStateViewport DynamicState = 0
	DynamicStateScissor  DynamicState = 1
)

type ShaderStage struct {
	Stage  ShaderStageFlags
	Module ShaderModule
	Name   string
}

type ColorBlendAttachment struct {
	BlendEnabled bool

	SrcColorBlendFactor BlendFactor
	DstColorBlendFactor BlendFactor
	ColorBlendOp        BlendOp

	SrcAlphaBlendFactor BlendFactor
	DstAlphaBlendFactor BlendFactor
	AlphaBlendOp        BlendOp

	ColorWriteMask ColorComponentFlags
}

type RasterizationState struct {
	PolygonMode PolygonMode
	CullMode    CullModeFlags
	FrontFace   FrontFace
	LineWidth   float32
}

// GraphicsPipelineCreateInfo covers the fixed-function state this
// application sets. Vertex input is always empty: geometry comes from the
// vertex shader.
type GraphicsPipelineCreateInfo struct {
	Stages []ShaderStage

	Topology      PrimitiveTopology
	Rasterization RasterizationState
	Samples       SampleCount

	LogicOpEnabled   bool
	LogicOp          LogicOp
	ColorAttachments []ColorBlendAttachment

	// Viewport and Scissor are placeholders when their dynamic state is
	// enabled; they are set again at record time.
	Viewport      Viewport
	Scissor       Rect2D
	DynamicStates []DynamicState

	Layout     PipelineLayout
	RenderPass RenderPass
	Subpass    int
}

// AlphaBlend is straight alpha blending onto an RGBA target.
var AlphaBlend = ColorBlendAttachment{
	BlendEnabled: true,

	SrcColorBlendFactor: BlendFactorSrcAlpha,
	DstColorBlendFactor: BlendFactorOneMinusSrcAlpha,
	ColorBlendOp:        BlendOpAdd,

	SrcAlphaBlendFactor: BlendFactorOne,
	DstAlphaBlendFactor: BlendFactorZero,
	AlphaBlendOp:        BlendOpAdd,

	ColorWriteMask: ColorComponentRed | ColorComponentGreen | ColorComponentBlue | ColorComponentAlpha,
}

func FullViewport(extent Extent2D) Viewport {
	return Viewport{
		X:        0,
		Y:        0,
		Width:    float32(extent.Width),
		Height:   float32(extent.Height),
		MinDepth: 0,
		MaxDepth: 1,
	}
}

func FullScissor(extent Extent2D) Rect2D {
	return Rect2D{
		Offset: Offset2D{X: 0, Y: 0},
		Extent: extent,
	}
}

// TrianglePipeline describes the fixed pipeline that draws the hard-coded
// triangle of the vertex shader.
func TrianglePipeline(vertShader, fragShader ShaderModule, layout PipelineLayout, renderPass RenderPass, extent Extent2D) GraphicsPipelineCreateInfo {
	return GraphicsPipelineCreateInfo{
		Stages: []ShaderStage{
			{
				Stage:  StageVertex,
				Module: vertShader,
				Name:   "main",
			},
			{
				Stage:  StageFragment,
				Module: fragShader,
				Name:   "main",
			},
		},

		Topology: PrimitiveTopologyTriangleList,
		Rasterization: RasterizationState{
			PolygonMode: PolygonModeFill,
			CullMode:    CullModeNone,
			FrontFace:   FrontFaceCounterClockwise,
			LineWidth:   1.0,
		},
		Samples: Samples1,

		LogicOpEnabled:   false,
		LogicOp:          LogicOpCopy,
		ColorAttachments: []ColorBlendAttachment{AlphaBlend},

		Viewport:      FullViewport(extent),
		Scissor:       FullScissor(extent),
		DynamicStates: []DynamicState{DynamicStateViewport, DynamicStateScissor},

		Layout:     layout,
		RenderPass: renderPass,
		Subpass:    0,
	}
}

func (c *Context) createPipelineLayout(cfg Config) error {
	layout, err := c.driver.CreatePipelineLayout(c.Device)
	if err != nil {
		return fail(err, ErrPipelineCreationFailed, "create pipeline layout")
	}

	driver, device := c.driver, c.Device
	c.releases.push("pipeline layout", func() {
		driver.DestroyPipelineLayout(device, layout)
	})
	c.PipelineLayout = layout

	return nil
}

func (c *Context) createGraphicsPipeline(cfg Config) error {
	extent := c.SwapchainConfig.Extent
	info := TrianglePipeline(c.ShaderModules[0], c.ShaderModules[1], c.PipelineLayout, c.RenderPass, extent)

	pipeline, err := c.driver.CreateGraphicsPipeline(c.Device, info)
	if err != nil {
		return fail(err, ErrPipelineCreationFailed, "create graphics pipeline")
	}

	driver, device := c.driver, c.Device
	c.releases.push("pipeline", func() {
		driver.DestroyPipeline(device, pipeline)
	})
	c.Pipeline = pipeline
	c.Viewport = info.Viewport
	c.Scissor = info.Scissor

	return nil
}
