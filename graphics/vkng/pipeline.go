package vkng

import (
	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/core/v3/core1_0"
	"github.com/vkngwrapper/extensions/v3/khr_swapchain"

	"github.com/vkngwrapper/hellotriangle/graphics"
)

func (d *Driver) CreateRenderPass(device graphics.Device, info graphics.RenderPassCreateInfo) (graphics.RenderPass, error) {
	var attachments []core1_0.AttachmentDescription
	for _, attachment := range info.Attachments {
		attachments = append(attachments, core1_0.AttachmentDescription{
			Format:         core1_0.Format(attachment.Format),
			Samples:        core1_0.SampleCountFlags(attachment.Samples),
			LoadOp:         core1_0.AttachmentLoadOp(attachment.LoadOp),
			StoreOp:        core1_0.AttachmentStoreOp(attachment.StoreOp),
			StencilLoadOp:  core1_0.AttachmentLoadOp(attachment.StencilLoadOp),
			StencilStoreOp: core1_0.AttachmentStoreOp(attachment.StencilStoreOp),
			InitialLayout:  imageLayout(attachment.InitialLayout),
			FinalLayout:    imageLayout(attachment.FinalLayout),
		})
	}

	var subpasses []core1_0.SubpassDescription
	for _, subpass := range info.Subpasses {
		var colorAttachments []core1_0.AttachmentReference
		for _, ref := range subpass.ColorAttachments {
			colorAttachments = append(colorAttachments, core1_0.AttachmentReference{
				Attachment: ref.Attachment,
				Layout:     imageLayout(ref.Layout),
			})
		}

		subpasses = append(subpasses, core1_0.SubpassDescription{
			PipelineBindPoint: core1_0.PipelineBindPointGraphics,
			ColorAttachments:  colorAttachments,
		})
	}

	var dependencies []core1_0.SubpassDependency
	for _, dependency := range info.SubpassDependencies {
		dependencies = append(dependencies, core1_0.SubpassDependency{
			SrcSubpass: subpassIndex(dependency.SrcSubpass),
			DstSubpass: subpassIndex(dependency.DstSubpass),

			SrcStageMask:  core1_0.PipelineStageFlags(dependency.SrcStageMask),
			SrcAccessMask: core1_0.AccessFlags(dependency.SrcAccessMask),

			DstStageMask:  core1_0.PipelineStageFlags(dependency.DstStageMask),
			DstAccessMask: core1_0.AccessFlags(dependency.DstAccessMask),
		})
	}

	renderPass, _, err := d.devices.get(device).driver.CreateRenderPass(nil, core1_0.RenderPassCreateInfo{
		Attachments:         attachments,
		Subpasses:           subpasses,
		SubpassDependencies: dependencies,
	})
	if err != nil {
		return 0, err
	}

	return d.renderPasses.add(renderPass), nil
}

func imageLayout(layout graphics.ImageLayout) core1_0.ImageLayout {
	if layout == graphics.ImageLayoutPresentSrc {
		return khr_swapchain.ImageLayoutPresentSrc
	}
	return core1_0.ImageLayout(layout)
}

func subpassIndex(index int) int {
	if index == graphics.SubpassExternal {
		return core1_0.SubpassExternal
	}
	return index
}

func (d *Driver) DestroyRenderPass(device graphics.Device, renderPass graphics.RenderPass) {
	if r, ok := d.renderPasses.take(renderPass); ok {
		d.devices.get(device).driver.DestroyRenderPass(r, nil)
	}
}

func (d *Driver) CreateShaderModule(device graphics.Device, code []uint32) (graphics.ShaderModule, error) {
	shaderModule, _, err := d.devices.get(device).driver.CreateShaderModule(nil, core1_0.ShaderModuleCreateInfo{
		Code: code,
	})
	if err != nil {
		return 0, err
	}

	return d.shaderModules.add(shaderModule), nil
}

func (d *Driver) DestroyShaderModule(device graphics.Device, module graphics.ShaderModule) {
	if m, ok := d.shaderModules.take(module); ok {
		d.devices.get(device).driver.DestroyShaderModule(m, nil)
	}
}

func (d *Driver) CreatePipelineLayout(device graphics.Device) (graphics.PipelineLayout, error) {
	pipelineLayout, _, err := d.devices.get(device).driver.CreatePipelineLayout(nil, core1_0.PipelineLayoutCreateInfo{})
	if err != nil {
		return 0, err
	}

	return d.pipelineLayouts.add(pipelineLayout), nil
}

func (d *Driver) DestroyPipelineLayout(device graphics.Device, layout graphics.PipelineLayout) {
	if l, ok := d.pipelineLayouts.take(layout); ok {
		d.devices.get(device).driver.DestroyPipelineLayout(l, nil)
	}
}

func (d *Driver) CreateGraphicsPipeline(device graphics.Device, info graphics.GraphicsPipelineCreateInfo) (graphics.Pipeline, error) {
	var stages []core1_0.PipelineShaderStageCreateInfo
	for _, stage := range info.Stages {
		stages = append(stages, core1_0.PipelineShaderStageCreateInfo{
			Stage:  core1_0.ShaderStageFlags(stage.Stage),
			Module: d.shaderModules.get(stage.Module),
			Name:   stage.Name,
		})
	}

	var blendAttachments []core1_0.PipelineColorBlendAttachmentState
	for _, attachment := range info.ColorAttachments {
		blendAttachments = append(blendAttachments, core1_0.PipelineColorBlendAttachmentState{
			BlendEnabled: attachment.BlendEnabled,

			SrcColorBlendFactor: core1_0.BlendFactor(attachment.SrcColorBlendFactor),
			DstColorBlendFactor: core1_0.BlendFactor(attachment.DstColorBlendFactor),
			ColorBlendOp:        core1_0.BlendOp(attachment.ColorBlendOp),

			SrcAlphaBlendFactor: core1_0.BlendFactor(attachment.SrcAlphaBlendFactor),
			DstAlphaBlendFactor: core1_0.BlendFactor(attachment.DstAlphaBlendFactor),
			AlphaBlendOp:        core1_0.BlendOp(attachment.AlphaBlendOp),

			ColorWriteMask: core1_0.ColorComponentFlags(attachment.ColorWriteMask),
		})
	}

	var dynamicStates []core1_0.DynamicState
	for _, state := range info.DynamicStates {
		dynamicStates = append(dynamicStates, core1_0.DynamicState(state))
	}

	viewport := info.Viewport
	scissor := info.Scissor

	pipelines, result, err := d.devices.get(device).driver.CreateGraphicsPipelines(nil, nil,
		core1_0.GraphicsPipelineCreateInfo{
			Stages: stages,

			VertexInputState: &core1_0.PipelineVertexInputStateCreateInfo{},
			InputAssemblyState: &core1_0.PipelineInputAssemblyStateCreateInfo{
				Topology:               core1_0.PrimitiveTopology(info.Topology),
				PrimitiveRestartEnable: false,
			},
			ViewportState: &core1_0.PipelineViewportStateCreateInfo{
				Viewports: []core1_0.Viewport{
					{
						X:        viewport.X,
						Y:        viewport.Y,
						Width:    viewport.Width,
						Height:   viewport.Height,
						MinDepth: viewport.MinDepth,
						MaxDepth: viewport.MaxDepth,
					},
				},
				Scissors: []core1_0.Rect2D{
					{
						Offset: core1_0.Offset2D{X: scissor.Offset.X, Y: scissor.Offset.Y},
						Extent: toExtent(scissor.Extent),
					},
				},
			},
			RasterizationState: &core1_0.PipelineRasterizationStateCreateInfo{
				DepthClampEnable:        false,
				RasterizerDiscardEnable: false,

				PolygonMode: core1_0.PolygonMode(info.Rasterization.PolygonMode),
				CullMode:    core1_0.CullModeFlags(info.Rasterization.CullMode),
				FrontFace:   core1_0.FrontFace(info.Rasterization.FrontFace),

				DepthBiasEnable: false,

				LineWidth: info.Rasterization.LineWidth,
			},
			MultisampleState: &core1_0.PipelineMultisampleStateCreateInfo{
				SampleShadingEnable:  false,
				RasterizationSamples: core1_0.SampleCountFlags(info.Samples),
				MinSampleShading:     1.0,
			},
			ColorBlendState: &core1_0.PipelineColorBlendStateCreateInfo{
				LogicOpEnabled: info.LogicOpEnabled,
				LogicOp:        core1_0.LogicOp(info.LogicOp),

				BlendConstants: [4]float32{0, 0, 0, 0},
				Attachments:    blendAttachments,
			},
			DynamicState: &core1_0.PipelineDynamicStateCreateInfo{
				DynamicStates: dynamicStates,
			},
			Layout:            d.pipelineLayouts.get(info.Layout),
			RenderPass:        d.renderPasses.get(info.RenderPass),
			Subpass:           info.Subpass,
			BasePipelineIndex: -1,
		},
	)
	if err != nil {
		return 0, errors.Wrapf(err, "vkCreateGraphicsPipelines returned %v", result)
	}

	return d.pipelines.add(pipelines[0]), nil
}

func (d *Driver) DestroyPipeline(device graphics.Device, pipeline graphics.Pipeline) {
	if p, ok := d.pipelines.take(pipeline); ok {
		d.devices.get(device).driver.DestroyPipeline(p, nil)
	}
}
