// Package shaders embeds the compiled SPIR-V for the triangle pipeline.
package shaders

import _ "embed"

//go:generate glslc shader.vert -o vert.spv
//go:generate glslc shader.frag -o frag.spv

// Vertex positions and colors the three triangle corners by gl_VertexIndex.
//
//go:embed vert.spv
var Vertex []byte

// Fragment writes the interpolated vertex color.
//
//go:embed frag.spv
var Fragment []byte
