package mesh

import (
	"unsafe"
)

// GPUVertex is the GPU-aligned vertex layout for the fixed render pipeline.
// Matches the WGSL VertexInput struct exactly: position at @location(0),
// texture coordinates at @location(1). Stride: 20 bytes, tightly packed.
type GPUVertex struct {
	Position  [3]float32 // offset  0: world-space position (vec3<f32>)
	TexCoords [2]float32 // offset 12: texture coordinates (vec2<f32>)
}

// GPUVertexSize is the size of one GPUVertex in bytes (the vertex buffer stride).
const GPUVertexSize = int(unsafe.Sizeof(GPUVertex{}))
