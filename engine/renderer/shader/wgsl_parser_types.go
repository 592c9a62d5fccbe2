package shader

import "github.com/cogentcore/webgpu/wgpu"

// vertexFormatInfo pairs a wgpu vertex format with its byte size so
// sequential attribute offsets can be accumulated while building a layout.
type vertexFormatInfo struct {
	format wgpu.VertexFormat
	size   uint64
}

// sampledTextureInfo carries the view dimension and multisampled flag
// resolved from a WGSL texture_* type name.
type sampledTextureInfo struct {
	viewDimension wgpu.TextureViewDimension
	multisampled  bool
}

// wgslTypeLayout is the byte size and alignment of a WGSL type, following
// the language's struct layout rules. Feeds MinBindingSize for uniform
// buffer bindings.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

// parsedField is one struct member pulled out of WGSL source. location is -1
// when the field has no @location attribute; builtins are flagged so layout
// and size passes can skip them.
type parsedField struct {
	name      string
	typeName  string
	location  int
	isBuiltin bool
}

// parsedStruct is a struct block pulled out of WGSL source.
type parsedStruct struct {
	name   string
	fields []parsedField
}
