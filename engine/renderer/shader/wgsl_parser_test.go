package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const viewerWGSL = `
// Vertex input: interleaved position + texture coordinates.
struct VertexInput {
    @location(0) position: vec3<f32>,
    @location(1) tex_coords: vec2<f32>,
}

struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) tex_coords: vec2<f32>,
}

struct CameraUniform {
    view_proj: mat4x4<f32>,
}

@group(0) @binding(0) var t_diffuse: texture_2d<f32>;
@group(0) @binding(1) var s_diffuse: sampler;
@group(1) @binding(0) var<uniform> camera: CameraUniform;

@vertex
fn vs_main(model: VertexInput) -> VertexOutput {
    var out: VertexOutput;
    out.tex_coords = model.tex_coords;
    out.clip_position = camera.view_proj * vec4<f32>(model.position, 1.0);
    return out;
}

@fragment
fn fs_main(in: VertexOutput) -> @location(0) vec4<f32> {
    return textureSample(t_diffuse, s_diffuse, in.tex_coords);
}
`

func TestParseEntryPoint(t *testing.T) {
	tests := []struct {
		name       string
		shaderType ShaderType
		want       string
	}{
		{"vertex", ShaderTypeVertex, "vs_main"},
		{"fragment", ShaderTypeFragment, "fs_main"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseEntryPoint(viewerWGSL, tt.shaderType); got != tt.want {
				t.Errorf("parseEntryPoint = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseVertexLayouts(t *testing.T) {
	layouts := parseVertexLayouts(viewerWGSL)
	if len(layouts) != 1 {
		t.Fatalf("expected 1 vertex layout, got %d", len(layouts))
	}

	layout := layouts[0][0]
	if layout.ArrayStride != 20 {
		t.Errorf("ArrayStride = %d, want 20", layout.ArrayStride)
	}
	if layout.StepMode != wgpu.VertexStepModeVertex {
		t.Errorf("StepMode = %v, want per-vertex", layout.StepMode)
	}
	if len(layout.Attributes) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(layout.Attributes))
	}

	pos := layout.Attributes[0]
	if pos.Format != wgpu.VertexFormatFloat32x3 || pos.Offset != 0 || pos.ShaderLocation != 0 {
		t.Errorf("position attribute = %+v, want Float32x3 at offset 0, location 0", pos)
	}
	tex := layout.Attributes[1]
	if tex.Format != wgpu.VertexFormatFloat32x2 || tex.Offset != 12 || tex.ShaderLocation != 1 {
		t.Errorf("tex_coords attribute = %+v, want Float32x2 at offset 12, location 1", tex)
	}
}

func TestParseVertexLayoutsSkipsOutputStructs(t *testing.T) {
	// VertexOutput mixes @location with @builtin(position) and must not
	// produce a vertex buffer layout.
	layouts := parseVertexLayouts(viewerWGSL)
	for _, l := range layouts {
		for _, vbl := range l {
			for _, attr := range vbl.Attributes {
				if attr.Format == wgpu.VertexFormatFloat32x4 {
					t.Error("vertex output struct leaked into vertex layouts")
				}
			}
		}
	}
}

func TestParseBindGroupLayouts(t *testing.T) {
	groups := parseBindGroupLayouts(viewerWGSL, wgpu.ShaderStageFragment)
	if len(groups) != 2 {
		t.Fatalf("expected 2 bind groups, got %d", len(groups))
	}

	texGroup := groups[0]
	if len(texGroup.Entries) != 2 {
		t.Fatalf("group 0: expected 2 entries, got %d", len(texGroup.Entries))
	}
	if texGroup.Entries[0].Texture.SampleType != wgpu.TextureSampleTypeFloat {
		t.Errorf("binding 0 sample type = %v, want float", texGroup.Entries[0].Texture.SampleType)
	}
	if texGroup.Entries[0].Texture.ViewDimension != wgpu.TextureViewDimension2D {
		t.Errorf("binding 0 view dimension = %v, want 2D", texGroup.Entries[0].Texture.ViewDimension)
	}
	if texGroup.Entries[1].Sampler.Type != wgpu.SamplerBindingTypeFiltering {
		t.Errorf("binding 1 sampler type = %v, want filtering", texGroup.Entries[1].Sampler.Type)
	}

	camGroup := groups[1]
	if len(camGroup.Entries) != 1 {
		t.Fatalf("group 1: expected 1 entry, got %d", len(camGroup.Entries))
	}
	cam := camGroup.Entries[0]
	if cam.Buffer.Type != wgpu.BufferBindingTypeUniform {
		t.Errorf("camera binding type = %v, want uniform", cam.Buffer.Type)
	}
	if cam.Buffer.MinBindingSize != 64 {
		t.Errorf("camera MinBindingSize = %d, want 64 (mat4x4<f32>)", cam.Buffer.MinBindingSize)
	}
	if cam.Visibility != wgpu.ShaderStageFragment {
		t.Errorf("visibility = %v, want fragment stage", cam.Visibility)
	}
}

func TestComputeStructSizes(t *testing.T) {
	tests := []struct {
		name   string
		source string
		sName  string
		want   uint64
	}{
		{
			"mat4x4 uniform",
			`struct CameraUniform { view_proj: mat4x4<f32>, }`,
			"CameraUniform", 64,
		},
		{
			"vec3 padded to 16",
			`struct Light { position: vec3<f32>, intensity: f32, }`,
			"Light", 16,
		},
		{
			"nested struct",
			`struct Inner { v: vec4<f32>, }
			 struct Outer { a: Inner, b: f32, }`,
			"Outer", 32,
		},
		{
			"fixed array",
			`struct Palette { colors: array<vec4<f32>, 4>, }`,
			"Palette", 64,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sizes := computeStructSizes(parseStructBlocks(tt.source))
			layout, ok := sizes[tt.sName]
			if !ok {
				t.Fatalf("struct %q not resolved", tt.sName)
			}
			if layout.size != tt.want {
				t.Errorf("size = %d, want %d", layout.size, tt.want)
			}
		})
	}
}

func TestNewShader(t *testing.T) {
	s, err := NewShader("viewer_vs", ShaderTypeVertex, viewerWGSL)
	if err != nil {
		t.Fatalf("NewShader: %v", err)
	}
	if s.EntryPoint() != "vs_main" {
		t.Errorf("EntryPoint = %q, want vs_main", s.EntryPoint())
	}
	if len(s.VertexLayouts()) != 1 {
		t.Errorf("expected 1 vertex layout, got %d", len(s.VertexLayouts()))
	}
	if len(s.BindGroupLayoutDescriptors()) != 2 {
		t.Errorf("expected 2 bind group descriptors, got %d", len(s.BindGroupLayoutDescriptors()))
	}
}

func TestNewShaderErrors(t *testing.T) {
	tests := []struct {
		name       string
		shaderType ShaderType
		source     string
	}{
		{"empty source", ShaderTypeVertex, ""},
		{"missing vertex entry", ShaderTypeVertex, `@fragment fn fs_main() -> @location(0) vec4<f32> { return vec4<f32>(); }`},
		{"missing fragment entry", ShaderTypeFragment, `@vertex fn vs_main() {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewShader("bad", tt.shaderType, tt.source); err == nil {
				t.Error("NewShader accepted invalid source")
			}
		})
	}
}

func TestStripComments(t *testing.T) {
	source := `// line comment
struct A { /* block
comment */ x: f32, }`
	cleaned := stripComments(source)
	structs := parseStructBlocks(cleaned)
	if len(structs) != 1 || len(structs[0].fields) != 1 {
		t.Fatalf("comment stripping broke struct parsing: %+v", structs)
	}
	if structs[0].fields[0].name != "x" {
		t.Errorf("field name = %q, want x", structs[0].fields[0].name)
	}
}
