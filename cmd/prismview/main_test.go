package main

import (
	"testing"

	"github.com/prismgl/prism/engine/camera"
	"github.com/prismgl/prism/engine/mesh"
	"github.com/prismgl/prism/engine/renderer/shader"
	"github.com/prismgl/prism/engine/texture"
)

// The viewer has no flags and no config files; everything it starts with is
// compiled in. These tests validate the embedded assets against the pipeline
// so a bad asset fails here instead of at first launch.

func TestEmbeddedShaderMatchesPipeline(t *testing.T) {
	vs, err := shader.NewShader("viewer vertex", shader.ShaderTypeVertex, shaderWGSL)
	if err != nil {
		t.Fatalf("vertex shader: %v", err)
	}
	fs, err := shader.NewShader("viewer fragment", shader.ShaderTypeFragment, shaderWGSL)
	if err != nil {
		t.Fatalf("fragment shader: %v", err)
	}

	if got := vs.EntryPoint(); got != "vs_main" {
		t.Errorf("vertex entry point = %q, want vs_main", got)
	}
	if got := fs.EntryPoint(); got != "fs_main" {
		t.Errorf("fragment entry point = %q, want fs_main", got)
	}

	layouts := vs.VertexLayout(0)
	if len(layouts) != 1 {
		t.Fatalf("vertex buffer layouts = %d, want 1", len(layouts))
	}
	if got := int(layouts[0].ArrayStride); got != mesh.GPUVertexSize {
		t.Errorf("shader vertex stride = %d, want %d (mesh.GPUVertex)", got, mesh.GPUVertexSize)
	}

	// @group(0) is the texture + sampler pair the fragment stage samples.
	if got := len(fs.BindGroupLayoutDescriptor(0).Entries); got != 2 {
		t.Errorf("texture group entries = %d, want 2", got)
	}

	// @group(1) binding 0 is the camera uniform; its minimum binding size
	// must match the Go-side uniform struct exactly.
	cameraDesc := vs.BindGroupLayoutDescriptor(1)
	if len(cameraDesc.Entries) != 1 {
		t.Fatalf("camera group entries = %d, want 1", len(cameraDesc.Entries))
	}
	uniform := camera.GPUCameraUniform{}
	if got := int(cameraDesc.Entries[0].Buffer.MinBindingSize); got != uniform.Size() {
		t.Errorf("camera uniform MinBindingSize = %d, want %d", got, uniform.Size())
	}
}

func TestEmbeddedTextureDecodes(t *testing.T) {
	staging, err := texture.Decode(checkerPNG)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if staging.Width == 0 || staging.Height == 0 {
		t.Fatalf("decoded texture has degenerate size %dx%d", staging.Width, staging.Height)
	}
	if got, want := len(staging.Pixels), int(staging.Width*staging.Height*4); got != want {
		t.Errorf("pixel data length = %d, want %d", got, want)
	}
}

func TestStartupParameters(t *testing.T) {
	if windowWidth <= 0 || windowHeight <= 0 {
		t.Errorf("window size %dx%d must be positive", windowWidth, windowHeight)
	}
	if windowTitle == "" {
		t.Error("window title must not be empty")
	}
	if cameraSpeed <= 0 {
		t.Errorf("camera speed %v must be positive", float32(cameraSpeed))
	}
}
