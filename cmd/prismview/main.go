// prismview is a minimal textured-mesh viewer. It opens a window, renders a
// checker-textured cube through the WebGPU pipeline, and drives the camera
// with W/S/A/D/Q/E. Escape quits.
//
// The window title and initial size below are the only externally-observable
// startup parameters; there are no flags and no config files.
package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/prismgl/prism/common"
	"github.com/prismgl/prism/engine"
	"github.com/prismgl/prism/engine/camera"
	"github.com/prismgl/prism/engine/mesh"
	"github.com/prismgl/prism/engine/renderer"
	"github.com/prismgl/prism/engine/renderer/bind_group_provider"
	"github.com/prismgl/prism/engine/renderer/pipeline"
	"github.com/prismgl/prism/engine/renderer/shader"
	"github.com/prismgl/prism/engine/texture"
	"github.com/prismgl/prism/engine/window"
)

//go:embed assets/shader.wgsl
var shaderWGSL string

//go:embed assets/checker.png
var checkerPNG []byte

const (
	windowTitle  = "prismview"
	windowWidth  = 800
	windowHeight = 600

	// cameraSpeed is the camera movement speed in world units per frame.
	cameraSpeed = 0.05

	pipelineKey = "viewer"
)

func main() {
	engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "prismview:", err)
		os.Exit(1)
	}
}

func run() error {
	win, err := window.NewWindow(
		window.WithTitle(windowTitle),
		window.WithWidth(windowWidth),
		window.WithHeight(windowHeight),
	)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	// Renderer defaults: VSync, MSAA off, hardware adapter.
	r, err := renderer.NewRenderer(renderer.BackendTypeWGPU, win)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}

	vs, err := shader.NewShader("viewer vertex", shader.ShaderTypeVertex, shaderWGSL)
	if err != nil {
		return fmt.Errorf("failed to parse vertex shader: %w", err)
	}
	fs, err := shader.NewShader("viewer fragment", shader.ShaderTypeFragment, shaderWGSL)
	if err != nil {
		return fmt.Errorf("failed to parse fragment shader: %w", err)
	}

	r.SetPipeline(pipelineKey, pipeline.NewPipeline(pipelineKey,
		pipeline.WithVertexShader(vs),
		pipeline.WithFragmentShader(fs),
		pipeline.WithCullMode(wgpu.CullModeBack),
	))
	if err := r.RegisterPipelines(); err != nil {
		return err
	}

	resources, err := initResources(r, vs, fs)
	if err != nil {
		return err
	}

	cam := camera.NewCamera(
		camera.WithAspect(float32(windowWidth) / float32(windowHeight)),
	)
	controller := camera.NewCameraController(camera.WithSpeed(cameraSpeed))

	app, err := engine.NewApp(
		engine.WithWindow(win),
		engine.WithRenderer(r),
		engine.WithCamera(cam),
		engine.WithCameraController(controller),
		engine.WithGPUResources(resources),
	)
	if err != nil {
		return err
	}

	return app.Run()
}

// initResources uploads the mesh, texture, sampler, and camera uniform to the
// GPU and assembles them into the resource group the app draws with.
func initResources(r renderer.Renderer, vs, fs shader.Shader) (*engine.GPUResources, error) {
	vertices, indices := mesh.Cube()

	meshProvider := bind_group_provider.NewBindGroupProvider("viewer mesh")
	if err := r.InitMeshBuffers(meshProvider, common.SliceToBytes(vertices), common.SliceToBytes(indices), len(indices)); err != nil {
		return nil, fmt.Errorf("failed to upload mesh: %w", err)
	}

	staging, err := texture.Decode(checkerPNG)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture: %w", err)
	}

	// @group(0): texture at binding 0, sampler at binding 1, fragment stage.
	textureGroup := bind_group_provider.NewBindGroupProvider("viewer texture")
	if err := r.InitTextureView(textureGroup, 0, staging); err != nil {
		return nil, fmt.Errorf("failed to upload texture: %w", err)
	}
	if err := r.InitSampler(textureGroup, 1, texture.DefaultSampler()); err != nil {
		return nil, fmt.Errorf("failed to create sampler: %w", err)
	}
	if err := r.InitBindGroup(textureGroup, fs.BindGroupLayoutDescriptor(0)); err != nil {
		return nil, fmt.Errorf("failed to create texture bind group: %w", err)
	}

	// @group(1): camera uniform at binding 0, vertex stage.
	cameraGroup := bind_group_provider.NewBindGroupProvider("viewer camera")
	if err := r.InitBindGroup(cameraGroup, vs.BindGroupLayoutDescriptor(1)); err != nil {
		return nil, fmt.Errorf("failed to create camera bind group: %w", err)
	}

	return &engine.GPUResources{
		Mesh:          meshProvider,
		TextureGroup:  textureGroup,
		CameraGroup:   cameraGroup,
		CameraBinding: 0,
		PipelineKey:   pipelineKey,
	}, nil
}
