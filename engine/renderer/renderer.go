package renderer

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/prismgl/prism/common"
	"github.com/prismgl/prism/engine/renderer/bind_group_provider"
	"github.com/prismgl/prism/engine/renderer/pipeline"
	"github.com/prismgl/prism/engine/window"
)

// Draw describes a single draw submitted to RenderFrame.
type Draw struct {
	// PipelineKey identifies the cached pipeline to draw with.
	PipelineKey string

	// Mesh holds the vertex and index buffers for the draw.
	Mesh bind_group_provider.BindGroupProvider

	// BindGroups are bound to the render pass in slice order, so index 0 is
	// @group(0), index 1 is @group(1), and so on.
	BindGroups []bind_group_provider.BindGroupProvider

	// InstanceCount is the number of instances to draw. Zero is treated as 1.
	InstanceCount uint32
}

// renderer is the implementation of the Renderer interface.
//
// It is confined to the main event loop thread, like everything else built on
// the window message pump, so it carries no locking of its own. The backend
// guards its GPU frame state independently.
type renderer struct {
	pipelineCache map[string]pipeline.Pipeline

	backendType RendererBackendType
	backend     RendererBackend

	// Pre-creation config collected from builder options
	forceFallbackAdapter bool
	pendingPresentMode   *PresentMode
	pendingMSAA          *MSAASampleCount
}

// Renderer defines the interface for the rendering system.
//
// This is a high-level API designed to simplify rendering tasks into a streamlined and idiomatic flow.
// The Renderer manages a cache of pipelines, allowing for easy retrieval and management of these resources.
// The Renderer also implements a backend which allows for multiple backend API implementations to exist.
type Renderer interface {
	// Pipeline retrieves the cached Pipeline associated with the given key.
	// If the Pipeline does not exist, this will return nil.
	//
	// Parameters:
	//   - key: the unique identifier for the Pipeline to retrieve
	//
	// Returns:
	//   - pipeline.Pipeline: the cached Pipeline or nil
	Pipeline(key string) pipeline.Pipeline

	// Pipelines returns the full pipeline cache keyed by pipeline key.
	//
	// Returns:
	//   - map[string]pipeline.Pipeline: the pipeline cache
	Pipelines() map[string]pipeline.Pipeline

	// SetPipeline stores a Pipeline in the cache under the given key without registering
	// it with the GPU. Use RegisterPipelines to create the GPU-side pipeline objects.
	//
	// Parameters:
	//   - key: the unique identifier for the pipeline
	//   - p: the Pipeline to cache
	SetPipeline(key string, p pipeline.Pipeline)

	// RegisterPipelines creates the GPU render pipeline for every cached Pipeline that
	// does not have one yet. Must be called after the surface is configured, since the
	// pipeline color target format is taken from the surface.
	//
	// Returns:
	//   - error: an error if any pipeline could not be created, otherwise nil
	RegisterPipelines() error

	// Resize reconfigures the surface and its attachments for a new pixel size.
	// Called on window resize and when recovering from a lost or outdated surface.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	//
	// Returns:
	//   - error: an error if the surface could not be reconfigured
	Resize(width, height int) error

	// SetPresentMode sets the surface present mode. Takes effect on the next Resize.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// InitMeshBuffers creates vertex and index buffers for a mesh on the given provider.
	// Index data must be uint16 little-endian.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created buffers on
	//   - vertexData: the raw vertex data bytes
	//   - indexData: the raw index data bytes
	//   - indexCount: the number of indices represented in indexData
	//
	// Returns:
	//   - error: an error if the buffers could not be created, otherwise nil
	InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error

	// InitBindGroup creates GPU buffers and a bind group for the provider based on a
	// layout descriptor, typically one parsed from a shader.
	//
	// Parameters:
	//   - provider: the BindGroupProvider describing the storage for the bind group
	//   - descriptor: the BindGroupLayoutDescriptor describing the layout of the bind group
	//
	// Returns:
	//   - error: an error if the bind group could not be initialized, otherwise nil
	InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error

	// InitTextureView creates a GPU texture from staging data and stores its view on the provider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created texture view on
	//   - bindingKey: the binding index for this texture
	//   - stagingData: the TextureStagingData containing the RGBA pixels and dimensions
	//
	// Returns:
	//   - error: an error if the texture could not be created, otherwise nil
	InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error

	// InitSampler creates a GPU sampler from staging data and stores it on the provider.
	//
	// Parameters:
	//   - provider: the BindGroupProvider to store the created sampler on
	//   - bindingKey: the binding index for this sampler
	//   - samplerStagingData: the SamplerStagingData containing the sampler configuration
	//
	// Returns:
	//   - error: an error if the sampler could not be created, otherwise nil
	InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error

	// WriteBuffers writes staged buffer data to the GPU queue. Used for per-frame
	// uniform updates such as the camera matrix.
	//
	// Parameters:
	//   - writes: a slice of BufferWrite structs describing the data to write
	WriteBuffers(writes []bind_group_provider.BufferWrite)

	// RenderFrame encodes and submits one frame containing the given draws, then
	// presents it. Surface acquisition failures are classified into the package's
	// sentinel errors (ErrSurfaceLost, ErrSurfaceOutdated, ErrSurfaceTimeout,
	// ErrSurfaceOutOfMemory) so callers can pick a recovery strategy.
	//
	// Parameters:
	//   - draws: the draws to encode into the frame's render pass
	//
	// Returns:
	//   - error: a classified error if the frame could not be started, otherwise nil
	RenderFrame(draws []Draw) error

	// Backend returns the underlying RendererBackend for direct GPU access.
	//
	// Returns:
	//   - RendererBackend: the active backend
	Backend() RendererBackend
}

// Compile-time check that renderer implements Renderer
var _ Renderer = &renderer{}

// NewRenderer creates a Renderer backed by the requested GPU API and configures the
// surface for the window's current size.
//
// Parameters:
//   - backendType: the RendererBackendType selecting the GPU backend implementation
//   - w: the Window providing the surface descriptor and initial dimensions
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the configured renderer
//   - error: an error if the backend or surface could not be initialized
func NewRenderer(backendType RendererBackendType, w window.Window, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		pipelineCache: make(map[string]pipeline.Pipeline),
		backendType:   backendType,
	}
	for _, opt := range options {
		opt(r)
	}

	sampleCount := MSAAOff
	if r.pendingMSAA != nil {
		sampleCount = *r.pendingMSAA
	}

	switch backendType {
	case BackendTypeWGPU:
		backend, err := newWGPURendererBackend(w.SurfaceDescriptor(), r.forceFallbackAdapter, sampleCount)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize WGPU backend: %w", err)
		}
		r.backend = backend
	default:
		return nil, fmt.Errorf("unsupported renderer backend type: %d", backendType)
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}

	if err := r.backend.ConfigureSurface(w.Width(), w.Height()); err != nil {
		return nil, fmt.Errorf("failed to configure surface: %w", err)
	}

	return r, nil
}

func (r *renderer) Pipeline(key string) pipeline.Pipeline {
	return r.pipelineCache[key]
}

func (r *renderer) Pipelines() map[string]pipeline.Pipeline {
	return r.pipelineCache
}

func (r *renderer) SetPipeline(key string, p pipeline.Pipeline) {
	r.pipelineCache[key] = p
}

func (r *renderer) RegisterPipelines() error {
	for key, p := range r.pipelineCache {
		if p.Pipeline() != nil {
			continue
		}
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return fmt.Errorf("failed to register pipeline %q: %w", key, err)
		}
	}
	return nil
}

func (r *renderer) Resize(width, height int) error {
	return r.backend.ConfigureSurface(width, height)
}

func (r *renderer) SetPresentMode(mode PresentMode) {
	r.backend.SetPresentMode(mode)
}

func (r *renderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return r.backend.InitMeshBuffers(provider, vertexData, indexData, indexCount)
}

func (r *renderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	return r.backend.InitBindGroup(provider, descriptor)
}

func (r *renderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return r.backend.InitTextureView(provider, bindingKey, stagingData)
}

func (r *renderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return r.backend.InitSampler(provider, bindingKey, samplerStagingData)
}

func (r *renderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.backend.WriteBuffers(writes)
}

func (r *renderer) RenderFrame(draws []Draw) error {
	if err := r.backend.BeginFrame(); err != nil {
		return err
	}

	for _, d := range draws {
		p := r.pipelineCache[d.PipelineKey]
		if p == nil || p.Pipeline() == nil {
			continue
		}
		instances := d.InstanceCount
		if instances == 0 {
			instances = 1
		}
		r.backend.DrawCall(p, d.Mesh, instances, d.BindGroups)
	}

	r.backend.EndFrame()
	r.backend.Present()

	return nil
}

func (r *renderer) Backend() RendererBackend {
	return r.backend
}
