package engine

import (
	"errors"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/prismgl/prism/common"
	"github.com/prismgl/prism/engine/camera"
	"github.com/prismgl/prism/engine/renderer"
	"github.com/prismgl/prism/engine/renderer/bind_group_provider"
	"github.com/prismgl/prism/engine/renderer/pipeline"
	"github.com/prismgl/prism/engine/window"
)

// fakeWindow satisfies window.Window without any platform resources.
// ProcessMessages invokes the update callback updateIterations times and returns.
type fakeWindow struct {
	width, height    int
	updateIterations int

	onUpdate  func()
	onResize  func(width, height int)
	onKeyDown func(keyCode uint32)
	onKeyUp   func(keyCode uint32)

	closeRequested bool
}

func (w *fakeWindow) SetUpdateCallback(callback func())                  { w.onUpdate = callback }
func (w *fakeWindow) SetResizeCallback(callback func(width, height int)) { w.onResize = callback }
func (w *fakeWindow) SetKeyDownCallback(callback func(keyCode uint32))   { w.onKeyDown = callback }
func (w *fakeWindow) SetKeyUpCallback(callback func(keyCode uint32))     { w.onKeyUp = callback }
func (w *fakeWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor         { return nil }
func (w *fakeWindow) IsRunning() bool                                    { return !w.closeRequested }
func (w *fakeWindow) RequestClose()                                      { w.closeRequested = true }
func (w *fakeWindow) Close() error                                       { return nil }
func (w *fakeWindow) Width() int                                         { return w.width }
func (w *fakeWindow) Height() int                                        { return w.height }

func (w *fakeWindow) ProcessMessages() {
	for range w.updateIterations {
		if w.closeRequested {
			return
		}
		if w.onUpdate != nil {
			w.onUpdate()
		}
	}
}

var _ window.Window = &fakeWindow{}

// fakeRenderer satisfies renderer.Renderer and records calls. frameErrs is a
// queue of errors returned by successive RenderFrame calls; once drained,
// RenderFrame succeeds.
type fakeRenderer struct {
	resizeCalls [][2]int
	frameErrs   []error
	frameCount  int
	writes      []bind_group_provider.BufferWrite
}

func (r *fakeRenderer) Pipeline(key string) pipeline.Pipeline       { return nil }
func (r *fakeRenderer) Pipelines() map[string]pipeline.Pipeline     { return nil }
func (r *fakeRenderer) SetPipeline(key string, p pipeline.Pipeline) {}
func (r *fakeRenderer) RegisterPipelines() error                    { return nil }
func (r *fakeRenderer) SetPresentMode(mode renderer.PresentMode)    {}
func (r *fakeRenderer) Backend() renderer.RendererBackend           { return nil }

func (r *fakeRenderer) Resize(width, height int) error {
	r.resizeCalls = append(r.resizeCalls, [2]int{width, height})
	return nil
}

func (r *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	return nil
}

func (r *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor) error {
	return nil
}

func (r *fakeRenderer) InitTextureView(provider bind_group_provider.BindGroupProvider, bindingKey int, stagingData common.TextureStagingData) error {
	return nil
}

func (r *fakeRenderer) InitSampler(provider bind_group_provider.BindGroupProvider, bindingKey int, samplerStagingData common.SamplerStagingData) error {
	return nil
}

func (r *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	r.writes = append(r.writes, writes...)
}

func (r *fakeRenderer) RenderFrame(draws []renderer.Draw) error {
	r.frameCount++
	if len(r.frameErrs) > 0 {
		err := r.frameErrs[0]
		r.frameErrs = r.frameErrs[1:]
		return err
	}
	return nil
}

var _ renderer.Renderer = &fakeRenderer{}

func testResources() *GPUResources {
	return &GPUResources{
		Mesh:          bind_group_provider.NewBindGroupProvider("test mesh"),
		TextureGroup:  bind_group_provider.NewBindGroupProvider("test texture"),
		CameraGroup:   bind_group_provider.NewBindGroupProvider("test camera"),
		CameraBinding: 0,
		PipelineKey:   "test",
	}
}

func testApp(t *testing.T, w *fakeWindow, r *fakeRenderer) *appImpl {
	t.Helper()
	a, err := NewApp(
		WithWindow(w),
		WithRenderer(r),
		WithCamera(camera.NewCamera()),
		WithCameraController(camera.NewCameraController()),
		WithGPUResources(testResources()),
	)
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	return a.(*appImpl)
}

func TestNewAppRequiresParts(t *testing.T) {
	tests := []struct {
		name    string
		options []AppBuilderOption
	}{
		{"no window", []AppBuilderOption{
			WithRenderer(&fakeRenderer{}),
			WithCamera(camera.NewCamera()),
			WithCameraController(camera.NewCameraController()),
			WithGPUResources(testResources()),
		}},
		{"no renderer", []AppBuilderOption{
			WithWindow(&fakeWindow{width: 800, height: 600}),
			WithCamera(camera.NewCamera()),
			WithCameraController(camera.NewCameraController()),
			WithGPUResources(testResources()),
		}},
		{"no camera", []AppBuilderOption{
			WithWindow(&fakeWindow{width: 800, height: 600}),
			WithRenderer(&fakeRenderer{}),
			WithCameraController(camera.NewCameraController()),
			WithGPUResources(testResources()),
		}},
		{"no controller", []AppBuilderOption{
			WithWindow(&fakeWindow{width: 800, height: 600}),
			WithRenderer(&fakeRenderer{}),
			WithCamera(camera.NewCamera()),
			WithGPUResources(testResources()),
		}},
		{"no resources", []AppBuilderOption{
			WithWindow(&fakeWindow{width: 800, height: 600}),
			WithRenderer(&fakeRenderer{}),
			WithCamera(camera.NewCamera()),
			WithCameraController(camera.NewCameraController()),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewApp(tt.options...); err == nil {
				t.Error("NewApp() succeeded, want error")
			}
		})
	}
}

func TestResizeUpdatesAspectAndSurface(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	r := &fakeRenderer{}
	a := testApp(t, w, r)

	a.Resize(800, 400)

	if got := a.Camera().Aspect(); got != 2.0 {
		t.Errorf("aspect after resize = %v, want 2.0", got)
	}
	if len(r.resizeCalls) != 1 || r.resizeCalls[0] != [2]int{800, 400} {
		t.Errorf("renderer resize calls = %v, want [[800 400]]", r.resizeCalls)
	}
}

func TestResizeDegenerateIsNoOp(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	r := &fakeRenderer{}
	a := testApp(t, w, r)

	aspectBefore := a.Camera().Aspect()

	a.Resize(0, 0)
	a.Resize(-1, 600)
	a.Resize(800, 0)

	if len(r.resizeCalls) != 0 {
		t.Errorf("degenerate resize must not reconfigure the surface, got %v", r.resizeCalls)
	}
	if got := a.Camera().Aspect(); got != aspectBefore {
		t.Errorf("aspect changed by degenerate resize: %v -> %v", aspectBefore, got)
	}
	if a.width != 800 || a.height != 600 {
		t.Errorf("stored size changed by degenerate resize: %dx%d", a.width, a.height)
	}
}

func TestInputChainControllerConsumesMovementKeys(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	a := testApp(t, w, &fakeRenderer{})

	a.HandleKeyEvent(common.KeyEvent{Code: common.KeyW, Pressed: true})

	if w.closeRequested {
		t.Error("movement key must not reach the quit handler")
	}
}

func TestInputChainEscapeQuits(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	a := testApp(t, w, &fakeRenderer{})
	a.state = StateRunning

	a.HandleKeyEvent(common.KeyEvent{Code: common.KeyEsc, Pressed: true})

	if !w.closeRequested {
		t.Error("escape press must request a window close")
	}
	if a.State() != StateShuttingDown {
		t.Errorf("state after quit = %v, want StateShuttingDown", a.State())
	}
}

func TestInputChainEscapeReleaseIgnored(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	a := testApp(t, w, &fakeRenderer{})

	a.HandleKeyEvent(common.KeyEvent{Code: common.KeyEsc, Pressed: false})

	if w.closeRequested {
		t.Error("escape release must not request a close")
	}
}

func TestRunStateTransitions(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600, updateIterations: 3}
	r := &fakeRenderer{}
	a := testApp(t, w, r)

	if a.State() != StateUninitialized {
		t.Fatalf("initial state = %v, want StateUninitialized", a.State())
	}

	if err := a.Run(); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if a.State() != StateShuttingDown {
		t.Errorf("state after Run = %v, want StateShuttingDown", a.State())
	}
	if r.frameCount != 3 {
		t.Errorf("frames rendered = %d, want 3", r.frameCount)
	}
	if len(r.writes) != 3 {
		t.Errorf("camera uniform writes = %d, want 3", len(r.writes))
	}

	if err := a.Run(); err == nil {
		t.Error("second Run() succeeded, want error")
	}
}

func TestFrameRecoversLostSurface(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	r := &fakeRenderer{frameErrs: []error{renderer.ErrSurfaceLost}}
	a := testApp(t, w, r)
	a.state = StateRunning

	a.frame()

	if len(r.resizeCalls) != 1 || r.resizeCalls[0] != [2]int{800, 600} {
		t.Errorf("lost surface must reconfigure at last known size, got %v", r.resizeCalls)
	}
	if a.State() != StateRunning {
		t.Errorf("lost surface must not shut down, state = %v", a.State())
	}
}

func TestFrameRecoversOutdatedSurface(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	r := &fakeRenderer{frameErrs: []error{renderer.ErrSurfaceOutdated}}
	a := testApp(t, w, r)
	a.state = StateRunning

	a.frame()

	if len(r.resizeCalls) != 1 {
		t.Errorf("outdated surface must reconfigure, got %v", r.resizeCalls)
	}
}

func TestFrameSkipsOnTimeout(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	r := &fakeRenderer{frameErrs: []error{renderer.ErrSurfaceTimeout}}
	a := testApp(t, w, r)
	a.state = StateRunning

	a.frame()

	if len(r.resizeCalls) != 0 {
		t.Errorf("timeout must not reconfigure the surface, got %v", r.resizeCalls)
	}
	if a.State() != StateRunning {
		t.Errorf("timeout must not shut down, state = %v", a.State())
	}
}

func TestFrameShutsDownOnOutOfMemory(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	r := &fakeRenderer{frameErrs: []error{renderer.ErrSurfaceOutOfMemory}}
	a := testApp(t, w, r)
	a.state = StateRunning

	a.frame()

	if a.State() != StateShuttingDown {
		t.Errorf("out of memory must shut down, state = %v", a.State())
	}
	if !w.closeRequested {
		t.Error("out of memory must request a window close")
	}
}

func TestFrameIgnoredWhenNotRunning(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	r := &fakeRenderer{}
	a := testApp(t, w, r)

	a.frame()

	if r.frameCount != 0 {
		t.Errorf("frame rendered while uninitialized, count = %d", r.frameCount)
	}
}

func TestUnrecognizedFrameErrorContinues(t *testing.T) {
	w := &fakeWindow{width: 800, height: 600}
	r := &fakeRenderer{frameErrs: []error{errors.New("validation failure")}}
	a := testApp(t, w, r)
	a.state = StateRunning

	a.frame()

	if a.State() != StateRunning {
		t.Errorf("generic frame error must not shut down, state = %v", a.State())
	}
}
