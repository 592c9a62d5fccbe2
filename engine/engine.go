package engine

import (
	"errors"
	"fmt"

	"github.com/prismgl/prism/common"
	"github.com/prismgl/prism/engine/camera"
	"github.com/prismgl/prism/engine/profiler"
	"github.com/prismgl/prism/engine/renderer"
	"github.com/prismgl/prism/engine/renderer/bind_group_provider"
	"github.com/prismgl/prism/engine/window"
)

// AppState describes the lifecycle state of an App.
type AppState int

const (
	// StateUninitialized is the state before Run is called.
	StateUninitialized AppState = iota

	// StateRunning is the state while the message loop is pumping frames.
	StateRunning

	// StateShuttingDown is the state after a quit was requested or a fatal
	// frame error occurred. No further frames are rendered.
	StateShuttingDown
)

// InputHandler consumes keyboard events routed through the App's input chain.
// Handlers are consulted in registration order; the first handler to return
// true stops the chain.
type InputHandler interface {
	// Handle processes a single key event.
	//
	// Parameters:
	//   - ev: the key press or release event
	//
	// Returns:
	//   - bool: true if the event was consumed
	Handle(ev common.KeyEvent) bool
}

// InputHandlerFunc adapts a plain function to the InputHandler interface.
type InputHandlerFunc func(ev common.KeyEvent) bool

// Handle calls f(ev).
func (f InputHandlerFunc) Handle(ev common.KeyEvent) bool {
	return f(ev)
}

// GPUResources holds every GPU-side resource the App draws with. The set is
// created whole at startup; the App never observes a partially initialized
// resource group.
type GPUResources struct {
	// Mesh holds the vertex and index buffers.
	Mesh bind_group_provider.BindGroupProvider
	// TextureGroup holds the texture view and sampler bound at @group(0).
	TextureGroup bind_group_provider.BindGroupProvider
	// CameraGroup holds the camera uniform buffer bound at @group(1).
	CameraGroup bind_group_provider.BindGroupProvider
	// CameraBinding is the binding index of the camera uniform buffer
	// within CameraGroup.
	CameraBinding int
	// PipelineKey identifies the cached pipeline used to draw the mesh.
	PipelineKey string
}

// appImpl implements the App interface.
//
// Everything here runs on the window's message loop thread: the update,
// resize, and key callbacks are all invoked from ProcessMessages. No
// locking is needed or used.
type appImpl struct {
	state AppState

	window     window.Window
	renderer   renderer.Renderer
	camera     camera.Camera
	controller camera.CameraController
	resources  *GPUResources

	inputChain []InputHandler

	// Last known good surface size, used to recover a lost or outdated surface.
	width  int
	height int

	profiler         *profiler.Profiler
	profilingEnabled bool
}

// App is the application host. It owns the window, renderer, camera, and GPU
// resources, wires the window callbacks, and drives the per-frame loop until
// the window closes.
type App interface {
	// State returns the current lifecycle state.
	//
	// Returns:
	//   - AppState: the current state
	State() AppState

	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the renderer.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// Camera returns the camera.
	//
	// Returns:
	//   - camera.Camera: the camera instance
	Camera() camera.Camera

	// HandleKeyEvent routes a key event through the input chain.
	// The chain is consulted in priority order: the camera controller first,
	// then the App's own quit handling. The first handler to consume the
	// event stops the chain.
	//
	// Parameters:
	//   - ev: the key press or release event
	HandleKeyEvent(ev common.KeyEvent)

	// Resize updates the stored surface size, the camera aspect ratio, and
	// reconfigures the surface. A degenerate size (zero or negative width or
	// height, as reported while minimized) is a no-op, not an error.
	//
	// Parameters:
	//   - width: the new surface width in pixels
	//   - height: the new surface height in pixels
	Resize(width, height int)

	// Run wires the window callbacks and blocks pumping the message loop
	// until the window closes or a fatal frame error occurs. GPU resources
	// are released before Run returns.
	//
	// Returns:
	//   - error: an error if the App was not in a runnable state
	Run() error

	// Quit requests shutdown. The message loop exits after the current
	// iteration. Safe to call multiple times.
	Quit()
}

// Compile-time check that appImpl implements App
var _ App = &appImpl{}

// NewApp creates an App from fully constructed parts. The window, renderer,
// camera, controller, and GPU resources are all required; construction fails
// rather than deferring the error to the frame loop.
//
// Parameters:
//   - options: functional options supplying the App's parts
//
// Returns:
//   - App: the assembled application host
//   - error: an error if a required part is missing
func NewApp(options ...AppBuilderOption) (App, error) {
	a := &appImpl{
		state:    StateUninitialized,
		profiler: profiler.NewProfiler(Logger()),
	}
	for _, opt := range options {
		opt(a)
	}

	switch {
	case a.window == nil:
		return nil, errors.New("app requires a window")
	case a.renderer == nil:
		return nil, errors.New("app requires a renderer")
	case a.camera == nil:
		return nil, errors.New("app requires a camera")
	case a.controller == nil:
		return nil, errors.New("app requires a camera controller")
	case a.resources == nil:
		return nil, errors.New("app requires GPU resources")
	}

	a.width = a.window.Width()
	a.height = a.window.Height()

	// Input priority: controller movement keys first, quit handling last.
	a.inputChain = []InputHandler{
		InputHandlerFunc(a.controller.HandleInput),
		InputHandlerFunc(a.handleQuitKey),
	}

	return a, nil
}

func (a *appImpl) State() AppState {
	return a.state
}

func (a *appImpl) Window() window.Window {
	return a.window
}

func (a *appImpl) Renderer() renderer.Renderer {
	return a.renderer
}

func (a *appImpl) Camera() camera.Camera {
	return a.camera
}

func (a *appImpl) HandleKeyEvent(ev common.KeyEvent) {
	for _, h := range a.inputChain {
		if h.Handle(ev) {
			return
		}
	}
}

// handleQuitKey is the last handler in the input chain. Escape requests a
// window close; everything else falls through unconsumed.
func (a *appImpl) handleQuitKey(ev common.KeyEvent) bool {
	if ev.Code == common.KeyEsc && ev.Pressed {
		Logger().Info("quit requested")
		a.Quit()
		return true
	}
	return false
}

func (a *appImpl) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		// Minimized or degenerate, keep the last known size.
		Logger().Debug("ignoring degenerate resize", "width", width, "height", height)
		return
	}

	a.width = width
	a.height = height
	a.camera.SetAspect(float32(width) / float32(height))

	if err := a.renderer.Resize(width, height); err != nil {
		Logger().Error("failed to reconfigure surface", "error", err)
	}
}

func (a *appImpl) Run() error {
	if a.state != StateUninitialized {
		return fmt.Errorf("app cannot run from state %d", a.state)
	}

	a.window.SetResizeCallback(a.Resize)
	a.window.SetKeyDownCallback(func(keyCode uint32) {
		a.HandleKeyEvent(common.KeyEvent{Code: keyCode, Pressed: true})
	})
	a.window.SetKeyUpCallback(func(keyCode uint32) {
		a.HandleKeyEvent(common.KeyEvent{Code: keyCode, Pressed: false})
	})
	a.window.SetUpdateCallback(a.frame)

	a.state = StateRunning
	Logger().Info("app running", "width", a.width, "height", a.height)

	a.window.ProcessMessages()

	a.state = StateShuttingDown
	a.releaseResources()
	Logger().Info("app stopped")

	return nil
}

func (a *appImpl) Quit() {
	if a.state == StateShuttingDown {
		return
	}
	a.state = StateShuttingDown
	a.window.RequestClose()
}

// frame renders one frame. Called from the window's update callback once per
// message loop iteration.
func (a *appImpl) frame() {
	if a.state != StateRunning {
		return
	}

	a.controller.Update(a.camera)

	vp, err := a.camera.ViewProjection()
	if err != nil {
		// Degenerate camera state, nothing sensible to draw.
		Logger().Warn("skipping frame", "error", err)
		return
	}

	uniform := camera.GPUCameraUniform{ViewProj: vp}
	a.renderer.WriteBuffers([]bind_group_provider.BufferWrite{
		{
			Provider: a.resources.CameraGroup,
			Binding:  a.resources.CameraBinding,
			Data:     uniform.Marshal(),
		},
	})

	err = a.renderer.RenderFrame([]renderer.Draw{
		{
			PipelineKey: a.resources.PipelineKey,
			Mesh:        a.resources.Mesh,
			BindGroups: []bind_group_provider.BindGroupProvider{
				a.resources.TextureGroup,
				a.resources.CameraGroup,
			},
		},
	})
	if err != nil {
		a.recoverFrame(err)
		return
	}

	if a.profilingEnabled {
		a.profiler.Tick()
	}
}

// recoverFrame applies the per-error recovery strategy for a failed frame.
// Lost and outdated surfaces are reconfigured at the last known size and the
// next frame proceeds normally. A timeout skips the frame. Out of memory is
// fatal and shuts the app down.
func (a *appImpl) recoverFrame(err error) {
	switch {
	case errors.Is(err, renderer.ErrSurfaceLost), errors.Is(err, renderer.ErrSurfaceOutdated):
		Logger().Debug("reconfiguring surface", "error", err)
		if resizeErr := a.renderer.Resize(a.width, a.height); resizeErr != nil {
			Logger().Error("surface recovery failed", "error", resizeErr)
		}
	case errors.Is(err, renderer.ErrSurfaceTimeout):
		Logger().Warn("frame skipped", "error", err)
	case errors.Is(err, renderer.ErrSurfaceOutOfMemory):
		Logger().Error("GPU out of memory, shutting down", "error", err)
		a.Quit()
	default:
		Logger().Error("frame failed", "error", err)
	}
}

// releaseResources releases the GPU resources after the message loop exits.
func (a *appImpl) releaseResources() {
	if a.resources == nil {
		return
	}
	if a.resources.Mesh != nil {
		a.resources.Mesh.Release()
	}
	if a.resources.TextureGroup != nil {
		a.resources.TextureGroup.Release()
	}
	if a.resources.CameraGroup != nil {
		a.resources.CameraGroup.Release()
	}
}
