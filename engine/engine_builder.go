package engine

import (
	"github.com/prismgl/prism/engine/camera"
	"github.com/prismgl/prism/engine/renderer"
	"github.com/prismgl/prism/engine/window"
)

// AppBuilderOption is a functional option for configuring an App.
// Use the With* functions to create options that are applied directly to the app instance.
type AppBuilderOption func(*appImpl)

// WithWindow sets the window for the app. Required.
//
// Parameters:
//   - w: a pre-configured Window instance
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithWindow(w window.Window) AppBuilderOption {
	return func(a *appImpl) {
		a.window = w
	}
}

// WithRenderer sets the renderer for the app. Required.
//
// Parameters:
//   - r: a pre-configured Renderer instance
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithRenderer(r renderer.Renderer) AppBuilderOption {
	return func(a *appImpl) {
		a.renderer = r
	}
}

// WithCamera sets the camera for the app. Required.
//
// Parameters:
//   - c: a pre-configured Camera instance
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithCamera(c camera.Camera) AppBuilderOption {
	return func(a *appImpl) {
		a.camera = c
	}
}

// WithCameraController sets the camera controller for the app. Required.
//
// Parameters:
//   - c: a pre-configured CameraController instance
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithCameraController(c camera.CameraController) AppBuilderOption {
	return func(a *appImpl) {
		a.controller = c
	}
}

// WithGPUResources sets the GPU resource group for the app. Required.
// The group must be fully initialized before the app runs.
//
// Parameters:
//   - res: the initialized GPUResources
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithGPUResources(res *GPUResources) AppBuilderOption {
	return func(a *appImpl) {
		a.resources = res
	}
}

// WithProfiling enables or disables per-second frame rate and memory logging.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - AppBuilderOption: option function to apply
func WithProfiling(enabled bool) AppBuilderOption {
	return func(a *appImpl) {
		a.profilingEnabled = enabled
	}
}
