package renderer

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors classifying surface texture acquisition failures. Callers
// match with errors.Is to pick a recovery strategy: Lost and Outdated are
// recoverable by reconfiguring the surface at the last known size, Timeout
// means the frame should be skipped, and OutOfMemory is fatal.
var (
	// ErrSurfaceLost indicates the surface was lost and must be reconfigured.
	ErrSurfaceLost = errors.New("renderer: surface lost")

	// ErrSurfaceOutdated indicates the surface no longer matches the window
	// (typically mid-resize) and must be reconfigured.
	ErrSurfaceOutdated = errors.New("renderer: surface outdated")

	// ErrSurfaceTimeout indicates the next surface texture was not available in time.
	ErrSurfaceTimeout = errors.New("renderer: surface texture acquisition timed out")

	// ErrSurfaceOutOfMemory indicates the GPU is out of memory. Not recoverable.
	ErrSurfaceOutOfMemory = errors.New("renderer: surface out of memory")
)

// classifySurfaceError maps a raw surface acquisition error onto one of the
// sentinel errors above, wrapping the original so its message is preserved.
// wgpu-native reports the acquisition status in the error text, so the match
// is by status keyword. Unrecognized errors are returned wrapped but
// unclassified.
//
// Parameters:
//   - err: the error returned by Surface.GetCurrentTexture
//
// Returns:
//   - error: a sentinel-wrapped error suitable for errors.Is matching
func classifySurfaceError(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "outdated"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutdated, err)
	case strings.Contains(msg, "lost"):
		return fmt.Errorf("%w: %v", ErrSurfaceLost, err)
	case strings.Contains(msg, "timeout") || strings.Contains(msg, "timed out"):
		return fmt.Errorf("%w: %v", ErrSurfaceTimeout, err)
	case strings.Contains(msg, "out of memory") || strings.Contains(msg, "outofmemory"):
		return fmt.Errorf("%w: %v", ErrSurfaceOutOfMemory, err)
	default:
		return fmt.Errorf("renderer: failed to acquire surface texture: %w", err)
	}
}
