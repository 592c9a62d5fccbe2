package camera

import (
	"github.com/prismgl/prism/common"
)

// CameraController consumes discrete key events and applies one frame's worth
// of movement to a Camera. Held-key state persists between frames; a flag is
// only cleared by the matching release event.
//
// The controller is owned and mutated by the application host's event loop
// only and is not safe for concurrent use.
type CameraController interface {
	// Speed returns the movement speed in world units per frame.
	//
	// Returns:
	//   - float32: the movement speed
	Speed() float32

	// SetSpeed sets the movement speed in world units per frame.
	//
	// Parameters:
	//   - speed: the movement speed
	SetSpeed(speed float32)

	// HandleInput updates held-key state from a single key event.
	// Recognized keys are W/S (forward/backward), A/D (strafe left/right)
	// and Q/E (down/up). Any other key is not consumed so the caller can
	// route it elsewhere, such as the host's quit handling.
	//
	// Parameters:
	//   - ev: the key press or release event
	//
	// Returns:
	//   - bool: true if the event was consumed by the controller
	HandleInput(ev common.KeyEvent) bool

	// Update applies one frame of movement to the camera's eye position.
	//
	// Forward motion is clamped: it only applies while the distance to the
	// target exceeds the speed, so the eye never crosses the target.
	// Backward motion has no such clamp and can recede indefinitely.
	// Strafing orbits: the eye moves sideways and is re-projected onto a
	// sphere of the current eye-target distance around the target, so side
	// movement never changes the distance to the target.
	//
	// Parameters:
	//   - cam: the camera to move
	Update(cam Camera)
}
