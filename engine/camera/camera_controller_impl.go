package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/prismgl/prism/common"
)

// cameraControllerImpl is the single implementation of CameraController.
// It keeps one boolean per movement direction, set on key press and cleared
// on key release, and integrates the held directions once per frame in
// Update. The up/down flags are tracked for completeness but not applied
// by Update.
type cameraControllerImpl struct {
	speed float32

	forward  bool
	backward bool
	left     bool
	right    bool
	up       bool
	down     bool
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a new camera controller with all movement
// flags cleared and a default speed of 0.2 world units per frame.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		speed: 0.2,
	}

	for _, option := range options {
		option(cc)
	}

	return cc
}

func (c *cameraControllerImpl) Speed() float32 {
	return c.speed
}

func (c *cameraControllerImpl) SetSpeed(speed float32) {
	c.speed = speed
}

func (c *cameraControllerImpl) HandleInput(ev common.KeyEvent) bool {
	switch ev.Code {
	case common.KeyW:
		c.forward = ev.Pressed
	case common.KeyS:
		c.backward = ev.Pressed
	case common.KeyA:
		c.left = ev.Pressed
	case common.KeyD:
		c.right = ev.Pressed
	case common.KeyE:
		c.up = ev.Pressed
	case common.KeyQ:
		c.down = ev.Pressed
	default:
		return false
	}
	return true
}

func (c *cameraControllerImpl) Update(cam Camera) {
	eye := cam.Eye()
	target := cam.Target()

	forward := target.Sub(eye)
	forwardLen := forward.Len()
	if forwardLen < minForwardLength {
		return
	}
	forwardDir := forward.Mul(1.0 / forwardLen)

	// Clamped approach: never step through or past the target.
	if c.forward && forwardLen > c.speed {
		eye = eye.Add(forwardDir.Mul(c.speed))
	}
	// No clamp on the way out; the eye can recede indefinitely.
	if c.backward {
		eye = eye.Sub(forwardDir.Mul(c.speed))
	}

	right := forwardDir.Cross(cam.Up()).Normalize()

	if c.left || c.right {
		// Redo the radius after the forward/backward step so strafing keeps
		// the updated distance to the target.
		forward = target.Sub(eye)
		forwardLen = forward.Len()

		if c.right {
			eye = target.Sub(scaleTo(forward.Sub(right.Mul(c.speed)), forwardLen))
		}
		if c.left {
			eye = target.Sub(scaleTo(forward.Add(right.Mul(c.speed)), forwardLen))
		}
	}

	cam.SetEye(eye)
}

// scaleTo returns v rescaled to the given length.
func scaleTo(v mgl32.Vec3, length float32) mgl32.Vec3 {
	return v.Normalize().Mul(length)
}
