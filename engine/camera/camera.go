package camera

import (
	"errors"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/prismgl/prism/common"
)

// ErrDegenerateView is returned by ViewProjection when the eye and target
// coincide, leaving no view direction to build a basis from.
var ErrDegenerateView = errors.New("camera: eye and target coincide")

// ErrInvalidAspect is returned by ViewProjection when the aspect ratio is
// zero or negative. The caller should skip recomputation on degenerate
// surface sizes instead of feeding them into the projection.
var ErrInvalidAspect = errors.New("camera: aspect ratio must be positive")

const minForwardLength = 1e-6

type cameraImpl struct {
	eye    mgl32.Vec3
	target mgl32.Vec3
	up     mgl32.Vec3

	fov    float32 // vertical, degrees
	aspect float32
	near   float32
	far    float32
}

// Camera defines the interface for the camera model.
// The camera holds view vectors and perspective settings and computes a
// combined view-projection matrix on demand. It performs no input handling
// itself; a CameraController mutates the eye between frames.
//
// The camera is owned and mutated by the application host's event loop only
// and is not safe for concurrent use.
type Camera interface {
	// Eye returns the camera position in world space.
	//
	// Returns:
	//   - mgl32.Vec3: the eye position
	Eye() mgl32.Vec3

	// Target returns the world-space point the camera looks at.
	//
	// Returns:
	//   - mgl32.Vec3: the target position
	Target() mgl32.Vec3

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - mgl32.Vec3: the up vector
	Up() mgl32.Vec3

	// Fov returns the vertical field of view in degrees.
	//
	// Returns:
	//   - float32: field of view in degrees
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// ViewProjection computes the combined view-projection matrix from the
	// current camera state. The view matrix is a right-handed look-at basis,
	// the projection maps depth into the WebGPU [0, 1] clip range, and the
	// result is projection * view in column-major order.
	//
	// The computation is pure: identical camera state yields a bit-identical
	// matrix.
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix (column-major)
	//   - error: ErrDegenerateView if eye and target coincide,
	//     ErrInvalidAspect if the aspect ratio is not positive
	ViewProjection() ([16]float32, error)

	// SetEye sets the camera position in world space.
	//
	// Parameters:
	//   - eye: the new eye position
	SetEye(eye mgl32.Vec3)

	// SetTarget sets the world-space point the camera looks at.
	//
	// Parameters:
	//   - target: the new target position
	SetTarget(target mgl32.Vec3)

	// SetUp sets the camera's up vector.
	//
	// Parameters:
	//   - up: the new up vector
	SetUp(up mgl32.Vec3)

	// SetFov sets the vertical field of view in degrees.
	//
	// Parameters:
	//   - fov: field of view in degrees
	SetFov(fov float32)

	// SetAspect sets the aspect ratio (width / height).
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)

	// SetNear sets the near clipping plane distance.
	//
	// Parameters:
	//   - near: near plane distance
	SetNear(near float32)

	// SetFar sets the far clipping plane distance.
	//
	// Parameters:
	//   - far: far plane distance
	SetFar(far float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default perspective settings:
// eye (0,1,2) looking at the origin, up +Y, 45 degree fov, aspect 1,
// near 0.1, far 100.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		eye:    mgl32.Vec3{0, 1, 2},
		target: mgl32.Vec3{0, 0, 0},
		up:     mgl32.Vec3{0, 1, 0},
		fov:    45.0,
		aspect: 1.0,
		near:   0.1,
		far:    100.0,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Eye() mgl32.Vec3 {
	return c.eye
}

func (c *cameraImpl) Target() mgl32.Vec3 {
	return c.target
}

func (c *cameraImpl) Up() mgl32.Vec3 {
	return c.up
}

func (c *cameraImpl) Fov() float32 {
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	return c.near
}

func (c *cameraImpl) Far() float32 {
	return c.far
}

func (c *cameraImpl) SetEye(eye mgl32.Vec3) {
	c.eye = eye
}

func (c *cameraImpl) SetTarget(target mgl32.Vec3) {
	c.target = target
}

func (c *cameraImpl) SetUp(up mgl32.Vec3) {
	c.up = up
}

func (c *cameraImpl) SetFov(fov float32) {
	c.fov = fov
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.aspect = aspect
}

func (c *cameraImpl) SetNear(near float32) {
	c.near = near
}

func (c *cameraImpl) SetFar(far float32) {
	c.far = far
}

func (c *cameraImpl) ViewProjection() ([16]float32, error) {
	var out [16]float32

	if c.target.Sub(c.eye).Len() < minForwardLength {
		return out, ErrDegenerateView
	}
	if c.aspect <= 0 {
		return out, ErrInvalidAspect
	}

	var view, proj [16]float32
	common.LookAt(view[:],
		c.eye.X(), c.eye.Y(), c.eye.Z(),
		c.target.X(), c.target.Y(), c.target.Z(),
		c.up.X(), c.up.Y(), c.up.Z(),
	)
	common.Perspective(proj[:], mgl32.DegToRad(c.fov), c.aspect, c.near, c.far)
	common.Mul4(out[:], proj[:], view[:])
	return out, nil
}
