package camera

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestViewProjectionFinite(t *testing.T) {
	tests := []struct {
		name        string
		eye, target mgl32.Vec3
	}{
		{"origin target", mgl32.Vec3{0, 1, 2}, mgl32.Vec3{0, 0, 0}},
		{"off axis", mgl32.Vec3{3, -1, 4}, mgl32.Vec3{-2, 5, 1}},
		{"far away", mgl32.Vec3{500, 500, 500}, mgl32.Vec3{0, 0, 0}},
		{"close together", mgl32.Vec3{0, 0, 0.001}, mgl32.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(WithEye(tt.eye), WithTarget(tt.target))
			m, err := cam.ViewProjection()
			if err != nil {
				t.Fatalf("ViewProjection: %v", err)
			}
			for i, v := range m {
				if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
					t.Fatalf("m[%d] = %v, want finite", i, v)
				}
			}
		})
	}
}

func TestViewProjectionDeterministic(t *testing.T) {
	cam := NewCamera(
		WithEye(mgl32.Vec3{0, 1, 1.3}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
		WithFov(70),
		WithAspect(1.2),
	)
	first, err := cam.ViewProjection()
	if err != nil {
		t.Fatalf("ViewProjection: %v", err)
	}
	second, err := cam.ViewProjection()
	if err != nil {
		t.Fatalf("ViewProjection: %v", err)
	}
	if first != second {
		t.Error("repeated calls with unchanged state must be bit-identical")
	}
}

func TestViewProjectionDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		options []CameraBuilderOption
		wantErr error
	}{
		{
			name: "eye equals target",
			options: []CameraBuilderOption{
				WithEye(mgl32.Vec3{1, 2, 3}),
				WithTarget(mgl32.Vec3{1, 2, 3}),
			},
			wantErr: ErrDegenerateView,
		},
		{
			name: "zero aspect",
			options: []CameraBuilderOption{
				WithAspect(0),
			},
			wantErr: ErrInvalidAspect,
		},
		{
			name: "negative aspect",
			options: []CameraBuilderOption{
				WithAspect(-1.5),
			},
			wantErr: ErrInvalidAspect,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cam := NewCamera(tt.options...)
			if _, err := cam.ViewProjection(); !errors.Is(err, tt.wantErr) {
				t.Errorf("ViewProjection error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestViewProjectionTargetDepth(t *testing.T) {
	// The tutorial's reference camera: the target must land inside the
	// clip-space depth range (0, 1) after the perspective divide.
	cam := NewCamera(
		WithEye(mgl32.Vec3{0, 1, 1.3}),
		WithTarget(mgl32.Vec3{0, 0, 0}),
		WithUp(mgl32.Vec3{0, 1, 0}),
		WithFov(70),
		WithAspect(1.2),
		WithNear(0.1),
		WithFar(1000),
	)
	m, err := cam.ViewProjection()
	if err != nil {
		t.Fatalf("ViewProjection: %v", err)
	}

	// Transform the target (0,0,0,1): clip = M * p.
	var clip [4]float32
	for row := 0; row < 4; row++ {
		clip[row] = m[12+row]
	}
	if clip[3] <= 0 {
		t.Fatalf("clip w = %v, want positive (target in front of camera)", clip[3])
	}
	depth := clip[2] / clip[3]
	if depth <= 0 || depth >= 1 {
		t.Errorf("target clip depth = %v, want in (0, 1)", depth)
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	var u GPUCameraUniform
	for i := range u.ViewProj {
		u.ViewProj[i] = float32(i) * 0.5
	}

	if u.Size() != 64 {
		t.Fatalf("Size() = %d, want 64", u.Size())
	}
	buf := u.Marshal()
	if len(buf) != 64 {
		t.Fatalf("len(Marshal()) = %d, want 64", len(buf))
	}
	// Spot check element 2 (= 1.0) little-endian float32 at offset 8.
	if got := [4]byte{buf[8], buf[9], buf[10], buf[11]}; got != [4]byte{0, 0, 128, 63} {
		t.Errorf("element 2 bytes = %v, want little-endian 1.0", got)
	}
}
