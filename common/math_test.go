package common

import (
	"math"
	"testing"
)

const tol = 1e-5

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= tol
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = float32(i) + 1
	}
	Identity(m)
	for i, v := range m {
		want := float32(0)
		if i == 0 || i == 5 || i == 10 || i == 15 {
			want = 1
		}
		if v != want {
			t.Errorf("m[%d] = %v, want %v", i, v, want)
		}
	}
}

func TestMul4(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want []float32
	}{
		{
			name: "identity times identity",
			a:    identityMat(),
			b:    identityMat(),
			want: identityMat(),
		},
		{
			name: "identity is neutral on the left",
			a:    identityMat(),
			b:    translation(2, -3, 5),
			want: translation(2, -3, 5),
		},
		{
			name: "translation composition",
			a:    translation(1, 2, 3),
			b:    translation(10, 20, 30),
			want: translation(11, 22, 33),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := make([]float32, 16)
			Mul4(out, tt.a, tt.b)
			for i := range out {
				if !near(out[i], tt.want[i]) {
					t.Fatalf("out[%d] = %v, want %v", i, out[i], tt.want[i])
				}
			}
		})
	}
}

func TestMul4AliasesOutput(t *testing.T) {
	// out may alias a or b; Mul4 buffers internally.
	a := translation(1, 2, 3)
	b := translation(4, 5, 6)
	Mul4(a, a, b)
	want := translation(5, 7, 9)
	for i := range a {
		if !near(a[i], want[i]) {
			t.Fatalf("a[%d] = %v, want %v", i, a[i], want[i])
		}
	}
}

func TestPerspectiveDepthRange(t *testing.T) {
	// WebGPU clip space maps view depth into [0, 1]: the near plane must land
	// at depth 0 and the far plane at depth 1 after the perspective divide.
	proj := make([]float32, 16)
	near, far := float32(0.1), float32(1000.0)
	Perspective(proj, float32(math.Pi/3), 1.5, near, far)

	for _, tc := range []struct {
		name  string
		viewZ float32
		want  float32
	}{
		{"near plane", -near, 0},
		{"far plane", -far, 1},
	} {
		t.Run(tc.name, func(t *testing.T) {
			z := proj[10]*tc.viewZ + proj[14]
			w := proj[11] * tc.viewZ
			got := z / w
			if !nearEps(got, tc.want, 1e-3) {
				t.Errorf("clip depth = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestPerspectiveAspect(t *testing.T) {
	proj := make([]float32, 16)
	fov := float32(math.Pi / 2)
	Perspective(proj, fov, 2.0, 0.1, 100)

	f := 1.0 / float32(math.Tan(float64(fov)/2))
	if !near(proj[0], f/2.0) {
		t.Errorf("proj[0] = %v, want %v", proj[0], f/2.0)
	}
	if !near(proj[5], f) {
		t.Errorf("proj[5] = %v, want %v", proj[5], f)
	}
	if proj[11] != -1 {
		t.Errorf("proj[11] = %v, want -1", proj[11])
	}
}

func TestLookAt(t *testing.T) {
	tests := []struct {
		name          string
		eye, ctr, up  [3]float32
		point         [4]float32
		want          [4]float32
	}{
		{
			// Camera at origin looking down -Z is the identity view.
			name: "canonical orientation",
			eye:  [3]float32{0, 0, 0}, ctr: [3]float32{0, 0, -1}, up: [3]float32{0, 1, 0},
			point: [4]float32{1, 2, -3, 1},
			want:  [4]float32{1, 2, -3, 1},
		},
		{
			// Eye behind the point on +Z: the point sits 5 units ahead.
			name: "translation along view axis",
			eye:  [3]float32{0, 0, 5}, ctr: [3]float32{0, 0, 0}, up: [3]float32{0, 1, 0},
			point: [4]float32{0, 0, 0, 1},
			want:  [4]float32{0, 0, -5, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := make([]float32, 16)
			LookAt(view,
				tt.eye[0], tt.eye[1], tt.eye[2],
				tt.ctr[0], tt.ctr[1], tt.ctr[2],
				tt.up[0], tt.up[1], tt.up[2])
			got := transform(view, tt.point)
			for i := range got {
				if !near(got[i], tt.want[i]) {
					t.Fatalf("component %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLookAtTargetOnViewAxis(t *testing.T) {
	// The target must always land on the -Z view axis, whatever the eye.
	view := make([]float32, 16)
	LookAt(view, 3, 1, -2, -1, 4, 7, 0, 1, 0)
	got := transform(view, [4]float32{-1, 4, 7, 1})
	if !nearEps(got[0], 0, 1e-4) || !nearEps(got[1], 0, 1e-4) {
		t.Errorf("target off axis: (%v, %v, %v)", got[0], got[1], got[2])
	}
	if got[2] >= 0 {
		t.Errorf("target in front of camera must have negative view z, got %v", got[2])
	}
}

func identityMat() []float32 {
	m := make([]float32, 16)
	Identity(m)
	return m
}

func translation(x, y, z float32) []float32 {
	m := identityMat()
	m[12], m[13], m[14] = x, y, z
	return m
}

func transform(m []float32, v [4]float32) [4]float32 {
	var out [4]float32
	for row := 0; row < 4; row++ {
		out[row] = m[row]*v[0] + m[4+row]*v[1] + m[8+row]*v[2] + m[12+row]*v[3]
	}
	return out
}

func nearEps(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}
