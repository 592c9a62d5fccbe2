package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

func encodePNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecode(t *testing.T) {
	data := encodePNG(t, 16, 9)
	staged, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if staged.Width != 16 || staged.Height != 9 {
		t.Errorf("dimensions = %dx%d, want 16x9", staged.Width, staged.Height)
	}
	if want := 16 * 9 * 4; len(staged.Pixels) != want {
		t.Errorf("len(Pixels) = %d, want %d", len(staged.Pixels), want)
	}
	// First pixel of the generated gradient: (0, 0, 128, 255).
	if staged.Pixels[0] != 0 || staged.Pixels[1] != 0 || staged.Pixels[2] != 128 || staged.Pixels[3] != 255 {
		t.Errorf("first pixel = %v, want [0 0 128 255]", staged.Pixels[:4])
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"not an image", []byte("definitely not a png")},
		{"truncated png header", []byte{0x89, 'P', 'N', 'G'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.data); err == nil {
				t.Error("Decode accepted invalid bytes")
			}
		})
	}
}

func TestClampDimensions(t *testing.T) {
	tests := []struct {
		name                 string
		width, height, max   int
		wantW, wantH         int
	}{
		{"wide", 4000, 1000, 2000, 2000, 500},
		{"tall", 1000, 4000, 2000, 500, 2000},
		{"square", 4000, 4000, 2000, 2000, 2000},
		{"extreme ratio floors at one", 100000, 10, 1000, 1000, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := clampDimensions(tt.width, tt.height, tt.max)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("clampDimensions(%d, %d, %d) = (%d, %d), want (%d, %d)",
					tt.width, tt.height, tt.max, w, h, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestDefaultSampler(t *testing.T) {
	s := DefaultSampler()
	if s.MagFilter != wgpu.FilterModeLinear || s.MinFilter != wgpu.FilterModeLinear {
		t.Error("default sampler must filter linearly")
	}
	if s.AddressModeU != wgpu.AddressModeRepeat || s.AddressModeV != wgpu.AddressModeRepeat {
		t.Error("default sampler must repeat")
	}
	if s.MaxAnisotropy != 1 {
		t.Errorf("MaxAnisotropy = %d, want 1", s.MaxAnisotropy)
	}
}
