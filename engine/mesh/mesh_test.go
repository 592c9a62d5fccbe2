package mesh

import (
	"testing"
	"unsafe"
)

func TestGPUVertexLayout(t *testing.T) {
	if GPUVertexSize != 20 {
		t.Fatalf("GPUVertexSize = %d, want 20 (tightly packed)", GPUVertexSize)
	}
	var v GPUVertex
	if off := unsafe.Offsetof(v.Position); off != 0 {
		t.Errorf("Position offset = %d, want 0", off)
	}
	if off := unsafe.Offsetof(v.TexCoords); off != 12 {
		t.Errorf("TexCoords offset = %d, want 12", off)
	}
}

func TestMeshes(t *testing.T) {
	tests := []struct {
		name         string
		build        func() ([]GPUVertex, []uint16)
		wantVertices int
		wantIndices  int
	}{
		{"quad", Quad, 4, 6},
		{"cube", Cube, 24, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vertices, indices := tt.build()
			if len(vertices) != tt.wantVertices {
				t.Errorf("vertex count = %d, want %d", len(vertices), tt.wantVertices)
			}
			if len(indices) != tt.wantIndices {
				t.Errorf("index count = %d, want %d", len(indices), tt.wantIndices)
			}
			if len(indices)%3 != 0 {
				t.Errorf("index count %d is not a whole number of triangles", len(indices))
			}
			for i, idx := range indices {
				if int(idx) >= len(vertices) {
					t.Fatalf("indices[%d] = %d out of range (%d vertices)", i, idx, len(vertices))
				}
			}
			for i, v := range vertices {
				if v.TexCoords[0] < 0 || v.TexCoords[0] > 1 || v.TexCoords[1] < 0 || v.TexCoords[1] > 1 {
					t.Errorf("vertices[%d] tex coords %v outside [0, 1]", i, v.TexCoords)
				}
			}
		})
	}
}

func TestQuadMatchesReferenceData(t *testing.T) {
	vertices, indices := Quad()
	wantFirst := GPUVertex{Position: [3]float32{0, 0.5, 0}, TexCoords: [2]float32{1, 0}}
	if vertices[0] != wantFirst {
		t.Errorf("vertices[0] = %+v, want %+v", vertices[0], wantFirst)
	}
	wantIndices := []uint16{0, 1, 2, 2, 3, 0}
	for i := range wantIndices {
		if indices[i] != wantIndices[i] {
			t.Fatalf("indices = %v, want %v", indices, wantIndices)
		}
	}
}
