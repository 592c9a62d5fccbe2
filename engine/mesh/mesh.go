// package mesh provides the viewer's hardcoded geometry. Meshes are fixed
// constant assets: a flat list of positions + texture coordinates and a
// triangle index list, immutable after creation and uploaded once.
package mesh

// Quad returns the tutorial's textured quad: four vertices around the origin
// in the z=0 plane and two CCW triangles.
//
// Returns:
//   - []GPUVertex: the vertex list
//   - []uint16: the triangle index list
func Quad() ([]GPUVertex, []uint16) {
	vertices := []GPUVertex{
		{Position: [3]float32{0.0, 0.5, 0.0}, TexCoords: [2]float32{1.0, 0.0}},
		{Position: [3]float32{-0.5, 0.5, 0.0}, TexCoords: [2]float32{0.0, 0.0}},
		{Position: [3]float32{-0.5, -0.5, 0.0}, TexCoords: [2]float32{0.0, 1.0}},
		{Position: [3]float32{0.0, -0.5, 0.0}, TexCoords: [2]float32{1.0, 1.0}},
	}
	indices := []uint16{
		0, 1, 2,
		2, 3, 0,
	}
	return vertices, indices
}

// Cube returns a unit cube centered on the origin with the full texture
// mapped onto each face. Faces use four vertices each so texture seams stay
// sharp; 24 vertices, 36 indices, CCW winding viewed from outside.
//
// Returns:
//   - []GPUVertex: the vertex list
//   - []uint16: the triangle index list
func Cube() ([]GPUVertex, []uint16) {
	h := float32(0.5)
	vertices := []GPUVertex{
		// Front (+Z)
		{Position: [3]float32{-h, -h, h}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{h, -h, h}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{h, h, h}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{-h, h, h}, TexCoords: [2]float32{0, 0}},
		// Back (-Z)
		{Position: [3]float32{h, -h, -h}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{-h, -h, -h}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{-h, h, -h}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{h, h, -h}, TexCoords: [2]float32{0, 0}},
		// Left (-X)
		{Position: [3]float32{-h, -h, -h}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{-h, -h, h}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{-h, h, h}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{-h, h, -h}, TexCoords: [2]float32{0, 0}},
		// Right (+X)
		{Position: [3]float32{h, -h, h}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{h, -h, -h}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{h, h, -h}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{h, h, h}, TexCoords: [2]float32{0, 0}},
		// Top (+Y)
		{Position: [3]float32{-h, h, h}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{h, h, h}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{h, h, -h}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{-h, h, -h}, TexCoords: [2]float32{0, 0}},
		// Bottom (-Y)
		{Position: [3]float32{-h, -h, -h}, TexCoords: [2]float32{0, 1}},
		{Position: [3]float32{h, -h, -h}, TexCoords: [2]float32{1, 1}},
		{Position: [3]float32{h, -h, h}, TexCoords: [2]float32{1, 0}},
		{Position: [3]float32{-h, -h, h}, TexCoords: [2]float32{0, 0}},
	}

	indices := make([]uint16, 0, 36)
	for face := uint16(0); face < 6; face++ {
		base := face * 4
		indices = append(indices,
			base, base+1, base+2,
			base+2, base+3, base,
		)
	}
	return vertices, indices
}
