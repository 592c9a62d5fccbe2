// package texture decodes in-memory image bytes into RGBA staging data ready
// for GPU upload. It is stateless: the viewer calls it once at startup for
// its single fixed asset.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	stddraw "image/draw"
	_ "image/jpeg"
	_ "image/png"

	"github.com/cogentcore/webgpu/wgpu"
	xdraw "golang.org/x/image/draw"

	"github.com/prismgl/prism/common"
)

// MaxDimension is the largest texture width or height accepted without
// downscaling. Matches the guaranteed WebGPU 2D texture dimension limit.
const MaxDimension = 8192

// ErrEmptyImage is returned by Decode when the decoded image has a zero
// width or height.
var ErrEmptyImage = errors.New("texture: image has zero width or height")

// Decode decodes PNG or JPEG bytes to RGBA staging data.
// Images exceeding MaxDimension on either axis are downscaled with bilinear
// filtering, preserving aspect ratio.
// Reference: https://pkg.go.dev/image
//
// Parameters:
//   - data: raw PNG or JPEG bytes
//
// Returns:
//   - common.TextureStagingData: RGBA pixels (4 bytes per pixel, row-major) plus dimensions
//   - error: error if the bytes are not a supported image encoding or the image is empty
func Decode(data []byte) (common.TextureStagingData, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return common.TextureStagingData{}, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return common.TextureStagingData{}, ErrEmptyImage
	}

	if width > MaxDimension || height > MaxDimension {
		width, height = clampDimensions(width, height, MaxDimension)
		scaled := image.NewRGBA(image.Rect(0, 0, width, height))
		xdraw.BiLinear.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Src, nil)
		img = scaled
		bounds = scaled.Bounds()
	}

	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(bounds)
		stddraw.Draw(rgba, bounds, img, bounds.Min, stddraw.Src)
	}

	return common.TextureStagingData{
		Pixels: rgba.Pix,
		Width:  uint32(width),
		Height: uint32(height),
	}, nil
}

// DefaultSampler returns the sampler configuration used for the viewer's
// single diffuse texture: linear filtering, repeat addressing, no mipmaps.
//
// Returns:
//   - common.SamplerStagingData: the sampler configuration
func DefaultSampler() common.SamplerStagingData {
	return common.SamplerStagingData{
		AddressModeU:  wgpu.AddressModeRepeat,
		AddressModeV:  wgpu.AddressModeRepeat,
		AddressModeW:  wgpu.AddressModeRepeat,
		MagFilter:     wgpu.FilterModeLinear,
		MinFilter:     wgpu.FilterModeLinear,
		MipmapFilter:  wgpu.MipmapFilterModeLinear,
		LodMinClamp:   0,
		LodMaxClamp:   32,
		MaxAnisotropy: 1,
	}
}

// clampDimensions scales (width, height) down so the larger axis equals max,
// preserving aspect ratio. Dimensions never drop below 1.
func clampDimensions(width, height, max int) (int, int) {
	if width >= height {
		scaled := height * max / width
		if scaled < 1 {
			scaled = 1
		}
		return max, scaled
	}
	scaled := width * max / height
	if scaled < 1 {
		scaled = 1
	}
	return scaled, max
}
