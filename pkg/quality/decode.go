package quality

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

var (
	// ErrEmptyInput is returned when the input buffer has zero length.
	ErrEmptyInput = errors.New("quality: empty input")
	// ErrInvalidImage is returned when the buffer is not a decodable image.
	ErrInvalidImage = errors.New("quality: undecodable image")
)

// errDegenerateRaster signals a raster too small for a convolution pass.
// Sub-checks treat it as a fail-open condition, never a hard error.
var errDegenerateRaster = errors.New("quality: raster too small for edge response")

// Raster is a decoded image normalized to 8-bit NRGBA. It is created at the
// start of a validation call, shared read-only by the sub-checks, and
// discarded when the call returns.
type Raster struct {
	Width    int
	Height   int
	Channels int
	Stride   int
	Pix      []uint8
}

// Decode turns a raw byte buffer into a Raster. It accepts JPEG, PNG, GIF
// and WebP photographs.
func Decode(data []byte) (*Raster, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		// The registered WebP decoder rejects some encoder variants that
		// the chai2010 implementation handles.
		img, err = webp.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, ErrInvalidImage
		}
	}

	nrgba := imaging.Clone(img)
	bounds := nrgba.Bounds()
	return &Raster{
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
		Channels: 4,
		Stride:   nrgba.Stride,
		Pix:      nrgba.Pix,
	}, nil
}

// rgbAt returns the red, green and blue components of the pixel at (x, y).
func (r *Raster) rgbAt(x, y int) (uint8, uint8, uint8) {
	i := y*r.Stride + x*4
	return r.Pix[i], r.Pix[i+1], r.Pix[i+2]
}

// luminance returns the Rec. 601 luma of every pixel in row-major order.
func (r *Raster) luminance() []float64 {
	lum := make([]float64, r.Width*r.Height)
	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			red, green, blue := r.rgbAt(x, y)
			lum[y*r.Width+x] = 0.299*float64(red) + 0.587*float64(green) + 0.114*float64(blue)
		}
	}
	return lum
}
