package quality

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

// uniformImage creates a solid gray test image
func uniformImage(width, height int, v uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

// checkerImage creates a checkerboard of two gray values, which gives a
// strong edge response at every interior pixel
func checkerImage(width, height int, a, b uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := a
			if (x+y)%2 == 1 {
				v = b
			}
			img.Set(x, y, color.NRGBA{v, v, v, 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func rasterFor(t *testing.T, img image.Image) *Raster {
	t.Helper()
	r, err := Decode(encodePNG(t, img))
	if err != nil {
		t.Fatalf("Failed to decode test image: %v", err)
	}
	return r
}
