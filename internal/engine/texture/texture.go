// Package texture provides image decoding and OpenGL texture creation.
package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp" // BMP decoder
)

// ErrUnsupportedFormat is returned for image data no decoder understands.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// ErrEmptyImage is returned for images with no pixels, which GL cannot upload.
var ErrEmptyImage = errors.New("empty image")

// Decode decodes image data. name is only used to pick the TGA decoder,
// which has no magic number for image.Decode to sniff.
func Decode(data []byte, name string) (*image.RGBA, error) {
	if strings.EqualFold(filepath.Ext(name), ".tga") {
		return DecodeTGA(data)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	return ToRGBA(img), nil
}

// Load reads and decodes an image file and flips it so row 0 is the bottom,
// which is where OpenGL expects texture coordinate t=0.
func Load(path string) (*image.RGBA, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := Decode(data, path)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Empty() {
		return nil, fmt.Errorf("%s is %dx%d: %w", path, b.Dx(), b.Dy(), ErrEmptyImage)
	}
	FlipVertical(img)
	return img, nil
}

// ToRGBA converts any image to *image.RGBA with its origin at (0, 0).
// Images that already qualify are returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical mirrors img top to bottom in place.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	rowLen := img.Bounds().Dx() * 4
	tmp := make([]byte, rowLen)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.Pix[top*img.Stride : top*img.Stride+rowLen]
		b := img.Pix[bottom*img.Stride : bottom*img.Stride+rowLen]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// Checkerboard returns a size x size image of cells x cells alternating
// squares. It stands in for textures that fail to load.
func Checkerboard(size, cells int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if cells <= 0 {
		cells = 1
	}
	cell := size / cells
	if cell == 0 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := a
			if (x/cell+y/cell)%2 == 1 {
				c = b
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
