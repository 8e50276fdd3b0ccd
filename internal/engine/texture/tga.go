package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image types this decoder understands.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

const tgaHeaderSize = 18

// maxTGAPixels bounds the image size accepted from a header.
const maxTGAPixels = 16384 * 16384

var errTGATruncated = errors.New("tga: pixel data truncated")

// DecodeTGA decodes an uncompressed or RLE compressed 24/32-bit TGA image.
// The result is top-down regardless of the file's origin bit.
func DecodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, fmt.Errorf("tga: header needs %d bytes, got %d", tgaHeaderSize, len(data))
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("tga: color-mapped images: %w", ErrUnsupportedFormat)
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("tga: image type %d: %w", imageType, ErrUnsupportedFormat)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("tga: %d bits per pixel: %w", bpp, ErrUnsupportedFormat)
	}

	offset := tgaHeaderSize + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	// Check the header against the payload before allocating the image.
	total := width * height
	pixelSize := bpp / 8
	if total > maxTGAPixels {
		return nil, fmt.Errorf("tga: %dx%d exceeds %d pixels", width, height, maxTGAPixels)
	}
	if !tgaFits(imageType, total, pixelSize, len(data)-offset) {
		return nil, errTGATruncated
	}

	d := tgaDecoder{
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		src:         data[offset:],
		width:       width,
		height:      height,
		pixelSize:   pixelSize,
		topToBottom: descriptor&0x20 != 0,
	}

	var err error
	if imageType == TGATypeUncompressed {
		err = d.raw()
	} else {
		err = d.rle()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

// tgaFits reports whether n payload bytes can hold total pixels. An RLE
// packet of 1+pixelSize bytes expands to at most 128 pixels.
func tgaFits(imageType byte, total, pixelSize, n int) bool {
	if imageType == TGATypeUncompressed {
		return n >= total*pixelSize
	}
	packets := n / (1 + pixelSize)
	return packets*128 >= total
}

type tgaDecoder struct {
	img         *image.RGBA
	src         []byte
	pos         int
	width       int
	height      int
	pixelSize   int
	topToBottom bool
}

// next reads one BGR(A) pixel.
func (d *tgaDecoder) next() (color.RGBA, bool) {
	if d.pos+d.pixelSize > len(d.src) {
		return color.RGBA{}, false
	}
	p := d.src[d.pos : d.pos+d.pixelSize]
	d.pos += d.pixelSize

	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.pixelSize == 4 {
		c.A = p[3]
	}
	return c, true
}

// set writes the i-th pixel in file order.
func (d *tgaDecoder) set(i int, c color.RGBA) {
	x, y := i%d.width, i/d.width
	if !d.topToBottom {
		y = d.height - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) raw() error {
	total := d.width * d.height
	for i := 0; i < total; i++ {
		c, _ := d.next()
		d.set(i, c)
	}
	return nil
}

func (d *tgaDecoder) rle() error {
	total := d.width * d.height
	for i := 0; i < total; {
		if d.pos >= len(d.src) {
			return errTGATruncated
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			// Run-length packet: one pixel repeated
			c, ok := d.next()
			if !ok {
				return errTGATruncated
			}
			for n := 0; n < count && i < total; n++ {
				d.set(i, c)
				i++
			}
			continue
		}

		// Raw packet: count literal pixels
		for n := 0; n < count && i < total; n++ {
			c, ok := d.next()
			if !ok {
				return errTGATruncated
			}
			d.set(i, c)
			i++
		}
	}
	return nil
}
