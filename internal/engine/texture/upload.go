package texture

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Options controls sampling state of an uploaded texture.
type Options struct {
	WrapS     int32
	WrapT     int32
	MinFilter int32
	MagFilter int32
	Mipmaps   bool
}

// DefaultOptions repeats in both directions and uses trilinear filtering.
func DefaultOptions() Options {
	return Options{
		WrapS:     gl.REPEAT,
		WrapT:     gl.REPEAT,
		MinFilter: gl.LINEAR_MIPMAP_LINEAR,
		MagFilter: gl.LINEAR,
		Mipmaps:   true,
	}
}

// Texture is a 2D texture living on the GPU.
type Texture struct {
	ID     uint32
	Width  int
	Height int
}

// Upload creates a GL texture from img. Requires a current GL context.
func Upload(img *image.RGBA, opts Options) (*Texture, error) {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("texture: %dx%d: %w", w, h, ErrEmptyImage)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.WrapS)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.WrapT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, opts.MinFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, opts.MagFilter)

	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)

	if opts.Mipmaps {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture{ID: id, Width: w, Height: h}, nil
}

// Bind binds the texture to texture unit 0+unit.
func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
}

// Delete releases the GL texture.
func (t *Texture) Delete() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}
