// Package debug provides developer helpers for inspecting rendered frames.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Screenshots writes framebuffer captures as timestamped PNG files.
type Screenshots struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshots creates a capture handler writing <prefix>_<time>.png into
// outputDir. An empty outputDir means the working directory.
func NewScreenshots(outputDir, prefix string) *Screenshots {
	return &Screenshots{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Filename returns the path the next capture would be written to.
func (s *Screenshots) Filename() string {
	timestamp := s.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s.png", s.prefix, timestamp)
	if s.outputDir != "" {
		filename = filepath.Join(s.outputDir, filename)
	}
	return filename
}

// CaptureFramebuffer reads the current back buffer and saves it.
// Requires a current GL context.
func (s *Screenshots) CaptureFramebuffer(width, height int) (string, error) {
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return s.SavePixels(pixels, width, height)
}

// SavePixels writes bottom-up RGBA pixel data (GL read order) as a PNG.
func (s *Screenshots) SavePixels(pixels []byte, width, height int) (string, error) {
	if len(pixels) != width*height*4 {
		return "", fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	if s.outputDir != "" {
		if err := os.MkdirAll(s.outputDir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}
	filename := s.Filename()

	// Flip vertically during copy
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding PNG: %w", err)
	}

	return filename, nil
}
