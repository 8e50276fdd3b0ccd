package lesson

import (
	"image"

	"go.uber.org/zap"

	"github.com/Faultbox/hello-gl/internal/engine/shader"
	"github.com/Faultbox/hello-gl/internal/engine/texture"
	"github.com/Faultbox/hello-gl/internal/logger"
)

// program is a lesson's shader program that follows edits on disk.
type program struct {
	src  shader.Source
	dir  string
	prog *shader.Program
}

func (p *program) build(dir string) error {
	prog, err := p.src.Build(dir)
	if err != nil {
		return err
	}
	p.dir = dir
	p.prog = prog
	logger.Debug("shader built", zap.String("shader", p.src.Name), zap.Uint32("program", prog.ID()))
	return nil
}

// reload recompiles the program when one of its files changed. A program
// that fails to compile is logged and the previous one stays in use.
func (p *program) reload(changed []string) {
	if p.dir == "" || !p.src.Matches(p.dir, changed) {
		return
	}
	prog, err := p.src.Build(p.dir)
	if err != nil {
		logger.Warn("shader reload failed, keeping previous program",
			zap.String("shader", p.src.Name), zap.Error(err))
		return
	}
	p.delete()
	p.prog = prog
	logger.Info("shader reloaded", zap.String("shader", p.src.Name), zap.Uint32("program", prog.ID()))
}

func (p *program) delete() {
	if p.prog != nil {
		p.prog.Delete()
		p.prog = nil
	}
}

// textureImage loads the image at path, or a checkerboard when the file is
// missing, unreadable or empty.
func textureImage(path string, fallback color) *image.RGBA {
	img, err := texture.Load(path)
	if err != nil {
		logger.Warn("texture unavailable, using checkerboard",
			zap.String("path", path), zap.Error(err))
		return checkerboard(fallback)
	}
	return img
}

func checkerboard(c color) *image.RGBA {
	return texture.Checkerboard(256, 8, c.RGBA(), white.RGBA())
}

// loadTexture uploads the image at path. Anything that keeps the file from
// reaching the GPU falls back to a checkerboard so the lesson still runs.
func loadTexture(path string, fallback color) (*texture.Texture, error) {
	tex, err := texture.Upload(textureImage(path, fallback), texture.DefaultOptions())
	if err == nil {
		return tex, nil
	}
	logger.Warn("texture upload failed, using checkerboard",
		zap.String("path", path), zap.Error(err))
	return texture.Upload(checkerboard(fallback), texture.DefaultOptions())
}
