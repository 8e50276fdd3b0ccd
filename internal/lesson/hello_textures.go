package lesson

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/hello-gl/internal/engine/input"
	"github.com/Faultbox/hello-gl/internal/engine/mesh"
	"github.com/Faultbox/hello-gl/internal/engine/texture"
	"github.com/Faultbox/hello-gl/internal/lesson/shaders"
	"github.com/Faultbox/hello-gl/pkg/math"
)

const mixStep = 0.1

// HelloTextures blends two textures on a quad. Up and Down change the blend,
// C toggles modulation by the vertex colors.
type HelloTextures struct {
	program     program
	quad        *mesh.Mesh
	textures    [2]*texture.Texture
	mix         float32
	vertexColor bool
}

// NewHelloTextures creates the textures lesson.
func NewHelloTextures() *HelloTextures {
	return &HelloTextures{program: program{src: shaders.Textures}}
}

func (l *HelloTextures) Name() string { return "textures" }

func (l *HelloTextures) Enter(env *Env) (err error) {
	defer func() {
		if err != nil {
			l.Exit()
		}
	}()

	if err := l.program.build(env.ShaderDir); err != nil {
		return fmt.Errorf("building shader: %w", err)
	}
	if l.quad, err = mesh.New(mesh.Rectangle, mesh.RectangleIndices, mesh.PosColorUV); err != nil {
		return fmt.Errorf("creating quad: %w", err)
	}
	if l.textures, err = loadPair(env); err != nil {
		return err
	}
	l.mix = 0.2
	l.vertexColor = false
	return nil
}

func (l *HelloTextures) Exit() error {
	deleteTextures(&l.textures)
	if l.quad != nil {
		l.quad.Delete()
		l.quad = nil
	}
	l.program.delete()
	return nil
}

func (l *HelloTextures) Update(float32) error { return nil }

func (l *HelloTextures) HandleEvent(e input.Event) {
	if e.Type != input.EventKeyDown {
		return
	}
	switch e.Key {
	case sdl.SCANCODE_UP:
		l.mix = math.Clamp(l.mix+mixStep, 0, 1)
	case sdl.SCANCODE_DOWN:
		l.mix = math.Clamp(l.mix-mixStep, 0, 1)
	case sdl.SCANCODE_C:
		if !e.Repeat {
			l.vertexColor = !l.vertexColor
		}
	}
}

func (l *HelloTextures) Render(*Frame) error {
	background.clear(gl.COLOR_BUFFER_BIT)

	l.textures[0].Bind(0)
	l.textures[1].Bind(1)

	p := l.program.prog
	p.Use()
	p.SetInt("texture1", 0)
	p.SetInt("texture2", 1)
	p.SetFloat("mixValue", l.mix)
	p.SetBool("useVertexColor", l.vertexColor)
	l.quad.Draw()
	return nil
}

func (l *HelloTextures) Reload(changed []string) {
	l.program.reload(changed)
}

// loadPair uploads the container and face textures.
func loadPair(env *Env) ([2]*texture.Texture, error) {
	var pair [2]*texture.Texture
	var err error
	if pair[0], err = loadTexture(env.Container, orange); err != nil {
		return pair, fmt.Errorf("uploading %s: %w", env.Container, err)
	}
	if pair[1], err = loadTexture(env.Face, purple); err != nil {
		pair[0].Delete()
		return [2]*texture.Texture{}, fmt.Errorf("uploading %s: %w", env.Face, err)
	}
	return pair, nil
}

func deleteTextures(pair *[2]*texture.Texture) {
	for i, t := range pair {
		if t != nil {
			t.Delete()
			pair[i] = nil
		}
	}
}
