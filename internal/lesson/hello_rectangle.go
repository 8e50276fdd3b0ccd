package lesson

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/hello-gl/internal/engine/input"
	"github.com/Faultbox/hello-gl/internal/engine/mesh"
	"github.com/Faultbox/hello-gl/internal/lesson/shaders"
)

// HelloRectangle draws an indexed quad. F toggles wireframe mode.
type HelloRectangle struct {
	program   program
	quad      *mesh.Mesh
	wireframe bool
	time      float32
}

// NewHelloRectangle creates the rectangle lesson.
func NewHelloRectangle() *HelloRectangle {
	return &HelloRectangle{program: program{src: shaders.Rectangle}}
}

func (l *HelloRectangle) Name() string { return "rectangle" }

func (l *HelloRectangle) Enter(env *Env) error {
	if err := l.program.build(env.ShaderDir); err != nil {
		return fmt.Errorf("building shader: %w", err)
	}
	quad, err := mesh.New(mesh.Rectangle, mesh.RectangleIndices, mesh.PosColorUV)
	if err != nil {
		l.program.delete()
		return fmt.Errorf("creating quad: %w", err)
	}
	l.quad = quad
	l.wireframe = false
	return nil
}

func (l *HelloRectangle) Exit() error {
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	if l.quad != nil {
		l.quad.Delete()
		l.quad = nil
	}
	l.program.delete()
	return nil
}

func (l *HelloRectangle) Update(dt float32) error {
	l.time += dt
	return nil
}

func (l *HelloRectangle) HandleEvent(e input.Event) {
	if e.Type == input.EventKeyDown && !e.Repeat && e.Key == sdl.SCANCODE_F {
		l.wireframe = !l.wireframe
	}
}

// Tint pulses between vertex colors and orange.
func (l *HelloRectangle) tint() float32 {
	return math32.Sin(l.time)/2 + 0.5
}

func (l *HelloRectangle) Render(*Frame) error {
	background.clear(gl.COLOR_BUFFER_BIT)

	if l.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	l.program.prog.Use()
	l.program.prog.SetFloat("tint", l.tint())
	l.program.prog.SetVec3("tintColor", orange.vec3())
	l.quad.Draw()
	return nil
}

func (l *HelloRectangle) Reload(changed []string) {
	l.program.reload(changed)
}
