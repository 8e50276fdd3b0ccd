package lesson

import (
	imgcolor "image/color"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/Faultbox/hello-gl/internal/engine/input"
	"github.com/Faultbox/hello-gl/pkg/math"
)

type color struct{ r, g, b, a float32 }

var (
	background = color{0.2, 0.3, 0.3, 1}
	white      = color{1, 1, 1, 1}
	orange     = color{1, 0.5, 0.2, 1}
	purple     = color{0.5, 0.2, 0.8, 1}
)

// RGBA converts to an 8-bit color for image data.
func (c color) RGBA() imgcolor.RGBA {
	return imgcolor.RGBA{
		R: uint8(c.r*255 + 0.5),
		G: uint8(c.g*255 + 0.5),
		B: uint8(c.b*255 + 0.5),
		A: uint8(c.a*255 + 0.5),
	}
}

func (c color) vec3() math.Vec3 {
	return math.Vec3{X: c.r, Y: c.g, Z: c.b}
}

func (c color) clear(mask uint32) {
	gl.ClearColor(c.r, c.g, c.b, c.a)
	gl.Clear(mask)
}

// HelloWindow clears the screen to a solid color.
type HelloWindow struct{}

// NewHelloWindow creates the window lesson.
func NewHelloWindow() *HelloWindow {
	return &HelloWindow{}
}

func (l *HelloWindow) Name() string           { return "window" }
func (l *HelloWindow) Enter(*Env) error       { return nil }
func (l *HelloWindow) Exit() error            { return nil }
func (l *HelloWindow) Update(float32) error   { return nil }
func (l *HelloWindow) HandleEvent(input.Event) {}

func (l *HelloWindow) Render(*Frame) error {
	background.clear(gl.COLOR_BUFFER_BIT)
	return nil
}
