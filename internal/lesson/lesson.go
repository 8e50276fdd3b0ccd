// Package lesson implements the tutorial lessons and switching between them.
package lesson

import (
	"github.com/Faultbox/hello-gl/internal/engine/camera"
	"github.com/Faultbox/hello-gl/internal/engine/input"
	"github.com/Faultbox/hello-gl/internal/engine/window"
)

// Lesson is one self-contained tutorial step. GL resources are created in
// Enter and released in Exit.
type Lesson interface {
	// Name is the identifier used by config and the -lesson flag.
	Name() string

	// Enter is called when the lesson becomes current.
	Enter(env *Env) error

	// Exit is called when leaving the lesson.
	Exit() error

	// Update is called every frame with the frame delta in seconds.
	Update(dt float32) error

	// Render draws the lesson.
	Render(f *Frame) error

	// HandleEvent receives input events not consumed by the runner.
	HandleEvent(e input.Event)
}

// Reloader is implemented by lessons that can rebuild their shaders after
// the files on disk changed.
type Reloader interface {
	Reload(changed []string)
}

// Env is shared state handed to lessons on Enter.
type Env struct {
	Camera    *camera.Fly
	ShaderDir string // empty uses embedded shaders
	Container string // first texture path
	Face      string // second texture path
	Near      float32
	Far       float32
}

// Frame describes the frame being rendered.
type Frame struct {
	Width  int     // drawable width in pixels
	Height int     // drawable height in pixels
	Time   float32 // seconds since the runner started
}

// Aspect returns the frame's width over height.
func (f *Frame) Aspect() float32 {
	return window.Aspect(f.Width, f.Height)
}

// All returns the lessons in their keyboard order (keys 1 to 4).
func All() []Lesson {
	return []Lesson{
		NewHelloWindow(),
		NewHelloRectangle(),
		NewHelloTextures(),
		NewHelloCamera(),
	}
}
