package app

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/hello-gl/internal/engine/camera"
)

// Runner key bindings. Everything else goes to the current lesson.
const (
	keyQuit          = sdl.SCANCODE_ESCAPE
	keyToggleCapture = sdl.SCANCODE_TAB
	keyScreenshot    = sdl.SCANCODE_F12
	keyResetCamera   = sdl.SCANCODE_R
	keyHomeCamera    = sdl.SCANCODE_HOME
)

type movementBinding struct {
	key sdl.Scancode
	dir camera.Movement
}

var movementBindings = []movementBinding{
	{sdl.SCANCODE_W, camera.Forward},
	{sdl.SCANCODE_S, camera.Backward},
	{sdl.SCANCODE_A, camera.Left},
	{sdl.SCANCODE_D, camera.Right},
}

// lessonIndex maps the number keys 1 to 9 to lesson positions.
func lessonIndex(key sdl.Scancode) (int, bool) {
	if key < sdl.SCANCODE_1 || key > sdl.SCANCODE_9 {
		return 0, false
	}
	return int(key - sdl.SCANCODE_1), true
}

// isMovementKey reports whether key is bound to camera movement.
func isMovementKey(key sdl.Scancode) bool {
	for _, b := range movementBindings {
		if b.key == key {
			return true
		}
	}
	return false
}
