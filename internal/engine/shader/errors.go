package shader

import "fmt"

// Error is a compile or link failure carrying the driver's info log.
type Error struct {
	Stage string // "vertex", "fragment" or "link"
	Log   string
}

func (e *Error) Error() string {
	if e.Stage == "link" {
		return fmt.Sprintf("link: %s", e.Log)
	}
	return fmt.Sprintf("%s shader: %s", e.Stage, e.Log)
}
