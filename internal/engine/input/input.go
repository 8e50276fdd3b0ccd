// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Event types for lesson use
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

var eventTypeNames = [...]string{
	EventNone:         "none",
	EventQuit:         "quit",
	EventWindowResize: "resize",
	EventKeyDown:      "keydown",
	EventKeyUp:        "keyup",
	EventMouseMove:    "mousemove",
	EventMouseDown:    "mousedown",
	EventMouseUp:      "mouseup",
	EventMouseWheel:   "wheel",
}

func (t EventType) String() string {
	if t >= 0 && int(t) < len(eventTypeNames) {
		return eventTypeNames[t]
	}
	return "unknown"
}

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Repeat bool // key auto-repeat
	Width  int
	Height int
	MouseX int
	MouseY int
	// DX, DY are relative motion for EventMouseMove (screen space, y down)
	// and scroll amounts for EventMouseWheel (y positive away from the user).
	DX     float32
	DY     float32
	Button uint8
}

// Input handles all input processing.
type Input struct {
	events []Event
	keys   []uint8
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and converts them to lesson events.
// Returns true if the program should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0] // Clear previous events
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		e, ok := translate(event)
		if !ok {
			continue
		}
		i.events = append(i.events, e)
		if e.Type == EventQuit {
			quit = true
		}
	}

	// Valid until the next PollEvent; SDL owns the slice.
	i.keys = sdl.GetKeyboardState()

	return quit
}

// translate converts one SDL event. ok is false for events lessons ignore.
func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{
				Type:   EventWindowResize,
				Width:  int(e.Data1),
				Height: int(e.Data2),
			}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return Event{
				Type:   EventKeyDown,
				Key:    e.Keysym.Scancode,
				Repeat: e.Repeat != 0,
			}, true
		} else if e.Type == sdl.KEYUP {
			return Event{
				Type: EventKeyUp,
				Key:  e.Keysym.Scancode,
			}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{
			Type:   EventMouseMove,
			MouseX: int(e.X),
			MouseY: int(e.Y),
			DX:     float32(e.XRel),
			DY:     float32(e.YRel),
		}, true

	case *sdl.MouseButtonEvent:
		if e.Type == sdl.MOUSEBUTTONDOWN {
			return Event{
				Type:   EventMouseDown,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			}, true
		} else if e.Type == sdl.MOUSEBUTTONUP {
			return Event{
				Type:   EventMouseUp,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				Button: e.Button,
			}, true
		}

	case *sdl.MouseWheelEvent:
		dx, dy := float32(e.X), float32(e.Y)
		if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
			dx, dy = -dx, -dy
		}
		return Event{
			Type: EventMouseWheel,
			DX:   dx,
			DY:   dy,
		}, true
	}

	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyHeld reports whether a key is currently down, as of the last Update.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	if int(scancode) < 0 || int(scancode) >= len(i.keys) {
		return false
	}
	return i.keys[scancode] != 0
}
