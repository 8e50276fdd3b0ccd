package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Faultbox/hello-gl/internal/config"
	"github.com/Faultbox/hello-gl/internal/engine/camera"
	"github.com/Faultbox/hello-gl/internal/engine/input"
	"github.com/Faultbox/hello-gl/internal/lesson"
	"github.com/Faultbox/hello-gl/pkg/math"
)

// stubLesson records the events it receives and never touches GL.
type stubLesson struct {
	name   string
	events []input.Event
}

func (s *stubLesson) Name() string               { return s.name }
func (s *stubLesson) Enter(*lesson.Env) error    { return nil }
func (s *stubLesson) Exit() error                { return nil }
func (s *stubLesson) Update(float32) error       { return nil }
func (s *stubLesson) Render(*lesson.Frame) error { return nil }
func (s *stubLesson) HandleEvent(e input.Event)  { s.events = append(s.events, e) }

// newTestContext builds a Context without a window.
func newTestContext(t *testing.T) *Context {
	t.Helper()
	cfg := config.Default()
	cam := camera.NewFly(CameraConfig(cfg.Camera))
	lessons := lesson.NewManager(&lesson.Env{Camera: cam},
		&stubLesson{name: "window"}, &stubLesson{name: "rectangle"})
	return &Context{
		cfg:            cfg,
		input:          input.New(),
		camera:         cam,
		lessons:        lessons,
		log:            zap.NewNop(),
		running:        true,
		constrainPitch: true,
	}
}

func TestPointerTrackerFirstSample(t *testing.T) {
	var p PointerTracker

	dx, dy := p.Delta(400, 300)
	assert.Zero(t, dx)
	assert.Zero(t, dy)

	// Moving right and up the screen gives positive deltas.
	dx, dy = p.Delta(410, 295)
	assert.Equal(t, float32(10), dx)
	assert.Equal(t, float32(5), dy)

	p.Reset()
	dx, dy = p.Delta(0, 0)
	assert.Zero(t, dx)
	assert.Zero(t, dy)
}

func TestFrameTimer(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	timer := NewFrameTimer(clock)

	now = now.Add(16 * time.Millisecond)
	dt, fps := timer.Tick()
	assert.InDelta(t, 0.016, dt, 1e-6)
	assert.False(t, fps)

	// 60 more frames at 1/60 s cross the one-second mark.
	var updated bool
	for i := 0; i < 60; i++ {
		now = now.Add(time.Second / 60)
		_, fps = timer.Tick()
		updated = updated || fps
	}
	assert.True(t, updated)
	assert.InDelta(t, 60, timer.FPS(), 1)
	assert.InDelta(t, 1.016, timer.Elapsed(), 1e-3)
}

func TestLessonIndex(t *testing.T) {
	tests := []struct {
		key  sdl.Scancode
		want int
		ok   bool
	}{
		{sdl.SCANCODE_1, 0, true},
		{sdl.SCANCODE_4, 3, true},
		{sdl.SCANCODE_9, 8, true},
		{sdl.SCANCODE_0, 0, false},
		{sdl.SCANCODE_W, 0, false},
	}
	for _, tt := range tests {
		got, ok := lessonIndex(tt.key)
		if ok != tt.ok || got != tt.want {
			t.Errorf("lessonIndex(%d) = %d, %v, want %d, %v", tt.key, got, ok, tt.want, tt.ok)
		}
	}
}

func TestCameraConfigFromSettings(t *testing.T) {
	cfg := config.Default().Camera
	cfg.Yaw = 0
	cfg.Speed = 4

	cam := camera.NewFly(CameraConfig(cfg))
	assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 3}, cam.Position())
	assert.Equal(t, float32(0), cam.Yaw(), "zero yaw is kept, not defaulted")
	assert.Equal(t, float32(4), cam.MovementSpeed())
	assert.Equal(t, math.UnitY, cam.WorldUp())
}

func TestApplyMovementUsesHeldKeys(t *testing.T) {
	c := newTestContext(t)
	start := c.camera.Position()

	held := func(key sdl.Scancode) bool { return key == sdl.SCANCODE_W }
	c.applyMovement(held, 2.0)

	// Default camera looks down -Z at speed 2.5.
	want := start.Add(math.Vec3{Z: -5})
	assert.True(t, c.camera.Position().ApproxEqual(want, 1e-4), "got %v", c.camera.Position())

	// Opposite keys cancel.
	both := func(key sdl.Scancode) bool { return key == sdl.SCANCODE_A || key == sdl.SCANCODE_D }
	before := c.camera.Position()
	c.applyMovement(both, 1.0)
	assert.True(t, c.camera.Position().ApproxEqual(before, 1e-4))
}

func TestLookCaptured(t *testing.T) {
	c := newTestContext(t)
	c.captured = true

	// Relative motion down the screen looks down.
	c.look(input.Event{Type: input.EventMouseMove, DX: 10, DY: 20})
	assert.InDelta(t, -89, c.camera.Yaw(), 1e-4)
	assert.InDelta(t, -2, c.camera.Pitch(), 1e-4)
}

func TestLookAbsoluteSkipsFirstSample(t *testing.T) {
	c := newTestContext(t)
	c.captured = false

	c.look(input.Event{Type: input.EventMouseMove, MouseX: 100, MouseY: 100})
	assert.Equal(t, camera.DefaultYaw, c.camera.Yaw())
	assert.Equal(t, float32(0), c.camera.Pitch())

	c.look(input.Event{Type: input.EventMouseMove, MouseX: 110, MouseY: 90})
	assert.InDelta(t, -89, c.camera.Yaw(), 1e-4)
	assert.InDelta(t, 1, c.camera.Pitch(), 1e-4)
}

func TestWheelZooms(t *testing.T) {
	c := newTestContext(t)

	c.handleEvent(input.Event{Type: input.EventMouseWheel, DY: 5})
	assert.Equal(t, float32(40), c.camera.Zoom())

	c.handleEvent(input.Event{Type: input.EventMouseWheel, DY: -100})
	assert.Equal(t, camera.MaxZoom, c.camera.Zoom())
}

func TestHandleKeyBindings(t *testing.T) {
	key := func(sc sdl.Scancode) input.Event {
		return input.Event{Type: input.EventKeyDown, Key: sc}
	}

	t.Run("number keys switch lessons", func(t *testing.T) {
		c := newTestContext(t)
		assert.True(t, c.handleKey(key(sdl.SCANCODE_2)))
		require.NoError(t, c.lessons.Update(0))
		assert.Equal(t, "rectangle", c.lessons.Current().Name())

		// No lesson 9; the key is still consumed and nothing changes.
		assert.True(t, c.handleKey(key(sdl.SCANCODE_9)))
		require.NoError(t, c.lessons.Update(0))
		assert.Equal(t, "rectangle", c.lessons.Current().Name())
	})

	t.Run("escape quits", func(t *testing.T) {
		c := newTestContext(t)
		assert.True(t, c.handleKey(key(sdl.SCANCODE_ESCAPE)))
		assert.False(t, c.running)
	})

	t.Run("tab toggles capture", func(t *testing.T) {
		c := newTestContext(t)
		c.handleKey(key(sdl.SCANCODE_TAB))
		assert.True(t, c.captured)
		c.handleKey(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_TAB, Repeat: true})
		assert.True(t, c.captured)
		c.handleKey(key(sdl.SCANCODE_TAB))
		assert.False(t, c.captured)
	})

	t.Run("r resets the camera", func(t *testing.T) {
		c := newTestContext(t)
		c.camera.ProcessLook(100, 50, true)
		c.camera.ProcessMovement(camera.Right, 3)
		c.handleKey(key(sdl.SCANCODE_R))
		assert.Equal(t, math.Vec3{X: 0, Y: 0, Z: 3}, c.camera.Position())
		assert.Equal(t, camera.DefaultYaw, c.camera.Yaw())
	})

	t.Run("home returns to the start position", func(t *testing.T) {
		c := newTestContext(t)
		c.camera.ProcessLook(100, 50, true)
		c.camera.ProcessMovement(camera.Forward, 2)
		yaw, pitch := c.camera.Yaw(), c.camera.Pitch()
		assert.True(t, c.handleKey(key(sdl.SCANCODE_HOME)))
		assert.Equal(t, c.cfg.Camera.Position, c.camera.Position())
		assert.Equal(t, yaw, c.camera.Yaw())
		assert.Equal(t, pitch, c.camera.Pitch())
	})

	t.Run("f12 requests a screenshot", func(t *testing.T) {
		c := newTestContext(t)
		c.handleKey(key(sdl.SCANCODE_F12))
		assert.True(t, c.screenshotDue)
	})

	t.Run("movement keys are consumed", func(t *testing.T) {
		c := newTestContext(t)
		assert.True(t, c.handleKey(key(sdl.SCANCODE_W)))
		assert.False(t, c.handleKey(key(sdl.SCANCODE_F)))
	})
}

func TestUnboundKeysReachLesson(t *testing.T) {
	c := newTestContext(t)
	require.NoError(t, c.lessons.Change("window"))
	require.NoError(t, c.lessons.Update(0))
	stub := c.lessons.Current().(*stubLesson)

	f := input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_F}
	up := input.Event{Type: input.EventKeyUp, Key: sdl.SCANCODE_W}
	c.handleEvent(f)
	c.handleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_W})
	c.handleEvent(up)

	assert.Equal(t, []input.Event{f, up}, stub.events)
}

func TestCameraFields(t *testing.T) {
	cam := camera.NewFly(camera.DefaultConfig())
	fields := cameraFields(cam)

	keys := make([]string, len(fields))
	for i, f := range fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"position", "front", "right", "up", "world_up",
		"yaw", "pitch", "zoom", "speed", "sensitivity"}, keys)

	enc := zapcore.NewMapObjectEncoder()
	for _, f := range fields {
		f.AddTo(enc)
	}
	assert.Equal(t, []interface{}{float32(0), float32(1), float32(0)}, enc.Fields["world_up"])
	assert.Equal(t, camera.DefaultYaw, enc.Fields["yaw"])
	assert.Equal(t, camera.DefaultSensitivity, enc.Fields["sensitivity"])
}
