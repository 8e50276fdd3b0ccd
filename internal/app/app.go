// Package app runs the lessons: it owns the window, input and camera and
// drives the frame loop.
package app

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/hello-gl/internal/config"
	"github.com/Faultbox/hello-gl/internal/engine/camera"
	"github.com/Faultbox/hello-gl/internal/engine/debug"
	"github.com/Faultbox/hello-gl/internal/engine/input"
	"github.com/Faultbox/hello-gl/internal/engine/shader"
	"github.com/Faultbox/hello-gl/internal/engine/window"
	"github.com/Faultbox/hello-gl/internal/lesson"
	"github.com/Faultbox/hello-gl/internal/logger"
	"github.com/Faultbox/hello-gl/pkg/math"
)

// Context is the running application. All mutable runner state lives here.
type Context struct {
	cfg     *config.Config
	window  *window.Window
	input   *input.Input
	camera  *camera.Fly
	pointer PointerTracker
	timer   *FrameTimer
	lessons *lesson.Manager
	watcher *shader.Watcher
	shots   *debug.Screenshots
	log     *zap.Logger

	running        bool
	captured       bool
	screenshotDue  bool
	constrainPitch bool
}

// CameraConfig converts the camera settings from cfg.
func CameraConfig(cfg config.CameraConfig) camera.Config {
	return camera.Config{
		Position:         cfg.Position,
		WorldUp:          camera.DefaultConfig().WorldUp,
		Yaw:              cfg.Yaw,
		Pitch:            cfg.Pitch,
		MovementSpeed:    cfg.Speed,
		MouseSensitivity: cfg.Sensitivity,
		Zoom:             cfg.Zoom,
	}
}

// New creates the window, the camera and the lesson manager, and schedules
// the configured start lesson.
func New(cfg *config.Config) (*Context, error) {
	c := &Context{
		cfg:            cfg,
		input:          input.New(),
		camera:         camera.NewFly(CameraConfig(cfg.Camera)),
		shots:          debug.NewScreenshots("screenshots", "lesson"),
		log:            logger.Named("app"),
		constrainPitch: cfg.Camera.ConstrainPitch,
	}

	c.log.Info("initializing",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	env := &lesson.Env{
		Camera:    c.camera,
		ShaderDir: cfg.Assets.ShaderDir,
		Container: cfg.Assets.Container,
		Face:      cfg.Assets.Face,
		Near:      cfg.Camera.Near,
		Far:       cfg.Camera.Far,
	}
	c.lessons = lesson.NewManager(env, lesson.All()...)
	if err := c.lessons.Change(cfg.Lesson.Start); err != nil {
		return nil, fmt.Errorf("start lesson: %w (have %v)", err, c.lessons.Names())
	}

	var err error
	c.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	if cfg.Assets.WatchShaders {
		if cfg.Assets.ShaderDir == "" {
			c.log.Warn("shader watching needs a shader directory, ignoring")
		} else if c.watcher, err = shader.NewWatcher(cfg.Assets.ShaderDir); err != nil {
			c.log.Warn("shader watching disabled", zap.Error(err))
		}
	}

	c.setCapture(cfg.Camera.CaptureCursor)
	c.timer = NewFrameTimer(nil)

	c.log.Info("initialized", zap.Strings("lessons", c.lessons.Names()))
	return c, nil
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (c *Context) Run() error {
	c.running = true
	c.log.Info("starting frame loop")

	for c.running {
		dt, fpsUpdated := c.timer.Tick()

		// 1. Process input
		if c.input.Update() {
			c.running = false
			break
		}
		for _, event := range c.input.Events() {
			c.handleEvent(event)
		}
		if !c.running {
			break
		}

		// 2. Held keys move the camera with this frame's delta
		c.applyMovement(c.input.IsKeyHeld, dt)

		// 3. Pick up edited shaders
		if c.watcher != nil {
			c.lessons.Reload(c.watcher.Changed())
		}

		// 4. Update and render
		if err := c.lessons.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		width, height := c.window.DrawableSize()
		frame := &lesson.Frame{Width: width, Height: height, Time: c.timer.Elapsed()}
		if err := c.lessons.Render(frame); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		if c.screenshotDue {
			c.screenshotDue = false
			c.screenshot(width, height)
		}

		// 5. Present
		c.window.SwapBuffers()

		if fpsUpdated {
			c.updateTitle()
			c.log.Debug("fps", zap.Int("count", c.timer.FPS()), zap.Float32("dt_ms", dt*1000))
			c.log.Debug("camera", cameraFields(c.camera)...)
		}
	}

	return nil
}

// Close releases the lesson, the watcher and the window.
func (c *Context) Close() {
	c.log.Info("closing")

	if c.lessons != nil {
		if err := c.lessons.Close(); err != nil {
			c.log.Warn("closing lesson", zap.Error(err))
		}
	}
	if c.watcher != nil {
		if err := c.watcher.Close(); err != nil {
			c.log.Warn("closing shader watcher", zap.Error(err))
		}
	}
	if c.window != nil {
		c.window.Close()
	}
}

func (c *Context) handleEvent(e input.Event) {
	switch e.Type {
	case input.EventWindowResize:
		c.window.ResizeViewport()
		return

	case input.EventMouseMove:
		c.look(e)
		return

	case input.EventMouseWheel:
		c.camera.ProcessZoom(e.DY)
		return

	case input.EventKeyDown:
		if c.handleKey(e) {
			return
		}
	}

	c.lessons.HandleEvent(e)
}

// handleKey processes runner bindings and reports whether e was consumed.
func (c *Context) handleKey(e input.Event) bool {
	if i, ok := lessonIndex(e.Key); ok {
		if err := c.lessons.ChangeIndex(i); err != nil {
			c.log.Debug("no lesson on key", zap.Int("key", i+1))
		}
		return true
	}

	switch e.Key {
	case keyQuit:
		c.running = false
	case keyToggleCapture:
		if !e.Repeat {
			c.setCapture(!c.captured)
		}
	case keyScreenshot:
		c.screenshotDue = !e.Repeat
	case keyResetCamera:
		c.camera.Reset(CameraConfig(c.cfg.Camera))
		c.log.Debug("camera reset", cameraFields(c.camera)...)
	case keyHomeCamera:
		// Back to the start position, keeping the current orientation.
		c.camera.SetPosition(c.cfg.Camera.Position)
	default:
		return isMovementKey(e.Key)
	}
	return true
}

// look applies a mouse move to the camera. Relative mode reports deltas
// directly; otherwise they come from successive absolute positions.
func (c *Context) look(e input.Event) {
	var dx, dy float32
	if c.captured {
		dx, dy = e.DX, -e.DY
	} else {
		dx, dy = c.pointer.Delta(float32(e.MouseX), float32(e.MouseY))
	}
	c.camera.ProcessLook(dx, dy, c.constrainPitch)
}

// applyMovement moves the camera for every held movement key.
func (c *Context) applyMovement(held func(key sdl.Scancode) bool, dt float32) {
	for _, b := range movementBindings {
		if held(b.key) {
			c.camera.ProcessMovement(b.dir, dt)
		}
	}
}

// cameraFields describes the camera state for logging.
func cameraFields(cam *camera.Fly) []zap.Field {
	return []zap.Field{
		vecField("position", cam.Position()),
		vecField("front", cam.Front()),
		vecField("right", cam.Right()),
		vecField("up", cam.Up()),
		vecField("world_up", cam.WorldUp()),
		zap.Float32("yaw", cam.Yaw()),
		zap.Float32("pitch", cam.Pitch()),
		zap.Float32("zoom", cam.Zoom()),
		zap.Float32("speed", cam.MovementSpeed()),
		zap.Float32("sensitivity", cam.MouseSensitivity()),
	}
}

func vecField(key string, v math.Vec3) zap.Field {
	return zap.Float32s(key, []float32{v.X, v.Y, v.Z})
}

func (c *Context) setCapture(enabled bool) {
	c.captured = enabled
	c.pointer.Reset()
	if c.window != nil {
		c.window.SetRelativeMouse(enabled)
	}
}

func (c *Context) screenshot(width, height int) {
	path, err := c.shots.CaptureFramebuffer(width, height)
	if err != nil {
		c.log.Error("screenshot failed", zap.Error(err))
		return
	}
	c.log.Info("screenshot saved", zap.String("path", path))
}

func (c *Context) updateTitle() {
	name := "none"
	if l := c.lessons.Current(); l != nil {
		name = l.Name()
	}
	c.window.SetTitle(fmt.Sprintf("%s - %s (%d fps)", c.cfg.Window.Title, name, c.timer.FPS()))
}
