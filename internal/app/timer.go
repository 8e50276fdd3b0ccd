package app

import "time"

// FrameTimer measures per-frame deltas and counts frames per second.
type FrameTimer struct {
	now      func() time.Time
	start    time.Time
	last     time.Time
	fpsStart time.Time
	frames   int
	fps      int
}

// NewFrameTimer starts timing at now(). A nil now uses time.Now.
func NewFrameTimer(now func() time.Time) *FrameTimer {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &FrameTimer{now: now, start: t, last: t, fpsStart: t}
}

// Tick marks the start of a frame and returns the seconds since the
// previous Tick. fpsUpdated is true once per second, when FPS changes.
func (t *FrameTimer) Tick() (dt float32, fpsUpdated bool) {
	now := t.now()
	dt = float32(now.Sub(t.last).Seconds())
	t.last = now

	t.frames++
	if elapsed := now.Sub(t.fpsStart); elapsed >= time.Second {
		t.fps = int(float64(t.frames) / elapsed.Seconds())
		t.frames = 0
		t.fpsStart = now
		fpsUpdated = true
	}
	return dt, fpsUpdated
}

// FPS returns the frame rate measured over the last full second.
func (t *FrameTimer) FPS() int {
	return t.fps
}

// Elapsed returns the seconds between creation and the last Tick.
func (t *FrameTimer) Elapsed() float32 {
	return float32(t.last.Sub(t.start).Seconds())
}
