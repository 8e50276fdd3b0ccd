package app

// PointerTracker turns absolute pointer positions into look deltas.
// The first sample after creation or Reset only primes the tracker, so the
// camera does not jump to wherever the cursor entered the window.
type PointerTracker struct {
	lastX, lastY float32
	primed       bool
}

// Delta returns the movement since the previous sample. dy is positive when
// the pointer moves up the screen.
func (p *PointerTracker) Delta(x, y float32) (dx, dy float32) {
	if !p.primed {
		p.lastX, p.lastY = x, y
		p.primed = true
		return 0, 0
	}
	// Screen y grows downward.
	dx, dy = x-p.lastX, p.lastY-y
	p.lastX, p.lastY = x, y
	return dx, dy
}

// Reset forgets the last sample.
func (p *PointerTracker) Reset() {
	p.primed = false
}
