// Package camera provides the free-flying camera used by the lessons.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/hello-gl/pkg/math"
)

// Movement is a keyboard-driven movement direction.
type Movement int

// Movement directions, relative to the camera's current orientation.
const (
	Forward Movement = iota
	Backward
	Left
	Right
)

// String returns the direction name.
func (m Movement) String() string {
	switch m {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Default camera values.
const (
	DefaultYaw         float32 = -90 // degrees, looks down -Z
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5 // world units per second
	DefaultSensitivity float32 = 0.1 // degrees per pointer unit

	// MaxZoom is also the default vertical field of view.
	MaxZoom float32 = 45
	MinZoom float32 = 1

	// MaxPitch keeps the view from flipping through the vertical.
	MaxPitch float32 = 89
)

// Config holds the initial camera state.
type Config struct {
	Position         math.Vec3
	WorldUp          math.Vec3 // zero means +Y
	Yaw              float32   // degrees
	Pitch            float32   // degrees, clamped to [-MaxPitch, MaxPitch]
	MovementSpeed    float32   // zero means DefaultSpeed
	MouseSensitivity float32   // zero means DefaultSensitivity
	Zoom             float32   // zero means MaxZoom; clamped to [MinZoom, MaxZoom]
}

// DefaultConfig returns a camera at the origin looking down -Z.
func DefaultConfig() Config {
	return Config{
		WorldUp:          math.UnitY,
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             MaxZoom,
	}
}

// Fly is a first-person camera driven by Euler angles.
// The front/right/up basis is recomputed whenever yaw or pitch change, so
// it is always consistent with the angles.
type Fly struct {
	position math.Vec3
	front    math.Vec3
	up       math.Vec3
	right    math.Vec3
	worldUp  math.Vec3

	yaw   float32
	pitch float32

	movementSpeed    float32
	mouseSensitivity float32
	zoom             float32
}

// NewFly creates a camera from cfg.
func NewFly(cfg Config) *Fly {
	c := &Fly{}
	c.Reset(cfg)
	return c
}

// Reset replaces the whole camera state with cfg.
func (c *Fly) Reset(cfg Config) {
	c.position = cfg.Position
	c.worldUp = cfg.WorldUp.Normalize()
	if c.worldUp == (math.Vec3{}) {
		c.worldUp = math.UnitY
	}
	c.yaw = cfg.Yaw
	c.pitch = math.Clamp(cfg.Pitch, -MaxPitch, MaxPitch)

	c.movementSpeed = cfg.MovementSpeed
	if c.movementSpeed == 0 {
		c.movementSpeed = DefaultSpeed
	}
	c.mouseSensitivity = cfg.MouseSensitivity
	if c.mouseSensitivity == 0 {
		c.mouseSensitivity = DefaultSensitivity
	}
	c.zoom = cfg.Zoom
	if c.zoom == 0 {
		c.zoom = MaxZoom
	}
	c.zoom = math.Clamp(c.zoom, MinZoom, MaxZoom)

	c.updateVectors()
}

// ViewMatrix returns the world-to-eye transform.
func (c *Fly) ViewMatrix() math.Mat4 {
	return math.LookAt(c.position, c.position.Add(c.front), c.up)
}

// ProcessMovement moves the camera along its front or right vector.
// dt is the frame time in seconds; it is not clamped.
func (c *Fly) ProcessMovement(dir Movement, dt float32) {
	velocity := c.movementSpeed * dt
	switch dir {
	case Forward:
		c.position = c.position.Add(c.front.Scale(velocity))
	case Backward:
		c.position = c.position.Sub(c.front.Scale(velocity))
	case Left:
		c.position = c.position.Sub(c.right.Scale(velocity))
	case Right:
		c.position = c.position.Add(c.right.Scale(velocity))
	}
}

// ProcessLook turns the camera by a pointer delta. Positive dx turns right,
// positive dy looks up; sources whose y axis grows downward must negate dy.
func (c *Fly) ProcessLook(dx, dy float32, constrainPitch bool) {
	c.yaw += dx * c.mouseSensitivity
	c.pitch += dy * c.mouseSensitivity

	if constrainPitch {
		c.pitch = math.Clamp(c.pitch, -MaxPitch, MaxPitch)
	}

	c.updateVectors()
}

// ProcessZoom narrows the field of view by delta degrees.
func (c *Fly) ProcessZoom(delta float32) {
	c.zoom = math.Clamp(c.zoom-delta, MinZoom, MaxZoom)
}

// SetPosition moves the camera without touching its orientation.
func (c *Fly) SetPosition(p math.Vec3) {
	c.position = p
}

// Position returns the camera position in world space.
func (c *Fly) Position() math.Vec3 { return c.position }

// Front returns the unit look direction.
func (c *Fly) Front() math.Vec3 { return c.front }

// Right returns the unit right vector.
func (c *Fly) Right() math.Vec3 { return c.right }

// Up returns the unit up vector of the camera (not the world).
func (c *Fly) Up() math.Vec3 { return c.up }

// WorldUp returns the reference up direction.
func (c *Fly) WorldUp() math.Vec3 { return c.worldUp }

// Yaw returns the yaw in degrees.
func (c *Fly) Yaw() float32 { return c.yaw }

// Pitch returns the pitch in degrees.
func (c *Fly) Pitch() float32 { return c.pitch }

// Zoom returns the vertical field of view in degrees.
func (c *Fly) Zoom() float32 { return c.zoom }

// MovementSpeed returns the speed in world units per second.
func (c *Fly) MovementSpeed() float32 { return c.movementSpeed }

// MouseSensitivity returns the degrees turned per pointer unit.
func (c *Fly) MouseSensitivity() float32 { return c.mouseSensitivity }

// updateVectors derives front, right and up from yaw and pitch.
// The cross product order gives a right-handed basis.
func (c *Fly) updateVectors() {
	yaw := math.Radians(c.yaw)
	pitch := math.Radians(c.pitch)

	front := math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()
	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}
