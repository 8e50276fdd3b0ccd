package lesson

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/Faultbox/hello-gl/internal/engine/camera"
	"github.com/Faultbox/hello-gl/internal/engine/input"
	"github.com/Faultbox/hello-gl/internal/engine/mesh"
	"github.com/Faultbox/hello-gl/internal/engine/texture"
	"github.com/Faultbox/hello-gl/internal/lesson/shaders"
	"github.com/Faultbox/hello-gl/pkg/math"
)

var cubeAxis = math.Vec3{X: 1, Y: 0.3, Z: 0.5}

// cubeRadius bounds a unit cube around its center.
const cubeRadius = 0.87

// HelloCamera renders ten textured cubes seen through the free-fly camera.
// Movement and looking are applied to the camera by the runner.
type HelloCamera struct {
	program  program
	cube     *mesh.Mesh
	textures [2]*texture.Texture
	cam      *camera.Fly
	near     float32
	far      float32
	time     float32
}

// NewHelloCamera creates the camera lesson.
func NewHelloCamera() *HelloCamera {
	return &HelloCamera{program: program{src: shaders.Camera}}
}

func (l *HelloCamera) Name() string { return "camera" }

func (l *HelloCamera) Enter(env *Env) (err error) {
	if env.Camera == nil {
		return errors.New("camera lesson needs a camera")
	}
	defer func() {
		if err != nil {
			l.Exit()
		}
	}()

	if err := l.program.build(env.ShaderDir); err != nil {
		return fmt.Errorf("building shader: %w", err)
	}
	if l.cube, err = mesh.New(mesh.Cube, nil, mesh.PosUV); err != nil {
		return fmt.Errorf("creating cube: %w", err)
	}
	if l.textures, err = loadPair(env); err != nil {
		return err
	}

	l.cam = env.Camera
	l.near, l.far = env.Near, env.Far
	gl.Enable(gl.DEPTH_TEST)
	return nil
}

func (l *HelloCamera) Exit() error {
	gl.Disable(gl.DEPTH_TEST)
	deleteTextures(&l.textures)
	if l.cube != nil {
		l.cube.Delete()
		l.cube = nil
	}
	l.program.delete()
	l.cam = nil
	return nil
}

func (l *HelloCamera) Update(dt float32) error {
	l.time += dt
	return nil
}

func (l *HelloCamera) HandleEvent(input.Event) {}

// Projection uses the camera zoom as the vertical field of view.
func (l *HelloCamera) Projection(aspect float32) math.Mat4 {
	return math.Perspective(math.Radians(l.cam.Zoom()), aspect, l.near, l.far)
}

// cubeModel places cube i. Every third cube spins over time.
func cubeModel(i int, pos math.Vec3, time float32) math.Mat4 {
	angle := 20 * float32(i)
	if i%3 == 0 {
		angle += 25 * time
	}
	return math.Translate(pos).Mul(math.Rotate(math.Radians(angle), cubeAxis))
}

// behindCamera reports whether a cube centered at pos lies wholly behind
// the eye. The view looks down -Z.
func behindCamera(view math.Mat4, pos math.Vec3) bool {
	return view.TransformPoint(pos).Z > cubeRadius
}

func (l *HelloCamera) Render(f *Frame) error {
	background.clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	l.textures[0].Bind(0)
	l.textures[1].Bind(1)

	p := l.program.prog
	p.Use()
	p.SetInt("texture1", 0)
	p.SetInt("texture2", 1)
	p.SetMat4("projection", l.Projection(f.Aspect()))
	view := l.cam.ViewMatrix()
	p.SetMat4("view", view)

	for i, pos := range mesh.CubePositions {
		if behindCamera(view, pos) {
			continue
		}
		p.SetMat4("model", cubeModel(i, pos, l.time))
		l.cube.Draw()
	}
	return nil
}

func (l *HelloCamera) Reload(changed []string) {
	l.program.reload(changed)
}
