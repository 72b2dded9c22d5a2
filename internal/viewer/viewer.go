// Package viewer implements the interactive viewer loop.
package viewer

import (
	"fmt"
	"time"

	"github.com/chewxy/math32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/brickforge/partscene/internal/config"
	"github.com/brickforge/partscene/internal/engine/debug"
	"github.com/brickforge/partscene/internal/engine/glrender"
	"github.com/brickforge/partscene/internal/engine/input"
	"github.com/brickforge/partscene/internal/engine/window"
	"github.com/brickforge/partscene/internal/logger"
	"github.com/brickforge/partscene/pkg/math"
	"github.com/brickforge/partscene/pkg/scene"
)

// homePosition is where the camera starts and returns to on reset.
var homePosition = math.Vec3{X: 4, Y: 3, Z: 9}

// dragSensitivity converts mouse drag pixels to radians.
const dragSensitivity = 0.005

// palette cycles across the shapes in creation order.
var palette = [][3]float32{
	{0.77, 0.16, 0.11}, // red
	{0.16, 0.40, 0.77}, // blue
	{0.96, 0.80, 0.18}, // yellow
	{0.16, 0.65, 0.27}, // green
	{0.90, 0.90, 0.92}, // white
}

// Config holds everything the viewer needs from the loaded config.
type Config struct {
	Title    string
	Graphics config.GraphicsConfig
	Camera   config.CameraConfig
	Scene    config.SceneConfig

	// Shapes are the names to populate the scene with. Empty means one
	// of each primitive.
	Shapes []string
}

// Viewer owns the window, the GL backend and the scene, and runs the
// main loop.
type Viewer struct {
	config  Config
	running bool

	window  *window.Window
	backend *glrender.Backend
	input   *input.Input

	scene    *scene.Scene
	renderer *scene.Renderer

	screenshots *debug.Screenshots

	yaw   axisSpring
	pitch axisSpring
	zoom  axisSpring
}

// New creates a viewer instance.
func New(cfg Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	v := &Viewer{
		config: cfg,
	}

	// Create window (this also creates the OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create backend (AFTER window, since the OpenGL context must
	// exist). The viewport uses drawable pixels, not window units.
	dw, dh := v.window.DrawableSize()
	v.backend, err = glrender.New(glrender.Config{
		Width:      dw,
		Height:     dh,
		Background: cfg.Scene.Background,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create render backend: %w", err)
	}

	v.input = input.New()

	v.scene = scene.New(scene.Config{
		FOV:          cfg.Camera.FOV,
		Aspect:       v.window.Aspect(),
		Near:         cfg.Camera.Near,
		Far:          cfg.Camera.Far,
		LightDir:     vec3(cfg.Scene.LightDir),
		AmbientColor: cfg.Scene.Ambient,
		DiffuseColor: cfg.Scene.Diffuse,
		Background:   cfg.Scene.Background,
	})
	v.renderer = scene.NewRenderer(v.backend)
	v.screenshots = debug.NewScreenshots("screenshots", "partscene")

	v.populate(cfg.Shapes)
	v.resetCamera()

	logger.Info("viewer initialized", zap.Int("shapes", len(v.scene.Shapes())))
	return v, nil
}

// populate fills the scene with the named shapes in a row. Names that
// do not resolve still produce a shape (a cuboid) but are logged.
func (v *Viewer) populate(names []string) {
	if len(names) == 0 {
		names = []string{"cuboid", "sphere", "cylinder", "wedge"}
	}

	spacing := float32(3)
	offset := spacing * float32(len(names)-1) / 2

	for i, name := range names {
		frame := scene.Frame{
			Position: math.Vec3{X: float32(i)*spacing - offset},
		}
		mat := scene.NewMaterial(palette[i%len(palette)])

		shape, ok := v.scene.CreateShapeNamed(name, frame, mat)
		if !ok {
			logger.Warn("unknown shape name, using cuboid", zap.String("name", name))
		}
		// Spheres get a mirror finish so the highlight model shows.
		if shape.Type == scene.Ellipsoid {
			shape.Material.Mirror = true
		}
	}
}

// resetCamera puts the camera back at the home position, aimed at the
// origin, and settles the control springs there.
func (v *Viewer) resetCamera() {
	cam := &v.scene.Camera
	cam.Position = homePosition

	p := cam.Position
	cam.Yaw = math32.Atan2(p.X, p.Z)
	cam.Pitch = -math32.Atan2(p.Y, math32.Sqrt(p.X*p.X+p.Z*p.Z))

	v.yaw = newAxisSpring(float64(v.config.Camera.Smoothing), float64(cam.Yaw))
	v.pitch = newAxisSpring(float64(v.config.Camera.Smoothing), float64(cam.Pitch))
	v.zoom = newAxisSpring(float64(v.config.Camera.Smoothing), 0)
}

// Run starts the main loop.
func (v *Viewer) Run() error {
	v.running = true

	// Timing
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		// Calculate delta time
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			// Quit event received
			v.running = false
			break
		}

		// React to resizes via the drawable size so high-DPI
		// framebuffers stay in sync with the window.
		for _, event := range v.input.Events() {
			if event.Type == input.EventWindowResize {
				dw, dh := v.window.DrawableSize()
				v.backend.Resize(dw, dh)
				v.scene.Camera.SetAspect(v.window.Aspect())
			}
		}

		// One-shot keys
		if v.input.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
			v.running = false
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_R) {
			v.resetCamera()
		}
		if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
			v.captureScreenshot()
		}

		// 2. Update scene and camera
		v.update(dt)

		// 3. Render
		if err := v.render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}

		// 4. Present (swap buffers)
		v.window.Present()

		// FPS counter
		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt_ms", dt*1000))
			if v.config.Graphics.ShowFPS {
				v.window.SetTitle(fmt.Sprintf("%s - %d fps", v.config.Title, frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.backend != nil {
		v.backend.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

// update advances the demo spin and applies camera controls.
func (v *Viewer) update(dt float64) {
	// Each shape spins at its own rate so frame mutation is visible.
	for i, shape := range v.scene.Shapes() {
		shape.Frame.Rotation.Y += float32(dt) * (20 + 10*float32(i))
	}

	cam := &v.scene.Camera
	cc := v.config.Camera

	// Movement along the world axes from held keys.
	move := cc.MoveSpeed * float32(dt)
	if v.input.IsKeyDown(sdl.SCANCODE_W) {
		cam.Move(0, 0, -move)
	}
	if v.input.IsKeyDown(sdl.SCANCODE_S) {
		cam.Move(0, 0, move)
	}
	if v.input.IsKeyDown(sdl.SCANCODE_A) {
		cam.Move(-move, 0, 0)
	}
	if v.input.IsKeyDown(sdl.SCANCODE_D) {
		cam.Move(move, 0, 0)
	}
	if v.input.IsKeyDown(sdl.SCANCODE_E) {
		cam.Move(0, move, 0)
	}
	if v.input.IsKeyDown(sdl.SCANCODE_Q) {
		cam.Move(0, -move, 0)
	}

	// Rotation targets from held arrow keys and mouse drag.
	turn := float64(cc.RotateSpeed) * dt
	if v.input.IsKeyDown(sdl.SCANCODE_LEFT) {
		v.yaw.target += turn
	}
	if v.input.IsKeyDown(sdl.SCANCODE_RIGHT) {
		v.yaw.target -= turn
	}
	if v.input.IsKeyDown(sdl.SCANCODE_UP) {
		v.pitch.target += turn
	}
	if v.input.IsKeyDown(sdl.SCANCODE_DOWN) {
		v.pitch.target -= turn
	}

	dragX, dragY := v.input.Drag()
	v.yaw.target -= float64(dragX) * dragSensitivity
	v.pitch.target -= float64(dragY) * dragSensitivity

	// The camera clamps pitch itself; clamping the target too keeps the
	// spring from winding up past the limit.
	if v.pitch.target > float64(scene.MaxPitch) {
		v.pitch.target = float64(scene.MaxPitch)
	}
	if v.pitch.target < -float64(scene.MaxPitch) {
		v.pitch.target = -float64(scene.MaxPitch)
	}

	// Zoom target from the wheel, scroll up moves in.
	if wy := v.input.Wheel(); wy != 0 {
		v.zoom.target -= float64(wy) * float64(cc.ZoomSpeed)
	}

	cam.Rotate(v.yaw.step(), v.pitch.step())
	if dz := v.zoom.step(); dz != 0 {
		cam.Zoom(dz)
	}
}

// render draws the current frame.
func (v *Viewer) render() error {
	v.backend.BeginFrame()
	return v.renderer.Render(v.scene)
}

// captureScreenshot saves the last presented frame as a PNG.
func (v *Viewer) captureScreenshot() {
	pixels, w, h := v.backend.ReadPixels()
	path, err := v.screenshots.Save(pixels, w, h)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
