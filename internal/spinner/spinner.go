// Package spinner assembles the rotating text-ring scene: a stack of
// open-ended cylinders cut out by text masks, spun in alternating
// directions under a point light that fades in.
package spinner

import (
	"image"
	gomath "math"
	"reflect"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/ringspin/internal/engine/camera"
	"github.com/Faultbox/ringspin/internal/engine/loop"
	"github.com/Faultbox/ringspin/internal/engine/model"
	"github.com/Faultbox/ringspin/internal/engine/scene"
	"github.com/Faultbox/ringspin/internal/engine/texture"
	"github.com/Faultbox/ringspin/internal/engine/tween"
	"github.com/Faultbox/ringspin/internal/logger"
	"github.com/Faultbox/ringspin/pkg/math"
)

// Scene layout.
const (
	RingRadius   = 150
	RingHeight   = 50
	RingSegments = 32
	// RingSpacing is the vertical distance between consecutive rings.
	RingSpacing = 50

	CameraFOV  = 45
	CameraNear = 1
	CameraFar  = 1000
	CameraZ    = 350

	LightColor = 0xffffff
)

// Surface draws a scene. The GL renderer is the production implementation.
type Surface interface {
	SetSize(width, height int)
	Render(s *scene.Scene, cam *camera.Perspective) error
}

// Mount is where a surface is displayed.
type Mount interface {
	Attach(s Surface)
}

// Mounts maps mount point identifiers to mounts.
type Mounts map[string]Mount

// Lookup returns the mount registered under id, or nil. A nil pointer
// stored under id also yields nil, so callers can compare with nil.
func (m Mounts) Lookup(id string) Mount {
	mount, ok := m[id]
	if !ok || mount == nil {
		return nil
	}
	if v := reflect.ValueOf(mount); v.Kind() == reflect.Pointer && v.IsNil() {
		return nil
	}
	return mount
}

// ResizeNotifier reports viewport changes.
type ResizeNotifier interface {
	OnResize(fn func(width, height int))
}

// Viewport is the size of the drawable area in pixels.
type Viewport struct {
	Width  int
	Height int
}

// Aspect returns width / height, or 1 for a degenerate viewport.
func (v Viewport) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// LightEase shapes the light fade-in. It does not follow Timing.Ease.
var LightEase = tween.Power1Out

// Timing controls the animations.
type Timing struct {
	// SpinDuration is the length of one rotation sweep.
	SpinDuration time.Duration
	Ease         tween.Ease

	LightDelay     time.Duration
	LightFade      time.Duration
	LightIntensity float32
}

// DefaultTiming returns a 60s power2.out sweep and a 1s light fade to
// intensity 2 after a 1s delay.
func DefaultTiming() Timing {
	return Timing{
		SpinDuration:   60 * time.Second,
		Ease:           tween.Power2Out,
		LightDelay:     time.Second,
		LightFade:      time.Second,
		LightIntensity: 2,
	}
}

// withDefaults fills unset fields from DefaultTiming. A zero light delay is
// kept as given unless the whole Timing is zero.
func (t Timing) withDefaults() Timing {
	def := DefaultTiming()
	if t.SpinDuration == 0 && t.Ease == nil && t.LightDelay == 0 && t.LightFade == 0 && t.LightIntensity == 0 {
		return def
	}
	if t.SpinDuration <= 0 {
		t.SpinDuration = def.SpinDuration
	}
	if t.Ease == nil {
		t.Ease = def.Ease
	}
	if t.LightFade <= 0 {
		t.LightFade = def.LightFade
	}
	if t.LightIntensity <= 0 {
		t.LightIntensity = def.LightIntensity
	}
	return t
}

// Options configures Assemble. Zero values are usable: no mount, a
// headless surface, no resize events and a fresh loop.
type Options struct {
	Viewport Viewport
	Mount    Mount
	Surface  Surface
	Resize   ResizeNotifier
	Loop     *loop.Loop

	// Canvas acquires the 2D drawing context for ring labels.
	// Nil uses the bold system font.
	Canvas texture.ContextFunc
	Timing Timing
	Logger *zap.Logger
}

// Spinner is an assembled, animated ring scene.
type Spinner struct {
	Scene     *scene.Scene
	Camera    *camera.Perspective
	Light     *scene.PointLight
	Container *scene.Object

	// Rings holds one mesh per input ring, in input order.
	Rings  []*scene.Mesh
	Groups Split[*scene.Mesh]

	OddSpin   *tween.Tween
	EvenSpin  *tween.Tween
	LightFade *tween.Tween
	Tweens    *tween.Engine

	surface  Surface
	canvas   texture.ContextFunc
	loop     *loop.Loop
	attached bool
	viewport Viewport
	log      *zap.Logger
}

// Assemble builds the scene for rings, starts the animations and registers
// the redraw frame on the loop. It never fails: a ring whose label cannot
// be drawn gets a blank mask, and a nil mount leaves the surface detached.
func Assemble(rings []Ring, opts Options) *Spinner {
	s := &Spinner{
		Scene:    scene.New(),
		Tweens:   tween.NewEngine(),
		surface:  opts.Surface,
		canvas:   opts.Canvas,
		loop:     opts.Loop,
		viewport: opts.Viewport,
		log:      opts.Logger,
	}
	if s.log == nil {
		s.log = logger.Named("spinner")
	}
	if s.surface == nil {
		s.surface = nopSurface{}
	}
	if s.loop == nil {
		s.loop = loop.New(loop.WithLogger(s.log))
	}

	timing := opts.Timing.withDefaults()

	s.Camera = camera.NewPerspective(CameraFOV, s.viewport.Aspect(), CameraNear, CameraFar)
	s.Camera.Position = math.Vec3{Z: CameraZ}
	s.surface.SetSize(s.viewport.Width, s.viewport.Height)

	if opts.Mount != nil {
		opts.Mount.Attach(s.surface)
		s.attached = true
	} else {
		s.log.Warn("mount point not found, spinner will not be displayed")
	}

	s.buildRings(rings)

	s.Groups = EverySecond(s.Rings)
	s.OddSpin = s.Tweens.Add(spin(s.Groups.Odd, -2*gomath.Pi, timing))
	s.EvenSpin = s.Tweens.Add(spin(s.Groups.Even, 2*gomath.Pi, timing))

	s.Light = scene.NewPointLight("light", scene.HexColor(LightColor), 0)
	s.Light.Position = math.Vec3{X: -200, Y: 50, Z: 100}
	s.Scene.Add(s.Light)
	s.LightFade = s.Tweens.Add(tween.To([]*float32{&s.Light.Intensity}, float64(timing.LightIntensity), tween.Vars{
		Duration: timing.LightFade,
		Delay:    timing.LightDelay,
		Ease:     LightEase,
	}))

	if opts.Resize != nil {
		opts.Resize.OnResize(func(width, height int) {
			s.OnResize(Viewport{Width: width, Height: height})
		})
	}

	s.loop.OnFrame(s.Frame)

	s.log.Info("spinner assembled",
		zap.Int("rings", len(s.Rings)),
		zap.Int("odd", len(s.Groups.Odd)),
		zap.Int("even", len(s.Groups.Even)),
		zap.Bool("attached", s.attached))

	return s
}

func (s *Spinner) buildRings(rings []Ring) {
	s.Container = scene.NewObject("container")
	s.Container.Position = math.Vec3{Z: -300}
	s.Container.Rotation = math.Euler{X: -gomath.Pi / 4, Z: gomath.Pi / 6}
	s.Scene.Add(s.Container)

	geometry := model.BuildCylinder(model.CylinderOptions{
		RadiusTop:      RingRadius,
		RadiusBottom:   RingRadius,
		Height:         RingHeight,
		RadialSegments: RingSegments,
		HeightSegments: 1,
		OpenEnded:      true,
	})

	s.Rings = make([]*scene.Mesh, 0, len(rings))
	for i, ring := range rings {
		alpha := scene.NewTexture(s.renderMask(i, ring))
		alpha.MagFilter = scene.NearestFilter
		alpha.WrapT = scene.RepeatWrapping
		alpha.Repeat = [2]float32{1, 1}

		mesh := scene.NewMesh("ring", geometry, &scene.Material{
			Color:       scene.HexColor(0xffffff),
			Transparent: true,
			Side:        scene.DoubleSide,
			AlphaTest:   0.5,
			AlphaMap:    alpha,
		})
		mesh.Position.Y = float32(i * RingSpacing)

		s.Container.Add(mesh)
		s.Rings = append(s.Rings, mesh)
	}
}

// renderMask draws a ring label. Failures give a blank mask.
func (s *Spinner) renderMask(i int, ring Ring) *image.Alpha {
	opts := texture.DefaultMaskOptions()
	opts.Context = s.canvas

	mask, err := texture.RenderMask(ring.Text(), opts)
	if err != nil {
		s.log.Warn("ring label not drawn, using blank mask",
			zap.Int("ring", i), zap.Error(err))
	}
	return mask
}

// Relabel redraws the masks of the existing rings from rings, in order.
// The ring count is fixed at assembly: extra rings are ignored and rings
// without a new label keep theirs. It returns the number of rings redrawn.
func (s *Spinner) Relabel(rings []Ring) int {
	n := min(len(rings), len(s.Rings))
	for i := 0; i < n; i++ {
		tex := s.Rings[i].Material.AlphaMap
		tex.Image = s.renderMask(i, rings[i])
		tex.MarkDirty()
	}
	if len(rings) != len(s.Rings) {
		s.log.Warn("ring count differs from the assembled spinner",
			zap.Int("have", len(s.Rings)), zap.Int("given", len(rings)))
	}
	return n
}

// spin sweeps the Y rotation of meshes from 0 to angle and back, forever.
func spin(meshes []*scene.Mesh, angle float64, timing Timing) *tween.Tween {
	targets := make([]*float32, len(meshes))
	for i, m := range meshes {
		targets[i] = &RotationOf(m).Y
	}
	return tween.FromTo(targets, 0, angle, tween.Vars{
		Duration: timing.SpinDuration,
		Repeat:   tween.Forever,
		Yoyo:     true,
		Ease:     timing.Ease,
	})
}

// RotationOf returns the rotation handle of a mesh.
func RotationOf(m *scene.Mesh) *math.Euler {
	return &m.Rotation
}

// OnResize updates the camera aspect and the surface size.
// Degenerate viewports (a minimized window) are ignored.
func (s *Spinner) OnResize(vp Viewport) {
	if vp.Width <= 0 || vp.Height <= 0 {
		s.log.Debug("ignoring empty viewport", zap.Int("width", vp.Width), zap.Int("height", vp.Height))
		return
	}
	s.viewport = vp
	s.Camera.Aspect = vp.Aspect()
	s.Camera.UpdateProjection()
	s.surface.SetSize(vp.Width, vp.Height)
}

// Frame advances the animations by dt and renders one frame.
func (s *Spinner) Frame(dt time.Duration) error {
	s.Tweens.Update(dt)
	return s.surface.Render(s.Scene, s.Camera)
}

// Loop returns the loop the redraw frame is registered on.
func (s *Spinner) Loop() *loop.Loop {
	return s.loop
}

// Attached reports whether the surface was attached to a mount.
func (s *Spinner) Attached() bool {
	return s.attached
}

// Viewport returns the current viewport.
func (s *Spinner) Viewport() Viewport {
	return s.viewport
}

type nopSurface struct{}

func (nopSurface) SetSize(int, int) {}

func (nopSurface) Render(*scene.Scene, *camera.Perspective) error { return nil }
