package logo

import (
	"math"
	"time"

	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/animate"
	"github.com/gogpu/isologo/render"
)

// Logo is the interactive logo: the scene, its renderers and the animator
// that eases pointer input into motion.
//
// Input methods take canvas pixel coordinates. They only move accumulator
// targets; the visible change happens on the following frames. All methods
// must be called from the host's frame goroutine.
type Logo struct {
	Scene    *Scene
	Animator *animate.Animator

	renderer   *render.SceneRenderer
	background *render.BackgroundRenderer
	opts       options

	dragX, dragY *animate.Accumulator // drag rotation, radians
	tiltX, tiltY *animate.Accumulator // hover tilt, radians
	glow         *animate.Accumulator // highlight intensity
	scroll       *animate.Accumulator // parallax, pixels
	intro        *animate.Timeline

	growth float64
	bob    float64
	dash   float64

	dragging     bool
	downX, downY float64
}

// New builds the logo drawing onto c. The animator is created but not
// started; call Start.
func New(c render.Canvas, opts ...Option) *Logo {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &Logo{
		Scene:  NewScene(o.blocks, o.palette),
		opts:   o,
		growth: 1,
	}

	scale := o.scale
	if scale <= 0 {
		scale = autoScale(c)
	}
	l.renderer = render.NewSceneRenderer(c, l.Scene.Root,
		render.WithScale(scale),
		render.WithShadow(o.shadowBlur, o.palette.Shadow),
	)
	l.background = render.NewBackgroundRenderer(c, o.palette.Background, o.palette.Grid, o.gridSpacing)

	a := animate.New(append(o.animator, animate.WithRender(l.Render))...)
	l.dragX = a.Accumulator(0, o.alpha)
	l.dragY = a.Accumulator(0, o.alpha)
	l.tiltX = a.Accumulator(0, o.alpha)
	l.tiltY = a.Accumulator(0, o.alpha)
	l.glow = a.Accumulator(0, o.alpha)
	l.scroll = a.Accumulator(0, o.alpha)
	l.intro = a.Timeline()
	a.Add(animate.TickFunc(l.float))
	a.Ticker(l.march)
	a.Ticker(l.update)
	l.Animator = a
	return l
}

// autoScale fits the stock two-block-wide logo in a third of the smaller
// canvas side.
func autoScale(c render.Canvas) float64 {
	return float64(min(c.Width(), c.Height())) / 6
}

// Start plays the intro, if enabled, and starts the animator.
func (l *Logo) Start() {
	if l.opts.intro {
		l.PlayIntro()
	} else {
		l.growth = 1
		l.Scene.SetCornerAlpha(1)
	}
	isologo.Logger().Info("logo: start", "intro", l.opts.intro, "drag", l.opts.dragMode)
	l.Animator.Start()
}

// Stop stops the animator. The scene keeps its last state.
func (l *Logo) Stop() {
	l.Animator.Stop()
}

// PlayIntro restarts the intro: the blocks grow in with a slight
// overshoot, then the corner glow fades in.
func (l *Logo) PlayIntro() {
	l.intro.Reset()
	l.growth = 0
	l.Scene.SetCornerAlpha(0)
	l.intro.
		Tween(introGrow, animate.Eased(animate.OutBack, func(t float64) { l.growth = t })).
		Wait(introPause).
		Tween(introCorner, animate.Eased(animate.InOutCubic, l.Scene.SetCornerAlpha)).
		Call(func() { isologo.Logger().Debug("logo: intro done", "frames", l.Animator.Frames()) })
	l.Animator.Start()
}

// IntroPlaying reports whether the intro still has keyframes pending.
func (l *Logo) IntroPlaying() bool {
	return l.intro.Len() > 0
}

// Render draws one frame: the background, if enabled, then the scene.
// It is the animator's render hook and may also be called directly.
func (l *Logo) Render() {
	if l.opts.background {
		l.background.Render()
	}
	l.renderer.RenderLogo()
}

// Renderer returns the scene renderer.
func (l *Logo) Renderer() *render.SceneRenderer {
	return l.renderer
}

// Background returns the background renderer.
func (l *Logo) Background() *render.BackgroundRenderer {
	return l.background
}

// SetPalette recolors the logo and its background.
func (l *Logo) SetPalette(p Palette) {
	l.opts.palette = p
	l.Scene.SetPalette(p)
	l.renderer.ShadowColor = p.Shadow
	l.background.Color = p.Background
	l.background.GridColor = p.Grid
}

// SetDragMode switches the drag mapping.
func (l *Logo) SetDragMode(m DragMode) {
	l.opts.dragMode = m
}

// PointerMove tracks the pointer: it tilts the logo toward the pointer,
// brightens the highlight near the center and, while dragging, rotates.
func (l *Logo) PointerMove(x, y float64) {
	w, h := l.renderer.Size()
	nx := clamp((x-w/2)/(w/2), -1, 1)
	ny := clamp((y-h/2)/(h/2), -1, 1)
	l.tiltY.SetTarget(nx * l.opts.maxTilt)
	l.tiltX.SetTarget(ny * l.opts.maxTilt)
	l.glow.SetTarget(clamp(1-math.Hypot(nx, ny), 0, 1))

	if l.dragging {
		l.dragX.SetTarget((x - l.downX) * l.opts.sensitivity)
		l.dragY.SetTarget((y - l.downY) * l.opts.sensitivity)
	}
	l.Animator.Start()
}

// PointerDown starts a drag at (x, y).
func (l *Logo) PointerDown(x, y float64) {
	l.dragging = true
	l.downX, l.downY = x, y
	l.Animator.Start()
}

// PointerUp ends a drag; the logo eases back to its rest pose.
func (l *Logo) PointerUp() {
	l.dragging = false
	l.dragX.SetTarget(0)
	l.dragY.SetTarget(0)
}

// PointerLeave ends any drag and eases tilt and highlight back to rest.
func (l *Logo) PointerLeave() {
	l.PointerUp()
	l.tiltX.SetTarget(0)
	l.tiltY.SetTarget(0)
	l.glow.SetTarget(0)
}

// TouchStart maps a touch to a pointer press at (x, y).
func (l *Logo) TouchStart(x, y float64) {
	l.PointerMove(x, y)
	l.PointerDown(x, y)
}

// TouchMove maps a moving touch to a pointer move.
func (l *Logo) TouchMove(x, y float64) {
	l.PointerMove(x, y)
}

// TouchEnd maps a lifted touch to a release and leave; touches have no
// hover.
func (l *Logo) TouchEnd() {
	l.PointerLeave()
}

// Scroll adds dy pixels of scroll, which shifts the logo and the grid at
// different rates.
func (l *Logo) Scroll(dy float64) {
	l.scroll.SetTarget(clamp(l.scroll.Target+dy, -maxScroll, maxScroll))
	l.Animator.Start()
}

// Rotation returns the model rotation of the current frame.
func (l *Logo) Rotation() *isologo.Matrix {
	var q isologo.Quaternion
	if l.opts.dragMode == DragXYAlt {
		q = isologo.XYAlt(l.dragX.Value, l.dragY.Value)
	} else {
		q = isologo.XY(l.dragX.Value, l.dragY.Value)
	}
	return q.Matrix().RotY(l.tiltY.Value).RotX(l.tiltX.Value)
}

func (l *Logo) float(elapsed time.Duration) bool {
	phase := 2 * math.Pi * float64(elapsed%bobPeriod) / float64(bobPeriod)
	l.bob = bobHeight * math.Sin(phase)
	return true
}

func (l *Logo) march() {
	l.dash -= dashSpeed
	if l.dash <= -(topDashOn + topDashOff) {
		l.dash += topDashOn + topDashOff
	}
}

// update copies this frame's animated values into the scene and renderers.
func (l *Logo) update() {
	l.renderer.Rotation = l.Rotation()
	l.Scene.Pose(l.growth, l.bob*l.growth)
	l.renderer.OffsetY = l.scroll.Value * sceneParallax
	l.background.OffsetY = -l.scroll.Value * gridParallax
	l.Scene.SetHighlight(l.glow.Value)
	l.Scene.SetDashOffset(l.dash)
}
