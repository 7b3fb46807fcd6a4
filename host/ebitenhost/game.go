// Package ebitenhost shows an interactive logo in an ebiten window.
//
// The logo draws into a ggcanvas.Canvas; each ebiten Draw copies the canvas
// into an ebiten image when the canvas changed. Ebiten's Update drives the
// animator through a host.Loop and feeds it mouse, wheel and touch input.
package ebitenhost

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/animate"
	"github.com/gogpu/isologo/config"
	"github.com/gogpu/isologo/host"
	"github.com/gogpu/isologo/integration/ggcanvas"
	"github.com/gogpu/isologo/logo"
)

// Game implements ebiten.Game for one logo.
type Game struct {
	Logo *logo.Logo

	canvas *ggcanvas.Canvas
	loop   *host.Loop
	input  host.Input

	frame  *image.RGBA
	screen *ebiten.Image

	reloads chan *config.Config
	touches []ebiten.TouchID
}

// New creates a game for cfg. The logo is created but not started.
func New(cfg *config.Config) (*Game, error) {
	opts, err := cfg.LogoOptions()
	if err != nil {
		return nil, err
	}
	c, err := ggcanvas.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	g := &Game{
		canvas:  c,
		loop:    host.NewLoop(nil),
		frame:   image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height)),
		reloads: make(chan *config.Config, 1),
	}
	opts = append(opts, logo.WithAnimator(animate.WithScheduler(g.loop.Scheduler())))
	g.Logo = logo.New(c, opts...)
	return g, nil
}

// Reload queues cfg to be applied on the next update. It may be called
// from any goroutine; only the latest pending config is kept.
func (g *Game) Reload(cfg *config.Config) {
	for {
		select {
		case g.reloads <- cfg:
			return
		default:
		}
		select {
		case <-g.reloads:
		default:
		}
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	select {
	case cfg := <-g.reloads:
		if err := host.ApplyConfig(g.Logo, cfg); err != nil {
			isologo.Logger().Warn("ebitenhost: reload", "err", err)
		}
	default:
	}

	g.input.Apply(g.sample(), g.Logo)
	g.loop.Step()
	return g.canvas.Err()
}

func (g *Game) sample() host.Sample {
	x, y := ebiten.CursorPosition()
	w, h := g.canvas.Size()
	_, wheel := ebiten.Wheel()
	s := host.Sample{
		X:       float64(x),
		Y:       float64(y),
		Inside:  x >= 0 && y >= 0 && x < w && y < h,
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Wheel:   wheel,
	}
	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	for _, id := range g.touches {
		tx, ty := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, host.Touch{ID: int(id), X: float64(tx), Y: float64(ty)})
	}
	return s
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(g.canvas.Width(), g.canvas.Height())
	}
	if g.canvas.IsDirty() {
		if err := g.canvas.CopyTo(g.frame); err != nil {
			isologo.Logger().Warn("ebitenhost: copy frame", "err", err)
			return
		}
		g.screen.WritePixels(g.frame.Pix)
	}
	screen.DrawImage(g.screen, nil)
}

// Layout implements ebiten.Game. The logo keeps its configured size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.canvas.Size()
}

// Close releases the canvas and the ebiten image.
func (g *Game) Close() error {
	g.Logo.Stop()
	if g.screen != nil {
		g.screen.Deallocate()
		g.screen = nil
	}
	return g.canvas.Close()
}

// Run opens a window titled title, starts the logo and blocks until the
// window closes.
func Run(g *Game, title string, fps int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.canvas.Size())
	ebiten.SetTPS(fps)

	g.Logo.Start()
	isologo.Logger().Info("ebitenhost: window open", "title", title, "fps", fps)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if cerr := g.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("ebitenhost: %w", err)
	}
	return nil
}
