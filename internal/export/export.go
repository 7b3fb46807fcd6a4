// Package export renders logo animations offline: numbered PNG frames and
// text dumps of the drawing command stream.
package export

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/animate"
	"github.com/gogpu/isologo/config"
	"github.com/gogpu/isologo/integration/ggcanvas"
	"github.com/gogpu/isologo/logo"
	"github.com/gogpu/isologo/recording"
	"github.com/gogpu/isologo/render"
)

// ErrNoFrames is returned when asked to render fewer than one frame.
var ErrNoFrames = errors.New("export: frame count must be positive")

// epoch is the fixed start of the exported timeline so that exports are
// reproducible.
var epoch = time.Unix(0, 0)

// Options controls a frame export.
type Options struct {
	Dir    string // output directory, created if missing
	Frames int

	// Spin drags the logo horizontally by this many pixels per frame,
	// starting at the canvas center. Zero leaves the logo at rest.
	Spin float64

	// Thumb is the width of an extra downscaled copy of each frame.
	// Zero disables thumbnails.
	Thumb int

	// Workers limits concurrent PNG encoders; zero uses GOMAXPROCS.
	Workers int
}

// FrameName returns the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame-%04d.png", i)
}

// ThumbName returns the file name of the thumbnail of frame i.
func ThumbName(i int) string {
	return fmt.Sprintf("frame-%04d.thumb.png", i)
}

// Frames renders opts.Frames frames of the logo described by cfg at
// cfg.FPS and writes them to opts.Dir. Frames are produced on the calling
// goroutine and encoded concurrently. It returns the written paths in
// frame order.
func Frames(ctx context.Context, cfg *config.Config, opts Options) ([]string, error) {
	if opts.Frames <= 0 {
		return nil, ErrNoFrames
	}
	lopts, err := cfg.LogoOptions()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}

	c, err := ggcanvas.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	defer c.Close()
	return frames(ctx, c, cfg, lopts, opts)
}

// frameCanvas is the part of ggcanvas.Canvas that frames reads back from.
type frameCanvas interface {
	render.Canvas
	Err() error
	Image() (*image.RGBA, error)
}

func frames(ctx context.Context, c frameCanvas, cfg *config.Config, lopts []logo.Option, opts Options) ([]string, error) {
	sched := animate.NewManualScheduler(epoch)
	l := logo.New(c, append(lopts, logo.WithAnimator(animate.WithScheduler(sched)))...)
	l.Start()
	cx, cy := float64(cfg.Width)/2, float64(cfg.Height)/2
	if opts.Spin != 0 {
		l.PointerDown(cx, cy)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	step := time.Second / time.Duration(cfg.FPS)
	paths := make([]string, opts.Frames)
	for i := range opts.Frames {
		if err := gctx.Err(); err != nil {
			break
		}
		if opts.Spin != 0 {
			l.PointerMove(cx+opts.Spin*float64(i+1), cy)
		}
		sched.Advance(step)
		if err := c.Err(); err != nil {
			_ = g.Wait()
			return nil, err
		}
		img, err := c.Image()
		if err != nil {
			// No encoder may still be writing once Frames returns.
			_ = g.Wait()
			return nil, err
		}

		path := filepath.Join(opts.Dir, FrameName(i))
		thumb := filepath.Join(opts.Dir, ThumbName(i))
		paths[i] = path
		g.Go(func() error {
			if err := writePNG(path, img); err != nil {
				return err
			}
			if opts.Thumb > 0 {
				return writePNG(thumb, Thumbnail(img, opts.Thumb))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	isologo.Logger().Info("export: frames written", "dir", opts.Dir, "frames", opts.Frames, "animator_frames", l.Animator.Frames())
	return paths, nil
}

// Thumbnail scales img to width pixels wide, keeping its aspect ratio.
func Thumbnail(img image.Image, width int) *image.RGBA {
	b := img.Bounds()
	height := max(1, b.Dy()*width/max(1, b.Dx()))
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("export: encode %s: %w", path, err)
	}
	return nil
}

// Dump records the frame drawn at time at, rounded to the nearest frame
// of cfg.FPS, into a command stream and writes its text form to w. The
// first frame is drawn at elapsed zero.
func Dump(w io.Writer, cfg *config.Config, at time.Duration) (*recording.Recording, error) {
	lopts, err := cfg.LogoOptions()
	if err != nil {
		return nil, err
	}
	rec := recording.NewRecorder(cfg.Width, cfg.Height)
	sched := animate.NewManualScheduler(epoch)
	l := logo.New(rec, append(lopts, logo.WithAnimator(animate.WithScheduler(sched)))...)
	l.Start()

	step := time.Second / time.Duration(cfg.FPS)
	sched.Advance(0)
	for range max(0, at.Round(step)/step) {
		rec.FinishRecording()
		sched.Advance(step)
	}
	out := rec.FinishRecording()

	if _, err := io.WriteString(w, out.String()); err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return out, nil
}

// Replay draws a recorded frame onto a fresh gg canvas and writes it as a
// PNG to path.
func Replay(r *recording.Recording, path string) error {
	c, err := ggcanvas.New(r.Width(), r.Height())
	if err != nil {
		return err
	}
	defer c.Close()
	r.Playback(c)
	if err := c.Err(); err != nil {
		return err
	}
	return c.SavePNG(path)
}
