package export

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/isologo/config"
	"github.com/gogpu/isologo/integration/ggcanvas"
	"github.com/gogpu/isologo/recording"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Width, cfg.Height = 64, 48
	cfg.FPS = 30
	return cfg
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func TestFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	paths, err := Frames(context.Background(), smallConfig(), Options{
		Dir:     dir,
		Frames:  3,
		Spin:    4,
		Thumb:   16,
		Workers: 2,
	})
	require.NoError(t, err)
	require.Len(t, paths, 3)

	for i, p := range paths {
		assert.Equal(t, filepath.Join(dir, FrameName(i)), p)
		img := decodePNG(t, p)
		assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())

		thumb := decodePNG(t, filepath.Join(dir, ThumbName(i)))
		assert.Equal(t, image.Rect(0, 0, 16, 12), thumb.Bounds())
	}
}

func TestFramesErrors(t *testing.T) {
	_, err := Frames(context.Background(), smallConfig(), Options{Dir: t.TempDir()})
	assert.ErrorIs(t, err, ErrNoFrames)

	cfg := smallConfig()
	cfg.FPS = 0
	_, err = Frames(context.Background(), cfg, Options{Dir: t.TempDir(), Frames: 1})
	assert.ErrorIs(t, err, config.ErrInvalidFPS)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Frames(ctx, smallConfig(), Options{Dir: t.TempDir(), Frames: 2})
	assert.ErrorIs(t, err, context.Canceled)
}

var errReadback = errors.New("readback failed")

// failingCanvas hands out ok frames, then fails every readback.
type failingCanvas struct {
	*ggcanvas.Canvas
	ok int
}

func (c *failingCanvas) Image() (*image.RGBA, error) {
	if c.ok == 0 {
		return nil, errReadback
	}
	c.ok--
	return c.Canvas.Image()
}

func TestFramesWaitsForEncodersOnError(t *testing.T) {
	cfg := smallConfig()
	lopts, err := cfg.LogoOptions()
	require.NoError(t, err)
	gc, err := ggcanvas.New(cfg.Width, cfg.Height)
	require.NoError(t, err)
	defer gc.Close()

	dir := t.TempDir()
	_, err = frames(context.Background(), &failingCanvas{Canvas: gc, ok: 2}, cfg, lopts, Options{
		Dir:     dir,
		Frames:  5,
		Thumb:   16,
		Workers: 1,
	})
	require.ErrorIs(t, err, errReadback)

	// Frames queued before the failure are complete on return.
	for i := range 2 {
		decodePNG(t, filepath.Join(dir, FrameName(i)))
		decodePNG(t, filepath.Join(dir, ThumbName(i)))
	}
	assert.NoFileExists(t, filepath.Join(dir, FrameName(2)))
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 100, 10))
	assert.Equal(t, image.Rect(0, 0, 20, 2), Thumbnail(src, 20).Bounds())
	assert.Equal(t, image.Rect(0, 0, 5, 1), Thumbnail(src, 5).Bounds())
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer
	rec, err := Dump(&buf, smallConfig(), 2*time.Second)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	assert.True(t, strings.HasPrefix(lines[0], "Clear "), lines[0])
	assert.Len(t, lines, len(rec.Commands()))
	assert.Equal(t, recording.CmdClear, rec.Commands()[0].Type())
	assert.NotEmpty(t, rec.Fills())
}

func TestDumpTiming(t *testing.T) {
	dump := func(at time.Duration) *recording.Recording {
		t.Helper()
		rec, err := Dump(io.Discard, smallConfig(), at)
		require.NoError(t, err)
		return rec
	}
	step := time.Second / 30

	// At zero the intro has not grown yet: every fill collapses onto the
	// scene center.
	first := dump(0)
	require.NotEmpty(t, first.Fills())
	center := first.Fills()[0].Path[0].Points[0]
	for _, f := range first.Fills() {
		for _, sp := range f.Path {
			for _, p := range sp.Points {
				assert.InDelta(t, center.X, p.X, 1e-9)
				assert.InDelta(t, center.Y, p.Y, 1e-9)
			}
		}
	}

	// Times round to the nearest frame.
	assert.Equal(t, first.String(), dump(step/3).String())
	assert.Equal(t, dump(step).String(), dump(step*4/3).String())
	assert.Equal(t, dump(2*step).String(), dump(step*5/3).String())
	assert.NotEqual(t, first.String(), dump(step).String())
}

func TestReplay(t *testing.T) {
	var buf bytes.Buffer
	rec, err := Dump(&buf, smallConfig(), 0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "replay.png")
	require.NoError(t, Replay(rec, path))
	assert.Equal(t, image.Rect(0, 0, 64, 48), decodePNG(t, path).Bounds())
}
