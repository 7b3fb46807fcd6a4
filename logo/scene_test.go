package logo

import (
	"math"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/isologo"
)

func TestDefaultSceneStructure(t *testing.T) {
	s := DefaultScene(DefaultPalette())

	// Four cubes share three face pairs: 24 - 6 faces remain.
	assert.Len(t, s.Body.Faces, 18)
	assert.Len(t, s.Tops, 3)
	assert.Len(t, s.Lefts, 3)
	assert.Len(t, s.Rights, 3)
	assert.Len(t, s.Corners, 3)
	assert.Len(t, s.Shadows, 3)

	counts := map[string]int{}
	for _, f := range s.Body.Faces {
		counts[s.Kind(f)]++
	}
	assert.Equal(t, map[string]int{
		"top": 3, "bottom": 3, "right": 3, "back": 3, "left": 3, "rear": 3,
	}, counts)
	assert.Empty(t, s.Kind(s.Shadows[0]))
}

func TestSceneShadows(t *testing.T) {
	s := DefaultScene(DefaultPalette())
	for _, sh := range s.Shadows {
		require.NotNil(t, sh.DropShadowOf)
		assert.Equal(t, "bottom", s.Kind(sh.DropShadowOf))
		assert.Zero(t, sh.Fill.A)
		assert.Zero(t, sh.Stroke.A)

		want := sh.DropShadowOf.Center().Sub(isologo.Pt(0, shadowDrop, 0))
		assert.True(t, sh.Center().Approx(want, 1e-12))
	}
}

// bounds returns the world-space bounding box of the faces of shape as
// rendered through s.Root.
func bounds(s *Scene, shape *isologo.Shape) (lo, hi isologo.Point) {
	lo = isologo.Pt(math.Inf(1), math.Inf(1), math.Inf(1))
	hi = isologo.Pt(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	s.Root.EachRenderable(isologo.NewMatrix(), func(n isologo.Node, m *isologo.Matrix) {
		if n != shape {
			return
		}
		for _, f := range shape.Faces {
			for _, p := range f.Points {
				q := p.Transformed(m)
				lo = isologo.Pt(min(lo.X, q.X), min(lo.Y, q.Y), min(lo.Z, q.Z))
				hi = isologo.Pt(max(hi.X, q.X), max(hi.Y, q.Y), max(hi.Z, q.Z))
			}
		}
	})
	return lo, hi
}

func TestSceneCentered(t *testing.T) {
	s := DefaultScene(DefaultPalette())
	lo, hi := bounds(s, s.Body)
	assert.Equal(t, isologo.Pt(-1, -1, -1), lo)
	assert.Equal(t, isologo.Pt(1, 1, 1), hi)
}

func TestScenePoseScalesAboutCenter(t *testing.T) {
	s := DefaultScene(DefaultPalette())
	ground := s.Ground.Children[0].(*isologo.Shape)
	_, full := bounds(s, ground)

	s.Pose(0.5, 0)
	lo, hi := bounds(s, s.Body)
	assert.True(t, lo.Approx(isologo.Pt(-0.5, -0.5, -0.5), 1e-12), "lo = %+v", lo)
	assert.True(t, hi.Approx(isologo.Pt(0.5, 0.5, 0.5), 1e-12), "hi = %+v", hi)

	// Shadows shrink with the body and keep their drop below it.
	_, half := bounds(s, ground)
	assert.InDelta(t, full.X/2, half.X, 1e-12)
	assert.InDelta(t, full.Y/2, half.Y, 1e-12)

	s.Pose(0, 0)
	for _, shape := range []*isologo.Shape{s.Body, ground} {
		lo, hi := bounds(s, shape)
		assert.True(t, lo.Approx(isologo.Pt(0, 0, 0), 1e-12), "collapsed lo = %+v", lo)
		assert.True(t, hi.Approx(isologo.Pt(0, 0, 0), 1e-12), "collapsed hi = %+v", hi)
	}

	// Bob lifts the body only.
	s.Pose(1, 0.25)
	lo, _ = bounds(s, s.Body)
	assert.InDelta(t, -0.75, lo.Y, 1e-12)
	_, got := bounds(s, ground)
	assert.Equal(t, full, got)
}

func TestSceneCorners(t *testing.T) {
	s := DefaultScene(DefaultPalette())
	want := []isologo.Point{
		isologo.Pt(2, 1, 1),
		isologo.Pt(1, 1, 2),
		isologo.Pt(1, 2, 1),
	}
	require.Len(t, s.Corners, len(want))
	for i, k := range s.Corners {
		assert.Equal(t, want[i], k.Center)
		assert.Equal(t, gg.White, k.Color)
		for _, seg := range k.Segments {
			assert.InDelta(t, cornerLength, seg[0].Distance(seg[1]), 1e-12)
		}
	}
}

func TestSceneCalibration(t *testing.T) {
	s := DefaultScene(DefaultPalette())
	var maxHidden, minVisible = math.MinInt, math.MaxInt
	for _, f := range s.Body.Faces {
		switch s.Kind(f) {
		case "top", "left", "right":
			minVisible = min(minVisible, f.Order)
		default:
			maxHidden = max(maxHidden, f.Order)
		}
	}
	assert.Less(t, maxHidden, minVisible)
	for _, sh := range s.Shadows {
		assert.Equal(t, shadowOrder, sh.Order)
	}
}

func TestSceneColors(t *testing.T) {
	p := DefaultPalette()
	s := DefaultScene(p)

	for _, f := range s.Tops {
		assert.Equal(t, p.Top, f.Fill)
		assert.Equal(t, []float64{topDashOn, topDashOff}, f.LineDash)
	}
	for _, f := range s.Lefts {
		assert.Equal(t, p.Left, f.Fill)
		assert.Equal(t, p.Shade, f.Overlays[isologo.CompositeMultiply])
	}
	for _, f := range s.Rights {
		assert.Equal(t, p.Right, f.Fill)
		assert.Zero(t, f.Overlays[isologo.CompositeScreen].A)
	}
	for _, f := range s.Body.Faces {
		assert.Equal(t, p.Edge, f.Stroke)
	}
}

func TestSceneSetters(t *testing.T) {
	p := DefaultPalette()
	s := DefaultScene(p)

	s.SetHighlight(2)
	for _, f := range s.Rights {
		assert.Equal(t, p.Highlight, f.Overlays[isologo.CompositeScreen])
	}

	s.SetCornerAlpha(0.5)
	for _, k := range s.Corners {
		assert.Equal(t, 0.5, k.Color.A)
	}

	// A palette change keeps the animated intensities.
	p.Corner = gg.RGBA2(1, 0, 0, 1)
	s.SetPalette(p)
	for _, k := range s.Corners {
		assert.Equal(t, gg.RGBA2(1, 0, 0, 0.5), k.Color)
	}

	s.SetDashOffset(-3)
	for _, f := range s.Tops {
		assert.Equal(t, -3.0, f.LineDashOffset)
	}
}

func TestSingleBlockScene(t *testing.T) {
	s := NewScene([]Cell{{0, 0, 0}}, DefaultPalette())
	assert.Len(t, s.Body.Faces, 6)
	assert.Len(t, s.Corners, 1)
	assert.Len(t, s.Shadows, 1)
	assert.Len(t, s.Tops, 1)
}
