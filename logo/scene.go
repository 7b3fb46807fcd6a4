package logo

import (
	"math"

	"github.com/gogpu/gg"

	"github.com/gogpu/isologo"
)

// Cell is an integer block position: the block spans Cell to Cell+1 on
// every axis.
type Cell struct{ X, Y, Z int }

// Blocks is the stock arrangement: a cube with one neighbor on each of
// the +x, +y and +z sides.
var Blocks = []Cell{
	{0, 0, 0},
	{1, 0, 0},
	{0, 0, 1},
	{0, 1, 0},
}

const (
	// shadowDrop is how far below the lowest faces the ground shadows lie.
	shadowDrop = 0.6

	// cornerLength is the length of the three corner segments.
	cornerLength = 0.4

	// topDash is the marching dash pattern on top faces, in pixels.
	topDashOn, topDashOff = 6, 4
)

// faceKind tells which way a face points.
type faceKind uint8

const (
	kindTop    faceKind = iota // +y
	kindBottom                 // -y
	kindRight                  // +x
	kindBack                   // -x
	kindLeft                   // +z
	kindRear                   // -z
)

// Scene is the logo scene graph plus direct handles on the parts the
// controller animates.
//
// Root holds two children: Model (the joined blocks and corners, which
// floats and scales during the intro) and Ground (the shadow faces, which
// scale with Model but do not float). Both are centered on the origin.
type Scene struct {
	Root   *isologo.SceneModel
	Model  *isologo.SceneModel
	Ground *isologo.SceneModel

	Body    *isologo.Shape
	Corners []*isologo.Corner
	Shadows []*isologo.Face

	Tops   []*isologo.Face
	Lefts  []*isologo.Face
	Rights []*isologo.Face

	center      isologo.Point
	kinds       map[*isologo.Face]faceKind
	palette     Palette
	highlight   float64
	cornerAlpha float64
}

// NewScene builds the logo from the given block cells, centered on the
// origin, colored with p. blocks must not be empty.
//
// Blocks are unit cubes placed with Rect and Transform and merged with
// Join, so faces shared by neighbors disappear.
func NewScene(blocks []Cell, p Palette) *Scene {
	occupied := make(map[Cell]bool, len(blocks))
	shapes := make([]*isologo.Shape, 0, len(blocks))
	lo, hi := blocks[0], blocks[0]
	for _, b := range blocks {
		occupied[b] = true
		m := isologo.NewMatrix().Translate(float64(b.X), float64(b.Y), float64(b.Z))
		shapes = append(shapes, isologo.Rect(1, 1, 1).Transform(m))
		lo = Cell{min(lo.X, b.X), min(lo.Y, b.Y), min(lo.Z, b.Z)}
		hi = Cell{max(hi.X, b.X+1), max(hi.Y, b.Y+1), max(hi.Z, b.Z+1)}
	}
	body := isologo.Join(shapes...)

	s := &Scene{
		Body:        body,
		kinds:       make(map[*isologo.Face]faceKind, len(body.Faces)),
		cornerAlpha: 1,
	}
	for _, f := range body.Faces {
		k := classify(f, occupied)
		s.kinds[f] = k
		switch k {
		case kindTop:
			f.LineDash = []float64{topDashOn, topDashOff}
			s.Tops = append(s.Tops, f)
		case kindLeft:
			s.Lefts = append(s.Lefts, f)
		case kindRight:
			s.Rights = append(s.Rights, f)
		}
	}

	for _, b := range blocks {
		if occupied[Cell{b.X + 1, b.Y, b.Z}] ||
			occupied[Cell{b.X, b.Y + 1, b.Z}] ||
			occupied[Cell{b.X, b.Y, b.Z + 1}] {
			continue
		}
		v := isologo.Pt(float64(b.X+1), float64(b.Y+1), float64(b.Z+1))
		k := isologo.NewCorner(v, -cornerLength, -cornerLength, -cornerLength)
		k.Radius = cornerLength * 1.5
		s.Corners = append(s.Corners, k)
	}

	var bottoms []*isologo.Face
	for _, f := range body.Faces {
		if s.kinds[f] == kindBottom {
			bottoms = append(bottoms, f)
		}
	}
	drop := isologo.NewMatrix().Translate(0, -shadowDrop, 0)
	for _, f := range bottoms {
		sh := f.Clone()
		sh.Transform(drop)
		sh.Fill = gg.Transparent
		sh.Stroke = gg.Transparent
		sh.LineDash = nil
		sh.Overlays = nil
		sh.DropShadowOf = f
		s.Shadows = append(s.Shadows, sh)
	}

	calibrate(s)
	s.SetPalette(p)

	s.center = isologo.Pt(
		float64(lo.X+hi.X)/2,
		float64(lo.Y+hi.Y)/2,
		float64(lo.Z+hi.Z)/2,
	)
	corners := make([]isologo.Node, len(s.Corners))
	for i, k := range s.Corners {
		corners[i] = k
	}
	s.Model = isologo.Group(s.Body).Add(corners...)
	s.Ground = isologo.Group(isologo.NewShape(s.Shadows...))
	s.Root = isologo.Group(s.Model, s.Ground)
	s.Pose(1, 0)
	return s
}

// Pose scales the scene by growth about its center and lifts Model by bob
// world units. Shadows scale too but stay on the ground.
func (s *Scene) Pose(growth, bob float64) {
	c := s.center
	s.Model.Xform.Reset().Translate(-c.X, -c.Y, -c.Z).Scale(growth).Translate(0, bob, 0)
	s.Ground.Xform.Reset().Translate(-c.X, -c.Y, -c.Z).Scale(growth)
}

// DefaultScene builds the stock logo.
func DefaultScene(p Palette) *Scene {
	return NewScene(Blocks, p)
}

// Kind reports which way f points: "top", "bottom", "right", "back", "left"
// or "rear". Faces not in the body report "".
func (s *Scene) Kind(f *isologo.Face) string {
	k, ok := s.kinds[f]
	if !ok {
		return ""
	}
	return kindNames[k]
}

var kindNames = [...]string{
	kindTop:    "top",
	kindBottom: "bottom",
	kindRight:  "right",
	kindBack:   "back",
	kindLeft:   "left",
	kindRear:   "rear",
}

// SetPalette recolors the scene in place.
func (s *Scene) SetPalette(p Palette) {
	s.palette = p
	for _, f := range s.Body.Faces {
		f.Fill = p.faceColor(s.kinds[f])
		f.Stroke = p.Edge
	}
	for _, f := range s.Lefts {
		f.SetOverlay(isologo.CompositeMultiply, p.Shade)
	}
	s.SetHighlight(s.highlight)
	s.SetCornerAlpha(s.cornerAlpha)
}

// Palette returns the current colors.
func (s *Scene) Palette() Palette {
	return s.palette
}

// SetHighlight sets the intensity in [0, 1] of the screen overlay on right
// faces.
func (s *Scene) SetHighlight(v float64) {
	s.highlight = clamp(v, 0, 1)
	hl := s.palette.Highlight
	hl.A *= s.highlight
	for _, f := range s.Rights {
		f.SetOverlay(isologo.CompositeScreen, hl)
	}
}

// SetCornerAlpha fades the corner glow; v is in [0, 1].
func (s *Scene) SetCornerAlpha(v float64) {
	s.cornerAlpha = clamp(v, 0, 1)
	c := s.palette.Corner
	c.A *= s.cornerAlpha
	for _, k := range s.Corners {
		k.Color = c
	}
}

// SetDashOffset moves the dash pattern of the top faces.
func (s *Scene) SetDashOffset(off float64) {
	for _, f := range s.Tops {
		f.LineDashOffset = off
	}
}

// classify finds the direction of an axis-aligned face of the joined body.
// The face lies on a grid plane and covers one cell side; exactly one of
// the two cells it separates is occupied, and the face points away from it.
func classify(f *isologo.Face, occupied map[Cell]bool) faceKind {
	c := f.Center()
	p0 := f.Points[0]
	switch {
	case allEqual(f.Points, func(p isologo.Point) float64 { return p.Y }):
		k := Cell{floor(c.X), floor(p0.Y), floor(c.Z)}
		if occupied[k] {
			return kindBottom
		}
		return kindTop
	case allEqual(f.Points, func(p isologo.Point) float64 { return p.X }):
		k := Cell{floor(p0.X), floor(c.Y), floor(c.Z)}
		if occupied[k] {
			return kindBack
		}
		return kindRight
	default:
		k := Cell{floor(c.X), floor(c.Y), floor(p0.Z)}
		if occupied[k] {
			return kindRear
		}
		return kindLeft
	}
}

func allEqual(pts []isologo.Point, coord func(isologo.Point) float64) bool {
	for _, p := range pts[1:] {
		if coord(p) != coord(pts[0]) {
			return false
		}
	}
	return true
}

func floor(v float64) int {
	return int(math.Floor(v))
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
