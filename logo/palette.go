package logo

import "github.com/gogpu/gg"

// Palette holds the logo colors.
type Palette struct {
	Top   gg.RGBA // faces pointing up
	Left  gg.RGBA // faces pointing toward +z, drawn on the lower left
	Right gg.RGBA // faces pointing toward +x, drawn on the lower right
	Edge  gg.RGBA // face outlines

	// Shade is multiplied over left faces; Highlight is screened over right
	// faces with an intensity that follows the pointer.
	Shade     gg.RGBA
	Highlight gg.RGBA

	Corner gg.RGBA // corner glow
	Shadow gg.RGBA // ground shadow

	Background gg.RGBA
	Grid       gg.RGBA
}

// DefaultPalette returns the stock colors.
func DefaultPalette() Palette {
	return Palette{
		Top:        gg.Hex("#7fb2ff"),
		Left:       gg.Hex("#3d6fd8"),
		Right:      gg.Hex("#2a4fa8"),
		Edge:       gg.RGBA2(1, 1, 1, 0.35),
		Shade:      gg.Hex("#d9e2ff"),
		Highlight:  gg.Hex("#5d7ccc"),
		Corner:     gg.White,
		Shadow:     gg.RGBA2(0.05, 0.08, 0.2, 0.35),
		Background: gg.Hex("#0f1424"),
		Grid:       gg.RGBA2(1, 1, 1, 0.05),
	}
}

// faceColor returns the fill for a face of the given kind. Faces turned
// away from the camera reuse the color of the face opposite them.
func (p Palette) faceColor(k faceKind) gg.RGBA {
	switch k {
	case kindTop, kindBottom:
		return p.Top
	case kindLeft, kindRear:
		return p.Left
	default:
		return p.Right
	}
}
