package recording

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/render"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear      CommandType = iota // Clear the whole canvas
	CmdFillPath                      // Fill a path
	CmdStrokePath                    // Stroke a path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:      "Clear",
	CmdFillPath:   "FillPath",
	CmdStrokePath: "StrokePath",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Subpath is a polyline started by MoveTo.
type Subpath struct {
	Points []gg.Point
	Closed bool
}

// Path is the list of subpaths current when a command was recorded.
type Path []Subpath

// NumPoints returns the total number of points in p.
func (p Path) NumPoints() int {
	n := 0
	for _, s := range p {
		n += len(s.Points)
	}
	return n
}

// Brush is a resolved paint: a gradient when Gradient is set, else Color.
type Brush struct {
	Color    gg.RGBA
	Gradient *render.RadialGradient
}

func (b Brush) String() string {
	if b.Gradient != nil {
		g := b.Gradient
		return fmt.Sprintf("radial(%.1f,%.1f r=%.1f..%.1f stops=%d)", g.X, g.Y, g.R0, g.R1, len(g.Stops))
	}
	return hexColor(b.Color)
}

// ClearCommand clears the canvas to a color.
type ClearCommand struct {
	Color gg.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

func (c ClearCommand) String() string {
	return "Clear " + hexColor(c.Color)
}

// FillPathCommand fills a path.
type FillPathCommand struct {
	Path        Path
	Brush       Brush
	Composite   isologo.CompositeOp
	ShadowBlur  float64
	ShadowColor gg.RGBA
}

// Type implements Command.
func (FillPathCommand) Type() CommandType { return CmdFillPath }

func (c FillPathCommand) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "FillPath pts=%d brush=%s", c.Path.NumPoints(), c.Brush)
	if c.Composite != isologo.CompositeSourceOver {
		fmt.Fprintf(&b, " composite=%s", c.Composite)
	}
	if c.ShadowBlur > 0 {
		fmt.Fprintf(&b, " shadow=%.2f/%s", c.ShadowBlur, hexColor(c.ShadowColor))
	}
	return b.String()
}

// StrokePathCommand strokes a path.
type StrokePathCommand struct {
	Path       Path
	Brush      Brush
	LineWidth  float64
	Dash       []float64
	DashOffset float64
	Composite  isologo.CompositeOp
}

// Type implements Command.
func (StrokePathCommand) Type() CommandType { return CmdStrokePath }

func (c StrokePathCommand) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "StrokePath pts=%d brush=%s width=%g", c.Path.NumPoints(), c.Brush, c.LineWidth)
	if len(c.Dash) > 0 {
		fmt.Fprintf(&b, " dash=%v@%g", c.Dash, c.DashOffset)
	}
	if c.Composite != isologo.CompositeSourceOver {
		fmt.Fprintf(&b, " composite=%s", c.Composite)
	}
	return b.String()
}

func hexColor(c gg.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
