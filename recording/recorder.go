package recording

import (
	"slices"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/isologo"
	"github.com/gogpu/isologo/render"
)

var _ render.Canvas = (*Recorder)(nil)

// Recorder captures drawing operations as commands.
// It implements render.Canvas, so any renderer can draw into it. Use
// FinishRecording to obtain a Recording that can be replayed.
//
// The Recorder starts with default state: black fill and stroke, 1px line
// width, no dash, source-over compositing, no shadow.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command

	// Current path being built
	path Path

	// Current state
	state recorderState

	// State stack
	stateStack []recorderState
}

// recorderState stores the style state for Save/Restore.
type recorderState struct {
	fill        Brush
	stroke      Brush
	lineWidth   float64
	dash        []float64
	dashOffset  float64
	composite   isologo.CompositeOp
	shadowBlur  float64
	shadowColor gg.RGBA
}

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 256),
		state: recorderState{
			fill:      Brush{Color: gg.Black},
			stroke:    Brush{Color: gg.Black},
			lineWidth: 1,
		},
		stateStack: make([]recorderState, 0, 8),
	}
}

// Width implements render.Canvas.
func (r *Recorder) Width() int { return r.width }

// Height implements render.Canvas.
func (r *Recorder) Height() int { return r.height }

// Clear implements render.Canvas.
func (r *Recorder) Clear(c gg.RGBA) {
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// Save implements render.Canvas.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.state)
}

// Restore implements render.Canvas. Restore without a matching Save is
// ignored.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	r.state = r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
}

// BeginPath implements render.Canvas.
func (r *Recorder) BeginPath() {
	r.path = nil
}

// MoveTo implements render.Canvas.
func (r *Recorder) MoveTo(x, y float64) {
	r.path = append(r.path, Subpath{Points: []gg.Point{gg.Pt(x, y)}})
}

// LineTo implements render.Canvas. Without a current point it behaves
// like MoveTo.
func (r *Recorder) LineTo(x, y float64) {
	if len(r.path) == 0 || r.path[len(r.path)-1].Closed {
		r.MoveTo(x, y)
		return
	}
	sp := &r.path[len(r.path)-1]
	sp.Points = append(sp.Points, gg.Pt(x, y))
}

// ClosePath implements render.Canvas.
func (r *Recorder) ClosePath() {
	if len(r.path) > 0 {
		r.path[len(r.path)-1].Closed = true
	}
}

// SetFillColor implements render.Canvas.
func (r *Recorder) SetFillColor(c gg.RGBA) {
	r.state.fill = Brush{Color: c}
}

// SetFillGradient implements render.Canvas.
func (r *Recorder) SetFillGradient(g render.RadialGradient) {
	r.state.fill = Brush{Gradient: cloneGradient(g)}
}

// SetStrokeColor implements render.Canvas.
func (r *Recorder) SetStrokeColor(c gg.RGBA) {
	r.state.stroke = Brush{Color: c}
}

// SetStrokeGradient implements render.Canvas.
func (r *Recorder) SetStrokeGradient(g render.RadialGradient) {
	r.state.stroke = Brush{Gradient: cloneGradient(g)}
}

// SetLineWidth implements render.Canvas.
func (r *Recorder) SetLineWidth(w float64) {
	r.state.lineWidth = w
}

// SetLineDash implements render.Canvas.
func (r *Recorder) SetLineDash(dash []float64, offset float64) {
	r.state.dash = slices.Clone(dash)
	r.state.dashOffset = offset
}

// SetComposite implements render.Canvas.
func (r *Recorder) SetComposite(op isologo.CompositeOp) {
	r.state.composite = op
}

// SetShadow implements render.Canvas.
func (r *Recorder) SetShadow(blur float64, c gg.RGBA) {
	r.state.shadowBlur = blur
	r.state.shadowColor = c
}

// Fill implements render.Canvas.
func (r *Recorder) Fill() {
	r.commands = append(r.commands, FillPathCommand{
		Path:        r.clonePath(),
		Brush:       r.state.fill,
		Composite:   r.state.composite,
		ShadowBlur:  r.state.shadowBlur,
		ShadowColor: r.state.shadowColor,
	})
}

// Stroke implements render.Canvas.
func (r *Recorder) Stroke() {
	r.commands = append(r.commands, StrokePathCommand{
		Path:       r.clonePath(),
		Brush:      r.state.stroke,
		LineWidth:  r.state.lineWidth,
		Dash:       slices.Clone(r.state.dash),
		DashOffset: r.state.dashOffset,
		Composite:  r.state.composite,
	})
}

func (r *Recorder) clonePath() Path {
	p := make(Path, len(r.path))
	for i, sp := range r.path {
		p[i] = Subpath{Points: slices.Clone(sp.Points), Closed: sp.Closed}
	}
	return p
}

func cloneGradient(g render.RadialGradient) *render.RadialGradient {
	g.Stops = slices.Clone(g.Stops)
	return &g
}

// FinishRecording returns the Recording of every command so far and resets
// the recorder's command list, so one Recorder can record frame after frame.
func (r *Recorder) FinishRecording() *Recording {
	out := &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
	r.commands = make([]Command, 0, cap(out.commands))
	return out
}

// Recording is an immutable container for recorded drawing commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands. The slice must not be modified.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Fills returns the fill commands in recording order.
func (r *Recording) Fills() []FillPathCommand {
	return commandsOf[FillPathCommand](r.commands)
}

// Strokes returns the stroke commands in recording order.
func (r *Recording) Strokes() []StrokePathCommand {
	return commandsOf[StrokePathCommand](r.commands)
}

func commandsOf[T Command](cmds []Command) []T {
	var out []T
	for _, c := range cmds {
		if t, ok := c.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// String returns one line per command.
func (r *Recording) String() string {
	var b strings.Builder
	for _, c := range r.commands {
		if s, ok := c.(interface{ String() string }); ok {
			b.WriteString(s.String())
		} else {
			b.WriteString(c.Type().String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Playback replays every command onto c. Each drawing command runs
// between Save and Restore, so c's own state is left as it was.
func (r *Recording) Playback(c render.Canvas) {
	for _, cmd := range r.commands {
		switch v := cmd.(type) {
		case ClearCommand:
			c.Clear(v.Color)
		case FillPathCommand:
			c.Save()
			setFill(c, v.Brush)
			c.SetComposite(v.Composite)
			c.SetShadow(v.ShadowBlur, v.ShadowColor)
			replayPath(c, v.Path)
			c.Fill()
			c.Restore()
		case StrokePathCommand:
			c.Save()
			setStroke(c, v.Brush)
			c.SetLineWidth(v.LineWidth)
			c.SetLineDash(v.Dash, v.DashOffset)
			c.SetComposite(v.Composite)
			replayPath(c, v.Path)
			c.Stroke()
			c.Restore()
		}
	}
}

func setFill(c render.Canvas, b Brush) {
	if b.Gradient != nil {
		c.SetFillGradient(*b.Gradient)
		return
	}
	c.SetFillColor(b.Color)
}

func setStroke(c render.Canvas, b Brush) {
	if b.Gradient != nil {
		c.SetStrokeGradient(*b.Gradient)
		return
	}
	c.SetStrokeColor(b.Color)
}

func replayPath(c render.Canvas, p Path) {
	c.BeginPath()
	for _, sp := range p {
		for i, pt := range sp.Points {
			if i == 0 {
				c.MoveTo(pt.X, pt.Y)
			} else {
				c.LineTo(pt.X, pt.Y)
			}
		}
		if sp.Closed {
			c.ClosePath()
		}
	}
}
