package svgdoc

import (
	"image/color"

	"github.com/benoitkugler/svgchart/svgpath"
	"golang.org/x/image/math/fixed"
)

// Given a document, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge
// In particular, tranformations matrix are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line Adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor set the color for the current path
	SetColor(color color.Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)

	// DrawText paints one line of text, whose baseline
	// starts (or is centered, or ends, depending on the anchor) at `at`.
	DrawText(at fixed.Point26_6, text string, style TextStyle, color color.Color)
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	Miter JoinMode = iota // SVG default
	Round
	Bevel
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "round"
	case Bevel:
		return "bevel"
	case Miter:
		return "miter"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota // SVG default
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "butt"
	case SquareCap:
		return "square"
	case RoundCap:
		return "round"
	default:
		return "<unknown CapMode>"
	}
}

type StrokeOptions struct {
	LineWidth fixed.Int26_6 // width of the line
	Join      JoinMode
	Cap       CapMode
}

// Draw the document into the driver `d`.
func (doc *Document) Draw(d Driver) {
	drawGroup(d, doc.Root, svgpath.Identity, DefaultTextStyle, "")
}

func drawGroup(d Driver, g *Group, m svgpath.Matrix2D, style TextStyle, fill string) {
	m = m.Mult(g.Transform)
	style = g.Text.inherit(style)
	if g.Fill != "" {
		fill = g.Fill
	}
	for _, child := range g.Children {
		switch child := child.(type) {
		case *Group:
			drawGroup(d, child, m, style, fill)
		case *Path:
			drawPath(d, child.D, child.Style, m)
		case *Line:
			var p svgpath.Path
			p.AddLine(child.X1, child.Y1, child.X2, child.Y2)
			width := child.StrokeWidth
			if width == 0 {
				width = 1
			}
			opacity := child.StrokeOpacity
			if opacity == 0 {
				opacity = 1
			}
			strokePath(d, p, mustColor(child.Stroke), opacity, StrokeOptions{LineWidth: fixed.Int26_6(width * 64)}, m)
		case *Rect:
			var p svgpath.Path
			p.AddRect(child.X, child.Y, child.X+child.W, child.Y+child.H)
			drawPath(d, p, PathStyle{Fill: child.Fill}, m)
		case *Text:
			ts := child.Style.inherit(style)
			x, y := m.Transform(child.X, child.Y+child.Dy*ts.FontSize)
			textFill := child.Fill
			if textFill == "" {
				textFill = "currentColor"
			}
			d.DrawText(svgpath.ToFixedP(x, y), child.Content, ts, mustColor(textFill))
		}
	}
}

// drawPath draws the path into the driver while applying transform m.
func drawPath(d Driver, path svgpath.Path, style PathStyle, m svgpath.Matrix2D) {
	fillColor, strokeColor := mustColor(style.Fill), mustColor(style.Stroke)
	filler, stroker := d.SetupDrawers(fillColor != nil, strokeColor != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		sendPath(filler, path, m)
		filler.SetColor(fillColor, 1)
		filler.Draw()
	}

	if stroker != nil { // nil color disable lining
		width := style.StrokeWidth
		if width == 0 {
			width = 1
		}
		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fixed.Int26_6(width * 64),
			Join:      style.Join,
			Cap:       style.Cap,
		})
		sendPath(stroker, path, m)
		stroker.SetColor(strokeColor, 1)
		stroker.Draw()
	}
}

func strokePath(d Driver, path svgpath.Path, c color.Color, opacity float64, options StrokeOptions, m svgpath.Matrix2D) {
	_, stroker := d.SetupDrawers(false, c != nil)
	if stroker == nil {
		return
	}
	stroker.Clear()
	stroker.SetStrokeOptions(options)
	sendPath(stroker, path, m)
	stroker.SetColor(c, opacity)
	stroker.Draw()
}

func sendPath(dr Drawer, path svgpath.Path, m svgpath.Matrix2D) {
	started := false
	for _, op := range path {
		switch op := op.(type) {
		case svgpath.MoveTo:
			if started {
				dr.Stop(false) // implicit close if currently in path.
			}
			dr.Start(m.TFixed(fixed.Point26_6(op)))
			started = true
		case svgpath.LineTo:
			dr.Line(m.TFixed(fixed.Point26_6(op)))
		case svgpath.Close:
			dr.Stop(true)
			started = false
		}
	}
	if started {
		dr.Stop(false)
	}
}
