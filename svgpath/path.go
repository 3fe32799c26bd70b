// Implements an abstract representation of
// the vector paths drawn by a chart, which can then be consumed
// by the svgdoc tree and its painting drivers.
package svgpath

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Operation groups the different path commands
type Operation interface {
	// Point returns the end point of the operation,
	// or false for Close
	Point() (fixed.Point26_6, bool)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type Close struct{}

func (op MoveTo) Point() (fixed.Point26_6, bool) { return fixed.Point26_6(op), true }
func (op LineTo) Point() (fixed.Point26_6, bool) { return fixed.Point26_6(op), true }
func (Close) Point() (fixed.Point26_6, bool)     { return fixed.Point26_6{}, false }

// Path describes a sequence of basic operations, which should not be nil.
// Polylines with gaps are several MoveTo/LineTo runs in the same Path.
type Path []Operation

// ToSVGPath returns a string representation of the path,
// suitable for the `d` attribute of an SVG path element
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Subpaths returns the number of MoveTo operations,
// that is the number of disconnected runs of the path.
func (p Path) Subpaths() int {
	n := 0
	for _, op := range p {
		if _, ok := op.(MoveTo); ok {
			n++
		}
	}
	return n
}

// Bounds returns the smallest rectangle containing every point
// of the path. An empty path has an empty rectangle.
func (p Path) Bounds() fixed.Rectangle26_6 {
	var (
		out  fixed.Rectangle26_6
		seen bool
	)
	for _, op := range p {
		pt, ok := op.Point()
		if !ok {
			continue
		}
		if !seen {
			out = fixed.Rectangle26_6{Min: pt, Max: pt} // degenerate case
			seen = true
			continue
		}
		// fixed.Rectangle26_6.Union ignores degenerate rectangles,
		// so the extent is tracked by hand
		if pt.X < out.Min.X {
			out.Min.X = pt.X
		}
		if pt.Y < out.Min.Y {
			out.Min.Y = pt.Y
		}
		if pt.X > out.Max.X {
			out.Max.X = pt.X
		}
		if pt.Y > out.Max.Y {
			out.Max.Y = pt.Y
		}
	}
	return out
}

// ToFixedP converts two floats to a fixed point.
func ToFixedP(x, y float64) (p fixed.Point26_6) {
	p.X = fixed.Int26_6(x * 64)
	p.Y = fixed.Int26_6(y * 64)
	return
}

// FromFixedP converts a fixed point to two floats.
func FromFixedP(p fixed.Point26_6) (x, y float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}
