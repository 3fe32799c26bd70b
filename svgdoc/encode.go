package svgdoc

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
)

// errWriter keeps the first write error, since
// the svg canvas does not report them
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	var n int
	n, e.err = e.w.Write(p)
	return n, e.err
}

// Encode writes the document as a standalone SVG file.
func (doc *Document) Encode(w io.Writer) error {
	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(doc.Width, doc.Height)
	encodeChildren(canvas, doc.Root)
	canvas.End()
	return ew.err
}

// String returns the SVG source of the document.
func (doc *Document) String() string {
	var b bytes.Buffer
	_ = doc.Encode(&b)
	return b.String()
}

func attr(k, v string) string {
	var b bytes.Buffer
	b.WriteString(k)
	b.WriteString(`="`)
	_ = xml.EscapeText(&b, []byte(v))
	b.WriteByte('"')
	return b.String()
}

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func textAttrs(s TextStyle) []string {
	var out []string
	if s.FontFamily != "" {
		out = append(out, attr("font-family", s.FontFamily))
	}
	if s.FontSize != 0 {
		out = append(out, attr("font-size", num(s.FontSize)))
	}
	if s.FontWeight != "" {
		out = append(out, attr("font-weight", s.FontWeight))
	}
	if s.Anchor != AnchorInherit {
		out = append(out, attr("text-anchor", s.Anchor.String()))
	}
	return out
}

func encodeChildren(canvas *svg.SVG, g *Group) {
	for _, child := range g.Children {
		encodeNode(canvas, child)
	}
}

func encodeNode(canvas *svg.SVG, n Node) {
	switch n := n.(type) {
	case *Group:
		var attrs []string
		if n.Class != "" {
			attrs = append(attrs, attr("class", n.Class))
		}
		if !n.Transform.IsIdentity() {
			attrs = append(attrs, attr("transform", n.Transform.String()))
		}
		if n.Fill != "" {
			attrs = append(attrs, attr("fill", n.Fill))
		}
		attrs = append(attrs, textAttrs(n.Text)...)
		canvas.Group(attrs...)
		encodeChildren(canvas, n)
		canvas.Gend()
	case *Path:
		attrs := []string{}
		if n.Class != "" {
			attrs = append(attrs, attr("class", n.Class))
		}
		fill := n.Style.Fill
		if fill == "" {
			fill = "none"
		}
		attrs = append(attrs, attr("fill", fill))
		if n.Style.Stroke != "" {
			attrs = append(attrs, attr("stroke", n.Style.Stroke))
		}
		if n.Style.StrokeWidth != 0 {
			attrs = append(attrs, attr("stroke-width", num(n.Style.StrokeWidth)))
		}
		if n.Style.Join != Miter {
			attrs = append(attrs, attr("stroke-linejoin", n.Style.Join.String()))
		}
		if n.Style.Cap != ButtCap {
			attrs = append(attrs, attr("stroke-linecap", n.Style.Cap.String()))
		}
		canvas.Path(n.D.ToSVGPath(), attrs...)
	case *Line:
		attrs := []string{}
		if n.Class != "" {
			attrs = append(attrs, attr("class", n.Class))
		}
		stroke := n.Stroke
		if stroke == "" {
			stroke = "currentColor"
		}
		attrs = append(attrs, attr("stroke", stroke))
		if n.StrokeWidth != 0 {
			attrs = append(attrs, attr("stroke-width", num(n.StrokeWidth)))
		}
		if n.StrokeOpacity != 0 {
			attrs = append(attrs, attr("stroke-opacity", num(n.StrokeOpacity)))
		}
		canvas.Line(n.X1, n.Y1, n.X2, n.Y2, attrs...)
	case *Rect:
		attrs := []string{}
		if n.Class != "" {
			attrs = append(attrs, attr("class", n.Class))
		}
		attrs = append(attrs, attr("fill", n.Fill))
		canvas.Rect(n.X, n.Y, n.W, n.H, attrs...)
	case *Text:
		attrs := []string{}
		if n.Class != "" {
			attrs = append(attrs, attr("class", n.Class))
		}
		if n.Dy != 0 {
			attrs = append(attrs, attr("dy", num(n.Dy)+"em"))
		}
		if n.Fill != "" {
			attrs = append(attrs, attr("fill", n.Fill))
		}
		attrs = append(attrs, textAttrs(n.Style)...)
		canvas.Text(n.X, n.Y, n.Content, attrs...)
	}
}
