// Implements a PDF backend to render chart documents,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"errors"
	"image/color"
	"io"
	"strings"

	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgpath"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdoc.Driver  = Renderer{}
	_ svgdoc.Filler  = (*filler)(nil)
	_ svgdoc.Stroker = (*stroker)(nil)
)

// Renderer paints on the current page of a PDF,
// whose unit should be the point (1 user unit = 1 pixel).
// Texts use the PDF core fonts.
type Renderer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string // UTF-8 to the core fonts encoding
}

// implements the common path commands,
// shared by the filler and the stroker.
// The path is recorded, and written after the color.
type pather struct {
	pdf  *gofpdf.Fpdf
	path svgpath.Path
}

// implements the filling operation
type filler struct {
	pather
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// NewPDF returns a one page PDF of the document size,
// ready to be painted by a Renderer.
func NewPDF(doc *svgdoc.Document) (*gofpdf.Fpdf, error) {
	if !(doc.Width > 0 && doc.Height > 0) {
		return nil, errors.New("svgpdf: empty document")
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: doc.Width, Ht: doc.Height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf, pdf.Error()
}

// RenderDocument writes the document as a one page PDF file.
func RenderDocument(doc *svgdoc.Document, w io.Writer) error {
	pdf, err := NewPDF(doc)
	if err != nil {
		return err
	}
	doc.Draw(NewRenderer(pdf))
	return pdf.Output(w)
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f svgdoc.Filler, s svgdoc.Stroker) {
	if willFill {
		f = &filler{pather{pdf: r.pdf}}
	}
	if willStroke {
		s = &stroker{pather{pdf: r.pdf}}
	}
	return f, s
}

var fontFamilies = map[string]string{
	"sans-serif": "Helvetica",
	"serif":      "Times",
	"monospace":  "Courier",
}

// the core fonts encoding has no typographic minus
var textReplacer = strings.NewReplacer("−", "-")

func (r Renderer) DrawText(at fixed.Point26_6, text string, style svgdoc.TextStyle, c color.Color) {
	if c == nil {
		return
	}
	family, ok := fontFamilies[strings.ToLower(style.FontFamily)]
	if !ok {
		family = "Helvetica"
	}
	fontStyle := ""
	if style.FontWeight == "bold" {
		fontStyle = "B"
	}
	r.pdf.SetFont(family, fontStyle, style.FontSize)
	cr, cg, cb, alpha := rgba(c)
	r.pdf.SetTextColor(cr, cg, cb)
	r.pdf.SetAlpha(alpha, "")

	text = r.tr(textReplacer.Replace(text))
	x, y := fixedTof(at)
	switch style.Anchor {
	case svgdoc.AnchorMiddle:
		x -= r.pdf.GetStringWidth(text) / 2
	case svgdoc.AnchorEnd:
		x -= r.pdf.GetStringWidth(text)
	}
	r.pdf.Text(x, y, text)
}

// rgba returns the 8-bit components of c, and its alpha in [0, 1]
func rgba(c color.Color) (r, g, b int, alpha float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B), float64(nc.A) / 255
}

func (p *pather) Clear() { p.path.Clear() }

func (p *pather) Start(a fixed.Point26_6) { p.path.Start(a) }

func (p *pather) Line(b fixed.Point26_6) { p.path.Line(b) }

func (p *pather) Stop(closeLoop bool) { p.path.Stop(closeLoop) }

// writePath sends the recorded path to the PDF
func (p *pather) writePath() {
	for _, op := range p.path {
		switch op := op.(type) {
		case svgpath.MoveTo:
			p.pdf.MoveTo(fixedTof(fixed.Point26_6(op)))
		case svgpath.LineTo:
			p.pdf.LineTo(fixedTof(fixed.Point26_6(op)))
		case svgpath.Close:
			p.pdf.ClosePath()
		}
	}
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, alpha := rgba(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(opacity*alpha, "")
}

func (f *filler) Draw() {
	if len(f.path) == 0 {
		return
	}
	f.writePath()
	f.pdf.DrawPath("f")
}

func (s *stroker) SetColor(c color.Color, opacity float64) {
	r, g, b, alpha := rgba(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(opacity*alpha, "")
}

func (s *stroker) SetStrokeOptions(options svgdoc.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)
	s.pdf.SetLineCapStyle(options.Cap.String())
	s.pdf.SetLineJoinStyle(options.Join.String())
}

func (s *stroker) Draw() {
	if len(s.path) == 0 {
		return
	}
	s.writePath()
	s.pdf.DrawPath("S")
}
