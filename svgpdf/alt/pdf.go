// Alternative implementation of PDF rendering, writing
// the page content stream directly (experimental).
package alt

import (
	"errors"
	"image/color"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/pdf/model"
	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgpath"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdoc.Driver  = Renderer{}
	_ svgdoc.Filler  = (*filler)(nil)
	_ svgdoc.Stroker = (*stroker)(nil)
)

// Renderer paints paths on a content stream.
// Texts are not rendered.
type Renderer struct {
	pdf                 *contentstream.Appearance
	fillOpacityStates   map[float64]*model.GraphicState
	strokeOpacityStates map[float64]*model.GraphicState
}

// pather records the path, which is only written
// once the painting state is set
type pather struct {
	pdf     *contentstream.Appearance
	path    svgpath.Path
	color   color.Color
	opacity float64
}

type filler struct {
	pather
	opacityStates map[float64]*model.GraphicState
}

type stroker struct {
	pather
	options       svgdoc.StrokeOptions
	opacityStates map[float64]*model.GraphicState
}

// NewRenderer return a renderer which will
// write to the given content stream.
func NewRenderer(cs *contentstream.Appearance) Renderer {
	return Renderer{
		pdf:                 cs,
		fillOpacityStates:   make(map[float64]*model.GraphicState),
		strokeOpacityStates: make(map[float64]*model.GraphicState),
	}
}

// NewDocument paints `doc` on the single page of a new PDF document.
// The y axis is flipped so that the document coordinates,
// which grow downward, can be used as is.
func NewDocument(doc *svgdoc.Document) (model.Document, error) {
	var out model.Document
	if !(doc.Width > 0 && doc.Height > 0) {
		return out, errors.New("alt: empty document")
	}
	pdf := contentstream.NewAppearance(doc.Width, doc.Height)
	flip := svgpath.Identity.Translate(0, doc.Height).Scale(1, -1)
	pdf.Ops(
		contentstream.OpSave{},
		contentstream.OpConcat{Matrix: model.Matrix{flip.A, flip.B, flip.C, flip.D, flip.E, flip.F}},
	)
	doc.Draw(NewRenderer(&pdf))
	pdf.Ops(contentstream.OpRestore{})
	page := new(model.PageObject)
	pdf.ApplyToPageObject(page, true)
	out.Catalog.Pages.Kids = append(out.Catalog.Pages.Kids, page)
	return out, nil
}

// WriteFile writes the document as a one page PDF file.
func WriteFile(doc *svgdoc.Document, pdfName string) error {
	out, err := NewDocument(doc)
	if err != nil {
		return err
	}
	return out.WriteFile(pdfName, nil)
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (f svgdoc.Filler, s svgdoc.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, opacityStates: r.fillOpacityStates}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf}, opacityStates: r.strokeOpacityStates}
	}
	return f, s
}

// TODO: render texts with the standard Type1 fonts.
func (r Renderer) DrawText(fixed.Point26_6, string, svgdoc.TextStyle, color.Color) {}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() { p.path.Clear() }

func (p *pather) Start(a fixed.Point26_6) { p.path.Start(a) }

func (p *pather) Line(b fixed.Point26_6) { p.path.Line(b) }

func (p *pather) Stop(closeLoop bool) { p.path.Stop(closeLoop) }

func (p *pather) SetColor(c color.Color, opacity float64) {
	p.color, p.opacity = c, opacity
}

// setOpacity selects the graphic state matching the current
// opacity, built with `newState` on first use
func (p *pather) setOpacity(states map[float64]*model.GraphicState, newState func(o model.ObjFloat) *model.GraphicState) {
	_, _, _, a := p.color.RGBA()
	opacity := p.opacity * float64(a) / 0xffff
	gs, ok := states[opacity]
	if !ok {
		gs = newState(model.ObjFloat(opacity))
		states[opacity] = gs
	}
	name := p.pdf.AddExtGState(gs)
	p.pdf.Ops(contentstream.OpSetExtGState{Dict: name})
}

// writePath sends the recorded path to the content stream
func (p *pather) writePath() {
	for _, op := range p.path {
		switch op := op.(type) {
		case svgpath.MoveTo:
			x, y := fixedTof(fixed.Point26_6(op))
			p.pdf.Ops(contentstream.OpMoveTo{X: x, Y: y})
		case svgpath.LineTo:
			x, y := fixedTof(fixed.Point26_6(op))
			p.pdf.Ops(contentstream.OpLineTo{X: x, Y: y})
		case svgpath.Close:
			p.pdf.Ops(contentstream.OpClosePath{})
		}
	}
}

func (f *filler) Draw() {
	if f.color == nil || len(f.path) == 0 {
		return
	}
	f.pdf.SetColorFill(f.color)
	f.setOpacity(f.opacityStates, func(o model.ObjFloat) *model.GraphicState {
		return &model.GraphicState{Ca: o, BM: []model.Name{"Normal"}}
	})
	f.writePath()
	f.pdf.Ops(contentstream.OpFill{})
}

func (s *stroker) SetStrokeOptions(options svgdoc.StrokeOptions) {
	s.options = options
}

var (
	capStyles  = [...]uint8{svgdoc.ButtCap: 0, svgdoc.RoundCap: 1, svgdoc.SquareCap: 2}
	joinStyles = [...]uint8{svgdoc.Miter: 0, svgdoc.Round: 1, svgdoc.Bevel: 2}
)

func (s *stroker) Draw() {
	if s.color == nil || len(s.path) == 0 {
		return
	}
	s.pdf.Ops(
		contentstream.OpSetLineWidth{W: float64(s.options.LineWidth) / 64},
		contentstream.OpSetLineCap{Style: capStyles[s.options.Cap]},
		contentstream.OpSetLineJoin{Style: joinStyles[s.options.Join]},
	)
	s.pdf.SetColorStroke(s.color)
	s.setOpacity(s.opacityStates, func(o model.ObjFloat) *model.GraphicState {
		return &model.GraphicState{CA: o, BM: []model.Name{"Normal"}}
	})
	s.writePath()
	s.pdf.Ops(contentstream.OpStroke{})
}
