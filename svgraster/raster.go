// Implements a raster backend to render chart documents,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"

	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var _ svgdoc.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints on an image.
// Texts use a fixed size bitmap face, whatever their font size.
type Renderer struct {
	dst    draw.Image
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
	face   font.Face
}

// NewRenderer returns a renderer painting on `dst`,
// using a rasterx.ScannerGV.
func NewRenderer(dst draw.Image) *Renderer {
	bounds := dst.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	return &Renderer{
		dst:    dst,
		dasher: rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, dst, bounds)),
		filler: rasterx.NewFiller(w, h, rasterx.NewScannerGV(w, h, dst, bounds)),
		face:   basicfont.Face7x13,
	}
}

// RasterDocument renders the document on a new, transparent
// image of the document size.
func RasterDocument(doc *svgdoc.Document) *image.RGBA {
	w, h := int(math.Ceil(doc.Width)), int(math.Ceil(doc.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	doc.Draw(NewRenderer(img))
	return img
}

// RasterDocumentOn is like RasterDocument, but first
// paints the image with the `background` color.
func RasterDocumentOn(doc *svgdoc.Document, background color.Color) *image.RGBA {
	w, h := int(math.Ceil(doc.Width)), int(math.Ceil(doc.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	doc.Draw(NewRenderer(img))
	return img
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (f svgdoc.Filler, s svgdoc.Stroker) {
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

// the bitmap face has no glyph for the typographic minus
var textReplacer = strings.NewReplacer("−", "-")

func (rd *Renderer) DrawText(at fixed.Point26_6, text string, style svgdoc.TextStyle, c color.Color) {
	if c == nil {
		return
	}
	text = textReplacer.Replace(text)
	d := font.Drawer{
		Dst:  rd.dst,
		Src:  image.NewUniform(c),
		Face: rd.face,
		Dot:  at,
	}
	switch style.Anchor {
	case svgdoc.AnchorMiddle:
		d.Dot.X -= d.MeasureString(text) / 2
	case svgdoc.AnchorEnd:
		d.Dot.X -= d.MeasureString(text)
	}
	d.DrawString(text)
}

type filler struct{ *rasterx.Filler }

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct{ *rasterx.Dasher }

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdoc.Round: rasterx.Round,
		svgdoc.Bevel: rasterx.Bevel,
		svgdoc.Miter: rasterx.Miter,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdoc.ButtCap:   rasterx.ButtCap,
		svgdoc.SquareCap: rasterx.SquareCap,
		svgdoc.RoundCap:  rasterx.RoundCap,
	}
)

// SVG default
const miterLimit = 4 * 64

func (s stroker) SetStrokeOptions(options svgdoc.StrokeOptions) {
	capF := capToFunc[options.Cap]
	s.Dasher.SetStroke(options.LineWidth, miterLimit, capF, capF,
		rasterx.FlatGap, joinToJoin[options.Join], nil, 0)
}
