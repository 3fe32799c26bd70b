package svgraster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgpath"
)

func toPngBytes(m image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := png.Encode(&b, m)
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func sampleDocument() *svgdoc.Document {
	doc := svgdoc.NewDocument(120.5, 100)
	g := doc.Root.AppendGroup("plot")
	g.Transform = svgpath.Identity.Translate(10, 0)

	var p svgpath.Path
	p.AddLine(0, 50, 80, 50)
	g.Append(&svgdoc.Path{D: p, Style: svgdoc.PathStyle{Stroke: "red", StrokeWidth: 4, Join: svgdoc.Round, Cap: svgdoc.RoundCap}})
	g.Append(&svgdoc.Rect{X: 0, Y: 60, W: 20, H: 20, Fill: "blue"})
	g.Append(&svgdoc.Text{X: 40, Y: 20, Content: "Jan 01, 21", Style: svgdoc.TextStyle{Anchor: svgdoc.AnchorMiddle}})
	return doc
}

func isRed(c color.RGBA) bool  { return c.R > 200 && c.G < 60 && c.B < 60 && c.A > 200 }
func isBlue(c color.RGBA) bool { return c.B > 200 && c.R < 60 && c.G < 60 && c.A > 200 }

func TestRasterDocument(t *testing.T) {
	img := RasterDocument(sampleDocument())
	if b := img.Bounds(); b.Dx() != 121 || b.Dy() != 100 {
		t.Fatalf("unexpected image size %v", b)
	}
	if c := img.RGBAAt(50, 50); !isRed(c) {
		t.Errorf("expected a red stroke, got %v", c)
	}
	if c := img.RGBAAt(20, 70); !isBlue(c) {
		t.Errorf("expected a blue fill, got %v", c)
	}
	if c := img.RGBAAt(5, 5); c.A != 0 {
		t.Errorf("expected a transparent background, got %v", c)
	}

	// the label is centered on x = 50, above its baseline at y = 20
	var inked int
	for y := 8; y < 24; y++ {
		for x := 10; x < 90; x++ {
			if img.RGBAAt(x, y).A != 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("expected the label to be painted")
	}
}

func TestRasterDocumentOn(t *testing.T) {
	img := RasterDocumentOn(sampleDocument(), color.White)
	if c := img.RGBAAt(5, 5); c != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("expected a white background, got %v", c)
	}
	if c := img.RGBAAt(50, 50); !isRed(c) {
		t.Errorf("expected a red stroke, got %v", c)
	}

	b, err := toPngBytes(img)
	if err != nil {
		t.Fatalf("can't encode image: %s", err)
	}
	if err := os.WriteFile(filepath.Join(t.TempDir(), "sample.png"), b, 0o644); err != nil {
		t.Fatalf("can't save rasterized image: %s", err)
	}
}

func TestTextAnchor(t *testing.T) {
	inkedColumns := func(anchor svgdoc.TextAnchor) (min, max int) {
		doc := svgdoc.NewDocument(200, 40)
		doc.Root.Append(&svgdoc.Text{X: 100, Y: 20, Content: "0000", Style: svgdoc.TextStyle{Anchor: anchor}})
		img := RasterDocument(doc)
		min, max = 200, -1
		for x := 0; x < 200; x++ {
			for y := 0; y < 40; y++ {
				if img.RGBAAt(x, y).A != 0 {
					if x < min {
						min = x
					}
					if x > max {
						max = x
					}
				}
			}
		}
		return min, max
	}
	if min, _ := inkedColumns(svgdoc.AnchorStart); min < 100 {
		t.Errorf("start anchored text should begin at 100, got %d", min)
	}
	if _, max := inkedColumns(svgdoc.AnchorEnd); max >= 100 {
		t.Errorf("end anchored text should end at 100, got %d", max)
	}
	if min, max := inkedColumns(svgdoc.AnchorMiddle); min >= 100 || max < 100 {
		t.Errorf("middle anchored text should span 100, got %d-%d", min, max)
	}
}
