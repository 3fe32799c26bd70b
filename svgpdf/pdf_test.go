package svgpdf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgpath"
)

func sampleDocument() *svgdoc.Document {
	doc := svgdoc.NewDocument(300, 200)
	g := doc.Root.AppendGroup("plot")
	g.Transform = svgpath.Identity.Translate(150, 50)

	var p svgpath.Path
	p.AddLine(0, 10, 20, 30)
	g.Append(&svgdoc.Path{D: p, Style: svgdoc.PathStyle{Stroke: "red", StrokeWidth: 1.5, Join: svgdoc.Round, Cap: svgdoc.RoundCap}})
	g.Append(&svgdoc.Rect{X: 1, Y: 2, W: 20, H: 20, Fill: "blue"})
	g.Append(&svgdoc.Text{X: 5, Y: 6, Content: "Jan 01, 21", Style: svgdoc.TextStyle{Anchor: svgdoc.AnchorMiddle, FontWeight: "bold"}})
	g.Append(&svgdoc.Text{X: 5, Y: 26, Content: "−5"})
	return doc
}

func TestRenderDocument(t *testing.T) {
	var b bytes.Buffer
	if err := RenderDocument(sampleDocument(), &b); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "%PDF-") {
		t.Errorf("unexpected header %q", b.String()[:10])
	}
	if err := os.WriteFile(filepath.Join(t.TempDir(), "sample.pdf"), b.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestRendererContent(t *testing.T) {
	doc := sampleDocument()
	pdf, err := NewPDF(doc)
	if err != nil {
		t.Fatal(err)
	}
	pdf.SetCompression(false)
	doc.Draw(NewRenderer(pdf))

	var b bytes.Buffer
	if err := pdf.Output(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, exp := range []string{
		"1.000 0.000 0.000 RG", // red stroke
		"0.000 0.000 1.000 rg", // blue fill
		"(Jan 01, 21) Tj",
		"(-5) Tj",
		"/Helvetica-Bold",
	} {
		if !strings.Contains(out, exp) {
			t.Errorf("missing %q in the content", exp)
		}
	}
}

func TestEmptyDocument(t *testing.T) {
	var b bytes.Buffer
	if err := RenderDocument(svgdoc.NewDocument(0, 100), &b); err == nil {
		t.Error("expected an error for an empty document")
	}
}
