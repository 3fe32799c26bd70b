package alt

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/pdf/contentstream"
	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgpath"
)

func sampleDocument() *svgdoc.Document {
	doc := svgdoc.NewDocument(300, 200)
	g := doc.Root.AppendGroup("plot")
	g.Transform = svgpath.Identity.Translate(150, 50)

	for _, y := range []float64{10, 40} {
		var p svgpath.Path
		p.AddLine(0, y, 20, y+20)
		g.Append(&svgdoc.Path{D: p, Style: svgdoc.PathStyle{Stroke: "red", StrokeWidth: 1.5, Join: svgdoc.Round, Cap: svgdoc.RoundCap}})
	}
	g.Append(&svgdoc.Rect{X: 1, Y: 2, W: 20, H: 20, Fill: "blue"})
	g.Append(&svgdoc.Text{X: 5, Y: 6, Content: "Jan 01, 21"})
	return doc
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sample.pdf")
	if err := WriteFile(sampleDocument(), name); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("%PDF-")) {
		t.Errorf("unexpected header %q", b[:8])
	}
}

func TestOpacityStatesCached(t *testing.T) {
	ap := contentstream.NewAppearance(300, 200)
	r := NewRenderer(&ap)
	sampleDocument().Draw(r)
	if len(r.strokeOpacityStates) != 1 || len(r.fillOpacityStates) != 1 {
		t.Errorf("expected one state per kind, got %d and %d",
			len(r.strokeOpacityStates), len(r.fillOpacityStates))
	}
}

func TestEmptyDocument(t *testing.T) {
	if _, err := NewDocument(svgdoc.NewDocument(100, 0)); err == nil {
		t.Error("expected an error for an empty document")
	}
}
