package svgdoc

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/benoitkugler/svgchart/svgpath"
	"golang.org/x/image/math/fixed"
)

func sampleDocument() *Document {
	doc := NewDocument(300, 200)
	g := doc.Root.AppendGroup("plot")
	g.Transform = svgpath.Identity.Translate(150, 50)
	g.Text = TextStyle{FontSize: 12, Anchor: AnchorMiddle}

	var p svgpath.Path
	p.AddLine(0, 10, 20, 30)
	g.Append(&Path{Class: "series", D: p, Style: PathStyle{Fill: "none", Stroke: "red", StrokeWidth: 1.5, Join: Round, Cap: RoundCap}})
	g.Append(&Rect{Class: "swatch", X: 1, Y: 2, W: 20, H: 20, Fill: "blue"})
	g.Append(&Text{Class: "label", X: 5, Y: 6, Dy: 0.5, Content: "A & B"})
	return doc
}

func TestEncode(t *testing.T) {
	var b bytes.Buffer
	if err := sampleDocument().Encode(&b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	for _, exp := range []string{
		`<svg`,
		`class="plot"`,
		`transform="translate(150,50)"`,
		`d="M0.000,10.000 L20.000,30.000"`,
		`stroke="red"`,
		`stroke-linejoin="round"`,
		`stroke-linecap="round"`,
		`fill="blue"`,
		`dy="0.5em"`,
		`A &amp; B`,
		`</svg>`,
	} {
		if !strings.Contains(out, exp) {
			t.Errorf("missing %s in\n%s", exp, out)
		}
	}
}

func TestFind(t *testing.T) {
	doc := sampleDocument()
	if n := len(doc.Find("series")); n != 1 {
		t.Errorf("expected 1 series, got %d", n)
	}
	g := doc.FindGroup("plot")
	if g == nil {
		t.Fatal("missing plot group")
	}
	label := doc.Find("label")[0]
	m, ok := doc.Position(label)
	if !ok {
		t.Fatal("label not found")
	}
	if x, y := m.Offset(); x != 150 || y != 50 {
		t.Errorf("unexpected label offset %v %v", x, y)
	}
}

func TestElement(t *testing.T) {
	e := NewElement(640, 480)
	if b := e.BoundingBox(); b.W != 640 || b.H != 480 {
		t.Errorf("unexpected box %v", b)
	}
	d1, d2 := NewDocument(1, 1), NewDocument(1, 1)
	e.Append(d1)
	e.Append(d2)
	if !e.Remove(d1) || e.Remove(d1) {
		t.Error("unexpected Remove result")
	}
	if docs := e.Documents(); len(docs) != 1 || docs[0] != d2 {
		t.Errorf("unexpected documents %v", docs)
	}
	e.Resize(10, 20)
	if b := e.BoundingBox(); b.W != 10 || b.H != 20 {
		t.Errorf("unexpected box %v", b)
	}
}

func TestParseColor(t *testing.T) {
	for _, test := range []struct {
		in  string
		exp color.Color
	}{
		{"none", nil},
		{"", nil},
		{"red", color.RGBA{0xff, 0, 0, 0xff}},
		{"Purple", color.RGBA{0x80, 0, 0x80, 0xff}},
		{"#0f0", color.NRGBA{0, 0xff, 0, 0xff}},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}},
		{"currentColor", color.NRGBA{A: 0xff}},
	} {
		got, err := ParseColor(test.in)
		if err != nil {
			t.Fatal(err)
		}
		if got != test.exp {
			t.Errorf("color %s: expected %v, got %v", test.in, test.exp, got)
		}
	}
	if _, err := ParseColor("#12345"); err == nil {
		t.Error("expected error for invalid hex color")
	}
	if _, err := ParseColor("notacolor"); err == nil {
		t.Error("expected error for unknown color")
	}
}

// recorder is a Driver logging the operations it receives
type recorder struct {
	ops   []string
	texts []string
	at    []fixed.Point26_6
}

type recDrawer struct {
	r    *recorder
	kind string
}

func (d recDrawer) Clear()                          {}
func (d recDrawer) Start(a fixed.Point26_6)         { d.r.ops = append(d.r.ops, d.kind+":M") }
func (d recDrawer) Line(b fixed.Point26_6)          { d.r.ops = append(d.r.ops, d.kind+":L") }
func (d recDrawer) Stop(closeLoop bool)             {}
func (d recDrawer) SetColor(color.Color, float64)   {}
func (d recDrawer) Draw()                           { d.r.ops = append(d.r.ops, d.kind+":draw") }
func (d recDrawer) SetStrokeOptions(StrokeOptions) {}

func (r *recorder) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var (
		f Filler
		s Stroker
	)
	if willFill {
		f = recDrawer{r, "fill"}
	}
	if willStroke {
		s = recDrawer{r, "stroke"}
	}
	return f, s
}

func (r *recorder) DrawText(at fixed.Point26_6, text string, style TextStyle, c color.Color) {
	r.texts = append(r.texts, text+"|"+style.Anchor.String())
	r.at = append(r.at, at)
}

func TestDraw(t *testing.T) {
	var r recorder
	sampleDocument().Draw(&r)
	exp := "stroke:M stroke:L stroke:draw fill:M fill:L fill:L fill:L fill:draw"
	if got := strings.Join(r.ops, " "); got != exp {
		t.Errorf("expected %s, got %s", exp, got)
	}
	if len(r.texts) != 1 || r.texts[0] != "A & B|middle" {
		t.Errorf("unexpected texts %v", r.texts)
	}
	// 150 + 5, 50 + 6 + 0.5 * 12
	if x, y := svgpath.FromFixedP(r.at[0]); x != 155 || y != 62 {
		t.Errorf("unexpected text position %v %v", x, y)
	}
}
