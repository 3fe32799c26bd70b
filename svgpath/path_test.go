package svgpath

import (
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestToSVGPath(t *testing.T) {
	var p Path
	p.Start(ToFixedP(0, 10))
	p.Line(ToFixedP(5.5, 20))
	p.Start(ToFixedP(8, 1))
	p.Line(ToFixedP(9, 2))
	if got, exp := p.ToSVGPath(), "M0.000,10.000 L5.500,20.000 M8.000,1.000 L9.000,2.000"; got != exp {
		t.Errorf("expected %s, got %s", exp, got)
	}
	if p.Subpaths() != 2 {
		t.Errorf("expected 2 subpaths, got %d", p.Subpaths())
	}

	p.Clear()
	p.AddRect(0, 0, 20, 20)
	if got, exp := p.ToSVGPath(), "M0.000,0.000 L20.000,0.000 L20.000,20.000 L0.000,20.000 Z"; got != exp {
		t.Errorf("expected %s, got %s", exp, got)
	}
}

func TestBounds(t *testing.T) {
	var p Path
	if b := p.Bounds(); b != (fixed.Rectangle26_6{}) {
		t.Errorf("empty path should have empty bounds, got %v", b)
	}
	p.AddLine(10, 40, 30, 5)
	p.Line(ToFixedP(-2, 12))
	b := p.Bounds()
	minX, minY := FromFixedP(b.Min)
	maxX, maxY := FromFixedP(b.Max)
	if minX != -2 || minY != 5 || maxX != 30 || maxY != 40 {
		t.Errorf("unexpected bounds %v %v %v %v", minX, minY, maxX, maxY)
	}
}

func TestMatrix(t *testing.T) {
	m := Identity.Translate(150, 50).Translate(0, 330)
	if x, y := m.Transform(10, 10); x != 160 || y != 390 {
		t.Errorf("unexpected transform %v %v", x, y)
	}
	if s := m.String(); s != "translate(150,380)" {
		t.Errorf("unexpected attribute %s", s)
	}
	p := m.TFixed(ToFixedP(1, 2))
	if x, y := FromFixedP(p); x != 151 || y != 382 {
		t.Errorf("unexpected fixed transform %v %v", x, y)
	}
	if !Identity.IsIdentity() || m.IsIdentity() {
		t.Error("IsIdentity mismatch")
	}
	if s := Identity.Scale(2, 2).String(); s != "matrix(2,0,0,2,0,0)" {
		t.Errorf("unexpected attribute %s", s)
	}
}
