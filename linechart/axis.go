package linechart

import (
	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgpath"
)

// tickScale is the part of a scale an axis needs.
type tickScale interface {
	Map(v float64) float64
	Ticks(count int) []float64
	TickFormat(count int) func(float64) string
}

type orient uint8

const (
	bottom orient = iota
	left
)

const (
	tickSize    = 6
	tickPadding = 3
	gridOpacity = 0.1
)

// axis draws the ticks of a scale along one side of the plotting area.
type axis struct {
	orient orient
	scale  tickScale
	count  int
	// range of the scale, used for the domain line
	rng [2]float64
	// showDomain draws the axis line itself
	showDomain bool
	// gridLength is the length of the gridlines, zero to disable them
	gridLength float64
}

// render appends the axis to `parent` and returns its group.
// Ticks are only drawn when count > 0.
func (a axis) render(parent *svgdoc.Group, class string) *svgdoc.Group {
	g := parent.AppendGroup(class)
	g.Fill = "none"
	g.Text = svgdoc.TextStyle{FontFamily: "sans-serif", FontSize: 10, Anchor: svgdoc.AnchorMiddle}
	if a.orient == left {
		g.Text.Anchor = svgdoc.AnchorEnd
	}

	if a.showDomain {
		var d svgpath.Path
		if a.orient == bottom {
			d.AddLine(a.rng[0], 0, a.rng[1], 0)
		} else {
			d.AddLine(0, a.rng[0], 0, a.rng[1])
		}
		g.Append(&svgdoc.Path{Class: "domain", D: d, Style: svgdoc.PathStyle{Stroke: "currentColor"}})
	}

	if a.count <= 0 {
		return g
	}
	format := a.scale.TickFormat(a.count)
	for _, v := range a.scale.Ticks(a.count) {
		pos := a.scale.Map(v)
		tick := g.AppendGroup("tick")
		label := &svgdoc.Text{Content: format(v), Fill: "currentColor"}
		switch a.orient {
		case bottom:
			tick.Transform = svgpath.Identity.Translate(pos, 0)
			tick.Append(&svgdoc.Line{Y2: tickSize, Stroke: "currentColor"})
			label.Y, label.Dy = tickSize+tickPadding, 0.71
			if a.gridLength != 0 {
				tick.Append(&svgdoc.Line{Class: "grid", Y2: -a.gridLength, Stroke: "currentColor", StrokeOpacity: gridOpacity})
			}
		case left:
			tick.Transform = svgpath.Identity.Translate(0, pos)
			tick.Append(&svgdoc.Line{X2: -tickSize, Stroke: "currentColor"})
			label.X, label.Dy = -(tickSize + tickPadding), 0.32
			if a.gridLength != 0 {
				tick.Append(&svgdoc.Line{Class: "grid", X2: a.gridLength, Stroke: "currentColor", StrokeOpacity: gridOpacity})
			}
		}
		tick.Append(label)
	}
	return g
}
