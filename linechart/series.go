package linechart

import (
	"github.com/benoitkugler/svgchart/chartdata"
	"github.com/benoitkugler/svgchart/scale"
	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgpath"
	"golang.org/x/image/math/fixed"
)

const seriesStrokeWidth = 1.5

// linePath joins the defined points with straight segments.
// An undefined point ends the current run: the next defined
// point starts a new one, so no segment crosses a gap.
// A run made of a single point is closed, so that
// round caps still render it as a dot.
func linePath(points []chartdata.Point, x scale.Time, y scale.Linear) svgpath.Path {
	var (
		out    svgpath.Path
		runLen int
	)
	endRun := func() {
		if runLen == 1 {
			out.Stop(true)
		}
		runLen = 0
	}
	for _, p := range points {
		if !p.Defined() {
			endRun()
			continue
		}
		pt := svgpath.ToFixedP(x.Map(p.X), y.Map(p.Y))
		if runLen == 0 {
			out.Start(pt)
		} else {
			out.Line(pt)
		}
		runLen++
	}
	endRun()
	return out
}

// renderSeries appends one open, stroked path per category,
// colored by category index.
// It returns the categories whose line leaves `area`, which
// happens for negative values, below the zero baseline.
func renderSeries(parent *svgdoc.Group, categories []chartdata.Category, x scale.Time, y scale.Linear,
	palette Palette, area fixed.Rectangle26_6,
) (outside []string) {
	for i, c := range categories {
		path := linePath(c.Points, x, y)
		if len(path) != 0 && !within(path.Bounds(), area) {
			outside = append(outside, c.Name)
		}
		parent.Append(&svgdoc.Path{
			Class: "series",
			D:     path,
			Style: svgdoc.PathStyle{
				Fill:        "none",
				Stroke:      palette.Color(i),
				StrokeWidth: seriesStrokeWidth,
				Join:        svgdoc.Round,
				Cap:         svgdoc.RoundCap,
			},
		})
	}
	return outside
}

func within(b, area fixed.Rectangle26_6) bool {
	return b.Min.X >= area.Min.X && b.Min.Y >= area.Min.Y &&
		b.Max.X <= area.Max.X && b.Max.Y <= area.Max.Y
}
