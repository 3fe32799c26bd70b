package linechart

import (
	"math"

	"github.com/benoitkugler/svgchart/svgdoc"
)

// layout constants, in pixels
const (
	marginTop    = 50
	marginRight  = 50
	marginBottom = 50
	marginLeft   = 50

	legendHeight = 20
	xAxisHeight  = 20
	yAxisWidth   = 100

	legendItemWidth  = 100
	legendTitleWidth = 100
	swatchSize       = 20
	labelOffset      = 30
)

// Geometry is the layout derived from the measured size
// of the host and the options. Points are (x, y) pairs.
type Geometry struct {
	Width, Height float64 // size of the drawing surface

	// ChartWidth and ChartHeight are the surface size without the margins
	// and, when the legend is enabled, without the legend band.
	ChartWidth, ChartHeight float64

	// XRange and YRange are the pixel intervals of the scales,
	// in the plotting group coordinates. YRange is inverted.
	XRange, YRange [2]float64

	// Origin of the plotting group, on the surface.
	Origin [2]float64

	// XTicks and YTicks are the advisory tick counts.
	XTicks, YTicks int

	// LegendWidth is zero when the legend is disabled.
	LegendWidth  float64
	LegendOrigin [2]float64
}

func computeGeometry(box svgdoc.Bounds, opts Options, categories int) Geometry {
	g := Geometry{Width: box.W, Height: box.H}
	g.ChartWidth = box.W - marginRight - marginLeft
	g.ChartHeight = box.H - marginBottom - marginTop
	legend := opts.Legend
	if legend.Enabled {
		g.ChartHeight -= legend.Padding + legendHeight
	}

	g.XRange = [2]float64{0, g.ChartWidth - yAxisWidth}
	g.YRange = [2]float64{g.ChartHeight - xAxisHeight, 0}

	g.Origin = [2]float64{marginLeft + yAxisWidth, marginTop}
	if legend.Enabled && legend.Position == TopCenter {
		g.Origin[1] += legend.Padding + legendHeight
	}

	g.XTicks = tickCount(g.ChartWidth, opts.XAxis.TicksDensity/8000)
	g.YTicks = tickCount(g.ChartHeight, opts.YAxis.TicksDensity/1000)

	if legend.Enabled {
		g.LegendWidth = legendItemWidth * float64(categories)
		if legend.Title {
			g.LegendWidth += legendTitleWidth
		}
		g.LegendOrigin[0] = marginLeft + g.ChartWidth/2 - g.LegendWidth/2
		if legend.Position == BottomCenter {
			g.LegendOrigin[1] = g.ChartHeight + marginTop + legend.Padding
		} else {
			g.LegendOrigin[1] = marginTop
		}
	}
	return g
}

// tickCount returns floor(length * ratio), or 0 for
// degenerate inputs
func tickCount(length, ratio float64) int {
	n := math.Floor(length * ratio)
	if math.IsNaN(n) || n <= 0 {
		return 0
	}
	if n > 1e4 { // keep absurd densities bounded
		n = 1e4
	}
	return int(n)
}
