package linechart

import (
	"github.com/benoitkugler/svgchart/chartdata"
	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgpath"
)

// renderLegend appends the color key: an optional bold title, then one
// swatch and label per category, left to right.
// The swatch colors follow the same palette indexing as the series.
func renderLegend(root *svgdoc.Group, geom Geometry, opts LegendOptions, categories []chartdata.Category, palette Palette) *svgdoc.Group {
	legend := root.AppendGroup("legend")
	legend.Transform = svgpath.Identity.Translate(geom.LegendOrigin[0], geom.LegendOrigin[1])
	legend.Text = svgdoc.TextStyle{FontFamily: "sans-serif", FontSize: opts.TextSize, Anchor: svgdoc.AnchorStart}

	titleWidth := 0.
	if opts.Title {
		titleWidth = legendTitleWidth
		legend.Append(&svgdoc.Text{
			Class:   "legend-title",
			Y:       10,
			Dy:      0.35,
			Content: opts.LegendName,
			Style:   svgdoc.TextStyle{FontWeight: "bold"},
		})
	}

	items := legend.AppendGroup("legend-items")
	items.Transform = svgpath.Identity.Translate(titleWidth, 0)
	for i, c := range categories {
		item := items.AppendGroup("legend-item")
		item.Transform = svgpath.Identity.Translate(float64(i)*legendItemWidth, 0)
		item.Append(
			&svgdoc.Rect{Class: "swatch", W: swatchSize, H: swatchSize, Fill: palette.Color(i)},
			&svgdoc.Text{Class: "label", X: labelOffset, Y: 10, Dy: 0.35, Content: c.Name},
		)
	}
	return legend
}
