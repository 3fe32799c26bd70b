// Package linechart renders multi-series time-series line charts
// on a vector drawing surface.
//
// Input rows are grouped by a category field; each category is drawn
// as one polyline, with a temporal horizontal axis, a numeric vertical axis
// anchored at zero and an optional legend.
//
// A Chart is bound to a host element and owns at most one document
// attached to it: every draw replaces the previous one.
// A Chart is not safe for concurrent use.
package linechart

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/benoitkugler/svgchart/chartdata"
	"github.com/benoitkugler/svgchart/scale"
	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/benoitkugler/svgchart/svgpath"
	"golang.org/x/image/math/fixed"
)

// ErrDestroyed is returned when drawing with a destroyed chart.
var ErrDestroyed = errors.New("linechart: chart destroyed")

// Chart is a line chart mounted on a host element.
type Chart struct {
	host svgdoc.Host
	opts Options

	table *chartdata.Table // last drawn input, for Update
	doc   *svgdoc.Document // currently attached document, if any
	geom  Geometry

	destroyed bool
}

// New returns a chart bound to `host`. Nothing is drawn until
// Draw or DrawTable is called.
func New(host svgdoc.Host, opts Options) (*Chart, error) {
	if host == nil {
		return nil, errors.New("linechart: nil host")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Chart{host: host, opts: opts}, nil
}

// Draw is a convenience function creating a chart and drawing
// the given CSV text, whose first line holds the field names.
// The documents previously attached to `host` are removed once
// the new one is drawn, so that repeated calls on the same host
// leave exactly one document.
func Draw(host svgdoc.Host, opts Options, csvText string) (*Chart, error) {
	c, err := New(host, opts)
	if err != nil {
		return nil, err
	}
	if err := c.Draw(strings.NewReader(csvText)); err != nil {
		return nil, err
	}
	for _, doc := range host.Documents() {
		if doc != c.doc {
			host.Remove(doc)
		}
	}
	return c, nil
}

// Draw parses CSV text and draws it, replacing the previous document.
// On error, the previous document is left in place.
func (c *Chart) Draw(csv io.Reader) error {
	if c.destroyed {
		return ErrDestroyed
	}
	table, err := chartdata.ReadCSV(csv)
	if err != nil {
		return err
	}
	return c.DrawTable(table)
}

// DrawTable draws already parsed input, replacing the previous document.
// On error, the previous document is left in place.
func (c *Chart) DrawTable(table *chartdata.Table) error {
	if c.destroyed {
		return ErrDestroyed
	}
	ds, err := chartdata.Normalize(table, c.opts.DataMapping, c.opts.normalizeOptions())
	if err != nil {
		return fmt.Errorf("linechart: %w", err)
	}
	c.table = table

	c.detach()
	c.doc, c.geom = c.render(ds)
	c.host.Append(c.doc)
	return nil
}

// Update changes the options and redraws the last input, if any,
// for instance after the host was resized.
func (c *Chart) Update(opts Options) error {
	if c.destroyed {
		return ErrDestroyed
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	previous := c.opts
	c.opts = opts
	if c.table == nil {
		return nil
	}
	if err := c.DrawTable(c.table); err != nil {
		c.opts = previous
		return err
	}
	return nil
}

// Destroy removes the current document from the host.
// The chart can't be used afterwards.
func (c *Chart) Destroy() {
	c.detach()
	c.table = nil
	c.destroyed = true
}

// Document returns the currently attached document, or nil.
func (c *Chart) Document() *svgdoc.Document { return c.doc }

// Geometry returns the layout of the last draw.
func (c *Chart) Geometry() Geometry { return c.geom }

// Options returns the options in use.
func (c *Chart) Options() Options { return c.opts }

func (c *Chart) detach() {
	if c.doc != nil {
		c.host.Remove(c.doc)
		c.doc = nil
	}
}

// render builds a new document sized to the current box of the host.
func (c *Chart) render(ds *chartdata.Dataset) (*svgdoc.Document, Geometry) {
	box := c.host.BoundingBox()
	geom := computeGeometry(box, c.opts, len(ds.Categories))
	logger := c.opts.logger()
	logger.Debug("chart geometry",
		"width", geom.Width, "height", geom.Height,
		"chartWidth", geom.ChartWidth, "chartHeight", geom.ChartHeight,
		"xTicks", geom.XTicks, "yTicks", geom.YTicks,
		"categories", len(ds.Categories), "records", ds.Len())

	x := scale.NewTime(scale.Extent(ds.X), geom.XRange)
	y := scale.NewLinear(scale.MaxExtent(ds.Y), geom.YRange)
	palette := c.opts.Palette

	doc := svgdoc.NewDocument(box.W, box.H)
	plot := doc.Root.AppendGroup("plot")
	plot.Transform = svgpath.Identity.Translate(geom.Origin[0], geom.Origin[1])

	area := fixed.Rectangle26_6{
		Min: svgpath.ToFixedP(geom.XRange[0], geom.YRange[1]),
		Max: svgpath.ToFixedP(geom.XRange[1], geom.YRange[0]),
	}
	if outside := renderSeries(plot, ds.Categories, x, y, palette, area); len(outside) != 0 {
		logger.Warn("series outside the plotting area", "categories", outside)
	}

	xAxis := axis{orient: bottom, scale: x, count: geom.XTicks, rng: geom.XRange, showDomain: true}
	if c.opts.XAxis.Gridlines {
		xAxis.gridLength = geom.YRange[0] - geom.YRange[1]
	}
	xg := xAxis.render(plot, "x-axis")
	xg.Transform = svgpath.Identity.Translate(0, geom.ChartHeight-xAxisHeight)

	yAxis := axis{orient: left, scale: y, count: geom.YTicks, rng: geom.YRange}
	if c.opts.YAxis.Gridlines {
		yAxis.gridLength = geom.XRange[1] - geom.XRange[0]
	}
	yAxis.render(plot, "y-axis")

	if c.opts.Legend.Enabled {
		renderLegend(doc.Root, geom, c.opts.Legend, ds.Categories, palette)
	}
	return doc, geom
}
