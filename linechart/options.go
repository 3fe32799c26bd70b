package linechart

import (
	"errors"
	"fmt"
	"io"

	"github.com/benoitkugler/svgchart/chartdata"
	"github.com/benoitkugler/svgchart/svgdoc"
	"github.com/charmbracelet/log"
)

// ErrInvalidOptions is returned by Options.Validate, and by the
// functions drawing a chart with invalid options.
var ErrInvalidOptions = errors.New("linechart: invalid options")

// LegendPosition places the legend relative to the plotting area.
type LegendPosition string

const (
	// BottomCenter places the legend under the chart, separated by the padding.
	BottomCenter LegendPosition = "bottomCenter"
	// TopCenter places the legend above the chart, and shifts the plotting
	// area down to make room for it.
	TopCenter LegendPosition = "topCenter"
)

// LegendOptions configures the color key.
type LegendOptions struct {
	Enabled  bool           `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	TextSize float64        `mapstructure:"textSize" yaml:"textSize" json:"textSize"`
	Position LegendPosition `mapstructure:"position" yaml:"position" json:"position"`
	Padding  float64        `mapstructure:"padding" yaml:"padding" json:"padding"`
	// Title enables a bold title, showing LegendName,
	// on the left of the first item.
	Title      bool   `mapstructure:"title" yaml:"title" json:"title"`
	LegendName string `mapstructure:"legendName" yaml:"legendName" json:"legendName"`
}

// AxisOptions configures one axis.
type AxisOptions struct {
	// TicksDensity scales the advisory number of ticks
	// with the available pixel length of the axis.
	TicksDensity float64 `mapstructure:"ticksDensity" yaml:"ticksDensity" json:"ticksDensity"`
	// Gridlines extends every tick across the plotting area.
	Gridlines bool `mapstructure:"gridlines" yaml:"gridlines" json:"gridlines"`
}

// Options configures a chart. Use DefaultOptions as a starting point.
type Options struct {
	DataMapping chartdata.Mapping `mapstructure:"dataMapping" yaml:"dataMapping" json:"dataMapping"`
	Legend      LegendOptions     `mapstructure:"legend" yaml:"legend" json:"legend"`
	XAxis       AxisOptions       `mapstructure:"xAxis" yaml:"xAxis" json:"xAxis"`
	YAxis       AxisOptions       `mapstructure:"yAxis" yaml:"yAxis" json:"yAxis"`

	// Sort is "temporal" (the default) or "lexical".
	Sort string `mapstructure:"sort" yaml:"sort" json:"sort"`
	// ErrorMode is "ignore" (the default), "warn" or "strict".
	ErrorMode string `mapstructure:"errorMode" yaml:"errorMode" json:"errorMode"`
	// Palette overrides the series colors; empty means DefaultPalette.
	Palette Palette `mapstructure:"palette" yaml:"palette" json:"palette"`

	// Logger receives warnings and debug information.
	// A nil logger discards them.
	Logger *log.Logger `mapstructure:"-" yaml:"-" json:"-"`
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		DataMapping: chartdata.Mapping{X: "date", Y: "value", Z: "category"},
		Legend: LegendOptions{
			Enabled:  true,
			TextSize: 12,
			Position: BottomCenter,
			Padding:  20,
		},
		XAxis:     AxisOptions{TicksDensity: 80},
		YAxis:     AxisOptions{TicksDensity: 20},
		Sort:      chartdata.SortTemporal.String(),
		ErrorMode: chartdata.IgnoreErrorMode.String(),
	}
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidOptions, fmt.Sprintf(format, args...))
}

// Validate checks the options, returning an error
// wrapping ErrInvalidOptions.
func (o Options) Validate() error {
	for _, f := range [...][2]string{{"x", o.DataMapping.X}, {"y", o.DataMapping.Y}, {"z", o.DataMapping.Z}} {
		if f[1] == "" {
			return invalid("empty field name for the %s axis", f[0])
		}
	}
	if o.Legend.Enabled {
		switch o.Legend.Position {
		case BottomCenter, TopCenter:
		default:
			return invalid("unknown legend position %q", o.Legend.Position)
		}
		if o.Legend.TextSize < 0 || o.Legend.Padding < 0 {
			return invalid("negative legend text size or padding")
		}
	}
	if !(o.XAxis.TicksDensity > 0) || !(o.YAxis.TicksDensity > 0) {
		return invalid("ticks density must be positive, got %g and %g", o.XAxis.TicksDensity, o.YAxis.TicksDensity)
	}
	if _, err := o.sortMode(); err != nil {
		return err
	}
	if _, err := o.errorMode(); err != nil {
		return err
	}
	for _, c := range o.Palette {
		if col, err := svgdoc.ParseColor(c); err != nil || col == nil {
			return invalid("palette color %q", c)
		}
	}
	return nil
}

func (o Options) sortMode() (chartdata.SortMode, error) {
	switch o.Sort {
	case "", "temporal":
		return chartdata.SortTemporal, nil
	case "lexical":
		return chartdata.SortLexical, nil
	default:
		return 0, invalid("unknown sort %q", o.Sort)
	}
}

func (o Options) errorMode() (chartdata.ErrorMode, error) {
	switch o.ErrorMode {
	case "", "ignore":
		return chartdata.IgnoreErrorMode, nil
	case "warn":
		return chartdata.WarnErrorMode, nil
	case "strict":
		return chartdata.StrictErrorMode, nil
	default:
		return 0, invalid("unknown error mode %q", o.ErrorMode)
	}
}

// normalizeOptions returns the options of the data step. It assumes
// o is valid.
func (o Options) normalizeOptions() chartdata.Options {
	sort, _ := o.sortMode()
	mode, _ := o.errorMode()
	return chartdata.Options{Sort: sort, ErrorMode: mode, Logger: o.logger()}
}

// discard is used when no logger is provided
var discard = log.New(io.Discard)

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return discard
	}
	return o.Logger
}
