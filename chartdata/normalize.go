package chartdata

import (
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/charmbracelet/log"
)

var (
	// ErrMissingField is returned when a mapped field
	// is absent from the header or from a record.
	ErrMissingField = errors.New("chartdata: missing field")

	// ErrInvalidValue is returned in StrictErrorMode
	// for a timestamp or magnitude which can't be parsed.
	ErrInvalidValue = errors.New("chartdata: invalid value")
)

// Mapping identifies the fields used as the temporal (X),
// numeric (Y) and category (Z) axes.
type Mapping struct {
	X string `mapstructure:"x" yaml:"x" json:"x"`
	Y string `mapstructure:"y" yaml:"y" json:"y"`
	Z string `mapstructure:"z" yaml:"z" json:"z"`
}

func (m Mapping) fields() [3][2]string {
	return [3][2]string{{"x", m.X}, {"y", m.Y}, {"z", m.Z}}
}

// Validate checks that the three mapped fields are in `header`.
func (m Mapping) Validate(header []string) error {
	for _, f := range m.fields() {
		found := false
		for _, h := range header {
			if h == f[1] {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%w: %q (%s axis) is not in %q", ErrMissingField, f[1], f[0], header)
		}
	}
	return nil
}

// validateRow checks that the three mapped fields are set in the record;
// `line` is the 1-based line of the record in the input.
func (m Mapping) validateRow(row Row, line int) error {
	for _, f := range m.fields() {
		if _, ok := row[f[1]]; !ok {
			return fmt.Errorf("%w: %q (%s axis) on line %d", ErrMissingField, f[1], f[0], line)
		}
	}
	return nil
}

// ErrorMode determines how a value which can't be parsed is handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode turns the value into a gap in its line.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode turns the value into a gap and logs a warning.
	WarnErrorMode
	// StrictErrorMode fails with ErrInvalidValue.
	StrictErrorMode
)

func (e ErrorMode) String() string {
	switch e {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return "<unknown ErrorMode>"
	}
}

// SortMode defines how records are ordered before grouping.
type SortMode uint8

const (
	// SortTemporal orders by parsed timestamp; records with an
	// unparseable timestamp come last. The sort is stable.
	SortTemporal SortMode = iota
	// SortLexical orders by the raw text of the timestamp field,
	// which only matches the time order for ISO-8601 dates.
	SortLexical
)

func (s SortMode) String() string {
	switch s {
	case SortTemporal:
		return "temporal"
	case SortLexical:
		return "lexical"
	default:
		return "<unknown SortMode>"
	}
}

// Options tunes Normalize. The zero value is usable.
type Options struct {
	Sort      SortMode
	ErrorMode ErrorMode
	Logger    *log.Logger // used in WarnErrorMode; nil discards the warnings
}

// Point is one (timestamp, magnitude) pair.
// X is in milliseconds since the Unix epoch.
// An undefined point has a NaN Y, and is drawn as a gap.
type Point struct {
	X, Y float64
}

// Defined returns true if the point may be drawn.
func (p Point) Defined() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y)
}

// Category is the ordered sequence of points sharing
// the same value of the category field.
type Category struct {
	Name   string
	Points []Point
}

// Dataset is the normalized form of a table.
type Dataset struct {
	// Categories, in order of first appearance
	// in the sorted records.
	Categories []Category
	// X and Y hold one value per record, in sorted order,
	// NaN where the value could not be parsed.
	X, Y []float64
}

// Len returns the number of records.
func (ds *Dataset) Len() int { return len(ds.X) }

// Names returns the category names, in order.
func (ds *Dataset) Names() []string {
	out := make([]string, len(ds.Categories))
	for i, c := range ds.Categories {
		out[i] = c.Name
	}
	return out
}

// parsedRow caches the typed accessors of one record
type parsedRow struct {
	rawX, z string
	point   Point
}

// Normalize validates `m` against the table, sorts the records
// and groups them by category, preserving the first-seen order of categories
// and the sorted order of points inside each category.
func Normalize(t *Table, m Mapping, opts Options) (*Dataset, error) {
	if len(t.Header) != 0 {
		if err := m.Validate(t.Header); err != nil {
			return nil, err
		}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rows := make([]parsedRow, len(t.Rows))
	for i, row := range t.Rows {
		line := i + 2 // 1-based, after the header
		if err := m.validateRow(row, line); err != nil {
			return nil, err
		}
		pr, err := parseRow(row, m, line, opts.ErrorMode, logger)
		if err != nil {
			return nil, err
		}
		rows[i] = pr
	}

	switch opts.Sort {
	case SortLexical:
		sort.SliceStable(rows, func(i, j int) bool { return rows[i].rawX < rows[j].rawX })
	default:
		sort.SliceStable(rows, func(i, j int) bool {
			xi, xj := rows[i].point.X, rows[j].point.X
			if math.IsNaN(xj) {
				return !math.IsNaN(xi)
			}
			return xi < xj
		})
	}

	ds := &Dataset{X: make([]float64, len(rows)), Y: make([]float64, len(rows))}
	index := map[string]int{}
	for i, row := range rows {
		ds.X[i], ds.Y[i] = row.point.X, row.point.Y
		ci, ok := index[row.z]
		if !ok {
			ds.Categories = append(ds.Categories, Category{Name: row.z})
			ci = len(ds.Categories) - 1
			index[row.z] = ci
		}
		ds.Categories[ci].Points = append(ds.Categories[ci].Points, row.point)
	}
	return ds, nil
}

func parseRow(row Row, m Mapping, line int, mode ErrorMode, logger *log.Logger) (parsedRow, error) {
	out := parsedRow{rawX: row[m.X], z: row[m.Z]}
	x, okX := ParseTimestamp(row[m.X])
	y, okY := ParseMagnitude(row[m.Y])
	if okX && okY {
		out.point = Point{X: x, Y: y}
		return out, nil
	}

	field, value := m.X, row[m.X]
	if okX {
		field, value = m.Y, row[m.Y]
	}
	switch mode {
	case StrictErrorMode:
		return out, fmt.Errorf("%w: %q for field %q on line %d", ErrInvalidValue, value, field, line)
	case WarnErrorMode:
		logger.Warn("unparseable value, leaving a gap", "line", line, "field", field, "value", value)
	}
	out.point = Point{X: x, Y: math.NaN()}
	return out, nil
}
