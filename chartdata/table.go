// Package chartdata reads tabular input (CSV or XLSX) and
// normalizes it into named categories of (timestamp, magnitude)
// points, ready to be drawn as one line per category.
package chartdata

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/net/html/charset"
)

// ErrNoHeader is returned when the input has no header line.
var ErrNoHeader = errors.New("chartdata: missing header line")

// Row maps a field name to its raw value, one per input record.
// Fields absent from a record are absent from the map.
type Row map[string]string

// Table is parsed tabular input: field names and records.
type Table struct {
	Header []string
	Rows   []Row
}

// Len returns the number of records.
func (t *Table) Len() int { return len(t.Rows) }

// NewTable builds a table from a header and records,
// the way a delimited text parser would.
// Records shorter than the header miss the trailing fields;
// extra values are ignored.
func NewTable(header []string, records [][]string) *Table {
	t := &Table{Header: header, Rows: make([]Row, 0, len(records))}
	for _, record := range records {
		row := make(Row, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ReadCSV parses comma separated text, whose first line
// holds the field names.
func ReadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // short records are reported by Normalize
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("chartdata: reading csv: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	return NewTable(header, records[1:]), nil
}

// ReadCSVCharset is like ReadCSV, but first decodes the input
// from the encoding named by `label` (for instance "latin1" or "windows-1252").
// An empty label means UTF-8.
func ReadCSVCharset(r io.Reader, label string) (*Table, error) {
	if label == "" {
		return ReadCSV(r)
	}
	decoded, err := charset.NewReaderLabel(label, r)
	if err != nil {
		return nil, fmt.Errorf("chartdata: charset %q: %w", label, err)
	}
	return ReadCSV(decoded)
}

// ReadXLSX reads the given sheet of a spreadsheet, whose first row
// holds the field names. An empty sheet name selects the first sheet.
// Cell values are read as displayed, as a CSV export would write them.
func ReadXLSX(r io.Reader, sheet string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("chartdata: opening xlsx: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoHeader
		}
		sheet = sheets[0]
	}
	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("chartdata: reading sheet %q: %w", sheet, err)
	}
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	return NewTable(records[0], records[1:]), nil
}
