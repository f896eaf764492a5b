package timeseries

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"
)

// ErrNoData is returned when a CSV source holds no usable values.
var ErrNoData = errors.New("csv: no valid data found")

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn  string // Column name for dates (optional)
	ValueColumn string // Column name for values (default: "y")
	IDColumn    string // Column name for series ID (optional, for filtering)
	IDFilter    string // Value to filter by ID column
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		ValueColumn: "y",
		DateFormat:  "2006-01-02",
		HasHeader:   true,
		Delimiter:   ',',
	}
}

// dateFormats are tried after CSVOptions.DateFormat.
var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
}

// missing marks cells that carry no observation.
var missing = map[string]bool{"": true, "NA": true, "NaN": true, "nan": true, "null": true}

// columns holds resolved column positions; -1 means absent.
type columns struct {
	value, date, id int
}

func resolveColumns(header []string, opts *CSVOptions) columns {
	cols := columns{value: -1, date: -1, id: -1}
	for i, h := range header {
		switch h = clean(h); {
		case h == opts.ValueColumn:
			cols.value = i
		case opts.DateColumn != "" && h == opts.DateColumn:
			cols.date = i
		case opts.DateColumn == "" && cols.date == -1 && (h == "ds" || h == "date" || h == "Date"):
			cols.date = i
		case opts.IDColumn != "" && h == opts.IDColumn:
			cols.id = i
		}
	}
	if cols.value == -1 {
		cols.value = len(header) - 1
	}
	return cols
}

func clean(s string) string {
	return strings.TrimSpace(strings.Trim(s, "\""))
}

func parseDate(s, preferred string) (time.Time, bool) {
	for _, layout := range append([]string{preferred}, dateFormats...) {
		if layout == "" {
			continue
		}
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	defer file.Close()

	series, err := LoadCSVFromReader(file, opts)
	if err != nil {
		return nil, err
	}
	series.Name = filename
	return series, nil
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
// Rows with missing, unparsable or non-finite values are skipped. Timestamps are kept
// only when every kept row has a parsable date.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true

	cols := columns{value: 1, date: 0, id: -1}
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, fmt.Errorf("csv: read header: %w", err)
		}
		cols = resolveColumns(header, opts)
	}

	var values []float64
	var timestamps []time.Time
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("csv: %w", err)
		}

		if opts.IDFilter != "" && cols.id >= 0 && cols.id < len(record) && clean(record[cols.id]) != opts.IDFilter {
			continue
		}
		if cols.value >= len(record) {
			continue
		}
		raw := clean(record[cols.value])
		if missing[raw] {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		values = append(values, v)

		if cols.date >= 0 && cols.date < len(record) {
			if ts, ok := parseDate(clean(record[cols.date]), opts.DateFormat); ok {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}
	if len(timestamps) == len(values) {
		return &Series{Timestamps: timestamps, Values: values}, nil
	}
	return New(values), nil
}
