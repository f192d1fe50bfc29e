package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Format identifies the encoding of a tabular file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// SupportedExtensions lists the file extensions accepted by DetectFormat.
var SupportedExtensions = []string{".csv", ".xlsx"}

const utf8BOM = "\ufeff"

var errNoColumns = errors.New("no columns to parse from file")

type options struct {
	sheet string
}

// Option configures Read and ReadFile.
type Option func(*options)

// WithSheet selects the worksheet to read from an XLSX workbook.
// The first sheet is used when unset.
func WithSheet(name string) Option {
	return func(o *options) {
		o.sheet = name
	}
}

// DetectFormat maps a file name to its Format by extension.
func DetectFormat(filename string) (Format, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("unsupported file type %q (expected one of %s)",
			filepath.Ext(filename), strings.Join(SupportedExtensions, ", "))
	}
}

// ReadFile opens path and reads it as the format implied by its extension.
func ReadFile(path string, opts ...Option) (*Dataset, error) {
	format, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Read(f, format, opts...)
}

// Read parses r as a table in the given format. The first row is the header.
func Read(r io.Reader, format Format, opts ...Option) (*Dataset, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var (
		rows [][]string
		err  error
	)
	switch format {
	case FormatCSV:
		rows, err = readCSV(r)
	case FormatXLSX:
		rows, err = readXLSX(r, o.sheet)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}

	ds, err := fromRows(rows)
	if err != nil {
		return nil, &ParseError{Format: format, Err: err}
	}
	return ds, nil
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], utf8BOM)
	}
	return rows, nil
}

func readXLSX(r io.Reader, sheet string) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return rows, nil
}

// fromRows splits raw rows into header and records. Rows without any cells
// (blank worksheet rows) are skipped; rows of empty cells are kept.
func fromRows(rows [][]string) (*Dataset, error) {
	start := 0
	for start < len(rows) && isBlank(rows[start]) {
		start++
	}
	if start == len(rows) {
		return nil, errNoColumns
	}

	header := rows[start]
	records := make([][]string, 0, len(rows)-start-1)
	for _, row := range rows[start+1:] {
		if isBlank(row) {
			continue
		}
		if len(row) > len(header) {
			// Numbered by data record; CSV lines and worksheet rows can differ.
			return nil, fmt.Errorf("record %d: expected %d fields, saw %d", len(records)+1, len(header), len(row))
		}
		records = append(records, row)
	}
	return New(header, records), nil
}

func isBlank(row []string) bool {
	return len(row) == 0
}
