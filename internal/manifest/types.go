package manifest

import "strings"

// Column names a page export must provide.
const (
	ColumnAddress     = "Address"
	ColumnTitle       = "Title 1"
	ColumnDescription = "Meta Description 1"
)

// Row is one page record of the manifest.
type Row struct {
	Address     string `json:"address"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// SchemaError reports required columns absent from a dataset, in
// required-column order.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return "missing columns: " + strings.Join(e.Missing, ", ")
}

// Stats summarizes a rendered manifest.
type Stats struct {
	Entries int `json:"entries"`
	Lines   int `json:"lines"`
	Bytes   int `json:"bytes"`
}
