package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/llmtxt-labs/llmtxt/internal/dataset"
)

const headerPrefix = "> Business Description: "

// Rows extracts the page records of ds in order.
func Rows(ds *dataset.Dataset) []Row {
	rows := make([]Row, ds.Len())
	for i := range rows {
		rows[i] = Row{
			Address:     ds.Value(i, ColumnAddress),
			Title:       ds.Value(i, ColumnTitle),
			Description: ds.Value(i, ColumnDescription),
		}
	}
	return rows
}

// Write renders the manifest for ds to w. ds must have passed ValidateSchema.
// The only errors reported come from w.
func Write(w io.Writer, ds *dataset.Dataset, businessDescription string) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s%s\n\n", headerPrefix, businessDescription); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, row := range Rows(ds) {
		if _, err := fmt.Fprintf(bw, "- [%s](%s): %s\n", row.Title, row.Address, row.Description); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flushing manifest: %w", err)
	}
	return nil
}

// Render returns the manifest for ds as a string. ds must have passed
// ValidateSchema.
func Render(ds *dataset.Dataset, businessDescription string) string {
	var sb strings.Builder
	// strings.Builder never fails.
	_ = Write(&sb, ds, businessDescription)
	return sb.String()
}

// Summarize reports the size of text rendered from ds.
func Summarize(ds *dataset.Dataset, text string) Stats {
	return Stats{
		Entries: ds.Len(),
		Lines:   strings.Count(text, "\n"),
		Bytes:   len(text),
	}
}
