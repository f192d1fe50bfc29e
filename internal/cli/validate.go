package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/llmtxt-labs/llmtxt/internal/dataset"
	"github.com/llmtxt-labs/llmtxt/internal/manifest"
	"github.com/spf13/cobra"
)

var (
	validateJSON  bool
	validateSheet string
)

type validationReport struct {
	Valid   bool     `json:"valid"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
	Missing []string `json:"missing,omitempty"`
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "Print the result as JSON")
	validateCmd.Flags().StringVar(&validateSheet, "sheet", "", "Worksheet to read from an .xlsx file (default: first sheet)")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <table>",
	Short: "Check that a page export has the required columns",
	Long: `Parse a CSV or XLSX page export and check for the columns needed to build
llm.txt, without generating anything. Exits non-zero when columns are missing.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate(cmd.OutOrStdout(), args[0], validateSheet, validateJSON)
	},
}

func runValidate(out io.Writer, path, sheet string, asJSON bool) error {
	var opts []dataset.Option
	if sheet != "" {
		opts = append(opts, dataset.WithSheet(sheet))
	}

	ds, err := dataset.ReadFile(path, opts...)
	if err != nil {
		return err
	}

	_, verr := manifest.ValidateSchema(ds)
	var se *manifest.SchemaError
	if verr != nil && !errors.As(verr, &se) {
		return verr
	}

	if asJSON {
		report := validationReport{
			Valid:   se == nil,
			Rows:    ds.Len(),
			Columns: ds.Columns,
		}
		if se != nil {
			report.Missing = se.Missing
		}
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling report: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return verr
	}

	if verr != nil {
		return verr
	}
	printer.Fprintf(out, "%s: %d rows, all required columns present\n", path, ds.Len())
	return nil
}
