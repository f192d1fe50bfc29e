package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/llmtxt-labs/llmtxt/internal/config"
	"github.com/llmtxt-labs/llmtxt/internal/dataset"
	"github.com/llmtxt-labs/llmtxt/internal/logger"
	"github.com/llmtxt-labs/llmtxt/internal/manifest"
	"github.com/llmtxt-labs/llmtxt/internal/platform"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	Description string
	Output      string
	Stdout      bool
	Sheet       string
	Tokens      bool
	Model       string
}

var genOpts generateOptions

func init() {
	f := generateCmd.Flags()
	f.StringVarP(&genOpts.Description, "description", "d", "", "Business description placed at the top of the manifest")
	f.StringVarP(&genOpts.Output, "output", "o", "", "Output file (default: config key 'output', llm.txt)")
	f.BoolVar(&genOpts.Stdout, "stdout", false, "Write the manifest to stdout instead of a file")
	f.StringVar(&genOpts.Sheet, "sheet", "", "Worksheet to read from an .xlsx file (default: first sheet)")
	f.BoolVar(&genOpts.Tokens, "tokens", false, "Report an estimated token count for the manifest")
	f.StringVar(&genOpts.Model, "model", "", "Model for the token estimate (default: config key 'token_model')")
	rootCmd.AddCommand(generateCmd)
}

var generateCmd = &cobra.Command{
	Use:   "generate <table>",
	Short: "Generate llm.txt from a page export",
	Long: `Generate an llm.txt manifest from a CSV or XLSX page export.

The table must have the columns Address, Title 1 and Meta Description 1.
Other columns are ignored. Each row becomes one line:

  - [Title 1](Address): Meta Description 1`,
	Example: `  llmtxt generate crawl.csv -d "We sell widgets"
  llmtxt generate crawl.xlsx --sheet Internal --stdout`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := genOpts
		if opts.Output == "" {
			opts.Output = config.Get(config.KeyOutput)
		}
		if opts.Model == "" {
			opts.Model = config.Get(config.KeyTokenModel)
		}
		return runGenerate(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], opts)
	},
}

// loadTable reads path and checks it has the required columns.
func loadTable(path, sheet string) (*dataset.Dataset, error) {
	var opts []dataset.Option
	if sheet != "" {
		opts = append(opts, dataset.WithSheet(sheet))
	}

	ds, err := dataset.ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return manifest.ValidateSchema(ds)
}

func runGenerate(ctx context.Context, stdout, stderr io.Writer, path string, opts generateOptions) error {
	log := logger.G(ctx).WithField("input", path)

	ds, err := loadTable(path, opts.Sheet)
	if err != nil {
		return err
	}

	text := manifest.Render(ds, opts.Description)
	stats := manifest.Summarize(ds, text)
	log.WithFields(map[string]any{
		"entries": stats.Entries,
		"bytes":   stats.Bytes,
	}).Debug("rendered manifest")

	// Status lines must not mix with a manifest written to stdout.
	status := stdout
	if opts.Stdout {
		status = stderr
		if _, err := io.WriteString(stdout, text); err != nil {
			return fmt.Errorf("writing manifest: %w", err)
		}
	} else {
		if err := platform.WriteFileStaged(opts.Output, []byte(text), 0644); err != nil {
			return fmt.Errorf("saving manifest: %w", err)
		}
		printer.Fprintf(status, "Wrote %d entries to %s (%d bytes)\n", stats.Entries, opts.Output, stats.Bytes)
	}

	if opts.Tokens {
		n, err := manifest.CountTokens(text, opts.Model)
		if err != nil {
			log.WithError(err).Warn("could not estimate token count")
			return nil
		}
		printer.Fprintf(status, "Estimated tokens (%s): %d\n", opts.Model, n)
	}
	return nil
}
