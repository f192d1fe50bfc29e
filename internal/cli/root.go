package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/llmtxt-labs/llmtxt/internal/branding"
	"github.com/llmtxt-labs/llmtxt/internal/config"
	"github.com/llmtxt-labs/llmtxt/internal/logger"
	"github.com/llmtxt-labs/llmtxt/internal/manifest"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var printer = message.NewPrinter(language.English)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` turns a website page export (Address, Title 1, Meta Description 1)
into an llm.txt manifest for language models, from the command line or a small web UI.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if err := logger.SetLogLevel(viper.GetString(config.KeyLogLevel)); err != nil {
			return fmt.Errorf("invalid log level: %w", err)
		}
		logger.SetLogFormat(viper.GetString(config.KeyLogFormat))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		reportError(os.Stderr, err)
	}
	return err
}

// reportError prints err the way users see it. Missing columns get the
// plain column list; everything else is prefixed with "Error:".
func reportError(w io.Writer, err error) {
	var se *manifest.SchemaError
	if errors.As(err, &se) {
		fmt.Fprintf(w, "Missing columns: %s\n", strings.Join(se.Missing, ", "))
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
