package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/llmtxt-labs/llmtxt/internal/config"
	"github.com/llmtxt-labs/llmtxt/internal/logger"
	"github.com/llmtxt-labs/llmtxt/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	serveCmd.Flags().String("host", "localhost", "Host to bind the web server to")
	serveCmd.Flags().Int("port", 8080, "Port to bind the web server to")
	_ = viper.BindPFlag(config.KeyServeHost, serveCmd.Flags().Lookup("host"))
	_ = viper.BindPFlag(config.KeyServePort, serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the upload/download web UI",
	Long: `Start a local web server with a form to upload a page export, enter a
business description, and download the generated llm.txt.

The server is available at http://localhost:8080 by default.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &server.Config{
			Host:           config.Get(config.KeyServeHost),
			Port:           config.GetInt(config.KeyServePort),
			MaxUploadBytes: int64(config.GetInt(config.KeyMaxUploadMB)) << 20,
		}
		return runServe(cmd.Context(), cfg)
	},
}

func runServe(ctx context.Context, cfg *server.Config) error {
	if logger.L.Logger.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fmt.Fprintf(os.Stderr, "Serving on http://%s (Ctrl+C to stop)\n", cfg.Addr())
	if err := srv.Start(ctx); err != nil {
		return fmt.Errorf("web server: %w", err)
	}
	logger.G(ctx).Info("web server stopped")
	return nil
}
