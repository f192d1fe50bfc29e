// Package server serves the browser front end: an upload form that turns a
// page export into a downloadable llm.txt, plus a small JSON API. Manifests
// are rendered in memory and streamed back; nothing is staged on disk.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/llmtxt-labs/llmtxt/internal/logger"
)

//go:embed templates/*.html
var templateFS embed.FS

const shutdownTimeout = 30 * time.Second

// Config holds the configuration for the web server.
type Config struct {
	Host string
	Port int
	// MaxUploadBytes caps the request body of an upload.
	MaxUploadBytes int64
}

// Validate checks the server configuration.
func (c *Config) Validate() error {
	if c.Host == "" {
		return errors.New("host cannot be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("upload limit must be positive, got %d", c.MaxUploadBytes)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Server is the llm.txt web UI.
type Server struct {
	router *gin.Engine
	config *Config
	server *http.Server
}

// New creates a server with all routes registered.
func New(config *Config) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid server configuration: %w", err)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	s := &Server{
		router: gin.New(),
		config: config,
	}
	s.router.SetHTMLTemplate(tmpl)
	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(gin.Recovery(), requestID(), requestLogger())

	s.router.GET("/", s.handleIndex)
	s.router.POST("/generate", s.handleGenerate)
	s.router.GET("/healthz", s.handleHealth)

	api := s.router.Group("/api")
	api.POST("/validate", s.handleValidate)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Start listens on the configured address and blocks until ctx is cancelled
// or the listener fails. Cancellation triggers a graceful shutdown.
func (s *Server) Start(ctx context.Context) error {
	s.server = &http.Server{
		Addr:              s.config.Addr(),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.G(ctx).WithField("addr", s.config.Addr()).Info("web server listening")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listening on %s: %w", s.config.Addr(), err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Close stops the server immediately.
func (s *Server) Close() error {
	if s.server != nil {
		return s.server.Close()
	}
	return nil
}
