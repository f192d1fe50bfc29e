package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/llmtxt-labs/llmtxt/internal/branding"
	"github.com/llmtxt-labs/llmtxt/internal/dataset"
	"github.com/llmtxt-labs/llmtxt/internal/logger"
	"github.com/llmtxt-labs/llmtxt/internal/manifest"
)

// Multipart field names of the upload form.
const (
	fieldFile        = "file"
	fieldDescription = "description"
	fieldSheet       = "sheet"
)

var errNoFile = errors.New("no file uploaded")

// uploadError carries the HTTP status an upload failure should produce.
type uploadError struct {
	status int
	err    error
}

func (e *uploadError) Error() string { return e.err.Error() }
func (e *uploadError) Unwrap() error { return e.err }

type indexPage struct {
	Title       string
	Columns     []string
	Accept      string
	OutputName  string
	Description string
	Error       string
}

type validateResponse struct {
	Valid   bool     `json:"valid"`
	Rows    int      `json:"rows"`
	Missing []string `json:"missing,omitempty"`
	Error   string   `json:"error,omitempty"`
}

func (s *Server) renderIndex(c *gin.Context, status int, description, message string) {
	c.HTML(status, "index.html", indexPage{
		Title:       branding.DisplayName(),
		Columns:     manifest.RequiredColumns(),
		Accept:      strings.Join(dataset.SupportedExtensions, ","),
		OutputName:  branding.OutputName(),
		Description: description,
		Error:       message,
	})
}

// handleIndex handles GET /
func (s *Server) handleIndex(c *gin.Context) {
	s.renderIndex(c, http.StatusOK, "", "")
}

// handleHealth handles GET /healthz
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleGenerate handles POST /generate. On success the manifest is sent as
// a file download; on failure the form is shown again with the error.
func (s *Server) handleGenerate(c *gin.Context) {
	log := logger.G(c.Request.Context())

	ds, err := s.readUpload(c)
	description := c.PostForm(fieldDescription)
	if err != nil {
		log.WithError(err).Warn("rejected upload")
		s.renderIndex(c, statusOf(err), description, uploadMessage(err))
		return
	}

	if _, err := manifest.ValidateSchema(ds); err != nil {
		var se *manifest.SchemaError
		if errors.As(err, &se) {
			log.WithField("missing", se.Missing).Info("upload missing required columns")
			s.renderIndex(c, http.StatusUnprocessableEntity, description, missingMessage(se))
			return
		}
		log.WithError(err).Error("schema validation failed")
		s.renderIndex(c, http.StatusInternalServerError, description, uploadMessage(err))
		return
	}

	text := manifest.Render(ds, description)
	log.WithField("rows", ds.Len()).Info("generated manifest")

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", branding.OutputName()))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

// handleValidate handles POST /api/validate
func (s *Server) handleValidate(c *gin.Context) {
	ds, err := s.readUpload(c)
	if err != nil {
		c.JSON(statusOf(err), validateResponse{Error: err.Error()})
		return
	}

	if _, err := manifest.ValidateSchema(ds); err != nil {
		var se *manifest.SchemaError
		if errors.As(err, &se) {
			c.JSON(http.StatusOK, validateResponse{Rows: ds.Len(), Missing: se.Missing})
			return
		}
		c.JSON(http.StatusInternalServerError, validateResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, validateResponse{Valid: true, Rows: ds.Len()})
}

// readUpload parses the uploaded table. Errors are *uploadError.
func (s *Server) readUpload(c *gin.Context) (*dataset.Dataset, error) {
	limit := s.config.MaxUploadBytes
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
	if c.Request.ContentLength > limit {
		return nil, tooLarge(limit)
	}

	fh, err := c.FormFile(fieldFile)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return nil, tooLarge(limit)
		}
		return nil, &uploadError{status: http.StatusBadRequest, err: errNoFile}
	}

	format, err := dataset.DetectFormat(fh.Filename)
	if err != nil {
		return nil, &uploadError{status: http.StatusBadRequest, err: err}
	}

	f, err := fh.Open()
	if err != nil {
		return nil, &uploadError{status: http.StatusInternalServerError, err: fmt.Errorf("opening upload: %w", err)}
	}
	defer f.Close()

	var opts []dataset.Option
	if sheet := c.PostForm(fieldSheet); sheet != "" {
		opts = append(opts, dataset.WithSheet(sheet))
	}

	ds, err := dataset.Read(f, format, opts...)
	if err != nil {
		return nil, &uploadError{status: http.StatusBadRequest, err: err}
	}
	return ds, nil
}

func tooLarge(limit int64) error {
	return &uploadError{
		status: http.StatusRequestEntityTooLarge,
		err:    fmt.Errorf("file exceeds the %d MB upload limit", limit/(1024*1024)),
	}
}

func statusOf(err error) int {
	var ue *uploadError
	if errors.As(err, &ue) {
		return ue.status
	}
	return http.StatusInternalServerError
}

func uploadMessage(err error) string {
	if errors.Is(err, errNoFile) {
		return "Please choose a file to upload."
	}
	return "Error processing file: " + err.Error()
}

func missingMessage(se *manifest.SchemaError) string {
	return "Missing columns: " + strings.Join(se.Missing, ", ")
}
