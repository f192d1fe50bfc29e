package manifest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/llmtxt-labs/llmtxt/internal/dataset"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
)

//go:embed schema/dataset.schema.json
var schemaBytes []byte

const schemaURL = "dataset.schema.json"

var (
	compiledSchema *jsonschema.Schema
	requiredCols   []string
	compileOnce    sync.Once
	compileErr     error
)

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		var decl struct {
			Required []string `json:"required"`
		}
		if err := json.Unmarshal(schemaBytes, &decl); err != nil {
			compileErr = fmt.Errorf("reading required columns: %w", err)
			return
		}
		requiredCols = decl.Required

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// RequiredColumns returns the column names every page export must provide,
// in declaration order.
func RequiredColumns() []string {
	if _, err := getSchema(); err != nil {
		return []string{ColumnAddress, ColumnTitle, ColumnDescription}
	}
	return slices.Clone(requiredCols)
}

// ValidateSchema checks that ds has every required column. On success ds is
// returned unchanged. When columns are missing the error is a *SchemaError
// listing them in required-column order; any other error means the embedded
// schema itself is broken.
func ValidateSchema(ds *dataset.Dataset) (*dataset.Dataset, error) {
	schema, err := getSchema()
	if err != nil {
		return nil, fmt.Errorf("loading schema: %w", err)
	}

	// Only column presence matters, so the instance is the header as an object.
	inst := make(map[string]any, len(ds.Columns))
	for _, name := range ds.Columns {
		inst[name] = ""
	}

	err = schema.Validate(inst)
	if err == nil {
		return ds, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("unexpected validation error type: %w", err)
	}

	reported := make(map[string]bool)
	collectMissing(ve, reported)

	missing := make([]string, 0, len(reported))
	for _, name := range requiredCols {
		if reported[name] || !ds.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil, fmt.Errorf("validating columns: %w", err)
	}
	return nil, &SchemaError{Missing: missing}
}

// collectMissing walks the validation error tree and records every property
// named by a "required" failure.
func collectMissing(ve *jsonschema.ValidationError, into map[string]bool) {
	if req, ok := ve.ErrorKind.(*kind.Required); ok {
		for _, name := range req.Missing {
			into[name] = true
		}
	}
	for _, cause := range ve.Causes {
		collectMissing(cause, into)
	}
}
