// Package schemas provides JSON Schema validation for analysis request and result documents.
package schemas

import (
	"fmt"
	"strings"
	"sync"

	schemafiles "github.com/jonathan/skillgap/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// compiledSchema compiles an embedded schema on first use
type compiledSchema struct {
	name    string
	content string

	once   sync.Once
	schema *gojsonschema.Schema
	err    error
}

func (c *compiledSchema) validate(data []byte) error {
	c.once.Do(func() {
		c.schema, c.err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(c.content))
		if c.err != nil {
			c.err = &SchemaLoadError{Path: c.name, Message: "failed to compile embedded schema", Cause: c.err}
		}
	})
	if c.err != nil {
		return c.err
	}

	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		// The schema compiled, so a failure here means the document is not valid JSON
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: err.Error()}}}
	}
	return toValidationError(result)
}

var (
	requestSchema = &compiledSchema{name: "analysis_request.schema.json", content: schemafiles.AnalysisRequest}
	resultSchema  = &compiledSchema{name: "analysis_result.schema.json", content: schemafiles.AnalysisResult}
)

// ValidateAnalysisRequest validates a raw analysis request document
func ValidateAnalysisRequest(data []byte) error {
	return requestSchema.validate(data)
}

// ValidateAnalysisResult validates a raw analysis result document
func ValidateAnalysisResult(data []byte) error {
	return resultSchema.validate(data)
}

// toValidationError returns nil for a valid result, else a ValidationError listing every failure
func toValidationError(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
