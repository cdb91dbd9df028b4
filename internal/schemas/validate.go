// Package schemas provides JSON Schema validation for documents crossing the
// system boundary. Schemas are embedded at compile time.
package schemas

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	_ "embed"
)

//go:embed webhook_result.schema.json
var webhookResultSchema []byte

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself,
// as opposed to the document failing validation.
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateWebhookResult validates a workflow result document against the
// embedded schema. Returns nil when valid, a *ValidationError when the
// document does not conform, and a *SchemaLoadError when validation could
// not run at all (e.g. the document is not JSON).
func ValidateWebhookResult(document []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(webhookResultSchema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Schema:  "webhook_result.schema.json",
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
