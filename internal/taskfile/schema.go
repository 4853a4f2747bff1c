package taskfile

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "https://task-tracker.local/tasks.schema.json"

// documentSchema describes the persisted array. Timestamp syntax is checked
// when decoding so that legacy zone-less values still load.
const documentSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "title": "task-tracker document",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["id", "description", "status", "createdAt"],
    "properties": {
      "id": {"type": "integer", "minimum": 1},
      "description": {"type": "string"},
      "status": {"enum": ["TODO", "IN_PROGRESS", "DONE"]},
      "createdAt": {"type": "string", "minLength": 1},
      "updatedAt": {"type": ["string", "null"]}
    }
  }
}`

// ValidationError represents a schema violation with context.
type ValidationError struct {
	Path string // dotted path to the offending value, e.g. "[2].status"
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every violation found in a document.
type ValidationErrors []*ValidationError

func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return "invalid task document: " + strings.Join(msgs, "; ")
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, strings.NewReader(documentSchema)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// validate checks raw document bytes against the schema.
func validate(data []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse task file: %w", err)
	}

	if err := schema.Validate(doc); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return err
		}
		var errs ValidationErrors
		collectSchemaErrors(&errs, ve)
		if len(errs) == 0 {
			return err
		}
		return errs
	}
	return nil
}

func collectSchemaErrors(errs *ValidationErrors, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		*errs = append(*errs, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(errs, cause)
	}
}

// jsonPointerToPath converts a JSON Pointer (RFC 6901) to a dotted path.
// For example, "/2/status" becomes "[2].status".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
