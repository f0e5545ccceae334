// Package schema validates API payloads against local JSON Schema files and
// can regenerate those files from the client's document types.
package schema

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xeipuuv/gojsonschema"
)

// NotFoundError indicates that no schema file exists for an object type.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("schema file not found: %s", e.Path)
}

// ValidationError indicates that a document does not conform to its schema.
type ValidationError struct {
	ObjectType string
	Causes     []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s", e.ObjectType, strings.Join(e.Causes, "; "))
}

// Validate checks doc against dir/<objectType>.json. An empty dir disables
// validation entirely: no file is read and nil is returned regardless of the
// document. The schema is re-read on every call; disk reads are cheap next
// to the network round-trip and a stale cache would mask schema edits.
// The document is never mutated.
func Validate(dir, objectType string, doc interface{}) error {
	if dir == "" {
		return nil
	}

	path := filepath.Join(dir, objectType+".json")
	schemaBytes, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			nfe := &NotFoundError{Path: path}
			log.Error().Str("object_type", objectType).Str("path", path).Msg("Schema file not found")
			return nfe
		}
		return fmt.Errorf("read schema %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate against %s: %w", path, err)
	}

	if !result.Valid() {
		causes := make([]string, 0, len(result.Errors()))
		for _, re := range result.Errors() {
			causes = append(causes, re.String())
		}
		ve := &ValidationError{ObjectType: objectType, Causes: causes}
		log.Error().Str("object_type", objectType).Strs("causes", causes).Msg("Validation error")
		return ve
	}

	return nil
}
