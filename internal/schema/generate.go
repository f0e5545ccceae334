package schema

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/openchami/nodectl/internal/nodes"
)

// models maps schema file names to the types they are reflected from. The
// file names double as the object types used in API paths.
var models = map[string]interface{}{
	"ComputeNode.json":      &nodes.ComputeNode{},
	"NetworkInterface.json": &nodes.NetworkInterface{},
	"BMC.json":              &nodes.BMC{},
	"BootData.json":         &nodes.BootData{},
}

// WriteSchemas reflects JSON Schemas from the client's document types and
// writes one file per object type into dir, creating it if needed. The
// resulting directory is directly usable as a --schema-dir argument.
func WriteSchemas(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	// gojsonschema understands drafts 04 through 07, so strip the 2020-12
	// marker and inline definitions instead of emitting $defs references.
	reflector := &jsonschema.Reflector{DoNotReference: true}

	for filename, model := range models {
		s := reflector.Reflect(model)
		s.Version = ""
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("generate schema for %s: %w", filename, err)
		}
		path := filepath.Join(dir, filename)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("write schema %s: %w", path, err)
		}
	}
	return nil
}
