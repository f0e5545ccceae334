package ingest

import (
	"encoding/json"
	"fmt"
	"os"
)

// ParseBatch parses raw JSON holding either a single object or an array of
// objects and normalizes it to a batch. Anything else (a bare string, a
// number, an array with non-object elements) is a configuration fault: the
// input cannot be split into items, so nothing is dispatched.
func ParseBatch(data []byte) ([]Document, error) {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse batch input: %w", err)
	}

	switch t := v.(type) {
	case map[string]interface{}:
		return []Document{t}, nil
	case []interface{}:
		batch := make([]Document, 0, len(t))
		for i, el := range t {
			doc, ok := el.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("batch element %d is not a JSON object", i)
			}
			batch = append(batch, doc)
		}
		return batch, nil
	default:
		return nil, fmt.Errorf("batch input must be a JSON object or array of objects")
	}
}

// LoadBatchFile reads path and parses it with ParseBatch.
func LoadBatchFile(path string) ([]Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}
	return ParseBatch(data)
}
