package app

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteObjects serializes the objects as a pretty-printed JSON array.
// A run with zero parsed objects still emits a valid empty array.
func WriteObjects(w io.Writer, objects []Object) error {
	if objects == nil {
		objects = []Object{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(objects); err != nil {
		return fmt.Errorf("encode objects: %w", err)
	}
	return nil
}
