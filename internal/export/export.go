// Package export writes API responses to disk as JSON files.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/natefinch/atomic"
)

// WriteJSON marshals v with indentation and writes it to path
// atomically, so a crash mid-write never leaves a truncated file.
func WriteJSON(path string, v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	encoded = append(encoded, '\n')

	if err := atomic.WriteFile(path, bytes.NewReader(encoded)); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
