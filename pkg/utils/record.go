package utils

import (
	"fmt"

	"github.com/oarkflow/dipper"
)

// Record is a single row flowing through sources and transformers.
type Record = map[string]any

// Lookup reads a dotted path such as "x12_headers.interchange_sender_id"
// from a record, descending into nested maps.
func Lookup(rec Record, path string) (any, error) {
	if v, ok := rec[path]; ok {
		return v, nil
	}
	v, err := dipper.Get(rec, path)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", path, err)
	}
	return v, nil
}
