package extract

import (
	"encoding/json"
	"strings"
)

// decode parses s as a single JSON value.
func decode(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}

// decodeArray parses s and accepts only a JSON array holding at least one object.
func decodeArray(s string) ([]Record, bool) {
	v, ok := decode(s)
	if !ok {
		return nil, false
	}
	return toRecords(v)
}

// toRecords keeps the object elements of a JSON array. Scalars and nested
// arrays are dropped; an array with no objects left is a failure.
func toRecords(v any) ([]Record, bool) {
	items, ok := v.([]any)
	if !ok || len(items) == 0 {
		return nil, false
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			records = append(records, Record(m))
		}
	}
	if len(records) == 0 {
		return nil, false
	}
	return records, true
}
