// Package extract recovers loosely-typed records from free-form model output.
//
// Model responses come back as clean JSON, fenced JSON, JSON buried in prose,
// truncated JSON or plain natural-language lists. Extract runs an ordered
// cascade of strategies over the text and falls back to a line-oriented
// heuristic parser, so callers always receive something to validate.
package extract

// Record is an untrusted key/value mapping produced by extraction. Every
// field is optional and may carry any JSON type.
type Record map[string]any

// IsSentinel reports whether r is the placeholder emitted when nothing
// could be parsed from the response.
func (r Record) IsSentinel() bool {
	s, _ := r[FieldTask].(string)
	return s == SentinelTitle
}

// strategy is one step of the cascade. It reports false when the text
// did not yield a non-empty list of records.
type strategy struct {
	name string
	run  func(text string) ([]Record, bool)
}
