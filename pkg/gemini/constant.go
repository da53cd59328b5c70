package gemini

import "time"

const (
	// DefaultModel is the default Gemini model
	DefaultModel = "gemini-flash-latest"

	// DefaultAPIURL is the default Gemini API endpoint
	DefaultAPIURL = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 60 * time.Second

	apiKeyHeader = "x-goog-api-key"
)
