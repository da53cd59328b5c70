package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	requestIDKey   ctxKey = "request_id"
	requestIDField        = "request_id"
)
