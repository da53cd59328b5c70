package log

import "io"

// ZapConfig configures the zap logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug or production
	Encoding     string // console or json
	ColorEnabled bool
	Output       io.Writer // defaults to os.Stdout
}

type ctxKey string
