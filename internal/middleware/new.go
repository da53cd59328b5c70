package middleware

import (
	"ai-planning-service/pkg/log"
)

// Config configures the HTTP middlewares.
type Config struct {
	RequestsPerMin int
	AllowedOrigins []string
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
	origins []string
}

// New builds the middleware set. RequestsPerMin <= 0 disables rate limiting.
func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:       l,
		origins: cfg.AllowedOrigins,
	}
	if cfg.RequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RequestsPerMin)
	}
	return mw
}
