package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS wraps next with the cross-origin policy. It runs outside gin so that
// preflight requests are answered before routing.
func (mw Middleware) CORS(next http.Handler) http.Handler {
	origins := mw.origins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", HeaderRequestID},
		ExposedHeaders:   []string{HeaderRequestID},
		AllowCredentials: false,
		MaxAge:           corsMaxAge,
	})(next)
}
