package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ai-planning-service/pkg/log"
)

// RequestID tags each request with an ID, reusing the caller's X-Request-ID
// when present. The ID is echoed in the response and stored in the request
// context for the logger.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := log.SetRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, id)

		c.Next()
	}
}
