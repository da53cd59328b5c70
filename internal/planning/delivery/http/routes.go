package http

import (
	"github.com/gin-gonic/gin"

	"ai-planning-service/internal/middleware"
)

// RegisterRoutes maps the planning endpoints. Every route is rate limited
// because each call reaches the language model.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/generate-tasks", mw.RateLimit(), h.GenerateTasks)
	rg.POST("/generate-schedule", mw.RateLimit(), h.GenerateSchedule)
	rg.POST("/generate-task-name", mw.RateLimit(), h.GenerateTaskName)
}
