package http

import (
	"github.com/gin-gonic/gin"

	"ai-planning-service/internal/planning"
	"ai-planning-service/pkg/log"
)

// Handler is the public interface for the planning HTTP delivery layer.
type Handler interface {
	GenerateTasks(c *gin.Context)
	GenerateSchedule(c *gin.Context)
	GenerateTaskName(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc planning.UseCase
}

// New creates a new HTTP handler for the planning domain.
func New(l log.Logger, uc planning.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
