package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-planning-service/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "AI planning service is running"
	HealthVersion = "1.0.0"
	ServiceName   = "ai-planning-service"
)

func (srv HTTPServer) llmStatus() (bool, []string) {
	if srv.providers == nil {
		return false, nil
	}
	return srv.providers.HasProviders(), srv.providers.ProviderNames()
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy and whether a language model provider is configured
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	configured, names := srv.llmStatus()
	response.OK(c, gin.H{
		"status":         "healthy",
		"message":        HealthMessage,
		"version":        HealthVersion,
		"service":        ServiceName,
		"llm_configured": configured,
		"llm_providers":  names,
	})
}

// readyCheck reports ready only when a language model provider is available.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "No language model provider configured"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if configured, _ := srv.llmStatus(); !configured {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "no language model provider configured",
		})
		return
	}
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
