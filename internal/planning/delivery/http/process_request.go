package http

import (
	"github.com/gin-gonic/gin"
)

// processGenerateTasksReq binds and validates the task generation body.
func (h *handler) processGenerateTasksReq(c *gin.Context) (generateTasksReq, error) {
	var req generateTasksReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processGenerateScheduleReq binds and validates the scheduling body.
func (h *handler) processGenerateScheduleReq(c *gin.Context) (generateScheduleReq, error) {
	var req generateScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processGenerateTaskNameReq(c *gin.Context) (generateTaskNameReq, error) {
	var req generateTaskNameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
