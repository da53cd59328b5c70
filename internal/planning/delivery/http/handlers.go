package http

import (
	"github.com/gin-gonic/gin"

	"ai-planning-service/pkg/response"
)

// GenerateTasks godoc
// @Summary     Generate tasks for an event
// @Description Asks the language model for a task breakdown of the event and returns the validated tasks.
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       body body generateTasksReq true "Event and its details"
// @Success     200  {object} generateTasksResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "No usable tasks in the model response"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Language model unavailable"
// @Router      /api/v1/generate-tasks [POST]
func (h *handler) GenerateTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateTasksReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateTasks(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateTasks: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateTasksResp(output))
}

// GenerateSchedule godoc
// @Summary     Generate a schedule
// @Description Assigns tasks to members and orders them on the event timeline. Optionally exports the schedule to Google Calendar.
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       body body generateScheduleReq true "Event, tasks and members"
// @Success     200  {object} generateScheduleResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     422  {object} response.Resp "No usable schedule in the model response"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     502  {object} response.Resp "Language model unavailable"
// @Router      /api/v1/generate-schedule [POST]
func (h *handler) GenerateSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateScheduleReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateSchedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateSchedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateScheduleResp(output))
}

// GenerateTaskName godoc
// @Summary     Generate a task name
// @Description Compresses a task description into a short title.
// @Tags        Planning
// @Accept      json
// @Produce     json
// @Param       body body generateTaskNameReq true "Task description"
// @Success     200  {object} generateTaskNameResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/generate-task-name [POST]
func (h *handler) GenerateTaskName(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateTaskNameReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.GenerateTaskName(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateTaskName: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newGenerateTaskNameResp(output))
}
