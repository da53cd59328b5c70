package http

import (
	"strings"

	"ai-planning-service/internal/model"
	"ai-planning-service/internal/planning"
)

// --- Request DTOs ---

type generateTasksReq struct {
	Event     string `json:"event"`
	EventInfo string `json:"event_info"`
}

func (r generateTasksReq) validate() error {
	if strings.TrimSpace(r.Event) == "" || strings.TrimSpace(r.EventInfo) == "" {
		return errEventRequired
	}
	return nil
}

func (r generateTasksReq) toInput() planning.GenerateTasksInput {
	return planning.GenerateTasksInput{
		Event:     r.Event,
		EventInfo: r.EventInfo,
	}
}

// ---

type generateScheduleReq struct {
	EventName      string           `json:"event_name"`
	EventInfo      string           `json:"event_info"`
	EventStartDate string           `json:"event_start_date"`
	EventEndDate   string           `json:"event_end_date"`
	Tasks          []map[string]any `json:"tasks"`
	Members        []map[string]any `json:"members"`
	SyncCalendar   bool             `json:"sync_calendar"`
}

func (r generateScheduleReq) validate() error {
	if strings.TrimSpace(r.EventName) == "" {
		return errEventNameRequired
	}
	if len(r.Tasks) == 0 {
		return errNoTasks
	}
	if len(r.Members) == 0 {
		return errNoMembers
	}
	return nil
}

func (r generateScheduleReq) toInput() planning.GenerateScheduleInput {
	members := make([]model.Member, len(r.Members))
	for i, m := range r.Members {
		members[i] = model.Member(m)
	}
	return planning.GenerateScheduleInput{
		EventName:      r.EventName,
		EventInfo:      r.EventInfo,
		EventStartDate: r.EventStartDate,
		EventEndDate:   r.EventEndDate,
		Tasks:          r.Tasks,
		Members:        members,
		SyncCalendar:   r.SyncCalendar,
	}
}

// ---

type generateTaskNameReq struct {
	Description string `json:"description"`
}

func (r generateTaskNameReq) validate() error {
	if strings.TrimSpace(r.Description) == "" {
		return errDescriptionRequired
	}
	return nil
}

func (r generateTaskNameReq) toInput() planning.GenerateTaskNameInput {
	return planning.GenerateTaskNameInput{Description: r.Description}
}

// --- Response DTOs ---

type durationResp struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

func newDurationResp(d *model.Duration) *durationResp {
	if d == nil {
		return nil
	}
	return &durationResp{Quantity: d.Quantity, Unit: string(d.Unit)}
}

type taskResp struct {
	Task              string        `json:"task"`
	Description       string        `json:"description"`
	Priority          string        `json:"priority"`
	EstimatedDuration *durationResp `json:"estimated_duration"`
}

type generateTasksResp struct {
	Event      string     `json:"event"`
	Tasks      []taskResp `json:"tasks"`
	TotalTasks int        `json:"total_tasks"`
}

func (h *handler) newGenerateTasksResp(out planning.GenerateTasksOutput) generateTasksResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = taskResp{
			Task:              t.Task,
			Description:       t.Description,
			Priority:          string(t.Priority),
			EstimatedDuration: newDurationResp(t.EstimatedDuration),
		}
	}
	return generateTasksResp{
		Event:      out.Event,
		Tasks:      tasks,
		TotalTasks: out.TotalTasks,
	}
}

type scheduledTaskResp struct {
	TaskTitle     string           `json:"task_title"`
	Priority      string           `json:"priority"`
	Duration      durationResp     `json:"duration"`
	Owners        []map[string]any `json:"owners"`
	StartDateTime string           `json:"start_date_time"`
	EndDateTime   string           `json:"end_date_time"`
	Order         int              `json:"order"`
}

type generateScheduleResp struct {
	ScheduledTasks []scheduledTaskResp `json:"scheduled_tasks"`
	CalendarLinks  []string            `json:"calendar_links,omitempty"`
}

func (h *handler) newGenerateScheduleResp(out planning.GenerateScheduleOutput) generateScheduleResp {
	tasks := make([]scheduledTaskResp, len(out.ScheduledTasks))
	for i, t := range out.ScheduledTasks {
		owners := make([]map[string]any, len(t.Owners))
		for j, o := range t.Owners {
			owners[j] = o
		}
		tasks[i] = scheduledTaskResp{
			TaskTitle:     t.TaskTitle,
			Priority:      string(t.Priority),
			Duration:      durationResp{Quantity: t.Duration.Quantity, Unit: string(t.Duration.Unit)},
			Owners:        owners,
			StartDateTime: t.StartDateTime,
			EndDateTime:   t.EndDateTime,
			Order:         t.Order,
		}
	}
	return generateScheduleResp{
		ScheduledTasks: tasks,
		CalendarLinks:  out.CalendarLinks,
	}
}

type generateTaskNameResp struct {
	TaskName string `json:"task_name"`
}

func (h *handler) newGenerateTaskNameResp(out planning.GenerateTaskNameOutput) generateTaskNameResp {
	return generateTaskNameResp{TaskName: out.TaskName}
}
