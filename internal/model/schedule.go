package model

// Owner is an assignee record passed through untouched (id, type, name).
type Owner map[string]any

// ScheduledTask is a task placed on the event timeline.
type ScheduledTask struct {
	TaskTitle     string   `json:"task_title"`
	Priority      Priority `json:"priority"`
	Duration      Duration `json:"duration"`
	Owners        []Owner  `json:"owners"`
	StartDateTime string   `json:"start_date_time"`
	EndDateTime   string   `json:"end_date_time"`
	Order         int      `json:"order"`
}

// Member is a team member available for scheduling. Fields mirror the
// records sent by the event service.
type Member map[string]any
