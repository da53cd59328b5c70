package planning

import "ai-planning-service/internal/model"

// GenerateTasksInput is the input for task generation.
type GenerateTasksInput struct {
	Event     string
	EventInfo string
}

// GenerateTasksOutput is the result of task generation.
type GenerateTasksOutput struct {
	Event      string
	Tasks      []model.TaskDescriptor
	TotalTasks int
}

// GenerateScheduleInput is the input for schedule generation. Tasks and
// Members are validated upstream and only rendered into the prompt.
type GenerateScheduleInput struct {
	EventName      string
	EventInfo      string
	EventStartDate string
	EventEndDate   string
	Tasks          []map[string]any
	Members        []model.Member
	SyncCalendar   bool
}

// GenerateScheduleOutput is the result of schedule generation.
// CalendarLinks is empty unless the schedule was exported.
type GenerateScheduleOutput struct {
	ScheduledTasks []model.ScheduledTask
	CalendarLinks  []string
}

// GenerateTaskNameInput is the input for title generation.
type GenerateTaskNameInput struct {
	Description string
}

// GenerateTaskNameOutput is the generated title.
type GenerateTaskNameOutput struct {
	TaskName string
}
