package planning

import (
	"context"

	"ai-planning-service/internal/model"
)

// UseCase turns event descriptions into validated planning records using an
// external text model.
type UseCase interface {
	// GenerateTasks asks the model for a task breakdown of an event.
	GenerateTasks(ctx context.Context, input GenerateTasksInput) (GenerateTasksOutput, error)

	// GenerateSchedule asks the model to assign and order tasks among members.
	GenerateSchedule(ctx context.Context, input GenerateScheduleInput) (GenerateScheduleOutput, error)

	// GenerateTaskName compresses a description into a short title. It only
	// fails on empty input.
	GenerateTaskName(ctx context.Context, input GenerateTaskNameInput) (GenerateTaskNameOutput, error)
}

// Generator is the text model collaborator. Implementations must honour ctx
// cancellation; errors are returned to the caller as-is.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// CalendarExporter publishes a generated schedule. It returns one link per
// exported task.
type CalendarExporter interface {
	ExportSchedule(ctx context.Context, eventName string, tasks []model.ScheduledTask) ([]string, error)
}
