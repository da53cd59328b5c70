package usecase

import (
	"context"
	"strings"

	"ai-planning-service/internal/planning"
)

// GenerateTasks asks the model for the tasks of an event and validates them.
func (uc *implUseCase) GenerateTasks(ctx context.Context, input planning.GenerateTasksInput) (planning.GenerateTasksOutput, error) {
	event := strings.TrimSpace(input.Event)
	info := strings.TrimSpace(input.EventInfo)
	if event == "" || info == "" {
		return planning.GenerateTasksOutput{}, planning.ErrEmptyInput
	}

	uc.l.Infof(ctx, "internal.planning.usecase.GenerateTasks: event=%q info_length=%d", event, len(info))

	records, err := uc.generateRecords(ctx, "GenerateTasks", BuildTaskPrompt(event, info))
	if err != nil {
		return planning.GenerateTasksOutput{}, err
	}

	tasks, err := uc.assembler.AssembleTasks(ctx, records)
	if err != nil {
		uc.l.Warnf(ctx, "internal.planning.usecase.GenerateTasks: %v", err)
		return planning.GenerateTasksOutput{}, err
	}

	return planning.GenerateTasksOutput{
		Event:      input.Event,
		Tasks:      tasks,
		TotalTasks: len(tasks),
	}, nil
}
