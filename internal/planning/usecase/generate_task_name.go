package usecase

import (
	"context"
	"strings"

	"ai-planning-service/internal/planning"
)

// GenerateTaskName produces a short title for a description.
func (uc *implUseCase) GenerateTaskName(ctx context.Context, input planning.GenerateTaskNameInput) (planning.GenerateTaskNameOutput, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return planning.GenerateTaskNameOutput{}, planning.ErrEmptyInput
	}
	return planning.GenerateTaskNameOutput{TaskName: uc.titles.Shorten(ctx, description)}, nil
}
