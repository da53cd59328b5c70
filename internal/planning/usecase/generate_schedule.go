package usecase

import (
	"context"
	"strings"

	"ai-planning-service/internal/model"
	"ai-planning-service/internal/planning"
)

// GenerateSchedule asks the model to assign tasks to members and returns the
// validated schedule sorted by order. When requested and configured, the
// schedule is also exported to the calendar; export failures are logged and
// do not fail the call.
func (uc *implUseCase) GenerateSchedule(ctx context.Context, input planning.GenerateScheduleInput) (planning.GenerateScheduleOutput, error) {
	if strings.TrimSpace(input.EventName) == "" {
		return planning.GenerateScheduleOutput{}, planning.ErrEmptyInput
	}
	if len(input.Tasks) == 0 {
		return planning.GenerateScheduleOutput{}, planning.ErrNoTasks
	}
	if len(input.Members) == 0 {
		return planning.GenerateScheduleOutput{}, planning.ErrNoMembers
	}

	uc.l.Infof(ctx, "internal.planning.usecase.GenerateSchedule: event=%q tasks=%d members=%d",
		input.EventName, len(input.Tasks), len(input.Members))

	records, err := uc.generateRecords(ctx, "GenerateSchedule", BuildSchedulePrompt(uc.resolveDates(ctx, input)))
	if err != nil {
		return planning.GenerateScheduleOutput{}, err
	}

	scheduled, err := uc.assembler.AssembleSchedule(ctx, records)
	if err != nil {
		uc.l.Warnf(ctx, "internal.planning.usecase.GenerateSchedule: %v", err)
		return planning.GenerateScheduleOutput{}, err
	}

	out := planning.GenerateScheduleOutput{ScheduledTasks: scheduled}
	if input.SyncCalendar {
		out.CalendarLinks = uc.exportSchedule(ctx, input.EventName, scheduled)
	}
	return out, nil
}

// resolveDates turns relative event dates into absolute ones for the prompt.
func (uc *implUseCase) resolveDates(ctx context.Context, input planning.GenerateScheduleInput) planning.GenerateScheduleInput {
	if uc.dates == nil {
		return input
	}
	now := uc.now()
	start := uc.dates.ResolveDate(input.EventStartDate, now)
	end := uc.dates.ResolveDate(input.EventEndDate, now)
	if start != input.EventStartDate || end != input.EventEndDate {
		uc.l.Debugf(ctx, "internal.planning.usecase.GenerateSchedule: resolved dates %q..%q to %s..%s",
			input.EventStartDate, input.EventEndDate, start, end)
	}
	input.EventStartDate, input.EventEndDate = start, end
	return input
}

func (uc *implUseCase) exportSchedule(ctx context.Context, eventName string, scheduled []model.ScheduledTask) []string {
	if uc.calendar == nil {
		uc.l.Warnf(ctx, "internal.planning.usecase.GenerateSchedule: calendar sync requested but not configured")
		return nil
	}
	links, err := uc.calendar.ExportSchedule(ctx, eventName, scheduled)
	if err != nil {
		uc.l.Warnf(ctx, "internal.planning.usecase.GenerateSchedule: calendar export failed (non-fatal): %v", err)
		return links
	}
	uc.l.Infof(ctx, "internal.planning.usecase.GenerateSchedule: exported %d calendar events", len(links))
	return links
}
