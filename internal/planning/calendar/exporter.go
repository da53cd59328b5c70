package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"ai-planning-service/internal/model"
	"ai-planning-service/pkg/gcalendar"
)

var errNoStartTime = errors.New("start time is missing or unparseable")

// ExportSchedule creates one calendar event per task and returns the event
// links. Tasks that cannot be placed are skipped; their errors are joined
// into the returned error alongside the links that did succeed.
func (e *exporter) ExportSchedule(ctx context.Context, eventName string, tasks []model.ScheduledTask) ([]string, error) {
	links := make([]string, 0, len(tasks))
	var errs []error

	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		req, err := e.buildRequest(eventName, task)
		if err != nil {
			errs = append(errs, fmt.Errorf("task %q: %w", task.TaskTitle, err))
			continue
		}

		event, err := e.creator.CreateEvent(ctx, req)
		if err != nil {
			e.l.Warnf(ctx, "internal.planning.calendar.ExportSchedule: task=%q: %v", task.TaskTitle, err)
			errs = append(errs, fmt.Errorf("task %q: %w", task.TaskTitle, err))
			continue
		}
		links = append(links, event.HtmlLink)
	}

	return links, errors.Join(errs...)
}

func (e *exporter) buildRequest(eventName string, task model.ScheduledTask) (gcalendar.CreateEventRequest, error) {
	start, err := gcalendar.ParseDateTime(strings.TrimSpace(task.StartDateTime), e.loc)
	if err != nil {
		return gcalendar.CreateEventRequest{}, fmt.Errorf("%w: %w", errNoStartTime, err)
	}

	end, err := gcalendar.ParseDateTime(strings.TrimSpace(task.EndDateTime), e.loc)
	if err != nil || !end.After(start) {
		end = start.Add(durationOf(task.Duration))
	}

	return gcalendar.CreateEventRequest{
		CalendarID:  e.calendarID,
		Summary:     fmt.Sprintf("%s: %s", eventName, task.TaskTitle),
		Description: describe(task),
		StartTime:   start,
		EndTime:     end,
		Timezone:    e.timezone,
	}, nil
}

// durationOf converts a schedule duration to wall time; anything
// non-positive counts as one hour.
func durationOf(d model.Duration) time.Duration {
	if d.Quantity <= 0 {
		return time.Hour
	}
	unit := time.Hour
	if d.Unit == model.UnitDays {
		unit = 24 * time.Hour
	}
	return time.Duration(d.Quantity * float64(unit))
}

func describe(task model.ScheduledTask) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order: %d\nPriority: %s\n", task.Order, task.Priority)

	names := make([]string, 0, len(task.Owners))
	for _, o := range task.Owners {
		if name, ok := o["name"].(string); ok && name != "" {
			names = append(names, name)
		}
	}
	if len(names) > 0 {
		fmt.Fprintf(&b, "Owners: %s\n", strings.Join(names, ", "))
	}
	return b.String()
}
