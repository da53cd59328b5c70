package calendar

import (
	"context"
	"fmt"
	"time"

	"ai-planning-service/internal/planning"
	"ai-planning-service/pkg/gcalendar"
	"ai-planning-service/pkg/log"
)

// EventCreator is the calendar backend. *gcalendar.Client satisfies it.
type EventCreator interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config selects the target calendar and the zone for naive timestamps.
type Config struct {
	CalendarID string
	Timezone   string
}

type exporter struct {
	l          log.Logger
	creator    EventCreator
	calendarID string
	timezone   string
	loc        *time.Location
}

// New creates a planning.CalendarExporter backed by creator.
func New(l log.Logger, creator EventCreator, cfg Config) (planning.CalendarExporter, error) {
	tz := cfg.Timezone
	if tz == "" {
		tz = gcalendar.DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid calendar timezone %q: %w", tz, err)
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}

	return &exporter{
		l:          l,
		creator:    creator,
		calendarID: calendarID,
		timezone:   tz,
		loc:        loc,
	}, nil
}
