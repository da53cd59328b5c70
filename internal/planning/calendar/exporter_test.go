package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-planning-service/internal/model"
	"ai-planning-service/pkg/gcalendar"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type fakeCreator struct {
	reqs []gcalendar.CreateEventRequest
	fail map[string]error
}

func (f *fakeCreator) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.reqs = append(f.reqs, req)
	if err := f.fail[req.Summary]; err != nil {
		return nil, err
	}
	return &gcalendar.Event{HtmlLink: "https://calendar.google.com/" + req.Summary}, nil
}

func TestNew(t *testing.T) {
	_, err := New(nopLogger{}, &fakeCreator{}, Config{Timezone: "Mars/Olympus"})
	require.Error(t, err)

	exp, err := New(nopLogger{}, &fakeCreator{}, Config{})
	require.NoError(t, err)
	impl := exp.(*exporter)
	assert.Equal(t, gcalendar.DefaultCalendarID, impl.calendarID)
	assert.Equal(t, time.UTC, impl.loc)
}

func TestExportSchedule(t *testing.T) {
	creator := &fakeCreator{fail: map[string]error{"Launch: Broken": errors.New("quota exceeded")}}
	exp, err := New(nopLogger{}, creator, Config{CalendarID: "team", Timezone: "UTC"})
	require.NoError(t, err)

	tasks := []model.ScheduledTask{
		{
			TaskTitle:     "Book venue",
			Priority:      model.PriorityHigh,
			Duration:      model.Duration{Quantity: 2, Unit: model.UnitHours},
			Owners:        []model.Owner{{"id": 1, "type": "user", "name": "Ana"}},
			StartDateTime: "2026-11-01T09:00:00",
			EndDateTime:   "2026-11-01T11:00:00",
			Order:         1,
		},
		{
			TaskTitle:     "Order food",
			Duration:      model.Duration{Quantity: 1, Unit: model.UnitDays},
			StartDateTime: "2026-11-02 08:00",
			EndDateTime:   "",
			Order:         2,
		},
		{TaskTitle: "No time", StartDateTime: "whenever", Order: 3},
		{TaskTitle: "Broken", StartDateTime: "2026-11-03", Order: 4},
	}

	links, err := exp.ExportSchedule(context.Background(), "Launch", tasks)

	require.Error(t, err)
	assert.ErrorIs(t, err, errNoStartTime)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Equal(t, []string{
		"https://calendar.google.com/Launch: Book venue",
		"https://calendar.google.com/Launch: Order food",
	}, links)

	require.Len(t, creator.reqs, 3)
	first := creator.reqs[0]
	assert.Equal(t, "team", first.CalendarID)
	assert.Equal(t, time.Date(2026, 11, 1, 11, 0, 0, 0, time.UTC), first.EndTime)
	assert.Contains(t, first.Description, "Owners: Ana")
	assert.Contains(t, first.Description, "Priority: high")

	second := creator.reqs[1]
	assert.Equal(t, 24*time.Hour, second.EndTime.Sub(second.StartTime))
}

func TestDurationOf(t *testing.T) {
	assert.Equal(t, time.Hour, durationOf(model.Duration{}))
	assert.Equal(t, 90*time.Minute, durationOf(model.Duration{Quantity: 1.5, Unit: model.UnitHours}))
	assert.Equal(t, 48*time.Hour, durationOf(model.Duration{Quantity: 2, Unit: model.UnitDays}))
}
