package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-planning-service/internal/middleware"
	"ai-planning-service/internal/model"
	"ai-planning-service/internal/planning"
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

// stubUseCase returns canned outputs and records the inputs it saw.
type stubUseCase struct {
	tasksOut    planning.GenerateTasksOutput
	scheduleOut planning.GenerateScheduleOutput
	nameOut     planning.GenerateTaskNameOutput
	err         error

	gotTasks    planning.GenerateTasksInput
	gotSchedule planning.GenerateScheduleInput
	called      bool
}

func (s *stubUseCase) GenerateTasks(ctx context.Context, in planning.GenerateTasksInput) (planning.GenerateTasksOutput, error) {
	s.called = true
	s.gotTasks = in
	return s.tasksOut, s.err
}

func (s *stubUseCase) GenerateSchedule(ctx context.Context, in planning.GenerateScheduleInput) (planning.GenerateScheduleOutput, error) {
	s.called = true
	s.gotSchedule = in
	return s.scheduleOut, s.err
}

func (s *stubUseCase) GenerateTaskName(ctx context.Context, in planning.GenerateTaskNameInput) (planning.GenerateTaskNameOutput, error) {
	s.called = true
	return s.nameOut, s.err
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func newRouter(uc planning.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(nopLogger{}, middleware.Config{})
	RegisterRoutes(r.Group("/api/v1"), New(nopLogger{}, uc), mw)
	return r
}

func post(t *testing.T, r *gin.Engine, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestGenerateTasks(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &stubUseCase{tasksOut: planning.GenerateTasksOutput{
			Event: "Hackathon",
			Tasks: []model.TaskDescriptor{
				{Task: "Book venue", Description: "Reserve hall", Priority: model.PriorityHigh,
					EstimatedDuration: &model.Duration{Quantity: 2, Unit: model.UnitDays}},
				{Task: "Order food", Description: "Catering", Priority: model.PriorityLow},
			},
			TotalTasks: 2,
		}}
		w, env := post(t, newRouter(uc), "/api/v1/generate-tasks", map[string]string{
			"event": "Hackathon", "event_info": "48h, 100 people",
		})

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, env.ErrorCode)
		assert.Equal(t, "48h, 100 people", uc.gotTasks.EventInfo)

		var data generateTasksResp
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Hackathon", data.Event)
		assert.Equal(t, 2, data.TotalTasks)
		require.Len(t, data.Tasks, 2)
		assert.Equal(t, "high", data.Tasks[0].Priority)
		require.NotNil(t, data.Tasks[0].EstimatedDuration)
		assert.Equal(t, "days", data.Tasks[0].EstimatedDuration.Unit)
		assert.Nil(t, data.Tasks[1].EstimatedDuration)
	})

	t.Run("missing event_info", func(t *testing.T) {
		uc := &stubUseCase{}
		w, env := post(t, newRouter(uc), "/api/v1/generate-tasks", map[string]string{"event": "Hackathon"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errEventRequired.Error(), env.Message)
		assert.False(t, uc.called)
	})

	t.Run("malformed body", func(t *testing.T) {
		uc := &stubUseCase{}
		w, _ := post(t, newRouter(uc), "/api/v1/generate-tasks", "{not json")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, uc.called)
	})

	t.Run("no valid records", func(t *testing.T) {
		uc := &stubUseCase{err: &planning.ExtractionFailure{Kind: planning.KindTasks, Records: 1}}
		w, env := post(t, newRouter(uc), "/api/v1/generate-tasks", map[string]string{
			"event": "Hackathon", "event_info": "details",
		})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, http.StatusUnprocessableEntity, env.ErrorCode)
	})

	t.Run("generator failure", func(t *testing.T) {
		uc := &stubUseCase{err: fmt.Errorf("%w: %w", planning.ErrGeneratorFailed, errors.New("timeout"))}
		w, _ := post(t, newRouter(uc), "/api/v1/generate-tasks", map[string]string{
			"event": "Hackathon", "event_info": "details",
		})

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("unexpected error", func(t *testing.T) {
		uc := &stubUseCase{err: errors.New("boom")}
		w, _ := post(t, newRouter(uc), "/api/v1/generate-tasks", map[string]string{
			"event": "Hackathon", "event_info": "details",
		})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGenerateSchedule(t *testing.T) {
	body := map[string]any{
		"event_name":       "Launch",
		"event_start_date": "2026-11-01",
		"event_end_date":   "2026-11-03",
		"tasks":            []map[string]any{{"task": "Book venue"}},
		"members":          []map[string]any{{"id": 1, "firstName": "Ana"}},
		"sync_calendar":    true,
	}

	t.Run("success", func(t *testing.T) {
		uc := &stubUseCase{scheduleOut: planning.GenerateScheduleOutput{
			ScheduledTasks: []model.ScheduledTask{{
				TaskTitle:     "Book venue",
				Priority:      model.PriorityMedium,
				Duration:      model.Duration{Quantity: 1, Unit: model.UnitHours},
				Owners:        []model.Owner{{"id": float64(1), "type": "user", "name": "Ana"}},
				StartDateTime: "2026-11-01T09:00:00",
				EndDateTime:   "2026-11-01T10:00:00",
				Order:         1,
			}},
			CalendarLinks: []string{"https://calendar.google.com/event?eid=1"},
		}}
		w, env := post(t, newRouter(uc), "/api/v1/generate-schedule", body)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, uc.gotSchedule.SyncCalendar)
		assert.Equal(t, "2026-11-03", uc.gotSchedule.EventEndDate)
		require.Len(t, uc.gotSchedule.Members, 1)
		assert.Equal(t, "Ana", uc.gotSchedule.Members[0]["firstName"])

		var data generateScheduleResp
		require.NoError(t, json.Unmarshal(env.Data, &data))
		require.Len(t, data.ScheduledTasks, 1)
		assert.Equal(t, "Book venue", data.ScheduledTasks[0].TaskTitle)
		assert.Equal(t, "Ana", data.ScheduledTasks[0].Owners[0]["name"])
		assert.Equal(t, []string{"https://calendar.google.com/event?eid=1"}, data.CalendarLinks)
	})

	validation := []struct {
		name   string
		mutate func(map[string]any)
		want   string
	}{
		{"missing event name", func(b map[string]any) { delete(b, "event_name") }, errEventNameRequired.Error()},
		{"empty tasks", func(b map[string]any) { b["tasks"] = []any{} }, errNoTasks.Error()},
		{"missing members", func(b map[string]any) { delete(b, "members") }, errNoMembers.Error()},
	}
	for _, tc := range validation {
		t.Run(tc.name, func(t *testing.T) {
			b := make(map[string]any, len(body))
			for k, v := range body {
				b[k] = v
			}
			tc.mutate(b)

			uc := &stubUseCase{}
			w, env := post(t, newRouter(uc), "/api/v1/generate-schedule", b)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.want, env.Message)
			assert.False(t, uc.called)
		})
	}

	t.Run("no valid records", func(t *testing.T) {
		uc := &stubUseCase{err: &planning.ExtractionFailure{Kind: planning.KindSchedule, Records: 3}}
		w, _ := post(t, newRouter(uc), "/api/v1/generate-schedule", body)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestGenerateTaskName(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		uc := &stubUseCase{nameOut: planning.GenerateTaskNameOutput{TaskName: "Book venue"}}
		w, env := post(t, newRouter(uc), "/api/v1/generate-task-name", map[string]string{
			"description": "Find and reserve a venue for the whole team",
		})

		require.Equal(t, http.StatusOK, w.Code)
		var data generateTaskNameResp
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, "Book venue", data.TaskName)
	})

	t.Run("blank description", func(t *testing.T) {
		uc := &stubUseCase{}
		w, env := post(t, newRouter(uc), "/api/v1/generate-task-name", map[string]string{"description": "   "})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, errDescriptionRequired.Error(), env.Message)
	})

	t.Run("empty input from use case", func(t *testing.T) {
		uc := &stubUseCase{err: planning.ErrEmptyInput}
		w, _ := post(t, newRouter(uc), "/api/v1/generate-task-name", map[string]string{"description": "x"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestRateLimitedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(nopLogger{}, middleware.Config{RequestsPerMin: 10})
	uc := &stubUseCase{nameOut: planning.GenerateTaskNameOutput{TaskName: "t"}}
	RegisterRoutes(r.Group("/api/v1"), New(nopLogger{}, uc), mw)

	// Burst is one request; the second within the same second is rejected.
	w1, _ := post(t, r, "/api/v1/generate-task-name", map[string]string{"description": "a"})
	w2, env := post(t, r, "/api/v1/generate-task-name", map[string]string{"description": "a"})

	assert.Equal(t, http.StatusOK, w1.Code)
	assert.Equal(t, http.StatusTooManyRequests, w2.Code)
	assert.Equal(t, http.StatusTooManyRequests, env.ErrorCode)
}
