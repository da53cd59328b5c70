package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-planning-service/internal/middleware"
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

type stubUseCase struct{}

func (stubUseCase) GenerateTasks(ctx context.Context, in planning.GenerateTasksInput) (planning.GenerateTasksOutput, error) {
	return planning.GenerateTasksOutput{Event: in.Event}, nil
}

func (stubUseCase) GenerateSchedule(ctx context.Context, in planning.GenerateScheduleInput) (planning.GenerateScheduleOutput, error) {
	return planning.GenerateScheduleOutput{}, nil
}

func (stubUseCase) GenerateTaskName(ctx context.Context, in planning.GenerateTaskNameInput) (planning.GenerateTaskNameOutput, error) {
	return planning.GenerateTaskNameOutput{TaskName: "Named"}, nil
}

type stubProviders struct{ names []string }

func (s stubProviders) HasProviders() bool      { return len(s.names) > 0 }
func (s stubProviders) ProviderNames() []string { return s.names }

func newServer(t *testing.T, providers ProviderStatus) http.Handler {
	t.Helper()
	srv, err := New(nopLogger{}, Config{
		Port:            8001,
		Mode:            gin.TestMode,
		Environment:     "test",
		Middleware:      middleware.New(nopLogger{}, middleware.Config{}),
		PlanningUseCase: stubUseCase{},
		Providers:       providers,
	})
	require.NoError(t, err)
	return srv.Handler()
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNewValidation(t *testing.T) {
	_, err := New(nopLogger{}, Config{Mode: gin.TestMode, PlanningUseCase: stubUseCase{}})
	assert.Error(t, err, "port is required")

	_, err = New(nopLogger{}, Config{Port: 1, Mode: gin.TestMode})
	assert.Error(t, err, "use case is required")
}

func TestHealthRoutes(t *testing.T) {
	t.Run("with providers", func(t *testing.T) {
		h := newServer(t, stubProviders{names: []string{"qwen", "gemini"}})

		w := do(h, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body.Data["llm_configured"])
		assert.Equal(t, []any{"qwen", "gemini"}, body.Data["llm_providers"])

		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/ready", "").Code)
		assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/live", "").Code)
	})

	t.Run("without providers", func(t *testing.T) {
		h := newServer(t, nil)

		w := do(h, http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"llm_configured":false`)

		assert.Equal(t, http.StatusServiceUnavailable, do(h, http.MethodGet, "/ready", "").Code)
	})
}

func TestDomainRoutes(t *testing.T) {
	h := newServer(t, stubProviders{names: []string{"qwen"}})

	w := do(h, http.MethodPost, "/api/v1/generate-task-name", `{"description":"Reserve the main hall"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"task_name":"Named"`)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))

	assert.Equal(t, http.StatusNotFound, do(h, http.MethodPost, "/api/v1/unknown", `{}`).Code)
}

func TestRunStopsOnCancel(t *testing.T) {
	srv, err := New(nopLogger{}, Config{
		Port:            18091,
		Mode:            gin.TestMode,
		Middleware:      middleware.New(nopLogger{}, middleware.Config{}),
		PlanningUseCase: stubUseCase{},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, srv.Run(ctx))
}
