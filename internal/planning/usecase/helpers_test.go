package usecase

import (
	"context"
	"sync"

	"ai-planning-service/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubGenerator returns canned responses in order and records prompts.
type stubGenerator struct {
	mu        sync.Mutex
	responses []string
	err       error
	prompts   []string
}

func (g *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.prompts = append(g.prompts, prompt)
	if g.err != nil {
		return "", g.err
	}
	if len(g.responses) == 0 {
		return "", nil
	}
	out := g.responses[0]
	if len(g.responses) > 1 {
		g.responses = g.responses[1:]
	}
	return out, nil
}

func (g *stubGenerator) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.prompts)
}

// recordingShortener returns a fixed title and counts calls.
type recordingShortener struct {
	title string
	seen  []string
}

func (s *recordingShortener) Shorten(ctx context.Context, description string) string {
	s.seen = append(s.seen, description)
	return s.title
}

type stubCalendar struct {
	links []string
	err   error
	got   []model.ScheduledTask
}

func (c *stubCalendar) ExportSchedule(ctx context.Context, eventName string, tasks []model.ScheduledTask) ([]string, error) {
	c.got = tasks
	return c.links, c.err
}
