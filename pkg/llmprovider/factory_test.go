package llmprovider_test

import (
	"context"
	"testing"
	"time"

	"ai-planning-service/config"
	"ai-planning-service/pkg/llmprovider"
	"ai-planning-service/pkg/log"
)

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{
		Level:    "error",
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})
}

// TestInitializeProviders_ConfigToManagerFlow verifies that configuration,
// provider initialization and the manager work together.
func TestInitializeProviders_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "test-gemini-key", Model: "gemini-2.5-flash", Timeout: "30s"},
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "test-qwen-key", Model: "qwen-plus", Timeout: "30s"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "test-ds-key"},
		},
		FallbackEnabled: true,
		RetryAttempts:   3,
		RetryDelay:      "1s",
		MaxTotalTimeout: "45s",
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg, testLogger())
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}
	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "qwen" || providers[1].Name() != "gemini" {
		t.Errorf("Expected qwen then gemini, got %s then %s", providers[0].Name(), providers[1].Name())
	}

	managerConfig, err := llmprovider.NewManagerConfig(cfg)
	if err != nil {
		t.Fatalf("NewManagerConfig: %v", err)
	}
	if managerConfig.RetryDelay != time.Second || managerConfig.MaxTotalTimeout != 45*time.Second {
		t.Errorf("unexpected durations: %+v", managerConfig)
	}

	manager := llmprovider.NewManager(providers, managerConfig, testLogger())
	if !manager.HasProviders() {
		t.Error("manager should have providers")
	}
}

func TestInitializeProviders_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k", Model: "deepseek-chat"},
			}},
		},
		{name: "nil config", cfg: nil, wantErr: true},
		{name: "no providers", cfg: &config.LLMConfig{}, wantErr: true},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Priority: 1, APIKey: "k"},
			}},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "mystery", Enabled: true, Priority: 1, APIKey: "k"},
			}},
			wantErr: true,
		},
		{
			name: "bad timeout",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, APIKey: "k", Timeout: "soon"},
			}},
			wantErr: true,
		},
		{
			name: "one bad provider is skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: true, Priority: 1},
				{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, testLogger())
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewManagerConfig_InvalidDuration(t *testing.T) {
	if _, err := llmprovider.NewManagerConfig(&config.LLMConfig{RetryDelay: "often"}); err == nil {
		t.Error("expected error for invalid retry_delay")
	}
	cfg, err := llmprovider.NewManagerConfig(&config.LLMConfig{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.RetryAttempts != 1 {
		t.Errorf("expected at least one attempt, got %d", cfg.RetryAttempts)
	}
}
