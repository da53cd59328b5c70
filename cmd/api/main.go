package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"ai-planning-service/config"
	_ "ai-planning-service/docs" // Swagger docs
	"ai-planning-service/internal/httpserver"
	"ai-planning-service/internal/middleware"
	"ai-planning-service/internal/planning"
	planningCalendar "ai-planning-service/internal/planning/calendar"
	"ai-planning-service/internal/planning/usecase"
	"ai-planning-service/pkg/datemath"
	"ai-planning-service/pkg/gcalendar"
	"ai-planning-service/pkg/llmprovider"
	"ai-planning-service/pkg/log"
)

// @title       AI Planning Service API
// @description Generates event tasks, schedules and task names with a language model and validates the results.
// @version     1
// @host        localhost:8001
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting AI Planning Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		logger.Warnf(ctx, "No LLM provider available, generation endpoints will fail: %v", err)
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Invalid LLM manager config: ", err)
		return
	}
	manager := llmprovider.NewManager(providers, managerCfg, logger)
	logger.Infof(ctx, "LLM providers (in fallback order): %v", manager.ProviderNames())

	taskGen := llmprovider.NewTextGenerator(manager, "", cfg.Planning.TaskTemperature, cfg.Planning.MaxOutputTokens)
	titleGen := llmprovider.NewTextGenerator(manager, "", cfg.Planning.TitleTemperature, cfg.Planning.MaxOutputTokens)

	// 4. Google Calendar export (optional)
	calendarExporter := initCalendar(ctx, logger, cfg.GoogleCalendar)

	// 5. Planning UseCase
	dateParser, err := datemath.NewParser(cfg.Planning.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid planning timezone, falling back to UTC: %v", err)
		dateParser, _ = datemath.NewParser("UTC")
	}
	planningUC := usecase.New(logger, taskGen, titleGen, calendarExporter, dateParser)

	// 6. HTTP Server
	mw := middleware.New(logger, middleware.Config{
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	})
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		PlanningUseCase: planningUC,
		Providers:       manager,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// initCalendar returns nil when calendar export is not configured or fails
// to initialize; schedules are then returned without calendar links.
func initCalendar(ctx context.Context, logger log.Logger, cfg config.GoogleCalendarConfig) planning.CalendarExporter {
	if cfg.CredentialsPath == "" {
		logger.Info(ctx, "Google Calendar export disabled (no credentials_path)")
		return nil
	}

	client, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
	if err != nil {
		logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
		return nil
	}

	exporter, err := planningCalendar.New(logger, client, planningCalendar.Config{
		CalendarID: cfg.CalendarID,
		Timezone:   cfg.Timezone,
	})
	if err != nil {
		logger.Warnf(ctx, "Google Calendar export disabled: %v", err)
		return nil
	}

	logger.Infof(ctx, "Google Calendar export enabled (calendar: %s)", cfg.CalendarID)
	return exporter
}
