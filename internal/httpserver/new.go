package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ai-planning-service/internal/middleware"
	"ai-planning-service/internal/planning"
	"ai-planning-service/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Planning domain
	planningUC planning.UseCase
	providers  ProviderStatus
}

// ProviderStatus reports which language model providers are available.
// *llmprovider.Manager satisfies it.
type ProviderStatus interface {
	HasProviders() bool
	ProviderNames() []string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Planning domain
	PlanningUseCase planning.UseCase
	Providers       ProviderStatus
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		planningUC:  cfg.PlanningUseCase,
		providers:   cfg.Providers,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.planningUC == nil {
		return errors.New("planning use case is required")
	}
	return nil
}
