package main

import (
	"log/slog"
	"sync"

	"snowreg/internal/avalanche"
	"snowreg/internal/config"
	"snowreg/internal/observability"
	"snowreg/internal/regobs"
	"snowreg/internal/weather"

	"github.com/gin-gonic/gin"

	_ "snowreg/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	avalancheService avalanche.Service
	weatherService   weather.Service
	metrics          *observability.Metrics
	cfg              *config.Config

	// regobs is nil when no credentials are configured; submitMu
	// serializes authentication and submission on the shared token.
	regobs   *regobs.Connection
	submitMu sync.Mutex
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	metrics := observability.NewMetrics()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(metrics.GinMiddleware())

	app := &App{
		router:           router,
		logger:           logger,
		avalancheService: avalanche.NewAvalancheService(logger),
		weatherService:   weather.NewWeatherService(logger),
		metrics:          metrics,
		cfg:              cfg,
	}

	if cfg.Regobs.Username != "" && cfg.Regobs.Password != "" {
		app.regobs = regobs.NewConnection(cfg.Regobs.Prod, logger).
			WithBaseURLs(cfg.Regobs.APIURL, cfg.Regobs.AuthURL).
			WithMetrics(metrics)
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
