package container

import (
	"fmt"
	"net/http"

	"crop-image-gate/internal/config"
	"crop-image-gate/internal/logger"
	"crop-image-gate/internal/observer"
	"crop-image-gate/internal/service"
	"crop-image-gate/internal/storage"
	"crop-image-gate/internal/transport"
	"crop-image-gate/pkg/quality"
)

// Container holds all application dependencies
type Container struct {
	config  *config.Config
	engine  *quality.Engine
	sources *storage.Resolver
	events  *observer.EventSubject
	stats   *observer.StatsObserver
	service service.ValidationService
	handler http.Handler
}

// NewContainer creates a new dependency injection container
func NewContainer() (*Container, error) {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	engine := quality.NewEngine(cfg.Quality)

	httpSource := storage.NewHTTPSource(cfg.FetchTimeout, cfg.Quality.MaxInputBytes)
	var azureSource storage.ImageSource
	if cfg.AzureConfigured() {
		azureSource, err = storage.NewAzureSource(cfg.AzureAccountName, cfg.AzureAccountKey, cfg.Quality.MaxInputBytes)
		if err != nil {
			return nil, fmt.Errorf("failed to init azure source: %w", err)
		}
	}
	sources := storage.NewResolver(httpSource, azureSource)

	events := observer.NewEventSubject()
	events.Subscribe(observer.NewLoggingObserver(logger.Logger))
	stats := observer.NewStatsObserver()
	events.Subscribe(stats)

	svc := service.NewValidationService(engine, sources, events)
	handler := transport.NewHandler(svc, cfg)

	return &Container{
		config:  cfg,
		engine:  engine,
		sources: sources,
		events:  events,
		stats:   stats,
		service: svc,
		handler: handler,
	}, nil
}

// Handler returns the HTTP handler
func (c *Container) Handler() http.Handler {
	return c.handler
}

// Config returns the configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Stats returns the gate outcome counters
func (c *Container) Stats() *observer.StatsObserver {
	return c.stats
}
