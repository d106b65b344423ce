// Package main provides the entrypoint for the Eventcast API server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventcast/eventcast/internal/api"
	"github.com/eventcast/eventcast/internal/api/middleware"
	"github.com/eventcast/eventcast/internal/config"
	"github.com/eventcast/eventcast/internal/event"
	"github.com/eventcast/eventcast/internal/provider/resilience"
	"github.com/eventcast/eventcast/internal/suitability"
	"github.com/eventcast/eventcast/internal/telemetry"
	"github.com/eventcast/eventcast/internal/weather"
	"github.com/eventcast/eventcast/internal/weather/openweathermap"
)

// Version and BuildTime are set at compile time via ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup structured logging
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).
		Level(level).
		With().
		Timestamp().
		Str("service", cfg.Service).
		Str("version", Version).
		Logger()

	log.Info().
		Str("build_time", BuildTime).
		Str("environment", cfg.Environment).
		Msg("starting Eventcast API")

	// Scoring profiles are static tables; a malformed one is a programming
	// error that should stop the process before it serves a single request.
	if err := suitability.VerifyProfiles(); err != nil {
		log.Fatal().Err(err).Msg("invalid suitability profiles")
	}

	// Initialize OpenTelemetry
	ctx := context.Background()
	tp, err := telemetry.Init(ctx, telemetry.Config{
		ServiceName:    cfg.Service,
		ServiceVersion: Version,
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.Observability.OTLPEndpoint,
		Enabled:        cfg.Observability.Enabled,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize telemetry")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tp.Shutdown(shutdownCtx); shutdownErr != nil {
			log.Error().Err(shutdownErr).Msg("failed to shutdown telemetry")
		}
	}()

	if cfg.Observability.Enabled {
		log.Info().
			Str("otlp_endpoint", cfg.Observability.OTLPEndpoint).
			Msg("OpenTelemetry initialized")
	}

	// Initialize metrics
	metrics, err := middleware.NewMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize metrics")
		os.Exit(1) //nolint:gocritic // intentional exit, telemetry cleanup is best-effort
	}

	providerMetrics, err := weather.NewProviderMetrics()
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize provider metrics")
		os.Exit(1)
	}

	// Initialize the weather provider behind a resilient HTTP client
	clientConfig := resilience.DefaultClientConfig(openweathermap.ProviderName)
	clientConfig.Timeout = cfg.Weather.FetchTimeout
	httpClient := resilience.NewClient(clientConfig)
	resilience.GlobalRegistry.Register(openweathermap.ProviderName, httpClient)

	owmClient := openweathermap.NewClient(openweathermap.ClientConfig{
		APIKey:     cfg.Weather.APIKey,
		BaseURL:    cfg.Weather.BaseURL,
		HTTPClient: httpClient,
		Logger:     log,
		Metrics:    providerMetrics,
	})

	weatherService := weather.NewService(weather.ServiceConfig{
		Provider: owmClient,
		Logger:   log,
		CacheTTL: cfg.Weather.CacheTTL,
		Metrics:  providerMetrics,
	})
	log.Info().
		Str("provider", openweathermap.ProviderName).
		Msg("weather service initialized")

	// Initialize event repository and service
	eventRepo := event.NewInMemoryRepository()
	eventService := event.NewService(eventRepo, nil)
	log.Info().Msg("event service initialized")

	// Initialize the alternative-date finder
	finder := suitability.NewFinder(suitability.FinderConfig{
		Source: weatherService,
		Logger: log,
	})

	// Create router with configuration
	router := api.NewRouter(api.RouterConfig{
		Version:       Version,
		BuildTime:     BuildTime,
		Logger:        log,
		ServiceName:   cfg.Service,
		Metrics:       metrics,
		EventService:  eventService,
		WeatherSource: weatherService,
		Finder:        finder,
		Registry:      resilience.GlobalRegistry,
	})

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().
			Str("addr", server.Addr).
			Msg("server listening")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
		os.Exit(1)
	}

	log.Info().Msg("server stopped")
}
