// Package api provides the HTTP API for Eventcast.
package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/eventcast/eventcast/internal/api/handler"
	"github.com/eventcast/eventcast/internal/api/middleware"
	"github.com/eventcast/eventcast/internal/event"
	"github.com/eventcast/eventcast/internal/provider/resilience"
	"github.com/eventcast/eventcast/internal/suitability"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Version       string
	BuildTime     string
	Logger        zerolog.Logger
	ServiceName   string
	Metrics       *middleware.Metrics
	EventService  *event.Service
	WeatherSource handler.ObservationSource
	Finder        *suitability.Finder
	Registry      *resilience.Registry
}

// NewRouter creates a new chi router with all API routes configured.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Set default service name if not provided
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "eventcast-api"
	}

	// Global middleware - order matters
	r.Use(middleware.RequestID)            // Generate/propagate request ID first
	r.Use(middleware.Tracing(serviceName)) // Distributed tracing
	if cfg.Metrics != nil {
		r.Use(cfg.Metrics.Middleware()) // HTTP metrics
	}
	r.Use(middleware.Logger(cfg.Logger))   // Structured logging
	r.Use(middleware.Recovery(cfg.Logger)) // Panic recovery
	r.Use(chimiddleware.RealIP)            // Real IP extraction
	r.Use(middleware.SecurityHeaders)      // Security headers (HSTS, CSP, etc.)
	r.Use(middleware.RequireTLS)           // TLS enforcement (enabled via REQUIRE_TLS=true)
	r.Use(middleware.ContentTypeJSON)      // JSON content type

	// Initialize handlers
	opsHandler := handler.NewOpsHandler(cfg.Version, cfg.BuildTime, cfg.EventService, cfg.Registry)
	eventHandler := handler.NewEventHandler(cfg.EventService, cfg.WeatherSource, cfg.Logger)
	weatherHandler := handler.NewWeatherHandler(cfg.WeatherSource)
	suitabilityHandler := handler.NewSuitabilityHandler(cfg.EventService, cfg.WeatherSource, cfg.Finder, cfg.Logger)

	// Create rate limit middleware for different endpoint categories
	expensiveRateLimit := middleware.RateLimitByIP(middleware.ExpensiveRateLimit) // 30 req/min
	standardRateLimit := middleware.RateLimitByIP(middleware.StandardRateLimit)   // 100 req/min

	// API v1 routes
	r.Route("/v1", func(r chi.Router) {
		// Ops endpoints (public)
		r.Route("/ops", func(r chi.Router) {
			r.Get("/health", opsHandler.HealthCheck)
			r.Get("/ready", opsHandler.ReadinessCheck)
		})

		// Event endpoints - standard rate limiting
		r.Route("/events", func(r chi.Router) {
			r.Use(standardRateLimit)
			r.Get("/", eventHandler.ListEvents)
			r.Post("/", eventHandler.CreateEvent)
			r.Route("/{eventId}", func(r chi.Router) {
				r.Get("/", eventHandler.GetEvent)
				r.Put("/", eventHandler.UpdateEvent)
				r.Delete("/", eventHandler.DeleteEvent)

				// Scoring endpoints fan out to the weather provider,
				// so they get the stricter limit.
				r.With(expensiveRateLimit).Get("/suitability", suitabilityHandler.GetSuitability)
				r.With(expensiveRateLimit).Get("/alternatives", suitabilityHandler.GetAlternatives)
			})
		})

		// Weather endpoints - expensive, provider-backed lookups
		r.Route("/weather", func(r chi.Router) {
			r.Use(expensiveRateLimit)
			r.Get("/{location}", weatherHandler.GetWeather)
			r.Get("/{location}/{date}", weatherHandler.GetWeather)
		})
	})

	return r
}
