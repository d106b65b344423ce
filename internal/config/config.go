// Package config defines the configuration for the Eventcast API.
// Configuration is loaded once at process startup and is immutable
// thereafter, following 12-Factor principles: values come from the OS
// environment, with an optional .env file for local development.
//
// Any missing required value or invalid format causes the application to
// fail immediately on startup.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the top-level configuration struct for the Eventcast API.
type Config struct {
	// System metadata
	Environment string `envconfig:"APP_ENV" default:"development" validate:"required,oneof=development staging production"`
	Service     string `envconfig:"SERVICE_NAME" default:"eventcast-api"`
	Port        string `envconfig:"APP_PORT" default:"8000"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`

	Weather       WeatherConfig
	Observability ObservabilityConfig
}

// WeatherConfig holds weather provider settings.
type WeatherConfig struct {
	APIKey       string        `envconfig:"OPENWEATHER_API_KEY" validate:"required"`
	BaseURL      string        `envconfig:"OPENWEATHER_BASE_URL" default:"https://api.openweathermap.org/data/2.5" validate:"url"`
	CacheTTL     time.Duration `envconfig:"WEATHER_CACHE_TTL" default:"6h"`
	FetchTimeout time.Duration `envconfig:"WEATHER_FETCH_TIMEOUT" default:"10s"`
}

// ObservabilityConfig holds tracing and metrics export settings.
type ObservabilityConfig struct {
	Enabled      bool   `envconfig:"OTEL_ENABLED" default:"false"`
	OTLPEndpoint string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first when present; existing environment
// variables are never overridden by it.
func Load() (*Config, error) {
	// Non-fatal if absent.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("processing environment configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}
