// Package openweathermap implements the weather.Provider interface against
// the OpenWeatherMap API.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventcast/eventcast/internal/provider/resilience"
	"github.com/eventcast/eventcast/internal/weather"
)

const (
	// ProviderName identifies this weather provider.
	ProviderName = "openweathermap"

	// DefaultBaseURL is the OpenWeatherMap API base URL.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
)

// ClientConfig holds configuration for the OpenWeatherMap client.
type ClientConfig struct {
	// APIKey is the OpenWeatherMap API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to OpenWeatherMap API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger

	// Metrics records request durations and outcomes (optional).
	Metrics *weather.ProviderMetrics
}

// Client is an OpenWeatherMap API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
	metrics    *weather.ProviderMetrics
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Current fetches current conditions for a location.
func (c *Client) Current(ctx context.Context, location string) (*weather.Observation, error) {
	endpoint := fmt.Sprintf("%s/weather?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(location), c.apiKey)

	var owmResp currentWeatherResponse
	if err := c.get(ctx, "current", endpoint, &owmResp); err != nil {
		return nil, err
	}

	return c.toObservation(&owmResp), nil
}

// Forecast fetches the 5-day / 3-hourly forecast for a location.
func (c *Client) Forecast(ctx context.Context, location string) ([]weather.ForecastEntry, error) {
	endpoint := fmt.Sprintf("%s/forecast?q=%s&appid=%s&units=metric",
		c.baseURL, url.QueryEscape(location), c.apiKey)

	var owmResp forecastResponse
	if err := c.get(ctx, "forecast", endpoint, &owmResp); err != nil {
		return nil, err
	}

	return c.toForecastEntries(&owmResp), nil
}

// get executes a GET request and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, operation, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.RecordRequest(ProviderName, operation, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// toObservation converts an OpenWeatherMap current-weather response to the
// domain model. The current-weather payload carries no rain field in the
// shape we consume, so precipitation is always zero here.
func (c *Client) toObservation(resp *currentWeatherResponse) *weather.Observation {
	humidity := int(math.Round(resp.Main.Humidity))
	obs := &weather.Observation{
		Temperature: round1(resp.Main.Temp),
		Humidity:    &humidity,
		WindSpeed:   round1(resp.Wind.Speed),
		FetchedAt:   time.Now(),
	}

	if len(resp.Weather) > 0 {
		obs.Description = resp.Weather[0].Description
		obs.Icon = resp.Weather[0].Icon
	}

	return obs
}

// toForecastEntries converts forecast buckets to domain entries. Bucket
// precipitation is the 3-hour rain accumulation averaged to a per-hour mm
// rate; buckets without rain report zero.
func (c *Client) toForecastEntries(resp *forecastResponse) []weather.ForecastEntry {
	entries := make([]weather.ForecastEntry, 0, len(resp.List))
	now := time.Now()

	for _, item := range resp.List {
		humidity := int(math.Round(item.Main.Humidity))
		obs := weather.Observation{
			Temperature:   round1(item.Main.Temp),
			Humidity:      &humidity,
			WindSpeed:     round1(item.Wind.Speed),
			Precipitation: round1(item.Rain.ThreeHour / 3),
			FetchedAt:     now,
		}

		if len(item.Weather) > 0 {
			obs.Description = item.Weather[0].Description
			obs.Icon = item.Weather[0].Icon
		}

		entries = append(entries, weather.ForecastEntry{
			Time:        time.Unix(item.Dt, 0),
			Observation: obs,
		})
	}

	return entries
}

// round1 rounds to one decimal place, matching the provider's precision.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// OpenWeatherMap API response structures.

type currentWeatherResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

type forecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
		} `json:"main"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Rain struct {
			ThreeHour float64 `json:"3h"`
		} `json:"rain"`
	} `json:"list"`
}
