package weather

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Provider fetches raw weather data for a free-text location.
type Provider interface {
	// Current fetches current conditions.
	Current(ctx context.Context, location string) (*Observation, error)

	// Forecast fetches the provider's forecast buckets (3-hourly for
	// OpenWeatherMap, covering roughly five days).
	Forecast(ctx context.Context, location string) ([]ForecastEntry, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the weather service.
type ServiceConfig struct {
	// Provider is the upstream weather data provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// CacheTTL is the freshness window for cached observations
	// (default: 6 hours).
	CacheTTL time.Duration

	// Metrics records cache hit/miss counts (optional).
	Metrics *ProviderMetrics
}

// Service hands out observations keyed by (location, date), caching each
// key for the freshness window so repeated scoring calls don't hit the
// provider again.
type Service struct {
	provider Provider
	logger   zerolog.Logger
	cacheTTL time.Duration
	metrics  *ProviderMetrics

	mu              sync.RWMutex
	cache           map[string]*cachedObservation
	lastCleanup     time.Time
	cleanupInterval time.Duration
}

type cachedObservation struct {
	observation *Observation
	expiresAt   time.Time
}

// NewService creates a new weather service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 6 * time.Hour
	}

	return &Service{
		provider:        cfg.Provider,
		logger:          cfg.Logger,
		cacheTTL:        cacheTTL,
		metrics:         cfg.Metrics,
		cache:           make(map[string]*cachedObservation),
		cleanupInterval: 30 * time.Minute,
	}
}

// Fetch returns the observation for a location on the given date. An empty
// date means current conditions; otherwise date must be "YYYY-MM-DD" and is
// resolved against the provider's forecast buckets. Returns ErrUnavailable
// when the provider cannot produce data for the key.
func (s *Service) Fetch(ctx context.Context, location, date string) (*Observation, error) {
	key := cacheKey(location, date)

	s.mu.RLock()
	if cached, ok := s.cache[key]; ok && time.Now().Before(cached.expiresAt) {
		s.mu.RUnlock()
		s.metrics.RecordCacheHit(s.provider.Name())
		return cached.observation, nil
	}
	s.mu.RUnlock()

	s.metrics.RecordCacheMiss(s.provider.Name())
	return s.fetch(ctx, location, date, key)
}

// fetch talks to the provider under the write lock so concurrent misses for
// the same key resolve with a single provider call.
func (s *Service) fetch(ctx context.Context, location, date, key string) (*Observation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check cache
	if cached, ok := s.cache[key]; ok && time.Now().Before(cached.expiresAt) {
		return cached.observation, nil
	}

	s.logger.Debug().
		Str("location", location).
		Str("date", date).
		Str("provider", s.provider.Name()).
		Msg("fetching observation from provider")

	var (
		obs *Observation
		err error
	)
	if date == "" {
		obs, err = s.provider.Current(ctx, location)
	} else {
		obs, err = s.forecastFor(ctx, location, date)
	}
	if err != nil {
		s.logger.Warn().
			Str("location", location).
			Str("date", date).
			Err(err).
			Msg("provider fetch failed")
		return nil, ErrUnavailable
	}

	s.cache[key] = &cachedObservation{
		observation: obs,
		expiresAt:   time.Now().Add(s.cacheTTL),
	}

	// Periodic cleanup
	s.cleanupIfNeeded()

	return obs, nil
}

// forecastFor picks the first forecast bucket whose calendar date matches,
// falling back to the first available bucket when the forecast window
// doesn't reach the requested date.
func (s *Service) forecastFor(ctx context.Context, location, date string) (*Observation, error) {
	target, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("parsing date %q: %w", date, err)
	}

	entries, err := s.provider.Forecast(ctx, location)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("empty forecast")
	}

	ty, tm, td := target.Date()
	for _, e := range entries {
		y, m, d := e.Time.Date()
		if y == ty && m == tm && d == td {
			obs := e.Observation
			return &obs, nil
		}
	}

	first := entries[0].Observation
	return &first, nil
}

// cacheKey builds the composite cache key for a location and date.
func cacheKey(location, date string) string {
	if date == "" {
		date = "current"
	}
	return location + "|" + date
}

// cleanupIfNeeded removes expired entries if the cleanup interval has passed.
// Caller must hold the write lock.
func (s *Service) cleanupIfNeeded() {
	now := time.Now()
	if now.Sub(s.lastCleanup) < s.cleanupInterval {
		return
	}

	s.lastCleanup = now
	expired := 0

	for key, cached := range s.cache {
		if now.After(cached.expiresAt) {
			delete(s.cache, key)
			expired++
		}
	}

	if expired > 0 {
		s.logger.Debug().
			Int("expired_entries", expired).
			Msg("cleaned up expired observation cache entries")
	}
}

// InvalidateCache clears all cached observations.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*cachedObservation)
}

// CacheStats returns cache statistics.
func (s *Service) CacheStats() CacheStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	fresh := 0
	for _, c := range s.cache {
		if now.Before(c.expiresAt) {
			fresh++
		}
	}

	return CacheStats{
		Entries:      len(s.cache),
		FreshEntries: fresh,
		Provider:     s.provider.Name(),
	}
}

// CacheStats contains cache statistics.
type CacheStats struct {
	Entries      int
	FreshEntries int
	Provider     string
}
