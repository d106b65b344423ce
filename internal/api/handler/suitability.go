package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/eventcast/eventcast/internal/api/models"
	"github.com/eventcast/eventcast/internal/api/response"
	"github.com/eventcast/eventcast/internal/event"
	"github.com/eventcast/eventcast/internal/suitability"
	"github.com/eventcast/eventcast/internal/weather"
)

// SuitabilityHandler handles suitability scoring endpoints.
type SuitabilityHandler struct {
	events *event.Service
	source ObservationSource
	finder *suitability.Finder
	logger zerolog.Logger
}

// NewSuitabilityHandler creates a new SuitabilityHandler.
func NewSuitabilityHandler(events *event.Service, source ObservationSource, finder *suitability.Finder, logger zerolog.Logger) *SuitabilityHandler {
	return &SuitabilityHandler{
		events: events,
		source: source,
		finder: finder,
		logger: logger,
	}
}

// GetSuitability handles GET /v1/events/{eventId}/suitability - score the
// event's weather. Unlike the list view, this endpoint exists solely to
// report conditions, so a missing observation is a 503 rather than an
// Unknown rating.
func (h *SuitabilityHandler) GetSuitability(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	if eventID == "" {
		response.BadRequest(w, r, "eventId is required", nil)
		return
	}

	e, err := h.events.GetDomain(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			response.NotFound(w, r, "event not found")
			return
		}
		response.InternalError(w, r, "failed to get event")
		return
	}

	obs, err := h.source.Fetch(r.Context(), e.Location, e.Date)
	if err != nil {
		if errors.Is(err, weather.ErrUnavailable) {
			response.ServiceUnavailable(w, r, "weather data unavailable for "+e.Location)
			return
		}
		response.InternalError(w, r, "failed to fetch weather")
		return
	}

	result := suitability.Score(e.EventType, obs)
	obsDTO := toObservation(obs)

	response.JSON(w, r, http.StatusOK, models.SuitabilityResponse{
		Event:       event.APIEvent(e),
		Weather:     &obsDTO,
		Suitability: toSuitability(result),
	})
}

// GetAlternatives handles GET /v1/events/{eventId}/alternatives - rank
// nearby dates by weather suitability.
func (h *SuitabilityHandler) GetAlternatives(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	if eventID == "" {
		response.BadRequest(w, r, "eventId is required", nil)
		return
	}

	e, err := h.events.GetDomain(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			response.NotFound(w, r, "event not found")
			return
		}
		response.InternalError(w, r, "failed to get event")
		return
	}

	rec, err := h.finder.FindAlternatives(r.Context(), e.EventType, e.Location, e.Date)
	if err != nil {
		h.logger.Error().
			Str("event_id", e.ID).
			Err(err).
			Msg("alternative date search failed")
		response.InternalError(w, r, "failed to search alternative dates")
		return
	}

	resp := models.AlternativesResponse{
		Event:              event.APIEvent(e),
		CurrentSuitability: toSuitability(rec.CurrentSuitability),
		Alternatives:       make([]models.Alternative, 0, len(rec.Alternatives)),
	}
	if rec.CurrentWeather != nil {
		obsDTO := toObservation(rec.CurrentWeather)
		resp.CurrentWeather = &obsDTO
	}
	for _, alt := range rec.Alternatives {
		resp.Alternatives = append(resp.Alternatives, models.Alternative{
			Date:        alt.Date,
			Weather:     toObservation(alt.Weather),
			Suitability: toSuitability(alt.Suitability),
		})
	}

	response.JSON(w, r, http.StatusOK, resp)
}
