// Package handler provides HTTP handlers for the Eventcast API.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/eventcast/eventcast/internal/api/models"
	"github.com/eventcast/eventcast/internal/api/response"
	"github.com/eventcast/eventcast/internal/event"
	"github.com/eventcast/eventcast/internal/suitability"
	"github.com/eventcast/eventcast/internal/weather"
)

// ObservationSource supplies weather observations for a location and
// calendar date. An empty date means current conditions.
type ObservationSource interface {
	Fetch(ctx context.Context, location, date string) (*weather.Observation, error)
}

// EventHandler handles event CRUD endpoints.
type EventHandler struct {
	events *event.Service
	source ObservationSource
	logger zerolog.Logger
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events *event.Service, source ObservationSource, logger zerolog.Logger) *EventHandler {
	return &EventHandler{
		events: events,
		source: source,
		logger: logger,
	}
}

// ListEvents handles GET /v1/events - list events with conditions.
//
// Each event is enriched with its date's weather and suitability. An event
// whose observation cannot be fetched still appears in the list, with a
// null weather summary and an Unknown rating, so one provider outage never
// hides the event inventory.
func (h *EventHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	events, err := h.events.List(ctx)
	if err != nil {
		response.InternalError(w, r, "failed to list events")
		return
	}

	items := make([]models.EventWithConditions, 0, len(events))
	for _, e := range events {
		obs, err := h.source.Fetch(ctx, e.Location, e.Date)
		if err != nil {
			h.logger.Warn().
				Str("event_id", e.ID).
				Str("location", e.Location).
				Str("date", e.Date).
				Err(err).
				Msg("no observation for event")
		}
		result := suitability.Score(suitability.Category(e.EventType), obs)
		items = append(items, models.EventWithConditions{
			Event:       e,
			Weather:     toWeatherSummary(obs),
			Suitability: toSuitability(result),
		})
	}

	response.JSON(w, r, http.StatusOK, models.EventListResponse{
		Events: items,
		Count:  len(items),
	})
}

// CreateEvent handles POST /v1/events - create an event.
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var input models.EventCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	created, err := h.events.Create(r.Context(), &input)
	if err != nil {
		var verr *event.ValidationError
		if errors.As(err, &verr) {
			response.BadRequest(w, r, "validation failed", verr.Errors)
			return
		}
		response.InternalError(w, r, "failed to create event")
		return
	}

	location := fmt.Sprintf("/v1/events/%s", created.ID)
	response.Created(w, r, location, created)
}

// GetEvent handles GET /v1/events/{eventId} - get an event.
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	if eventID == "" {
		response.BadRequest(w, r, "eventId is required", nil)
		return
	}

	e, err := h.events.Get(r.Context(), eventID)
	if err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			response.NotFound(w, r, "event not found")
			return
		}
		response.InternalError(w, r, "failed to get event")
		return
	}

	response.JSON(w, r, http.StatusOK, e)
}

// UpdateEvent handles PUT /v1/events/{eventId} - update an event.
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	if eventID == "" {
		response.BadRequest(w, r, "eventId is required", nil)
		return
	}

	var input models.EventUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		response.BadRequest(w, r, "invalid JSON body", nil)
		return
	}

	updated, err := h.events.Update(r.Context(), eventID, &input)
	if err != nil {
		var verr *event.ValidationError
		if errors.As(err, &verr) {
			response.BadRequest(w, r, "validation failed", verr.Errors)
			return
		}
		if errors.Is(err, event.ErrEventNotFound) {
			response.NotFound(w, r, "event not found")
			return
		}
		response.InternalError(w, r, "failed to update event")
		return
	}

	response.JSON(w, r, http.StatusOK, updated)
}

// DeleteEvent handles DELETE /v1/events/{eventId} - delete an event.
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventId")
	if eventID == "" {
		response.BadRequest(w, r, "eventId is required", nil)
		return
	}

	if err := h.events.Delete(r.Context(), eventID); err != nil {
		if errors.Is(err, event.ErrEventNotFound) {
			response.NotFound(w, r, "event not found")
			return
		}
		response.InternalError(w, r, "failed to delete event")
		return
	}

	response.NoContent(w, r)
}
