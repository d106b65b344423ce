package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/eventcast/eventcast/internal/api/models"
	"github.com/eventcast/eventcast/internal/api/response"
	"github.com/eventcast/eventcast/internal/weather"
)

// WeatherHandler handles weather lookup endpoints.
type WeatherHandler struct {
	source ObservationSource
}

// NewWeatherHandler creates a new WeatherHandler.
func NewWeatherHandler(source ObservationSource) *WeatherHandler {
	return &WeatherHandler{source: source}
}

// GetWeather handles GET /v1/weather/{location} and
// GET /v1/weather/{location}/{date} - look up an observation. Without a
// date it returns current conditions; with one, the forecast for that
// calendar date.
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	location := chi.URLParam(r, "location")
	if location == "" {
		response.BadRequest(w, r, "location is required", nil)
		return
	}

	date := chi.URLParam(r, "date")
	if date != "" {
		if _, err := time.Parse("2006-01-02", date); err != nil {
			response.BadRequest(w, r, "date must be formatted YYYY-MM-DD", []models.FieldError{
				{Field: "date", Message: "must be a valid date in YYYY-MM-DD format"},
			})
			return
		}
	}

	obs, err := h.source.Fetch(r.Context(), location, date)
	if err != nil {
		if errors.Is(err, weather.ErrUnavailable) {
			response.ServiceUnavailable(w, r, "weather data unavailable for "+location)
			return
		}
		response.InternalError(w, r, "failed to fetch weather")
		return
	}

	resp := models.WeatherResponse{
		Location:    location,
		Observation: toObservation(obs),
	}
	if date != "" {
		resp.Date = &date
	}

	response.JSON(w, r, http.StatusOK, resp)
}
