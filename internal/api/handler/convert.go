package handler

import (
	"github.com/eventcast/eventcast/internal/api/models"
	"github.com/eventcast/eventcast/internal/suitability"
	"github.com/eventcast/eventcast/internal/weather"
)

// toObservation converts a domain observation to its API representation.
func toObservation(obs *weather.Observation) models.Observation {
	return models.Observation{
		Temperature:   obs.Temperature,
		Humidity:      obs.Humidity,
		WindSpeed:     obs.WindSpeed,
		Precipitation: obs.Precipitation,
		Description:   obs.Description,
		Icon:          obs.Icon,
		FetchedAt:     models.Timestamp(obs.FetchedAt),
	}
}

// toWeatherSummary condenses an observation for event list items.
func toWeatherSummary(obs *weather.Observation) *models.WeatherSummary {
	if obs == nil {
		return nil
	}
	return &models.WeatherSummary{
		Temperature: obs.Temperature,
		Description: obs.Description,
		Icon:        obs.Icon,
	}
}

// toSuitability converts an engine result to its API representation.
func toSuitability(result suitability.Result) models.Suitability {
	breakdown := make([]models.CriterionScore, 0, len(result.Breakdown))
	for _, c := range result.Breakdown {
		breakdown = append(breakdown, models.CriterionScore{
			Criterion: c.Criterion,
			Value:     c.Value,
			Points:    c.Points,
			Status:    c.Status,
		})
	}
	return models.Suitability{
		Score:      result.Score,
		MaxScore:   result.MaxScore,
		Percentage: result.Percentage,
		Rating:     string(result.Rating),
		Breakdown:  breakdown,
	}
}
