package suitability

import (
	"math"
	"strings"

	"github.com/eventcast/eventcast/internal/weather"
)

// Rating buckets a percentage score.
type Rating string

const (
	RatingGood Rating = "Good"
	RatingOkay Rating = "Okay"
	RatingPoor Rating = "Poor"

	// RatingUnknown marks results produced without weather data. Callers
	// use it to tell "scored poor" from "could not score".
	RatingUnknown Rating = "Unknown"
)

// Status labels for a criterion tier. Keyword criteria use the title-cased
// matched keyword instead.
const (
	StatusIdeal      = "Ideal"
	StatusAcceptable = "Acceptable"
	StatusPoor       = "Poor"
	StatusHigh       = "High"
)

// CriterionResult is one line of a score breakdown. Value echoes the
// observed input (raw wind in m/s, raw precipitation in mm), not the
// converted comparison value.
type CriterionResult struct {
	Criterion string
	Value     interface{}
	Points    int
	Status    string
}

// Result is the engine's output for one (category, observation) pair. It is
// a derived view: recomputed on every call, never stored.
type Result struct {
	Score      int
	MaxScore   int
	Percentage float64
	Rating     Rating
	Breakdown  []CriterionResult
}

// Score evaluates an observation against the category's criteria profile.
// A nil observation yields the zero result with RatingUnknown; an
// unrecognized category yields the zero result with RatingPoor. Neither is
// an error: presentation layers always need something to render.
func Score(category Category, obs *weather.Observation) Result {
	if obs == nil {
		return unscored(RatingUnknown)
	}

	profile, ok := profiles[category]
	if !ok {
		return unscored(RatingPoor)
	}

	in := deriveInputs(obs)

	result := Result{
		MaxScore:  profile.MaxScore,
		Breakdown: make([]CriterionResult, 0, len(profile.Criteria)),
	}
	// Sum raw integer points first; the percentage is derived once from the
	// total so rounding can never drift between breakdown and total.
	for _, c := range profile.Criteria {
		cr := evaluate(c, in)
		result.Score += cr.Points
		result.Breakdown = append(result.Breakdown, cr)
	}

	percentage := float64(result.Score) / float64(profile.MaxScore) * 100
	result.Percentage = math.Round(percentage*10) / 10
	result.Rating = RatingFor(percentage)

	return result
}

// RatingFor buckets a percentage into a rating. The bucketing is the same
// for every category.
func RatingFor(percentage float64) Rating {
	switch {
	case percentage >= 85:
		return RatingGood
	case percentage >= 65:
		return RatingOkay
	default:
		return RatingPoor
	}
}

func unscored(rating Rating) Result {
	return Result{
		MaxScore:  DefaultMaxScore,
		Rating:    rating,
		Breakdown: []CriterionResult{},
	}
}

// inputs holds the per-call derived values criteria compare against, plus
// the raw values echoed in the breakdown.
type inputs struct {
	temperature  float64
	humidity     float64
	windMS       float64 // echoed
	windKmh      float64 // compared
	precipMM     float64 // echoed
	precipChance float64 // compared
	visibility   float64
	uvIndex      float64
	description  string // lower-cased
}

func deriveInputs(obs *weather.Observation) inputs {
	description := strings.ToLower(obs.Description)

	humidity := 50.0
	if obs.Humidity != nil {
		humidity = float64(*obs.Humidity)
	}

	return inputs{
		temperature: obs.Temperature,
		humidity:    humidity,
		windMS:      obs.WindSpeed,
		windKmh:     obs.WindSpeed * 3.6,
		precipMM:    obs.Precipitation,
		// Crude mm-to-percentage proxy, not a true probability.
		precipChance: math.Min(obs.Precipitation*100, 100),
		visibility:   inferVisibility(description),
		uvIndex:      inferUVIndex(description),
		description:  description,
	}
}

// inferVisibility estimates visibility in km from condition keywords. The
// provider payload carries no visibility field; these values are a heuristic
// stand-in, checked in priority order since a description can contain
// several matching keywords at once.
func inferVisibility(description string) float64 {
	switch {
	case strings.Contains(description, "fog"), strings.Contains(description, "mist"):
		return 2
	case strings.Contains(description, "haze"):
		return 5
	case strings.Contains(description, "rain"), strings.Contains(description, "snow"):
		return 7
	default:
		return 10
	}
}

// inferUVIndex estimates the UV index from condition keywords, with the same
// caveat and priority-order contract as inferVisibility.
func inferUVIndex(description string) float64 {
	switch {
	case strings.Contains(description, "clear") && strings.Contains(description, "sunny"):
		return 7
	case strings.Contains(description, "clear"):
		return 5
	case strings.Contains(description, "cloudy"), strings.Contains(description, "overcast"):
		return 2
	default:
		return 3
	}
}

// evaluate applies a criterion's rule shape to the derived inputs.
func evaluate(c Criterion, in inputs) CriterionResult {
	if len(c.Keywords) > 0 {
		return evaluateKeywords(c, in.description)
	}

	compare, echo := in.valuesFor(c.Input)
	result := CriterionResult{Criterion: c.Name, Value: echo}

	switch {
	case c.Ranges != nil:
		switch {
		case c.Ranges.Ideal.contains(compare):
			result.Points, result.Status = c.MaxPoints, StatusIdeal
		case c.Ranges.Acceptable.contains(compare):
			result.Points, result.Status = c.AcceptablePoints, StatusAcceptable
		default:
			result.Status = StatusPoor
		}
	case c.Bounds != nil:
		switch {
		case c.Bounds.within(compare, c.Bounds.Ideal):
			result.Points, result.Status = c.MaxPoints, StatusIdeal
		case c.Bounds.within(compare, c.Bounds.Acceptable):
			result.Points, result.Status = c.AcceptablePoints, StatusAcceptable
		case c.Bounds.HighPoints != nil:
			result.Points, result.Status = *c.Bounds.HighPoints, StatusHigh
		default:
			result.Status = StatusPoor
		}
	}

	return result
}

// evaluateKeywords tests the description for each keyword in table order;
// the first match wins.
func evaluateKeywords(c Criterion, description string) CriterionResult {
	result := CriterionResult{Criterion: c.Name, Value: description, Status: StatusPoor}

	for _, k := range c.Keywords {
		if strings.Contains(description, k.Keyword) {
			result.Points = k.Points
			result.Status = titleCase(k.Keyword)
			break
		}
	}

	return result
}

// valuesFor returns the comparison value and the echoed value for an input.
func (in inputs) valuesFor(input Input) (compare, echo float64) {
	switch input {
	case InputTemperature:
		return in.temperature, in.temperature
	case InputPrecipitation:
		return in.precipChance, in.precipMM
	case InputWind:
		return in.windKmh, in.windMS
	case InputHumidity:
		return in.humidity, in.humidity
	case InputVisibility:
		return in.visibility, in.visibility
	case InputUVIndex:
		return in.uvIndex, in.uvIndex
	}
	return 0, 0
}

// titleCase capitalizes the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
