// Package suitability scores how well observed weather conditions fit a
// planned event category.
package suitability

import "fmt"

// Category identifies an event category with its own scoring profile.
type Category string

// Supported event categories.
const (
	CategorySports    Category = "sports"
	CategoryFormal    Category = "formal"
	CategoryAdventure Category = "adventure"
	CategoryPicnic    Category = "picnic"
)

// Known reports whether the category has a scoring profile.
func (c Category) Known() bool {
	_, ok := profiles[c]
	return ok
}

// Categories returns the supported categories in a fixed order.
func Categories() []Category {
	return []Category{CategorySports, CategoryFormal, CategoryAdventure, CategoryPicnic}
}

// Input identifies the observation-derived value a criterion evaluates.
type Input string

const (
	InputTemperature   Input = "temperature"
	InputPrecipitation Input = "precipitation"
	InputWind          Input = "wind"
	InputHumidity      Input = "humidity"
	InputVisibility    Input = "visibility"
	InputUVIndex       Input = "uv_index"
	InputConditions    Input = "conditions"
)

// Range is a closed interval.
type Range struct {
	Min float64
	Max float64
}

func (r Range) contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Polarity says which direction of a bound-tiered criterion is favorable.
type Polarity int

const (
	// LowerBetter awards a tier when the value is at or below its bound.
	LowerBetter Polarity = iota
	// HigherBetter awards a tier when the value is at or above its bound.
	HigherBetter
)

// RangeRule scores a value against nested closed intervals. Acceptable must
// be a superset of Ideal.
type RangeRule struct {
	Ideal      Range
	Acceptable Range
}

// BoundRule scores a value against single bounds in the rule's polarity.
// HighPoints, when set, is awarded past the acceptable bound instead of
// zero, with status "High" -- used for UV, where very sunny conditions are
// not disqualifying the way rain is.
type BoundRule struct {
	Polarity   Polarity
	Ideal      float64
	Acceptable float64
	HighPoints *int
}

func (b *BoundRule) within(v, bound float64) bool {
	if b.Polarity == HigherBetter {
		return v >= bound
	}
	return v <= bound
}

// KeywordScore awards fixed points when the keyword appears in the lowercase
// condition description.
type KeywordScore struct {
	Keyword string
	Points  int
}

// Criterion is one scored dimension in a category profile. Exactly one of
// Ranges, Bounds, or Keywords describes its rule shape.
type Criterion struct {
	Name  string
	Input Input

	MaxPoints        int
	AcceptablePoints int

	Ranges   *RangeRule
	Bounds   *BoundRule
	Keywords []KeywordScore
}

// Profile is the ordered criteria set for one category.
type Profile struct {
	Name     string
	MaxScore int
	Criteria []Criterion
}

// DefaultMaxScore is the point total every defined profile sums to, and the
// maximum reported for unscorable results.
const DefaultMaxScore = 100

// profiles is the per-category strategy table. Criteria order is the
// evaluation (and breakdown) order.
var profiles = map[Category]Profile{
	CategorySports: {
		Name:     "Sports Event",
		MaxScore: 100,
		Criteria: []Criterion{
			{
				Name: "temperature", Input: InputTemperature,
				MaxPoints: 30, AcceptablePoints: 15,
				Ranges: &RangeRule{
					Ideal:      Range{Min: 18, Max: 28},
					Acceptable: Range{Min: 15, Max: 32},
				},
			},
			{
				Name: "precipitation", Input: InputPrecipitation,
				MaxPoints: 30, AcceptablePoints: 15,
				Bounds: &BoundRule{Polarity: LowerBetter, Ideal: 10, Acceptable: 30},
			},
			{
				Name: "wind", Input: InputWind,
				MaxPoints: 25, AcceptablePoints: 12,
				Bounds: &BoundRule{Polarity: LowerBetter, Ideal: 15, Acceptable: 25},
			},
			{
				Name: "conditions", Input: InputConditions,
				MaxPoints: 15,
				// Order matters: more specific phrases must precede any
				// substring they contain, since the first match wins.
				Keywords: []KeywordScore{
					{Keyword: "clear", Points: 15},
					{Keyword: "partly cloudy", Points: 15},
					{Keyword: "overcast", Points: 10},
					{Keyword: "light rain", Points: 5},
					{Keyword: "heavy rain", Points: 0},
					{Keyword: "thunderstorm", Points: 0},
				},
			},
		},
	},
	CategoryFormal: {
		Name:     "Formal Event",
		MaxScore: 100,
		Criteria: []Criterion{
			// Precipitation first: it is the highest-priority criterion
			// for formal events.
			{
				Name: "precipitation", Input: InputPrecipitation,
				MaxPoints: 40, AcceptablePoints: 20,
				Bounds: &BoundRule{Polarity: LowerBetter, Ideal: 0, Acceptable: 10},
			},
			{
				Name: "temperature", Input: InputTemperature,
				MaxPoints: 30, AcceptablePoints: 15,
				Ranges: &RangeRule{
					Ideal:      Range{Min: 20, Max: 26},
					Acceptable: Range{Min: 18, Max: 29},
				},
			},
			{
				Name: "humidity", Input: InputHumidity,
				MaxPoints: 20, AcceptablePoints: 10,
				Ranges: &RangeRule{
					Ideal:      Range{Min: 40, Max: 60},
					Acceptable: Range{Min: 30, Max: 70},
				},
			},
			{
				Name: "wind", Input: InputWind,
				MaxPoints: 10, AcceptablePoints: 5,
				Bounds: &BoundRule{Polarity: LowerBetter, Ideal: 10, Acceptable: 15},
			},
		},
	},
	CategoryAdventure: {
		Name:     "Outdoor Adventure",
		MaxScore: 100,
		Criteria: []Criterion{
			{
				Name: "temperature", Input: InputTemperature,
				MaxPoints: 30, AcceptablePoints: 15,
				Ranges: &RangeRule{
					Ideal:      Range{Min: 10, Max: 25},
					Acceptable: Range{Min: 5, Max: 30},
				},
			},
			{
				Name: "precipitation", Input: InputPrecipitation,
				MaxPoints: 25, AcceptablePoints: 12,
				Bounds: &BoundRule{Polarity: LowerBetter, Ideal: 15, Acceptable: 30},
			},
			{
				Name: "visibility", Input: InputVisibility,
				MaxPoints: 25, AcceptablePoints: 15,
				Bounds: &BoundRule{Polarity: HigherBetter, Ideal: 10, Acceptable: 5},
			},
			{
				Name: "wind", Input: InputWind,
				MaxPoints: 20, AcceptablePoints: 10,
				Ranges: &RangeRule{
					Ideal:      Range{Min: 5, Max: 20},
					Acceptable: Range{Min: 0, Max: 30},
				},
			},
		},
	},
	CategoryPicnic: {
		Name:     "Family/Friends Picnic",
		MaxScore: 100,
		Criteria: []Criterion{
			{
				Name: "comfort", Input: InputTemperature,
				MaxPoints: 40, AcceptablePoints: 25,
				Ranges: &RangeRule{
					Ideal:      Range{Min: 18, Max: 27},
					Acceptable: Range{Min: 15, Max: 30},
				},
			},
			{
				Name: "precipitation", Input: InputPrecipitation,
				MaxPoints: 30, AcceptablePoints: 15,
				Bounds: &BoundRule{Polarity: LowerBetter, Ideal: 0, Acceptable: 15},
			},
			{
				Name: "uv_index", Input: InputUVIndex,
				MaxPoints: 20, AcceptablePoints: 15,
				Bounds: &BoundRule{
					Polarity: LowerBetter, Ideal: 3, Acceptable: 6,
					HighPoints: intPtr(5),
				},
			},
			{
				Name: "wind", Input: InputWind,
				MaxPoints: 10, AcceptablePoints: 5,
				Ranges: &RangeRule{
					Ideal:      Range{Min: 5, Max: 15},
					Acceptable: Range{Min: 0, Max: 20},
				},
			},
		},
	},
}

// VerifyProfiles checks that every profile's criterion points sum to its
// stated maximum. A failure is a configuration bug and must abort startup:
// a skewed sum would silently distort every percentage the engine reports.
func VerifyProfiles() error {
	for _, category := range Categories() {
		p := profiles[category]
		sum := 0
		for _, c := range p.Criteria {
			sum += c.MaxPoints
		}
		if sum != p.MaxScore {
			return fmt.Errorf("profile %q: criterion points sum to %d, want %d", category, sum, p.MaxScore)
		}
	}
	return nil
}

func intPtr(v int) *int {
	return &v
}
