package models

// CriterionScore is one line of a suitability breakdown.
type CriterionScore struct {
	Criterion string      `json:"criterion"`
	Value     interface{} `json:"value"`
	Points    int         `json:"points"`
	Status    string      `json:"status"`
}

// Suitability represents a scored suitability result.
type Suitability struct {
	Score      int              `json:"score"`
	MaxScore   int              `json:"maxScore"`
	Percentage float64          `json:"percentage"`
	Rating     string           `json:"rating"`
	Breakdown  []CriterionScore `json:"breakdown"`
}

// SuitabilityResponse is the response body for an event suitability check.
type SuitabilityResponse struct {
	Event       Event        `json:"event"`
	Weather     *Observation `json:"weather"`
	Suitability Suitability  `json:"suitability"`
}

// Alternative is one ranked candidate date.
type Alternative struct {
	Date        string      `json:"date"`
	Weather     Observation `json:"weather"`
	Suitability Suitability `json:"suitability"`
}

// AlternativesResponse is the response body for an alternative-date search.
type AlternativesResponse struct {
	Event              Event         `json:"event"`
	CurrentWeather     *Observation  `json:"currentWeather"`
	CurrentSuitability Suitability   `json:"currentSuitability"`
	Alternatives       []Alternative `json:"alternatives"`
}
