package models

// Observation represents a weather observation for a location.
type Observation struct {
	Temperature   float64   `json:"temperature"`
	Humidity      *int      `json:"humidity,omitempty"`
	WindSpeed     float64   `json:"windSpeed"`
	Precipitation float64   `json:"precipitation"`
	Description   string    `json:"description"`
	Icon          string    `json:"icon,omitempty"`
	FetchedAt     Timestamp `json:"fetchedAt"`
}

// WeatherResponse is the response body for a weather lookup.
type WeatherResponse struct {
	Location    string      `json:"location"`
	Date        *string     `json:"date,omitempty"`
	Observation Observation `json:"observation"`
}
