package models

// Event represents a planned event.
type Event struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	Date      string     `json:"date"`
	EventType string     `json:"eventType"`
	CreatedAt Timestamp  `json:"createdAt"`
	UpdatedAt *Timestamp `json:"updatedAt,omitempty"`
}

// EventCreateRequest is the request body for creating an event.
type EventCreateRequest struct {
	Name      string `json:"name"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	EventType string `json:"eventType"`
}

// EventUpdateRequest is the request body for updating an event. All fields
// are optional; omitted fields are left unchanged.
type EventUpdateRequest struct {
	Name      *string `json:"name,omitempty"`
	Location  *string `json:"location,omitempty"`
	Date      *string `json:"date,omitempty"`
	EventType *string `json:"eventType,omitempty"`
}

// WeatherSummary is the condensed observation attached to list items.
type WeatherSummary struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Icon        string  `json:"icon,omitempty"`
}

// EventWithConditions is a list item: the event plus its current weather
// and suitability. Weather is null when no observation was obtainable.
type EventWithConditions struct {
	Event
	Weather     *WeatherSummary `json:"weather"`
	Suitability Suitability     `json:"suitability"`
}

// EventListResponse is the response body for listing events.
type EventListResponse struct {
	Events []EventWithConditions `json:"events"`
	Count  int                   `json:"count"`
}
