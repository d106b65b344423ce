// Package event provides event management services.
package event

import (
	"errors"
	"time"

	"github.com/eventcast/eventcast/internal/suitability"
)

// Repository errors.
var (
	ErrEventNotFound = errors.New("event not found")
)

// Event represents a planned event.
type Event struct {
	ID        string
	Name      string
	Location  string
	Date      string // YYYY-MM-DD
	EventType suitability.Category
	CreatedAt time.Time
	UpdatedAt *time.Time
}
