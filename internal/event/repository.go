package event

import "context"

// Repository defines the interface for event data persistence.
type Repository interface {
	// Get retrieves an event by ID.
	// Returns ErrEventNotFound if the event doesn't exist.
	Get(ctx context.Context, id string) (*Event, error)

	// List retrieves all events in insertion order.
	List(ctx context.Context) ([]*Event, error)

	// Create creates a new event.
	Create(ctx context.Context, event *Event) error

	// Update updates an existing event.
	Update(ctx context.Context, event *Event) error

	// Delete deletes an event by ID.
	Delete(ctx context.Context, id string) error

	// Count returns the number of stored events.
	Count(ctx context.Context) (int, error)
}
