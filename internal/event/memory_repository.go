package event

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is an in-memory implementation of Repository. Events
// live for the lifetime of the process; there is no durable store behind it.
type InMemoryRepository struct {
	mu     sync.RWMutex
	events map[string]*Event
}

// NewInMemoryRepository creates a new in-memory event repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		events: make(map[string]*Event),
	}
}

// Get retrieves an event by ID.
func (r *InMemoryRepository) Get(_ context.Context, id string) (*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.events[id]
	if !ok {
		return nil, ErrEventNotFound
	}

	// Return a copy
	cpy := *e
	return &cpy, nil
}

// List retrieves all events ordered by creation time, then ID for events
// created in the same instant.
func (r *InMemoryRepository) List(_ context.Context) ([]*Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]*Event, 0, len(r.events))
	for _, e := range r.events {
		cpy := *e
		events = append(events, &cpy)
	}

	sort.Slice(events, func(i, j int) bool {
		if !events[i].CreatedAt.Equal(events[j].CreatedAt) {
			return events[i].CreatedAt.Before(events[j].CreatedAt)
		}
		return events[i].ID < events[j].ID
	})

	return events, nil
}

// Create creates a new event.
func (r *InMemoryRepository) Create(_ context.Context, e *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *e
	r.events[e.ID] = &cpy
	return nil
}

// Update updates an existing event.
func (r *InMemoryRepository) Update(_ context.Context, e *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[e.ID]; !ok {
		return ErrEventNotFound
	}

	cpy := *e
	r.events[e.ID] = &cpy
	return nil
}

// Delete deletes an event by ID.
func (r *InMemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.events[id]; !ok {
		return ErrEventNotFound
	}

	delete(r.events, id)
	return nil
}

// Count returns the number of stored events.
func (r *InMemoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.events), nil
}
