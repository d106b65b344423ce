package event

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/eventcast/eventcast/internal/api/models"
	"github.com/eventcast/eventcast/internal/suitability"
)

// Validation constants.
const (
	MaxNameLength     = 120
	MaxLocationLength = 120

	dateLayout = "2006-01-02"
)

// IDGenerator produces identifiers for new events. Injected so tests can
// use deterministic IDs.
type IDGenerator func() string

// NewEventID is the default IDGenerator.
func NewEventID() string {
	return "evt_" + uuid.New().String()[:22]
}

// Service provides event operations.
type Service struct {
	repo  Repository
	newID IDGenerator
}

// NewService creates a new event service. A nil idGen falls back to
// NewEventID.
func NewService(repo Repository, idGen IDGenerator) *Service {
	if idGen == nil {
		idGen = NewEventID
	}
	return &Service{repo: repo, newID: idGen}
}

// List retrieves all events in creation order.
func (s *Service) List(ctx context.Context) ([]models.Event, error) {
	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]models.Event, 0, len(events))
	for _, e := range events {
		items = append(items, APIEvent(e))
	}

	return items, nil
}

// Get retrieves an event by ID.
func (s *Service) Get(ctx context.Context, eventID string) (*models.Event, error) {
	e, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := APIEvent(e)
	return &result, nil
}

// GetDomain retrieves an event by ID as the domain type, for callers that
// need the typed category rather than the API view.
func (s *Service) GetDomain(ctx context.Context, eventID string) (*Event, error) {
	return s.repo.Get(ctx, eventID)
}

// Count returns the number of stored events.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

// Create creates a new event.
func (s *Service) Create(ctx context.Context, input *models.EventCreateRequest) (*models.Event, error) {
	// Validate input
	if fieldErrors := s.validateCreateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	e := &Event{
		ID:        s.newID(),
		Name:      input.Name,
		Location:  input.Location,
		Date:      input.Date,
		EventType: suitability.Category(input.EventType),
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}

	result := APIEvent(e)
	return &result, nil
}

// Update updates an existing event.
func (s *Service) Update(ctx context.Context, eventID string, input *models.EventUpdateRequest) (*models.Event, error) {
	// Get existing event
	e, err := s.repo.Get(ctx, eventID)
	if err != nil {
		if errors.Is(err, ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}

	// Validate input
	if fieldErrors := s.validateUpdateInput(input); len(fieldErrors) > 0 {
		return nil, &ValidationError{Errors: fieldErrors}
	}

	// Apply updates
	if input.Name != nil {
		e.Name = *input.Name
	}
	if input.Location != nil {
		e.Location = *input.Location
	}
	if input.Date != nil {
		e.Date = *input.Date
	}
	if input.EventType != nil {
		e.EventType = suitability.Category(*input.EventType)
	}
	now := time.Now()
	e.UpdatedAt = &now

	if err := s.repo.Update(ctx, e); err != nil {
		return nil, err
	}

	result := APIEvent(e)
	return &result, nil
}

// Delete deletes an event by ID.
func (s *Service) Delete(ctx context.Context, eventID string) error {
	return s.repo.Delete(ctx, eventID)
}

// validateCreateInput validates the create event input.
func (s *Service) validateCreateInput(input *models.EventCreateRequest) []models.FieldError {
	var errs []models.FieldError

	// Validate name
	if input.Name == "" {
		errs = append(errs, models.FieldError{Field: "name", Message: "is required"})
	} else if len(input.Name) > MaxNameLength {
		errs = append(errs, models.FieldError{Field: "name", Message: "must be at most 120 characters"})
	}

	// Validate location
	if input.Location == "" {
		errs = append(errs, models.FieldError{Field: "location", Message: "is required"})
	} else if len(input.Location) > MaxLocationLength {
		errs = append(errs, models.FieldError{Field: "location", Message: "must be at most 120 characters"})
	}

	// Validate date
	if input.Date == "" {
		errs = append(errs, models.FieldError{Field: "date", Message: "is required"})
	} else {
		errs = append(errs, s.validateDate(input.Date)...)
	}

	// Validate event type
	if input.EventType == "" {
		errs = append(errs, models.FieldError{Field: "eventType", Message: "is required"})
	} else {
		errs = append(errs, s.validateEventType(input.EventType)...)
	}

	return errs
}

// validateUpdateInput validates the update event input.
func (s *Service) validateUpdateInput(input *models.EventUpdateRequest) []models.FieldError {
	var errs []models.FieldError

	// Validate name (optional)
	if input.Name != nil {
		if *input.Name == "" {
			errs = append(errs, models.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(*input.Name) > MaxNameLength {
			errs = append(errs, models.FieldError{Field: "name", Message: "must be at most 120 characters"})
		}
	}

	// Validate location (optional)
	if input.Location != nil {
		if *input.Location == "" {
			errs = append(errs, models.FieldError{Field: "location", Message: "cannot be empty"})
		} else if len(*input.Location) > MaxLocationLength {
			errs = append(errs, models.FieldError{Field: "location", Message: "must be at most 120 characters"})
		}
	}

	// Validate date (optional)
	if input.Date != nil {
		if *input.Date == "" {
			errs = append(errs, models.FieldError{Field: "date", Message: "cannot be empty"})
		} else {
			errs = append(errs, s.validateDate(*input.Date)...)
		}
	}

	// Validate event type (optional)
	if input.EventType != nil {
		if *input.EventType == "" {
			errs = append(errs, models.FieldError{Field: "eventType", Message: "cannot be empty"})
		} else {
			errs = append(errs, s.validateEventType(*input.EventType)...)
		}
	}

	return errs
}

// validateDate checks the YYYY-MM-DD format.
func (s *Service) validateDate(date string) []models.FieldError {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return []models.FieldError{{Field: "date", Message: "must be in YYYY-MM-DD format"}}
	}
	return nil
}

// validateEventType checks the category against the supported set.
func (s *Service) validateEventType(eventType string) []models.FieldError {
	if !suitability.Category(eventType).Known() {
		return []models.FieldError{{
			Field:   "eventType",
			Message: fmt.Sprintf("must be one of: %s", categoryList()),
		}}
	}
	return nil
}

func categoryList() string {
	categories := suitability.Categories()
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

// APIEvent converts a domain Event to its API representation.
func APIEvent(e *Event) models.Event {
	result := models.Event{
		ID:        e.ID,
		Name:      e.Name,
		Location:  e.Location,
		Date:      e.Date,
		EventType: string(e.EventType),
		CreatedAt: models.Timestamp(e.CreatedAt),
	}
	if e.UpdatedAt != nil {
		updated := models.Timestamp(*e.UpdatedAt)
		result.UpdatedAt = &updated
	}
	return result
}

// ValidationError represents validation errors.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
