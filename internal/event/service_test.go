package event_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/eventcast/eventcast/internal/api/models"
	"github.com/eventcast/eventcast/internal/event"
)

func TestService_Create(t *testing.T) {
	repo := event.NewInMemoryRepository()
	service := event.NewService(repo, nil)
	ctx := context.Background()

	input := &models.EventCreateRequest{
		Name:      "Company Summer Party",
		Location:  "Amsterdam",
		Date:      "2026-07-18",
		EventType: "picnic",
	}

	result, err := service.Create(ctx, input)
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	if result.ID == "" {
		t.Error("expected event ID to be set")
	}
	if !strings.HasPrefix(result.ID, "evt_") {
		t.Errorf("expected event ID to start with 'evt_', got %q", result.ID)
	}
	if result.Name != input.Name {
		t.Errorf("expected name %q, got %q", input.Name, result.Name)
	}
	if result.UpdatedAt != nil {
		t.Error("expected UpdatedAt to be unset on create")
	}
}

func TestService_Create_InjectedIDGenerator(t *testing.T) {
	repo := event.NewInMemoryRepository()
	service := event.NewService(repo, func() string { return "evt_fixed" })
	ctx := context.Background()

	result, err := service.Create(ctx, &models.EventCreateRequest{
		Name:      "Marathon",
		Location:  "Rotterdam",
		Date:      "2026-04-12",
		EventType: "sports",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	if result.ID != "evt_fixed" {
		t.Errorf("expected injected ID 'evt_fixed', got %q", result.ID)
	}
}

func TestService_Create_ValidationErrors(t *testing.T) {
	repo := event.NewInMemoryRepository()
	service := event.NewService(repo, nil)
	ctx := context.Background()

	valid := models.EventCreateRequest{
		Name:      "Marathon",
		Location:  "Rotterdam",
		Date:      "2026-04-12",
		EventType: "sports",
	}

	tests := []struct {
		name      string
		mutate    func(*models.EventCreateRequest)
		wantField string
	}{
		{
			name:      "empty name",
			mutate:    func(r *models.EventCreateRequest) { r.Name = "" },
			wantField: "name",
		},
		{
			name:      "name too long",
			mutate:    func(r *models.EventCreateRequest) { r.Name = strings.Repeat("a", 121) },
			wantField: "name",
		},
		{
			name:      "empty location",
			mutate:    func(r *models.EventCreateRequest) { r.Location = "" },
			wantField: "location",
		},
		{
			name:      "empty date",
			mutate:    func(r *models.EventCreateRequest) { r.Date = "" },
			wantField: "date",
		},
		{
			name:      "malformed date",
			mutate:    func(r *models.EventCreateRequest) { r.Date = "12-04-2026" },
			wantField: "date",
		},
		{
			name:      "impossible date",
			mutate:    func(r *models.EventCreateRequest) { r.Date = "2026-02-30" },
			wantField: "date",
		},
		{
			name:      "empty event type",
			mutate:    func(r *models.EventCreateRequest) { r.EventType = "" },
			wantField: "eventType",
		},
		{
			name:      "unknown event type",
			mutate:    func(r *models.EventCreateRequest) { r.EventType = "regatta" },
			wantField: "eventType",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := valid
			tt.mutate(&input)

			_, err := service.Create(ctx, &input)
			if err == nil {
				t.Fatal("expected validation error")
			}

			var validationErr *event.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("expected ValidationError, got %T", err)
			}

			found := false
			for _, fe := range validationErr.Errors {
				if fe.Field == tt.wantField {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected field error on %q, got %+v", tt.wantField, validationErr.Errors)
			}
		})
	}
}

func TestService_Get(t *testing.T) {
	repo := event.NewInMemoryRepository()
	service := event.NewService(repo, nil)
	ctx := context.Background()

	created, err := service.Create(ctx, &models.EventCreateRequest{
		Name:      "Garden Wedding",
		Location:  "Utrecht",
		Date:      "2026-06-20",
		EventType: "formal",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	result, err := service.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("failed to get event: %v", err)
	}
	if result.Name != "Garden Wedding" {
		t.Errorf("expected name 'Garden Wedding', got %q", result.Name)
	}

	_, err = service.Get(ctx, "evt_missing")
	if !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestService_List_CreationOrder(t *testing.T) {
	repo := event.NewInMemoryRepository()
	// Sequential IDs keep the order deterministic even when events are
	// created within the same clock tick.
	n := 0
	service := event.NewService(repo, func() string {
		n++
		return fmt.Sprintf("evt_%03d", n)
	})
	ctx := context.Background()

	names := []string{"First", "Second", "Third"}
	for _, name := range names {
		_, err := service.Create(ctx, &models.EventCreateRequest{
			Name:      name,
			Location:  "Amsterdam",
			Date:      "2026-07-18",
			EventType: "picnic",
		})
		if err != nil {
			t.Fatalf("failed to create event %q: %v", name, err)
		}
	}

	results, err := service.List(ctx)
	if err != nil {
		t.Fatalf("failed to list events: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 events, got %d", len(results))
	}
	for i, name := range names {
		if results[i].Name != name {
			t.Errorf("position %d: expected %q, got %q", i, name, results[i].Name)
		}
	}
}

func TestService_Update(t *testing.T) {
	repo := event.NewInMemoryRepository()
	service := event.NewService(repo, nil)
	ctx := context.Background()

	created, err := service.Create(ctx, &models.EventCreateRequest{
		Name:      "Hiking Trip",
		Location:  "Ardennes",
		Date:      "2026-09-05",
		EventType: "adventure",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	newName := "Extended Hiking Trip"
	newDate := "2026-09-12"
	result, err := service.Update(ctx, created.ID, &models.EventUpdateRequest{
		Name: &newName,
		Date: &newDate,
	})
	if err != nil {
		t.Fatalf("failed to update event: %v", err)
	}

	if result.Name != newName {
		t.Errorf("expected name %q, got %q", newName, result.Name)
	}
	if result.Date != newDate {
		t.Errorf("expected date %q, got %q", newDate, result.Date)
	}
	if result.Location != "Ardennes" {
		t.Errorf("expected location to be unchanged, got %q", result.Location)
	}
	if result.UpdatedAt == nil {
		t.Error("expected UpdatedAt to be set after update")
	}
}

func TestService_Update_Validation(t *testing.T) {
	repo := event.NewInMemoryRepository()
	service := event.NewService(repo, nil)
	ctx := context.Background()

	created, err := service.Create(ctx, &models.EventCreateRequest{
		Name:      "Hiking Trip",
		Location:  "Ardennes",
		Date:      "2026-09-05",
		EventType: "adventure",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	badType := "regatta"
	_, err = service.Update(ctx, created.ID, &models.EventUpdateRequest{EventType: &badType})

	var validationErr *event.ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	repo := event.NewInMemoryRepository()
	service := event.NewService(repo, nil)
	ctx := context.Background()

	name := "Anything"
	_, err := service.Update(ctx, "evt_missing", &models.EventUpdateRequest{Name: &name})
	if !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestService_Delete(t *testing.T) {
	repo := event.NewInMemoryRepository()
	service := event.NewService(repo, nil)
	ctx := context.Background()

	created, err := service.Create(ctx, &models.EventCreateRequest{
		Name:      "Marathon",
		Location:  "Rotterdam",
		Date:      "2026-04-12",
		EventType: "sports",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	if err := service.Delete(ctx, created.ID); err != nil {
		t.Fatalf("failed to delete event: %v", err)
	}

	_, err = service.Get(ctx, created.ID)
	if !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound after delete, got %v", err)
	}

	if err := service.Delete(ctx, created.ID); !errors.Is(err, event.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound on second delete, got %v", err)
	}
}

func TestService_Count(t *testing.T) {
	repo := event.NewInMemoryRepository()
	service := event.NewService(repo, nil)
	ctx := context.Background()

	count, err := service.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count events: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 events, got %d", count)
	}

	_, err = service.Create(ctx, &models.EventCreateRequest{
		Name:      "Marathon",
		Location:  "Rotterdam",
		Date:      "2026-04-12",
		EventType: "sports",
	})
	if err != nil {
		t.Fatalf("failed to create event: %v", err)
	}

	count, err = service.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count events: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 event, got %d", count)
	}
}
