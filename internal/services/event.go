package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"campusevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService creates an EventService over the given repository.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, caller domain.Viewer, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if caller.Anonymous() {
		return domain.ErrUnauthorized
	}
	if caller.Role != domain.RoleClub {
		return fmt.Errorf("%w: only clubs create events", domain.ErrForbidden)
	}
	event.OwnerID = caller.AccountID
	event.Title = strings.TrimSpace(event.Title)
	if err := validateEventFields(event); err != nil {
		return err
	}

	event.CreatedAt = time.Now()
	event.UpdatedAt = time.Now()
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	return nil
}

func (s *eventService) GetEventByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEventsByOwner(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.eventRepo.ListByOwnerID(ctx, ownerID)
}

func (s *eventService) UpdateEvent(ctx context.Context, caller domain.Viewer, eventID string, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	if event.OwnerID != caller.AccountID && caller.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	preview := *event
	applyUpdate(&preview, upd)
	if err := validateEventFields(&preview); err != nil {
		return nil, err
	}

	updated, err := s.eventRepo.Update(ctx, eventID, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return updated, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, caller domain.Viewer, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if event.OwnerID != caller.AccountID && caller.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	// Saved edges referencing the event are left behind on purpose: readers
	// treat them as absent and the prune job sweeps them up.
	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// applyUpdate copies the set fields of upd onto e.
func applyUpdate(e *domain.Event, upd domain.EventUpdate) {
	if upd.Title != nil {
		e.Title = *upd.Title
	}
	if upd.Description != nil {
		e.Description = *upd.Description
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.StartTime != nil {
		e.StartTime = *upd.StartTime
	}
	if upd.EndTime != nil {
		e.EndTime = *upd.EndTime
	}
	if upd.Location != nil {
		e.Location = *upd.Location
	}
	if upd.Category != nil {
		e.Category = *upd.Category
	}
	if upd.Tags != nil {
		e.Tags = *upd.Tags
	}
	if upd.CoverImageRef != nil {
		e.CoverImageRef = *upd.CoverImageRef
	}
}

// validateEventFields checks the field shapes the normalizer and aggregator
// rely on. An end time lexically before the start time is legal (overnight
// event), so start/end are validated independently, never as an interval.
func validateEventFields(e *domain.Event) error {
	if e.Title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if _, err := time.Parse(dateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: date must be formatted %s", domain.ErrInvalidInput, dateLayout)
	}
	if e.StartTime != "" && !timeOfDayRegex.MatchString(e.StartTime) {
		return fmt.Errorf("%w: startTime must be HH:MM", domain.ErrInvalidInput)
	}
	if e.EndTime != "" && !timeOfDayRegex.MatchString(e.EndTime) {
		return fmt.Errorf("%w: endTime must be HH:MM", domain.ErrInvalidInput)
	}
	if !validCategory(e.Category) {
		return fmt.Errorf("%w: unknown category %q", domain.ErrInvalidInput, e.Category)
	}
	if len(e.Tags) > domain.MaxEventTags {
		return fmt.Errorf("%w: at most %d tags", domain.ErrInvalidInput, domain.MaxEventTags)
	}
	return nil
}

func validCategory(category string) bool {
	for _, c := range domain.EventCategories {
		if c == category {
			return true
		}
	}
	return false
}
