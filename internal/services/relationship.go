package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campusevents/internal/domain"
)

type relationshipService struct {
	relRepo        domain.RelationshipRepository
	eventRepo      domain.EventRepository
	accountRepo    domain.AccountRepository
	contextTimeout time.Duration
}

// NewRelationshipService creates a RelationshipService enforcing owner-only
// access over the given repositories.
func NewRelationshipService(relRepo domain.RelationshipRepository, eventRepo domain.EventRepository, accountRepo domain.AccountRepository, timeout time.Duration) domain.RelationshipService {
	return &relationshipService{
		relRepo:        relRepo,
		eventRepo:      eventRepo,
		accountRepo:    accountRepo,
		contextTimeout: timeout,
	}
}

// authorizeOwner verifies the caller is the student who owns the relation.
func authorizeOwner(caller domain.Viewer, studentID string) error {
	if caller.Anonymous() {
		return domain.ErrUnauthorized
	}
	if caller.Role != domain.RoleStudent || caller.AccountID != studentID {
		return domain.ErrForbidden
	}
	return nil
}

func (s *relationshipService) SaveEvent(ctx context.Context, caller domain.Viewer, studentID, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := authorizeOwner(caller, studentID); err != nil {
		return err
	}
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get event: %w", err)
	}
	if err := s.relRepo.AddSavedEvent(ctx, studentID, eventID); err != nil {
		return fmt.Errorf("add saved event: %w", err)
	}
	return nil
}

func (s *relationshipService) UnsaveEvent(ctx context.Context, caller domain.Viewer, studentID, eventID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := authorizeOwner(caller, studentID); err != nil {
		return err
	}
	if eventID == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}
	// Removing an absent pair is a no-op, including pairs that dangle after
	// the event was deleted.
	if err := s.relRepo.RemoveSavedEvent(ctx, studentID, eventID); err != nil {
		return fmt.Errorf("remove saved event: %w", err)
	}
	return nil
}

func (s *relationshipService) ListSaved(ctx context.Context, caller domain.Viewer, studentID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := authorizeOwner(caller, studentID); err != nil {
		return nil, err
	}
	ids, err := s.relRepo.ListSavedEventIDs(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list saved events: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *relationshipService) FollowClub(ctx context.Context, caller domain.Viewer, studentID, clubID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := authorizeOwner(caller, studentID); err != nil {
		return err
	}
	if clubID == "" {
		return fmt.Errorf("%w: club id is required", domain.ErrInvalidInput)
	}
	account, err := s.accountRepo.GetByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get club account: %w", err)
	}
	if account.Role != domain.RoleClub {
		return fmt.Errorf("%w: account %s is not a club", domain.ErrInvalidInput, clubID)
	}
	if err := s.relRepo.AddFollowedClub(ctx, studentID, clubID); err != nil {
		return fmt.Errorf("add followed club: %w", err)
	}
	return nil
}

func (s *relationshipService) UnfollowClub(ctx context.Context, caller domain.Viewer, studentID, clubID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := authorizeOwner(caller, studentID); err != nil {
		return err
	}
	if clubID == "" {
		return fmt.Errorf("%w: club id is required", domain.ErrInvalidInput)
	}
	if err := s.relRepo.RemoveFollowedClub(ctx, studentID, clubID); err != nil {
		return fmt.Errorf("remove followed club: %w", err)
	}
	return nil
}

func (s *relationshipService) ListFollowing(ctx context.Context, caller domain.Viewer, studentID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := authorizeOwner(caller, studentID); err != nil {
		return nil, err
	}
	ids, err := s.relRepo.ListFollowedClubIDs(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("list followed clubs: %w", err)
	}
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

func (s *relationshipService) FollowerCount(ctx context.Context, clubID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if clubID == "" {
		return 0, fmt.Errorf("%w: club id is required", domain.ErrInvalidInput)
	}
	count, err := s.relRepo.CountFollowers(ctx, clubID)
	if err != nil {
		return 0, fmt.Errorf("count followers: %w", err)
	}
	return count, nil
}
