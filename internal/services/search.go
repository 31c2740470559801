package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campusevents/internal/domain"
)

// DefaultSearchLimit caps each result bucket when the caller passes no limit.
const DefaultSearchLimit = 20

type searchService struct {
	eventRepo      domain.EventRepository
	accountRepo    domain.AccountRepository
	contextTimeout time.Duration
}

// NewSearchService creates a SearchService over the event and account repositories.
func NewSearchService(eventRepo domain.EventRepository, accountRepo domain.AccountRepository, timeout time.Duration) domain.SearchService {
	return &searchService{
		eventRepo:      eventRepo,
		accountRepo:    accountRepo,
		contextTimeout: timeout,
	}
}

func (s *searchService) Search(ctx context.Context, query string, limit int) (*domain.SearchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("%w: search query must not be blank", domain.ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	events, err := s.eventRepo.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}

	clubs, err := s.accountRepo.SearchClubs(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search clubs: %w", err)
	}
	if clubs == nil {
		clubs = []*domain.Account{}
	}

	return &domain.SearchResult{Events: events, Clubs: clubs}, nil
}
