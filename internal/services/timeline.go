package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"campusevents/internal/domain"
)

type timelineService struct {
	eventRepo      domain.EventRepository
	relRepo        domain.RelationshipRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	fetchTimeout   time.Duration

	droppedRecords atomic.Int64
	failedFetches  atomic.Int64
}

// NewTimelineService creates a TimelineService over the given repositories.
// fetchTimeout bounds each individual source fetch; timeout bounds the whole
// Materialize call.
func NewTimelineService(eventRepo domain.EventRepository, relRepo domain.RelationshipRepository, logger *slog.Logger, timeout, fetchTimeout time.Duration) domain.TimelineService {
	return &timelineService{
		eventRepo:      eventRepo,
		relRepo:        relRepo,
		logger:         logger,
		contextTimeout: timeout,
		fetchTimeout:   fetchTimeout,
	}
}

// sourceFetcher is one independent origin of raw events. Fetchers may fail
// independently; a failed fetcher contributes an empty list.
type sourceFetcher struct {
	name  string
	fetch func(ctx context.Context) ([]*domain.Event, error)
}

func (s *timelineService) Materialize(ctx context.Context, viewer domain.Viewer, mode string) ([]*domain.TimelineEntry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	fetchers, err := s.selectSources(viewer, mode)
	if err != nil {
		return nil, err
	}

	type fetchResult struct {
		events []*domain.Event
		err    error
	}
	results := make([]fetchResult, len(fetchers))

	var wg sync.WaitGroup
	for i, f := range fetchers {
		wg.Add(1)
		go func(i int, f sourceFetcher) {
			defer wg.Done()
			fctx, fcancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer fcancel()
			events, err := f.fetch(fctx)
			results[i] = fetchResult{events: events, err: err}
		}(i, f)
	}
	wg.Wait()

	// Merge in fetcher order so output is deterministic regardless of which
	// goroutine finished first. Dedupe by event ID with a seen-set.
	seen := make(map[string]struct{})
	var merged []*domain.Event
	failed := 0
	for i, res := range results {
		if res.err != nil {
			failed++
			s.failedFetches.Add(1)
			s.logger.WarnContext(ctx, "event source failed", "source", fetchers[i].name, "err", res.err)
			continue
		}
		for _, e := range res.events {
			if _, ok := seen[e.ID]; ok {
				continue
			}
			seen[e.ID] = struct{}{}
			merged = append(merged, e)
		}
	}
	if failed == len(fetchers) {
		return nil, fmt.Errorf("%w: %d of %d sources", domain.ErrAllSourcesFailed, failed, len(fetchers))
	}

	entries := make([]*domain.TimelineEntry, 0, len(merged))
	dropped := 0
	for _, e := range merged {
		entry, err := NormalizeEvent(e)
		if err != nil {
			dropped++
			s.droppedRecords.Add(1)
			s.logger.WarnContext(ctx, "dropping event with unusable date", "event_id", e.ID, "err", err)
			continue
		}
		entries = append(entries, entry)
	}
	if dropped > 0 {
		s.logger.InfoContext(ctx, "normalization dropped records", "count", dropped)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartsAt.Before(entries[j].StartsAt)
	})
	return entries, nil
}

// selectSources maps (viewer role, view mode) to the fetchers for this call.
func (s *timelineService) selectSources(viewer domain.Viewer, mode string) ([]sourceFetcher, error) {
	// A club only ever sees its own timeline, regardless of mode.
	if viewer.Role == domain.RoleClub {
		return []sourceFetcher{s.ownEvents(viewer.AccountID)}, nil
	}

	switch mode {
	case domain.ModeAll:
		if viewer.Role == domain.RoleStudent {
			// Logged-in students get the personalized union: public events
			// plus their saved events plus events of followed clubs.
			return []sourceFetcher{
				s.allPublicEvents(),
				s.savedEvents(viewer.AccountID),
				s.followedClubsEvents(viewer.AccountID),
			}, nil
		}
		return []sourceFetcher{s.allPublicEvents()}, nil
	case domain.ModeSaved:
		if viewer.Role != domain.RoleStudent {
			return nil, fmt.Errorf("%w: view mode %q requires a student account", domain.ErrInvalidInput, mode)
		}
		return []sourceFetcher{s.savedEvents(viewer.AccountID)}, nil
	case domain.ModeFollowing:
		if viewer.Role != domain.RoleStudent {
			return nil, fmt.Errorf("%w: view mode %q requires a student account", domain.ErrInvalidInput, mode)
		}
		return []sourceFetcher{s.followedClubsEvents(viewer.AccountID)}, nil
	case domain.ModeOwn:
		return nil, fmt.Errorf("%w: view mode %q requires a club account", domain.ErrInvalidInput, mode)
	default:
		return nil, fmt.Errorf("%w: unknown view mode %q", domain.ErrInvalidInput, mode)
	}
}

func (s *timelineService) allPublicEvents() sourceFetcher {
	return sourceFetcher{
		name: "all_public",
		fetch: func(ctx context.Context) ([]*domain.Event, error) {
			return s.eventRepo.ListAll(ctx)
		},
	}
}

func (s *timelineService) savedEvents(studentID string) sourceFetcher {
	return sourceFetcher{
		name: "saved",
		fetch: func(ctx context.Context) ([]*domain.Event, error) {
			ids, err := s.relRepo.ListSavedEventIDs(ctx, studentID)
			if err != nil {
				return nil, fmt.Errorf("list saved event ids: %w", err)
			}
			if len(ids) == 0 {
				return nil, nil
			}
			// GetByIDs silently skips ids whose event was deleted; dangling
			// saved edges are absent, not errors.
			return s.eventRepo.GetByIDs(ctx, ids)
		},
	}
}

func (s *timelineService) followedClubsEvents(studentID string) sourceFetcher {
	return sourceFetcher{
		name: "following",
		fetch: func(ctx context.Context) ([]*domain.Event, error) {
			clubIDs, err := s.relRepo.ListFollowedClubIDs(ctx, studentID)
			if err != nil {
				return nil, fmt.Errorf("list followed club ids: %w", err)
			}
			var out []*domain.Event
			for _, clubID := range clubIDs {
				events, err := s.eventRepo.ListByOwnerID(ctx, clubID)
				if err != nil {
					// One club's lookup failing must not sink the rest.
					s.logger.WarnContext(ctx, "skipping followed club", "club_id", clubID, "err", err)
					continue
				}
				out = append(out, events...)
			}
			return out, nil
		},
	}
}

func (s *timelineService) ownEvents(clubID string) sourceFetcher {
	return sourceFetcher{
		name: "own",
		fetch: func(ctx context.Context) ([]*domain.Event, error) {
			return s.eventRepo.ListByOwnerID(ctx, clubID)
		},
	}
}

// DroppedRecords reports how many records have been dropped for unusable
// dates since the service started.
func (s *timelineService) DroppedRecords() int64 {
	return s.droppedRecords.Load()
}

// FailedFetches reports how many source fetches have failed since the
// service started.
func (s *timelineService) FailedFetches() int64 {
	return s.failedFetches.Load()
}
