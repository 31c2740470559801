package domain

import (
	"context"
	"time"
)

// View modes select which event sources feed one timeline materialization.
const (
	ModeAll       = "all"
	ModeSaved     = "saved"
	ModeFollowing = "following"
	ModeOwn       = "own"
)

// TimelineEntry is a normalized, display-ready projection of an Event. It
// exists only for the duration of one Materialize call and is never stored.
// StartsAt and EndsAt are UTC instants built from the event's own calendar
// fields; TimeTBD marks entries whose time-of-day was absent.
type TimelineEntry struct {
	Title    string    `json:"title"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
	TimeTBD  bool      `json:"timeTBD"`
	Event    *Event    `json:"event"`
}

// TimelineService materializes the aggregated event timeline for a viewer.
type TimelineService interface {
	// Materialize selects source fetchers by (viewer.Role, mode), runs them
	// concurrently, merges and dedupes their output by event ID, normalizes
	// times, and returns entries sorted ascending by StartsAt (stable on
	// ties). A failed or timed-out fetcher contributes an empty list; only
	// when every selected fetcher fails does Materialize return
	// ErrAllSourcesFailed.
	Materialize(ctx context.Context, viewer Viewer, mode string) ([]*TimelineEntry, error)
}
