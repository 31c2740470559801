package domain

import "context"

// RelationshipRepository owns the two set-valued relations that feed the
// timeline: Saved (student -> events) and Following (student -> clubs).
// Add and Remove are idempotent: inserting a present pair and deleting an
// absent pair are both no-ops. Each mutation is a single atomic set
// operation on one (owner, target) pair.
type RelationshipRepository interface {
	AddSavedEvent(ctx context.Context, studentID, eventID string) error
	RemoveSavedEvent(ctx context.Context, studentID, eventID string) error
	ListSavedEventIDs(ctx context.Context, studentID string) ([]string, error)

	AddFollowedClub(ctx context.Context, studentID, clubID string) error
	RemoveFollowedClub(ctx context.Context, studentID, clubID string) error
	ListFollowedClubIDs(ctx context.Context, studentID string) ([]string, error)

	CountFollowers(ctx context.Context, clubID string) (int, error)

	// DeleteDanglingSavedEvents removes saved edges whose event no longer
	// exists and reports how many were removed. Reads already treat dangling
	// edges as absent; this is periodic hygiene.
	DeleteDanglingSavedEvents(ctx context.Context) (int64, error)
}

// RelationshipService exposes the save/follow operations with owner-only
// authorization: only the student who owns a relation may mutate or read it.
type RelationshipService interface {
	SaveEvent(ctx context.Context, caller Viewer, studentID, eventID string) error
	UnsaveEvent(ctx context.Context, caller Viewer, studentID, eventID string) error
	ListSaved(ctx context.Context, caller Viewer, studentID string) ([]string, error)

	FollowClub(ctx context.Context, caller Viewer, studentID, clubID string) error
	UnfollowClub(ctx context.Context, caller Viewer, studentID, clubID string) error
	ListFollowing(ctx context.Context, caller Viewer, studentID string) ([]string, error)

	FollowerCount(ctx context.Context, clubID string) (int, error)
}
