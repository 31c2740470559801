package domain

import (
	"context"
	"time"
)

// Event categories. Every event carries exactly one.
var EventCategories = []string{
	"academic",
	"arts",
	"career",
	"cultural",
	"social",
	"sports",
	"volunteering",
}

// MaxEventTags caps the number of tags an event may carry.
const MaxEventTags = 6

// Event belongs to exactly one club account. Date is a calendar date string
// ("2006-01-02"); StartTime and EndTime are local "HH:MM" strings with no
// timezone. EndTime lexically before StartTime means the event crosses
// midnight, never that it ends before it starts.
// swagger:model Event
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Location      string    `json:"location"`
	Category      string    `json:"category"`
	Tags          []string  `json:"tags"`
	OwnerID       string    `json:"ownerId"`
	CoverImageRef string    `json:"coverImageRef,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is typically set by the repository on create.
func NewEvent(title, description, date, startTime, endTime, location, category, ownerID string, tags []string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		Date:        date,
		StartTime:   startTime,
		EndTime:     endTime,
		Location:    location,
		Category:    category,
		Tags:        tags,
		OwnerID:     ownerID,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventUpdate carries the mutable event fields for a partial update.
// Nil means "leave unchanged".
type EventUpdate struct {
	Title         *string
	Description   *string
	Date          *string
	StartTime     *string
	EndTime       *string
	Location      *string
	Category      *string
	Tags          *[]string
	CoverImageRef *string
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// GetByIDs returns the events that still exist among ids; missing ids are
	// silently absent, never an error (saved edges may dangle after a delete).
	GetByIDs(ctx context.Context, ids []string) ([]*Event, error)
	ListAll(ctx context.Context) ([]*Event, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, query string, limit int) ([]*Event, error)
}

// EventService defines event CRUD with owner/admin authorization.
type EventService interface {
	CreateEvent(ctx context.Context, caller Viewer, event *Event) error
	GetEventByID(ctx context.Context, id string) (*Event, error)
	ListEventsByOwner(ctx context.Context, ownerID string) ([]*Event, error)
	UpdateEvent(ctx context.Context, caller Viewer, eventID string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, caller Viewer, eventID string) error
}
