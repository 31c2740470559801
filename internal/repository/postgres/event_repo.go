package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"campusevents/internal/domain"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const dateLayout = "2006-01-02"

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a domain.EventRepository implemented with Postgres.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

const eventColumns = `id, title, description, date, start_time, end_time, location, category, tags, owner_id, cover_image_ref, created_at, updated_at`

func scanEvent(row interface{ Scan(dest ...any) error }) (*domain.Event, error) {
	var e domain.Event
	var date time.Time
	if err := row.Scan(&e.ID, &e.Title, &e.Description, &date, &e.StartTime, &e.EndTime,
		&e.Location, &e.Category, pq.Array(&e.Tags), &e.OwnerID, &e.CoverImageRef,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	e.Date = date.Format(dateLayout)
	return &e, nil
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO events (id, title, description, date, start_time, end_time, location, category, tags, owner_id, cover_image_ref, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		event.ID, event.Title, event.Description, event.Date, event.StartTime, event.EndTime,
		event.Location, event.Category, pq.Array(event.Tags), event.OwnerID, event.CoverImageRef,
		event.CreatedAt, event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	row := r.DB.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	event, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}
	// Ids whose event was deleted simply produce no row; dangling saved
	// edges are silently absent.
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE id = ANY($1) ORDER BY date, start_time`,
		pq.Array(ids))
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *eventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events ORDER BY date, start_time`)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *eventRepository) ListByOwnerID(ctx context.Context, ownerID string) ([]*domain.Event, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events WHERE owner_id = $1 ORDER BY date, start_time`,
		ownerID)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func (r *eventRepository) Update(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	set := []string{"updated_at = NOW()"}
	args := []any{}
	add := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Description != nil {
		add("description", *upd.Description)
	}
	if upd.Date != nil {
		add("date", *upd.Date)
	}
	if upd.StartTime != nil {
		add("start_time", *upd.StartTime)
	}
	if upd.EndTime != nil {
		add("end_time", *upd.EndTime)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Category != nil {
		add("category", *upd.Category)
	}
	if upd.Tags != nil {
		add("tags", pq.Array(*upd.Tags))
	}
	if upd.CoverImageRef != nil {
		add("cover_image_ref", *upd.CoverImageRef)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE events SET %s WHERE id = $%d RETURNING %s`,
		joinSet(set), len(args), eventColumns)
	row := r.DB.QueryRowContext(ctx, query, args...)
	event, err := scanEvent(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *eventRepository) Search(ctx context.Context, query string, limit int) ([]*domain.Event, error) {
	pattern := "%" + query + "%"
	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events
		 WHERE title ILIKE $1 OR location ILIKE $1 OR description ILIKE $1 OR category ILIKE $1
		 ORDER BY date, start_time
		 LIMIT $2`, pattern, limit)
	if err != nil {
		return nil, err
	}
	return collectEvents(rows)
}

func collectEvents(rows *sql.Rows) ([]*domain.Event, error) {
	defer rows.Close()
	var events []*domain.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return events, nil
}

func joinSet(set []string) string {
	out := set[0]
	for _, s := range set[1:] {
		out += ", " + s
	}
	return out
}
