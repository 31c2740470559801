package postgres

import (
	"context"
	"database/sql"

	"campusevents/internal/domain"
)

type relationshipRepository struct {
	DB *sql.DB
}

// NewRelationshipRepository returns a domain.RelationshipRepository implemented
// with Postgres. Both relations are composite-primary-key tables; inserts
// absorb duplicates with ON CONFLICT DO NOTHING and deletes ignore missing
// rows, which makes every mutation idempotent and atomic per pair.
func NewRelationshipRepository(db *sql.DB) domain.RelationshipRepository {
	return &relationshipRepository{DB: db}
}

func (r *relationshipRepository) AddSavedEvent(ctx context.Context, studentID, eventID string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO saved_events (student_id, event_id) VALUES ($1, $2) ON CONFLICT (student_id, event_id) DO NOTHING`,
		studentID, eventID)
	return err
}

func (r *relationshipRepository) RemoveSavedEvent(ctx context.Context, studentID, eventID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM saved_events WHERE student_id = $1 AND event_id = $2`,
		studentID, eventID)
	return err
}

func (r *relationshipRepository) ListSavedEventIDs(ctx context.Context, studentID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT event_id FROM saved_events WHERE student_id = $1 ORDER BY created_at`,
		studentID)
	if err != nil {
		return nil, err
	}
	return collectIDs(rows)
}

func (r *relationshipRepository) AddFollowedClub(ctx context.Context, studentID, clubID string) error {
	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO followed_clubs (student_id, club_id) VALUES ($1, $2) ON CONFLICT (student_id, club_id) DO NOTHING`,
		studentID, clubID)
	return err
}

func (r *relationshipRepository) RemoveFollowedClub(ctx context.Context, studentID, clubID string) error {
	_, err := r.DB.ExecContext(ctx,
		`DELETE FROM followed_clubs WHERE student_id = $1 AND club_id = $2`,
		studentID, clubID)
	return err
}

func (r *relationshipRepository) ListFollowedClubIDs(ctx context.Context, studentID string) ([]string, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT club_id FROM followed_clubs WHERE student_id = $1 ORDER BY created_at`,
		studentID)
	if err != nil {
		return nil, err
	}
	return collectIDs(rows)
}

func (r *relationshipRepository) CountFollowers(ctx context.Context, clubID string) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM followed_clubs WHERE club_id = $1`, clubID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *relationshipRepository) DeleteDanglingSavedEvents(ctx context.Context) (int64, error) {
	result, err := r.DB.ExecContext(ctx,
		`DELETE FROM saved_events WHERE event_id NOT IN (SELECT id FROM events)`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func collectIDs(rows *sql.Rows) ([]string, error) {
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}
