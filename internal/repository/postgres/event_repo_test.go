package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*eventRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &eventRepository{DB: db}, mock
}

func eventRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "title", "description", "date", "start_time", "end_time",
		"location", "category", "tags", "owner_id", "cover_image_ref",
		"created_at", "updated_at",
	})
}

func addEventRow(rows *sqlmock.Rows, id, title string) *sqlmock.Rows {
	now := time.Now()
	date := time.Date(2025, 10, 3, 0, 0, 0, 0, time.UTC)
	return rows.AddRow(id, title, "desc", date, "21:00", "23:30",
		"Observatory Roof", "academic", "{space,telescope}", "club-a", "", now, now)
}

func TestEventRepository_Create(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO events`)).
		WithArgs(sqlmock.AnyArg(), "Stargazing Night", "desc", "2025-10-03", "21:00", "23:30",
			"Observatory Roof", "academic", sqlmock.AnyArg(), "club-a", "",
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	event := &domain.Event{
		Title:       "Stargazing Night",
		Description: "desc",
		Date:        "2025-10-03",
		StartTime:   "21:00",
		EndTime:     "23:30",
		Location:    "Observatory Roof",
		Category:    "academic",
		Tags:        []string{"space", "telescope"},
		OwnerID:     "club-a",
	}
	err := repo.Create(context.Background(), event)
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + eventColumns + ` FROM events WHERE id = $1`)).
			WithArgs("ev-1").
			WillReturnRows(addEventRow(eventRows(), "ev-1", "Stargazing Night"))

		event, err := repo.GetByID(context.Background(), "ev-1")
		require.NoError(t, err)
		assert.Equal(t, "Stargazing Night", event.Title)
		assert.Equal(t, "2025-10-03", event.Date)
		assert.Equal(t, []string{"space", "telescope"}, event.Tags)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT ` + eventColumns + ` FROM events WHERE id = $1`)).
			WithArgs("ev-missing").
			WillReturnRows(eventRows())

		_, err := repo.GetByID(context.Background(), "ev-missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestEventRepository_GetByIDs(t *testing.T) {
	t.Run("empty input skips the query", func(t *testing.T) {
		repo, mock := newMock(t)
		events, err := repo.GetByIDs(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, events)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing ids produce no rows", func(t *testing.T) {
		repo, mock := newMock(t)
		rows := addEventRow(eventRows(), "ev-1", "Stargazing Night")
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE id = ANY($1)`)).
			WithArgs(sqlmock.AnyArg()).
			WillReturnRows(rows)

		events, err := repo.GetByIDs(context.Background(), []string{"ev-1", "ev-gone"})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "ev-1", events[0].ID)
	})
}

func TestEventRepository_Update(t *testing.T) {
	repo, mock := newMock(t)

	query := `UPDATE events SET updated_at = NOW(), title = $1 WHERE id = $2 RETURNING ` + eventColumns
	mock.ExpectQuery(regexp.QuoteMeta(query)).
		WithArgs("Renamed", "ev-1").
		WillReturnRows(addEventRow(eventRows(), "ev-1", "Renamed"))

	title := "Renamed"
	event, err := repo.Update(context.Background(), "ev-1", domain.EventUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", event.Title)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM events WHERE id = $1`)).
			WithArgs("ev-1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.Delete(context.Background(), "ev-1"))
	})

	t.Run("missing row is not found", func(t *testing.T) {
		repo, mock := newMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM events WHERE id = $1`)).
			WithArgs("ev-missing").
			WillReturnResult(sqlmock.NewResult(0, 0))
		require.ErrorIs(t, repo.Delete(context.Background(), "ev-missing"), domain.ErrNotFound)
	})
}

func TestEventRepository_Search(t *testing.T) {
	repo, mock := newMock(t)
	mock.ExpectQuery(`ILIKE`).
		WithArgs("%food%", 20).
		WillReturnRows(addEventRow(eventRows(), "ev-1", "Free Food Friday"))

	events, err := repo.Search(context.Background(), "food", 20)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Free Food Friday", events[0].Title)
}
