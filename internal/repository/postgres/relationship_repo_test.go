package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRelationshipMock(t *testing.T) (*relationshipRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &relationshipRepository{DB: db}, mock
}

func TestRelationshipRepository_AddSavedEvent(t *testing.T) {
	repo, mock := newRelationshipMock(t)

	// The conflict clause makes repeats a no-op, so both calls succeed.
	for i := 0; i < 2; i++ {
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO saved_events (student_id, event_id) VALUES ($1, $2) ON CONFLICT (student_id, event_id) DO NOTHING`)).
			WithArgs("stu-1", "ev-1").
			WillReturnResult(sqlmock.NewResult(0, int64(1-i)))
	}

	require.NoError(t, repo.AddSavedEvent(context.Background(), "stu-1", "ev-1"))
	require.NoError(t, repo.AddSavedEvent(context.Background(), "stu-1", "ev-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationshipRepository_RemoveSavedEvent(t *testing.T) {
	repo, mock := newRelationshipMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM saved_events WHERE student_id = $1 AND event_id = $2`)).
		WithArgs("stu-1", "ev-absent").
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Removing an absent edge is not an error.
	require.NoError(t, repo.RemoveSavedEvent(context.Background(), "stu-1", "ev-absent"))
}

func TestRelationshipRepository_ListSavedEventIDs(t *testing.T) {
	repo, mock := newRelationshipMock(t)

	rows := sqlmock.NewRows([]string{"event_id"}).AddRow("ev-1").AddRow("ev-2")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT event_id FROM saved_events WHERE student_id = $1`)).
		WithArgs("stu-1").
		WillReturnRows(rows)

	ids, err := repo.ListSavedEventIDs(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ev-1", "ev-2"}, ids)
}

func TestRelationshipRepository_FollowedClubs(t *testing.T) {
	repo, mock := newRelationshipMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO followed_clubs (student_id, club_id) VALUES ($1, $2) ON CONFLICT (student_id, club_id) DO NOTHING`)).
		WithArgs("stu-1", "club-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT club_id FROM followed_clubs WHERE student_id = $1`)).
		WithArgs("stu-1").
		WillReturnRows(sqlmock.NewRows([]string{"club_id"}).AddRow("club-1"))
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM followed_clubs WHERE student_id = $1 AND club_id = $2`)).
		WithArgs("stu-1", "club-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.AddFollowedClub(context.Background(), "stu-1", "club-1"))
	ids, err := repo.ListFollowedClubIDs(context.Background(), "stu-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"club-1"}, ids)
	require.NoError(t, repo.RemoveFollowedClub(context.Background(), "stu-1", "club-1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRelationshipRepository_CountFollowers(t *testing.T) {
	repo, mock := newRelationshipMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM followed_clubs WHERE club_id = $1`)).
		WithArgs("club-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountFollowers(context.Background(), "club-1")
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestRelationshipRepository_DeleteDanglingSavedEvents(t *testing.T) {
	repo, mock := newRelationshipMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM saved_events WHERE event_id NOT IN (SELECT id FROM events)`)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	removed, err := repo.DeleteDanglingSavedEvents(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}
