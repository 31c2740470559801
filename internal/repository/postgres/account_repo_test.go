package postgres

import (
	"context"
	"regexp"
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccountMock(t *testing.T) (*accountRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &accountRepository{DB: db}, mock
}

func accountRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "email", "name", "role", "approved", "password_hash", "salt",
		"created_at", "updated_at",
	})
}

func addAccountRow(rows *sqlmock.Rows, id, email, name, role string, approved bool) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, email, name, role, approved, "hash", "salt", now, now)
}

func TestAccountRepository_Create(t *testing.T) {
	t.Run("creates", func(t *testing.T) {
		repo, mock := newAccountMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts`)).
			WithArgs(sqlmock.AnyArg(), "sam@uni.edu", "Sam", "student", true, "hash", "salt",
				sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		account := &domain.Account{
			Email: "sam@uni.edu", Name: "Sam", Role: domain.RoleStudent,
			Approved: true, PasswordHash: "hash", Salt: "salt",
		}
		require.NoError(t, repo.Create(context.Background(), account))
		assert.NotEmpty(t, account.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo, mock := newAccountMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO accounts`)).
			WillReturnError(&pq.Error{Code: "23505"})

		err := repo.Create(context.Background(), &domain.Account{Email: "sam@uni.edu"})
		require.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestAccountRepository_GetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newAccountMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE email = $1`)).
			WithArgs("sam@uni.edu").
			WillReturnRows(addAccountRow(accountRows(), "acc-1", "sam@uni.edu", "Sam", "student", true))

		account, err := repo.GetByEmail(context.Background(), "sam@uni.edu")
		require.NoError(t, err)
		assert.Equal(t, "acc-1", account.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo, mock := newAccountMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(`FROM accounts WHERE email = $1`)).
			WithArgs("ghost@uni.edu").
			WillReturnRows(accountRows())

		_, err := repo.GetByEmail(context.Background(), "ghost@uni.edu")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestAccountRepository_SetApproved(t *testing.T) {
	t.Run("approves", func(t *testing.T) {
		repo, mock := newAccountMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET approved = $2`)).
			WithArgs("club-1", true).
			WillReturnResult(sqlmock.NewResult(0, 1))
		require.NoError(t, repo.SetApproved(context.Background(), "club-1", true))
	})

	t.Run("missing account", func(t *testing.T) {
		repo, mock := newAccountMock(t)
		mock.ExpectExec(regexp.QuoteMeta(`UPDATE accounts SET approved = $2`)).
			WithArgs("club-missing", true).
			WillReturnResult(sqlmock.NewResult(0, 0))
		require.ErrorIs(t, repo.SetApproved(context.Background(), "club-missing", true), domain.ErrNotFound)
	})
}

func TestAccountRepository_SearchClubs(t *testing.T) {
	repo, mock := newAccountMock(t)
	mock.ExpectQuery(`role = 'club'`).
		WithArgs("%chess%", 20).
		WillReturnRows(addAccountRow(accountRows(), "club-1", "chess@uni.edu", "Chess Club", "club", true))

	clubs, err := repo.SearchClubs(context.Background(), "chess", 20)
	require.NoError(t, err)
	require.Len(t, clubs, 1)
	assert.Equal(t, "Chess Club", clubs[0].Name)
}
