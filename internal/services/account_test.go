package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"campusevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeHasher hashes deterministically for tests.
type fakeHasher struct {
	saltErr error
	hashErr error
}

func (f *fakeHasher) GenerateSalt() (string, error) {
	if f.saltErr != nil {
		return "", f.saltErr
	}
	return "salt", nil
}

func (f *fakeHasher) Hash(salt, password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return fmt.Sprintf("hash(%s:%s)", salt, password), nil
}

func (f *fakeHasher) Compare(hash, salt, password string) error {
	if hash == fmt.Sprintf("hash(%s:%s)", salt, password) {
		return nil
	}
	return errors.New("mismatch")
}

// fakeTokenIssuer issues predictable tokens.
type fakeTokenIssuer struct {
	err error
}

func (f *fakeTokenIssuer) Issue(accountID, email, role string, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("token-%s-%s", accountID, role), nil
}

// fakeMailer records sent mail.
type fakeMailer struct {
	mu   sync.Mutex
	sent []string // "to|subject"
	err  error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to+"|"+subject)
	return nil
}

func newTestAccountService(ar domain.AccountRepository, mailer domain.Mailer) domain.AccountService {
	return NewAccountService(ar, &fakeHasher{}, &fakeTokenIssuer{}, time.Hour, mailer, testLogger, 5*time.Second)
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		accName  string
		role     string
		wantErr  bool
		errIs    error
		assert   func(t *testing.T, a *domain.Account)
	}{
		{
			name:     "student registers approved",
			email:    "Sam@Uni.edu",
			password: "hunter2hunter2",
			accName:  "Sam",
			role:     "student",
			assert: func(t *testing.T, a *domain.Account) {
				assert.Equal(t, "sam@uni.edu", a.Email)
				assert.Equal(t, domain.RoleStudent, a.Role)
				assert.True(t, a.Approved)
				assert.NotEmpty(t, a.ID)
				assert.Equal(t, "hash(salt:hunter2hunter2)", a.PasswordHash)
			},
		},
		{
			name:     "club registers unapproved",
			email:    "chess@uni.edu",
			password: "password123",
			accName:  "Chess Club",
			role:     "club",
			assert: func(t *testing.T, a *domain.Account) {
				assert.Equal(t, domain.RoleClub, a.Role)
				assert.False(t, a.Approved)
			},
		},
		{
			name:     "admin role rejected",
			email:    "root@uni.edu",
			password: "password123",
			accName:  "Root",
			role:     "admin",
			wantErr:  true,
			errIs:    domain.ErrInvalidInput,
		},
		{
			name:     "bad email",
			email:    "not-an-email",
			password: "password123",
			accName:  "X",
			role:     "student",
			wantErr:  true,
			errIs:    domain.ErrInvalidInput,
		},
		{
			name:     "short password",
			email:    "x@uni.edu",
			password: "short",
			accName:  "X",
			role:     "student",
			wantErr:  true,
			errIs:    domain.ErrInvalidInput,
		},
		{
			name:     "missing name",
			email:    "x@uni.edu",
			password: "password123",
			accName:  "   ",
			role:     "student",
			wantErr:  true,
			errIs:    domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ar := newFakeAccountRepo()
			mailer := &fakeMailer{}
			svc := newTestAccountService(ar, mailer)
			account, err := svc.Register(ctx, tt.email, tt.password, tt.accName, tt.role)
			if tt.wantErr {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.errIs)
				require.Nil(t, account)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, account)
			tt.assert(t, account)
			require.Len(t, mailer.sent, 1)
		})
	}
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	ar := newFakeAccountRepo()
	svc := newTestAccountService(ar, nil)

	_, err := svc.Register(ctx, "sam@uni.edu", "password123", "Sam", "student")
	require.NoError(t, err)
	_, err = svc.Register(ctx, "sam@uni.edu", "password123", "Sam Again", "student")
	require.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	ar := newFakeAccountRepo()
	svc := newTestAccountService(ar, nil)

	student, err := svc.Register(ctx, "sam@uni.edu", "password123", "Sam", "student")
	require.NoError(t, err)
	club, err := svc.Register(ctx, "chess@uni.edu", "password123", "Chess Club", "club")
	require.NoError(t, err)

	t.Run("student logs in", func(t *testing.T) {
		token, account, err := svc.Login(ctx, "sam@uni.edu", "password123")
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("token-%s-student", student.ID), token)
		assert.Equal(t, student.ID, account.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "sam@uni.edu", "nope-nope-nope")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "ghost@uni.edu", "password123")
		require.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unapproved club rejected", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "chess@uni.edu", "password123")
		require.ErrorIs(t, err, domain.ErrAccountNotActive)
	})

	t.Run("approved club logs in", func(t *testing.T) {
		_, err := svc.ApproveClub(ctx, domain.Viewer{AccountID: "adm-1", Role: domain.RoleAdmin}, club.ID)
		require.NoError(t, err)
		token, _, err := svc.Login(ctx, "chess@uni.edu", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})
}

func TestAccountService_ApproveClub(t *testing.T) {
	ctx := context.Background()
	admin := domain.Viewer{AccountID: "adm-1", Role: domain.RoleAdmin}

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc := newTestAccountService(newFakeAccountRepo(), nil)
		_, err := svc.ApproveClub(ctx, studentViewer("stu-1"), "club-1")
		require.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("unknown account", func(t *testing.T) {
		svc := newTestAccountService(newFakeAccountRepo(), nil)
		_, err := svc.ApproveClub(ctx, admin, "club-missing")
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("student account is not approvable", func(t *testing.T) {
		ar := newFakeAccountRepo()
		ar.addAccount(&domain.Account{ID: "stu-1", Email: "s@uni.edu", Name: "Sam", Role: domain.RoleStudent})
		svc := newTestAccountService(ar, nil)
		_, err := svc.ApproveClub(ctx, admin, "stu-1")
		require.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("approves and notifies once", func(t *testing.T) {
		ar := newFakeAccountRepo()
		ar.addAccount(&domain.Account{ID: "club-1", Email: "c@uni.edu", Name: "Chess", Role: domain.RoleClub})
		mailer := &fakeMailer{}
		svc := newTestAccountService(ar, mailer)

		account, err := svc.ApproveClub(ctx, admin, "club-1")
		require.NoError(t, err)
		assert.True(t, account.Approved)
		require.Len(t, mailer.sent, 1)

		// Approving an already-approved club is a no-op, no second email.
		account, err = svc.ApproveClub(ctx, admin, "club-1")
		require.NoError(t, err)
		assert.True(t, account.Approved)
		assert.Len(t, mailer.sent, 1)
	})

	t.Run("mailer failure does not fail approval", func(t *testing.T) {
		ar := newFakeAccountRepo()
		ar.addAccount(&domain.Account{ID: "club-1", Email: "c@uni.edu", Name: "Chess", Role: domain.RoleClub})
		svc := newTestAccountService(ar, &fakeMailer{err: errors.New("ses down")})

		account, err := svc.ApproveClub(ctx, admin, "club-1")
		require.NoError(t, err)
		assert.True(t, account.Approved)
	})
}
