package domain

import (
	"context"
	"time"
)

// Account roles. Role is fixed at registration.
const (
	RoleStudent = "student"
	RoleClub    = "club"
	RoleAdmin   = "admin"
)

// Account represents a registered identity: a student, a club, or an admin.
// Club accounts own events and may have followers; the Approved flag gates
// club login and is flipped by an admin only.
// swagger:model Account
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"`
	Approved     bool      `json:"approved"`
	PasswordHash string    `json:"-"`
	Salt         string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewAccount returns a new Account with the given fields. ID is typically set by the repository on create.
func NewAccount(email, name, role string, approved bool, createdAt, updatedAt time.Time) *Account {
	return &Account{
		Email:     email,
		Name:      name,
		Role:      role,
		Approved:  approved,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Viewer is the identity evaluating a request. A zero AccountID means anonymous.
// It is passed explicitly into every service call; nothing in the core reads
// ambient session state.
type Viewer struct {
	AccountID string
	Role      string
}

// Anonymous returns true when the viewer carries no authenticated identity.
func (v Viewer) Anonymous() bool {
	return v.AccountID == ""
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated account.
type TokenIssuer interface {
	Issue(accountID, email, role string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated viewer.
type TokenVerifier interface {
	Verify(token string) (Viewer, error)
}

// AccountRepository defines the interface for account storage
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	SetApproved(ctx context.Context, id string, approved bool) error
	SearchClubs(ctx context.Context, query string, limit int) ([]*Account, error)
}

// AccountService defines registration, login, and club approval.
type AccountService interface {
	Register(ctx context.Context, email, password, name, role string) (*Account, error)
	Login(ctx context.Context, email, password string) (token string, account *Account, err error)
	GetByID(ctx context.Context, id string) (*Account, error)
	ApproveClub(ctx context.Context, caller Viewer, clubID string) (*Account, error)
}
