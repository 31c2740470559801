package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"campusevents/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type accountService struct {
	accountRepo    domain.AccountRepository
	hasher         domain.PasswordHasher
	tokenIssuer    domain.TokenIssuer
	tokenExpiry    time.Duration
	mailer         domain.Mailer
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewAccountService creates an AccountService with the given repository and auth ports.
// mailer may be nil; notification emails are then skipped.
func NewAccountService(accountRepo domain.AccountRepository, hasher domain.PasswordHasher, tokenIssuer domain.TokenIssuer, tokenExpiry time.Duration, mailer domain.Mailer, logger *slog.Logger, timeout time.Duration) domain.AccountService {
	return &accountService{
		accountRepo:    accountRepo,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		tokenExpiry:    tokenExpiry,
		mailer:         mailer,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *accountService) Register(ctx context.Context, email, password, name, role string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	// Admin accounts are provisioned out of band, never self-registered.
	role = strings.TrimSpace(strings.ToLower(role))
	if role != domain.RoleStudent && role != domain.RoleClub {
		return nil, fmt.Errorf("%w: role must be %q or %q", domain.ErrInvalidInput, domain.RoleStudent, domain.RoleClub)
	}

	salt, err := s.hasher.GenerateSalt()
	if err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	hash, err := s.hasher.Hash(salt, password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	account := domain.NewAccount(email, name, role, role == domain.RoleStudent, now, now)
	account.Salt = salt
	account.PasswordHash = hash
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.sendMail(ctx, account.Email, "Welcome to the campus events hub",
		fmt.Sprintf("Hi %s, your %s account is ready.", account.Name, account.Role))

	return account, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	account, err := s.accountRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	if err := s.hasher.Compare(account.PasswordHash, account.Salt, password); err != nil {
		return "", nil, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}
	// Unapproved clubs can register but not log in until an admin flips the flag.
	if account.Role == domain.RoleClub && !account.Approved {
		return "", nil, domain.ErrAccountNotActive
	}

	token, err := s.tokenIssuer.Issue(account.ID, account.Email, account.Role, s.tokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return token, account, nil
}

func (s *accountService) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

func (s *accountService) ApproveClub(ctx context.Context, caller domain.Viewer, clubID string) (*domain.Account, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if caller.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	account, err := s.accountRepo.GetByID(ctx, clubID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	if account.Role != domain.RoleClub {
		return nil, fmt.Errorf("%w: account %s is not a club", domain.ErrInvalidInput, clubID)
	}
	if account.Approved {
		return account, nil
	}
	if err := s.accountRepo.SetApproved(ctx, clubID, true); err != nil {
		return nil, fmt.Errorf("set approved: %w", err)
	}
	account.Approved = true

	s.sendMail(ctx, account.Email, "Your club has been approved",
		fmt.Sprintf("Hi %s, your club account was approved and you can now log in and post events.", account.Name))

	return account, nil
}

// sendMail delivers a notification best-effort; failures are logged, never
// surfaced to the caller.
func (s *accountService) sendMail(ctx context.Context, to, subject, text string) {
	if s.mailer == nil {
		return
	}
	if err := s.mailer.Send(to, subject, "", text); err != nil {
		s.logger.WarnContext(ctx, "notification email failed", "to", to, "subject", subject, "err", err)
	}
}
