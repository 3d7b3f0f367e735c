package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/user-service/internal/core/domain"
	"github.com/99minutos/user-service/internal/core/ports"
	"github.com/99minutos/user-service/internal/core/validation"
)

// AccountService implements registration, profile edits, removal, listing and
// credential checks.
type AccountService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger
	now    func() time.Time
}

func NewAccountService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *AccountService {
	return &AccountService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Create registers a new account. Checks run in a fixed order so the first
// failing rule decides the error returned.
func (s *AccountService) Create(ctx context.Context, in ports.CreateUserInput) error {
	if in.FullName == "" || in.Email == "" || in.Password == "" {
		return domain.ErrMissingFields
	}
	if !validation.IsValidEmail(in.Email) {
		return domain.ErrInvalidEmail
	}
	if !validation.IsValidFullName(in.FullName) {
		return domain.ErrInvalidFullName
	}
	if !validation.IsStrongPassword(in.Password) {
		return domain.ErrWeakPassword
	}

	_, err := s.repo.FindByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return domain.ErrUserExists
	case !errors.Is(err, domain.ErrUserNotFound):
		return fmt.Errorf("create user: %w", err)
	}

	digest, err := s.hasher.Hash(in.Password)
	if err != nil {
		return hashError("create user", err)
	}

	now := s.now()
	user := &domain.User{
		FullName:  in.FullName,
		Email:     in.Email,
		Password:  digest,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		// The unique index on email still catches a concurrent registration.
		if errors.Is(err, domain.ErrUserExists) {
			return domain.ErrUserExists
		}
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to create user")
		return fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("email", in.Email).Msg("user created")
	return nil
}

// Edit updates the full name and/or password of the account identified by
// in.Email. The email is only a lookup key and is never rewritten.
func (s *AccountService) Edit(ctx context.Context, in ports.EditUserInput) error {
	if in.Email == "" {
		return domain.ErrEditEmailMissing
	}

	user, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		return lookupError("edit user", err)
	}

	if in.FullName != "" {
		if !validation.IsValidFullName(in.FullName) {
			return domain.ErrInvalidFullName
		}
		user.FullName = in.FullName
	}

	if in.Password != "" {
		if !validation.IsStrongPassword(in.Password) {
			return domain.ErrWeakPassword
		}
		digest, err := s.hasher.Hash(in.Password)
		if err != nil {
			return hashError("edit user", err)
		}
		user.Password = digest
	}

	user.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, user); err != nil {
		return lookupError("edit user", err)
	}

	s.logger.Info().Str("email", user.Email).Msg("user updated")
	return nil
}

// Delete removes the account identified by email.
func (s *AccountService) Delete(ctx context.Context, email string) error {
	if email == "" {
		return domain.ErrDeleteEmailMissing
	}

	if err := s.repo.DeleteByEmail(ctx, email); err != nil {
		return lookupError("delete user", err)
	}

	s.logger.Info().Str("email", email).Msg("user deleted")
	return nil
}

// ListAll returns every account with its name, email and password digest.
func (s *AccountService) ListAll(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	out := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, ports.UserSummary{
			FullName: u.FullName,
			Email:    u.Email,
			Password: u.Password,
		})
	}
	return out, nil
}

// Login checks a plaintext password against the stored digest. Success is a
// bare acknowledgement; no session or token is issued.
func (s *AccountService) Login(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return domain.ErrLoginFieldsMissing
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return lookupError("login", err)
	}

	if !s.hasher.Verify(password, user.Password) {
		s.logger.Debug().Str("email", email).Msg("password mismatch")
		return domain.ErrCredentialsMismatch
	}
	return nil
}

// lookupError passes user-not-found through untouched and wraps anything else.
func lookupError(op string, err error) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		return domain.ErrUserNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

// hashError passes hasher rejections of the input through as client errors.
func hashError(op string, err error) error {
	if errors.Is(err, domain.ErrPasswordTooLong) {
		return domain.ErrPasswordTooLong
	}
	return fmt.Errorf("%s: hash password: %w", op, err)
}
