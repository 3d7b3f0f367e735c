package ports

import (
	"context"

	"github.com/99minutos/user-service/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts. Email is
// the lookup key for every operation.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	// Update overwrites the full name and password digest of the user with
	// user.Email. The email itself is never written.
	Update(ctx context.Context, user *domain.User) error
	// DeleteByEmail atomically finds and removes a user.
	DeleteByEmail(ctx context.Context, email string) error
	FindAll(ctx context.Context) ([]*domain.User, error)
	// SetImagePathIfEmpty assigns imagePath only when the user has none yet.
	// It reports false when the user already had an image.
	SetImagePathIfEmpty(ctx context.Context, email, imagePath string) (bool, error)
}
