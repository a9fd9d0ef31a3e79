package ports

import (
	"context"

	"github.com/house-hunter/server/internal/core/domain"
)

// UserRepository defines the persistence contract for user records.
// Create must surface domain.ErrUserExists when the email is already taken;
// the unique index on email is the sole uniqueness check.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
