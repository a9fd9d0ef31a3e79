package ports

import (
	"context"

	"github.com/house-hunter/server/internal/core/domain"
)

type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
