package ports

import (
	"context"

	"github.com/house-hunter/server/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, name, role, phone, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
