package service

import (
	"context"

	"github.com/house-hunter/server/internal/core/domain"
	"github.com/house-hunter/server/internal/core/ports"
)

// UserService exposes read access to the users collection.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// FindByEmail returns domain.ErrUserNotFound for an unregistered email; the
// handler decides how a miss is presented.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}
