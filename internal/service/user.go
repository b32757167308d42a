package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
	"github.com/mkorchagin/ConsultBooker/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Ensure registers the user on first contact. Repeat contacts are no-ops.
func (s *UserService) Ensure(ctx context.Context, id int64, username, fullName string) (*domain.User, error) {
	if id == 0 {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}

	user := &domain.User{
		ID:        id,
		Username:  username,
		FullName:  fullName,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("ensure user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
