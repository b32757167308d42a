package ports

import (
	"context"

	"github.com/mkorchagin/ConsultBooker/internal/domain"
)

type UserRepo interface {
	Upsert(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
