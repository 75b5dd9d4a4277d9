package repository

import (
	"context"

	"motorserve/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByAccountID(ctx context.Context, accountID string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}
