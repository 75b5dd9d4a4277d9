package repository

import (
	"context"

	"motorserve/internal/domain/entity"
)

type ServiceCenterRepository interface {
	GetByID(ctx context.Context, id string) (*entity.ServiceCenter, error)
	// List returns the whole collection ordered by creation time, newest
	// first. The catalog is small enough that no pagination is applied.
	List(ctx context.Context) ([]*entity.ServiceCenter, error)
	SearchByTitle(ctx context.Context, query string) ([]*entity.ServiceCenter, error)
}
