package usecase

import (
	"context"
	"strings"

	"motorserve/internal/domain/entity"
	"motorserve/internal/domain/repository"
	"motorserve/pkg/errors"
)

type ServiceCenterUseCase struct {
	centerRepo repository.ServiceCenterRepository
}

func NewServiceCenterUseCase(centerRepo repository.ServiceCenterRepository) *ServiceCenterUseCase {
	return &ServiceCenterUseCase{
		centerRepo: centerRepo,
	}
}

// ListServiceCenters returns the whole catalog, newest first.
func (uc *ServiceCenterUseCase) ListServiceCenters(ctx context.Context) ([]*entity.ServiceCenter, error) {
	return uc.centerRepo.List(ctx)
}

// SearchServiceCenters matches the query against center titles. An empty
// match set is an empty slice, not an error.
func (uc *ServiceCenterUseCase) SearchServiceCenters(ctx context.Context, query string) ([]*entity.ServiceCenter, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.BadRequest("Search query is required", nil)
	}

	return uc.centerRepo.SearchByTitle(ctx, query)
}

func (uc *ServiceCenterUseCase) GetServiceCenterByID(ctx context.Context, id string) (*entity.ServiceCenter, error) {
	return uc.centerRepo.GetByID(ctx, id)
}
