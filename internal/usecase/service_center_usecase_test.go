package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorserve/internal/domain/entity"
	"motorserve/pkg/errors"
)

func seedCenters(repo *fakeServiceCenterRepo) {
	// Added newest first, mirroring the createdAt-descending listing.
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo.add(&entity.ServiceCenter{ID: "center-3", Title: "Brake Masters", CreatedAt: base.Add(48 * time.Hour)})
	repo.add(&entity.ServiceCenter{ID: "center-2", Title: "Speedy Motors", CreatedAt: base.Add(24 * time.Hour)})
	repo.add(&entity.ServiceCenter{ID: "center-1", Title: "City Brake & Clutch", CreatedAt: base})
}

func TestListServiceCentersNewestFirst(t *testing.T) {
	repo := newFakeServiceCenterRepo()
	seedCenters(repo)
	uc := NewServiceCenterUseCase(repo)

	centers, err := uc.ListServiceCenters(context.Background())

	require.NoError(t, err)
	require.Len(t, centers, 3)
	assert.Equal(t, "center-3", centers[0].ID)
	assert.Equal(t, "center-2", centers[1].ID)
	assert.Equal(t, "center-1", centers[2].ID)
	for i := 1; i < len(centers); i++ {
		assert.True(t, centers[i].CreatedAt.Before(centers[i-1].CreatedAt))
	}
}

func TestSearchServiceCentersMatchesTitleOnly(t *testing.T) {
	repo := newFakeServiceCenterRepo()
	seedCenters(repo)
	uc := NewServiceCenterUseCase(repo)

	centers, err := uc.SearchServiceCenters(context.Background(), "brake")

	require.NoError(t, err)
	require.Len(t, centers, 2)
	for _, center := range centers {
		assert.Contains(t, []string{"Brake Masters", "City Brake & Clutch"}, center.Title)
	}
}

func TestSearchServiceCentersEmptyMatchIsNotAnError(t *testing.T) {
	repo := newFakeServiceCenterRepo()
	seedCenters(repo)
	uc := NewServiceCenterUseCase(repo)

	centers, err := uc.SearchServiceCenters(context.Background(), "submarine")

	require.NoError(t, err)
	assert.NotNil(t, centers)
	assert.Empty(t, centers)
}

func TestSearchServiceCentersRequiresQuery(t *testing.T) {
	uc := NewServiceCenterUseCase(newFakeServiceCenterRepo())

	_, err := uc.SearchServiceCenters(context.Background(), "   ")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGetServiceCenterByIDNotFound(t *testing.T) {
	uc := NewServiceCenterUseCase(newFakeServiceCenterRepo())

	_, err := uc.GetServiceCenterByID(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestGetServiceCenterByID(t *testing.T) {
	repo := newFakeServiceCenterRepo()
	seedCenters(repo)
	uc := NewServiceCenterUseCase(repo)

	center, err := uc.GetServiceCenterByID(context.Background(), "center-2")

	require.NoError(t, err)
	assert.Equal(t, "Speedy Motors", center.Title)
}
