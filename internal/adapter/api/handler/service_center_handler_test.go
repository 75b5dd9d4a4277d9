package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorserve/internal/domain/entity"
	"motorserve/internal/usecase"
	"motorserve/pkg/errors"
)

type stubCenterRepo struct {
	centers []*entity.ServiceCenter
}

func (s *stubCenterRepo) GetByID(ctx context.Context, id string) (*entity.ServiceCenter, error) {
	for _, center := range s.centers {
		if center.ID == id {
			return center, nil
		}
	}
	return nil, errors.NotFound("Service center", nil)
}

func (s *stubCenterRepo) List(ctx context.Context) ([]*entity.ServiceCenter, error) {
	return s.centers, nil
}

func (s *stubCenterRepo) SearchByTitle(ctx context.Context, query string) ([]*entity.ServiceCenter, error) {
	matched := []*entity.ServiceCenter{}
	for _, center := range s.centers {
		if strings.Contains(strings.ToLower(center.Title), strings.ToLower(query)) {
			matched = append(matched, center)
		}
	}
	return matched, nil
}

func newCenterHandler() *ServiceCenterHandler {
	repo := &stubCenterRepo{
		centers: []*entity.ServiceCenter{
			{ID: "c2", Title: "Brake Masters", Rating: 4.5, CreatedAt: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC)},
			{ID: "c1", Title: "Speedy Motors", Rating: 4.1, CreatedAt: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)},
		},
	}
	return NewServiceCenterHandler(usecase.NewServiceCenterUseCase(repo))
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestListHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/service-centers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newCenterHandler()
	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)

	var centers []entity.ServiceCenter
	require.NoError(t, json.Unmarshal(env.Data, &centers))
	require.Len(t, centers, 2)
	assert.Equal(t, "c2", centers[0].ID)
}

func TestSearchHandlerEmptyMatch(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/service-centers/search?q=submarine", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := newCenterHandler()
	require.NoError(t, h.Search(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Equal(t, "[]", strings.TrimSpace(string(env.Data)))
}

func TestGetByIDHandlerNotFound(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/service-centers/ghost", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("ghost")

	h := newCenterHandler()
	require.NoError(t, h.GetByID(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
