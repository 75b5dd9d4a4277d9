package handler

import (
	"github.com/labstack/echo/v4"

	"motorserve/internal/usecase"
	"motorserve/pkg/response"
)

type ServiceCenterHandler struct {
	serviceCenterUseCase *usecase.ServiceCenterUseCase
}

func NewServiceCenterHandler(serviceCenterUseCase *usecase.ServiceCenterUseCase) *ServiceCenterHandler {
	return &ServiceCenterHandler{
		serviceCenterUseCase: serviceCenterUseCase,
	}
}

func (h *ServiceCenterHandler) List(c echo.Context) error {
	centers, err := h.serviceCenterUseCase.ListServiceCenters(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, centers)
}

func (h *ServiceCenterHandler) Search(c echo.Context) error {
	query := c.QueryParam("q")

	centers, err := h.serviceCenterUseCase.SearchServiceCenters(c.Request().Context(), query)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, centers)
}

func (h *ServiceCenterHandler) GetByID(c echo.Context) error {
	id := c.Param("id")

	center, err := h.serviceCenterUseCase.GetServiceCenterByID(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, center)
}
