package router

import (
	"github.com/labstack/echo/v4"

	"motorserve/internal/adapter/api/handler"
	"motorserve/internal/adapter/api/middleware"
)

func SetupServiceCenterRouter(e *echo.Echo, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	serviceCenterHandler := handler.GetServiceCenterHandler()

	centers := e.Group("/v1/service-centers")

	centers.GET("", serviceCenterHandler.List)
	centers.GET("/search", serviceCenterHandler.Search, rateLimitMiddleware.Limit("search"))
	centers.GET("/:id", serviceCenterHandler.GetByID)
}
