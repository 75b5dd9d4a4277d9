package router

import (
	"github.com/labstack/echo/v4"

	"motorserve/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupUserRouter(e, authMiddleware)
	SetupServiceCenterRouter(e, rateLimitMiddleware)
	SetupAppointmentRouter(e, authMiddleware, rateLimitMiddleware)
	SetupHealthRouter(e)
}
