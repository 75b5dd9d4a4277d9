package router

import (
	"github.com/labstack/echo/v4"

	"motorserve/internal/adapter/api/handler"
	"motorserve/internal/adapter/api/middleware"
)

func SetupAppointmentRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, rateLimitMiddleware *middleware.RateLimitMiddleware) {
	appointmentHandler := handler.GetAppointmentHandler()

	appointments := e.Group("/v1/appointments")
	appointments.Use(authMiddleware.Authenticate)

	appointments.POST("", appointmentHandler.Book, rateLimitMiddleware.Limit("book_appointment"))
	appointments.DELETE("/:id", appointmentHandler.Cancel)
}
