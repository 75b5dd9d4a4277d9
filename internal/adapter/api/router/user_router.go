package router

import (
	"github.com/labstack/echo/v4"

	"motorserve/internal/adapter/api/handler"
	"motorserve/internal/adapter/api/middleware"
)

func SetupUserRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()
	appointmentHandler := handler.GetAppointmentHandler()

	me := e.Group("/v1/users/me")
	me.Use(authMiddleware.Authenticate)

	me.GET("", userHandler.Me)
	me.POST("/avatar", userHandler.UploadAvatar)
	me.GET("/visited-centers", appointmentHandler.VisitedCenters)
}
