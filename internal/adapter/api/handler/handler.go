package handler

import (
	"motorserve/internal/usecase"
)

var (
	authHandler          *AuthHandler
	userHandler          *UserHandler
	serviceCenterHandler *ServiceCenterHandler
	appointmentHandler   *AppointmentHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	userUseCase *usecase.UserUseCase,
	serviceCenterUseCase *usecase.ServiceCenterUseCase,
	appointmentUseCase *usecase.AppointmentUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	userHandler = NewUserHandler(authUseCase, userUseCase)
	serviceCenterHandler = NewServiceCenterHandler(serviceCenterUseCase)
	appointmentHandler = NewAppointmentHandler(appointmentUseCase, authUseCase)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}

func GetServiceCenterHandler() *ServiceCenterHandler {
	return serviceCenterHandler
}

func GetAppointmentHandler() *AppointmentHandler {
	return appointmentHandler
}
