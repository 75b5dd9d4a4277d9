package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"motorserve/internal/domain/entity"
	"motorserve/internal/usecase"
	"motorserve/pkg/errors"
	"motorserve/pkg/response"
)

type AppointmentHandler struct {
	appointmentUseCase *usecase.AppointmentUseCase
	authUseCase        *usecase.AuthUseCase
}

func NewAppointmentHandler(appointmentUseCase *usecase.AppointmentUseCase, authUseCase *usecase.AuthUseCase) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUseCase: appointmentUseCase,
		authUseCase:        authUseCase,
	}
}

type bookAppointmentRequest struct {
	CenterID string    `json:"center_id" validate:"required"`
	Date     time.Time `json:"date" validate:"required"`
	Services []string  `json:"services" validate:"omitempty,dive,min=1"`
}

func (h *AppointmentHandler) Book(c echo.Context) error {
	var req bookAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.resolveUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	appointment, err := h.appointmentUseCase.BookAppointment(c.Request().Context(), usecase.BookAppointmentInput{
		CreatorID: user.ID,
		CenterID:  req.CenterID,
		Date:      req.Date,
		Services:  req.Services,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, appointment)
}

func (h *AppointmentHandler) Cancel(c echo.Context) error {
	id := c.Param("id")

	user, err := h.resolveUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.appointmentUseCase.CancelAppointment(c.Request().Context(), id, user.ID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Appointment cancelled",
	})
}

func (h *AppointmentHandler) VisitedCenters(c echo.Context) error {
	user, err := h.resolveUser(c)
	if err != nil {
		return response.Error(c, err)
	}

	visited, err := h.appointmentUseCase.VisitedServiceCenters(c.Request().Context(), user.ID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, visited)
}

// resolveUser maps the authenticated account to its user document.
// Appointments reference the document id, not the account id.
func (h *AppointmentHandler) resolveUser(c echo.Context) (*entity.User, error) {
	uid := c.Get("uid").(string)

	user, err := h.authUseCase.CurrentUser(c.Request().Context(), uid)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Unauthorized("No user record for this account", nil)
	}

	return user, nil
}
