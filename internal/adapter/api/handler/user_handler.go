package handler

import (
	"github.com/labstack/echo/v4"

	"motorserve/internal/usecase"
	"motorserve/pkg/errors"
	"motorserve/pkg/response"
)

type UserHandler struct {
	authUseCase *usecase.AuthUseCase
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(authUseCase *usecase.AuthUseCase, userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

// Me reports the user document for the authenticated account. A missing
// document is reported as null data, not an error, so clients can use this
// endpoint to probe login state.
func (h *UserHandler) Me(c echo.Context) error {
	uid := c.Get("uid").(string)

	user, err := h.authUseCase.CurrentUser(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	if user == nil {
		return response.Success(c, nil)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UploadAvatar(c echo.Context) error {
	uid := c.Get("uid").(string)

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return response.Error(c, errors.BadRequest("Avatar file is required", err))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if !isSupportedImageType(contentType) {
		return response.Error(c, errors.BadRequest("Unsupported image type", nil))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read avatar file", err))
	}
	defer file.Close()

	user, err := h.userUseCase.UpdateAvatar(c.Request().Context(), uid, file, contentType)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func isSupportedImageType(contentType string) bool {
	switch contentType {
	case "image/jpeg", "image/png", "image/webp", "image/gif":
		return true
	}
	return false
}
