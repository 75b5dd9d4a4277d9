package usecase

import (
	"context"
	"io"

	"motorserve/internal/domain/entity"
	"motorserve/internal/domain/repository"
	"motorserve/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	uploader FileUploader
}

func NewUserUseCase(userRepo repository.UserRepository, uploader FileUploader) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		uploader: uploader,
	}
}

// UpdateAvatar replaces the generated initials avatar with an uploaded
// image and stores its URL on the user document.
func (uc *UserUseCase) UpdateAvatar(ctx context.Context, uid string, file io.Reader, contentType string) (*entity.User, error) {
	user, err := uc.userRepo.GetByAccountID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	url, err := uc.uploader.UploadFile(ctx, file, contentType, "avatars")
	if err != nil {
		return nil, errors.Internal("Failed to upload avatar", err)
	}

	user.AvatarURL = url
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Internal("Failed to update user record", err)
	}

	return user, nil
}
