package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"motorserve/pkg/errors"
)

type fakeUploader struct {
	uploads int
	err     error
}

func (f *fakeUploader) UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.uploads++
	return fmt.Sprintf("https://storage.example.com/bucket/%s/upload-%d.jpg", folder, f.uploads), nil
}

func TestUpdateAvatarReplacesGeneratedURL(t *testing.T) {
	provider := newFakeAuthProvider()
	userRepo := newFakeUserRepo()
	authUC := NewAuthUseCase(userRepo, provider, testAvatarEndpoint)

	registered, err := authUC.Register(context.Background(), RegisterInput{
		Email:    "priya@example.com",
		Password: "supersecret",
		Username: "Priya",
	})
	require.NoError(t, err)
	assert.Contains(t, registered.User.AvatarURL, testAvatarEndpoint)

	uploader := &fakeUploader{}
	uc := NewUserUseCase(userRepo, uploader)

	user, err := uc.UpdateAvatar(context.Background(), registered.User.AccountID, strings.NewReader("jpeg-bytes"), "image/jpeg")

	require.NoError(t, err)
	assert.Equal(t, "https://storage.example.com/bucket/avatars/upload-1.jpg", user.AvatarURL)

	stored, err := userRepo.GetByAccountID(context.Background(), registered.User.AccountID)
	require.NoError(t, err)
	assert.Equal(t, user.AvatarURL, stored.AvatarURL)
}

func TestUpdateAvatarUnknownAccount(t *testing.T) {
	uc := NewUserUseCase(newFakeUserRepo(), &fakeUploader{})

	_, err := uc.UpdateAvatar(context.Background(), "uid-ghost", strings.NewReader("x"), "image/png")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdateAvatarUploadFailure(t *testing.T) {
	provider := newFakeAuthProvider()
	userRepo := newFakeUserRepo()
	authUC := NewAuthUseCase(userRepo, provider, testAvatarEndpoint)

	registered, err := authUC.Register(context.Background(), RegisterInput{
		Email:    "dev@example.com",
		Password: "supersecret",
		Username: "Dev",
	})
	require.NoError(t, err)

	uploader := &fakeUploader{err: fmt.Errorf("bucket unreachable")}
	uc := NewUserUseCase(userRepo, uploader)

	_, err = uc.UpdateAvatar(context.Background(), registered.User.AccountID, strings.NewReader("x"), "image/jpeg")

	require.Error(t, err)
	assert.True(t, errors.Is(err, "INTERNAL_ERROR"))

	// The stored URL must be untouched after a failed upload.
	stored, err := userRepo.GetByAccountID(context.Background(), registered.User.AccountID)
	require.NoError(t, err)
	assert.Equal(t, registered.User.AvatarURL, stored.AvatarURL)
}
