package usecase

import (
	"context"
	"io"
)

// AuthProvider is the slice of the identity backend the usecases need.
type AuthProvider interface {
	CreateAccount(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(ctx context.Context, email, password string) (string, string, error)
	RevokeSessions(ctx context.Context, uid string) error
}

// FileUploader is the slice of the object-storage backend the usecases need.
type FileUploader interface {
	UploadFile(ctx context.Context, file io.Reader, contentType, folder string) (string, error)
}
