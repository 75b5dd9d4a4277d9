package usecase

import (
	"context"
	"time"

	"motorserve/internal/domain/entity"
	"motorserve/internal/domain/repository"
	"motorserve/pkg/errors"
	"motorserve/pkg/logger"
	"motorserve/pkg/utils"
)

type AuthUseCase struct {
	userRepo       repository.UserRepository
	authProvider   AuthProvider
	avatarEndpoint string
}

func NewAuthUseCase(userRepo repository.UserRepository, authProvider AuthProvider, avatarEndpoint string) *AuthUseCase {
	return &AuthUseCase{
		userRepo:       userRepo,
		authProvider:   authProvider,
		avatarEndpoint: avatarEndpoint,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Username string
}

type AuthResult struct {
	User         *entity.User
	Token        string
	RefreshToken string
}

// Register creates the identity, signs it in, then creates the matching
// user document. The steps are not transactional: a failure after identity
// creation leaves an account with no user document, which a later register
// attempt cannot repair. Mirrors the mobile client's sign-up flow.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	uid, err := uc.authProvider.CreateAccount(ctx, input.Email, input.Password, input.Username)
	if err != nil {
		return nil, errors.Internal("Failed to create account", err)
	}

	token, refreshToken, err := uc.authProvider.SignInWithEmailPassword(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to sign in new account", err)
	}

	now := time.Now()
	user := &entity.User{
		AccountID: uid,
		Email:     input.Email,
		Username:  input.Username,
		AvatarURL: utils.InitialsAvatarURL(uc.avatarEndpoint, input.Username),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Internal("Failed to create user record", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	token, refreshToken, err := uc.authProvider.SignInWithEmailPassword(ctx, email, password)
	if err != nil {
		logger.Warn("Login failed for %s: %v", email, err)
		return nil, errors.Unauthorized("Invalid credentials", err)
	}

	uid, err := uc.authProvider.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Internal("Failed to verify token", err)
	}

	user, err := uc.userRepo.GetByAccountID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return &AuthResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// CurrentUser resolves the authenticated account to its user document.
// Callers use it to probe login state, so every failure is swallowed and
// reported as an absent user rather than an error.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, uid string) (*entity.User, error) {
	user, err := uc.userRepo.GetByAccountID(ctx, uid)
	if err != nil {
		logger.Warn("Current user lookup failed for account %s: %v", uid, err)
		return nil, nil
	}

	return user, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.authProvider.RevokeSessions(ctx, uid); err != nil {
		return errors.Internal("Failed to sign out", err)
	}

	return nil
}
