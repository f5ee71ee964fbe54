package usecase

import (
	"context"

	"directory/internal/domain/entity"
	"directory/internal/domain/policy"

	"github.com/google/uuid"
)

// RegisterInput carries the fields needed to open an account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterOutput is the result of a successful registration.
type RegisterOutput struct {
	User *entity.User
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput bundles the authenticated user with a fresh token pair.
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines account, session and user-moderation use cases.
type UserUsecase interface {
	// RegisterUser opens a regular user account.
	RegisterUser(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// RegisterOwner opens an account carrying the owner role, or adds the
	// owner grant to an existing account after verifying its password.
	RegisterOwner(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues an access/refresh token pair.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Refresh rotates a refresh token and issues a new token pair.
	Refresh(ctx context.Context, refreshToken string) (*LoginOutput, error)

	// Logout revokes a refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// GetProfile retrieves the caller's own account.
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)

	// ListUsers retrieves a page of accounts for admin moderation.
	ListUsers(ctx context.Context, caller policy.Caller, page, limit int) (*Page[*entity.User], error)

	// SetUserBanned toggles the banned flag on an account.
	SetUserBanned(ctx context.Context, caller policy.Caller, userID uuid.UUID, banned bool) error

	// AddFavorite records a favorite business for the caller. Idempotent.
	AddFavorite(ctx context.Context, caller policy.Caller, businessID uuid.UUID) error

	// RemoveFavorite removes a favorite business for the caller.
	RemoveFavorite(ctx context.Context, caller policy.Caller, businessID uuid.UUID) error

	// ListFavorites retrieves the caller's favorite businesses.
	ListFavorites(ctx context.Context, caller policy.Caller) ([]*entity.Business, error)
}
