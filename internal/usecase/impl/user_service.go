package impl

import (
	"context"
	"log/slog"
	"time"

	"directory/config"
	deliverycontext "directory/internal/delivery/context"
	"directory/internal/domain/entity"
	domainerrors "directory/internal/domain/errors"
	"directory/internal/domain/policy"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	"directory/internal/usecase"
	"directory/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	maxActiveSessions int
	logger            *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser opens a regular user account.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, input, entity.RoleUser)
}

// RegisterOwner opens an account carrying the owner role, or upgrades an
// existing user account in place after verifying its password.
func (srv *userService) RegisterOwner(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return srv.register(ctx, input, entity.RoleOwner)
}

func (srv *userService) register(ctx context.Context, input *usecase.RegisterInput, role entity.Role) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", role), slog.String("email", input.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()
		authRepo := factory.NewAuthRepository()

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if errors.Is(err, repository.ErrAuthNotFound) {
			return srv.registerNewAccount(ctx, input, role, userRepo, authRepo, &registeredUser)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		return srv.upgradeExistingAccount(ctx, input, role, userRepo, authRecord, &registeredUser)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.Any("role", role),
			slog.String("email", input.Email),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", role), slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func (srv *userService) registerNewAccount(
	ctx context.Context,
	input *usecase.RegisterInput,
	role entity.Role,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	registeredUser **entity.User,
) error {
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password during registration")
	}

	newUser := &entity.User{
		ID:    uuid.New(),
		Name:  input.Name,
		Email: input.Email,
		Role:  role,
	}
	if err := userRepo.Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user during registration")
	}

	newAuth := &entity.Authentication{
		ID:             uuid.New(),
		UserID:         newUser.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: input.Email,
		PasswordHash:   hashedPassword,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return errors.Wrap(err, "failed to create authentication during registration")
	}

	*registeredUser = newUser

	return nil
}

func (srv *userService) upgradeExistingAccount(
	ctx context.Context,
	input *usecase.RegisterInput,
	role entity.Role,
	userRepo repository.UserRepository,
	authRecord *entity.Authentication,
	registeredUser **entity.User,
) error {
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch when upgrading account", slog.String("email", input.Email))

		return domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch during registration")
	}

	existingUser, err := userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load existing user for registration")
	}

	// Re-registering at the same or a lower role is a duplicate, not an upgrade.
	if role != entity.RoleOwner || existingUser.Role == entity.RoleOwner || existingUser.Role == entity.RoleAdmin {
		return domainerrors.ErrUserAlreadyExists.WrapMessage("account already registered for this email")
	}

	existingUser.Role = entity.RoleOwner
	if input.Name != "" {
		existingUser.Name = input.Name
	}
	if err := userRepo.Update(ctx, existingUser); err != nil {
		return errors.Wrap(err, "failed to upgrade account during registration")
	}

	srv.log(ctx).Debug("Upgraded account to owner", slog.Any("userID", existingUser.ID))
	*registeredUser = existingUser

	return nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	var authRecord *entity.Authentication
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var findErr error
		authRecord, findErr = factory.NewAuthRepository().FindAuthentication(ctx, entity.ProviderTypeEmail, input.Email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
			}

			return errors.Wrap(findErr, "failed to find authentication")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside the transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user during login")
	}
	if user.Banned {
		return nil, domainerrors.ErrUserBanned.WrapMessage("banned account attempted login")
	}

	accessToken, refreshTokenString, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	if err := srv.storeRefreshToken(ctx, user.ID, refreshTokenString); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
	}, nil
}

// storeRefreshToken persists a new session token, evicting the user's oldest
// sessions when the configured cap would be exceeded.
func (srv *userService) storeRefreshToken(ctx context.Context, userID uuid.UUID, refreshTokenString string) error {
	token := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshTokenString),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}

	if srv.maxActiveSessions <= 0 {
		if err := srv.refreshTokenRepo.Create(ctx, token); err != nil {
			return errors.Wrap(err, "failed to create refresh token")
		}

		return nil
	}

	// With a session cap, count and insert must share a transaction so two
	// concurrent logins cannot both slip under the limit.
	return srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		refreshRepo := factory.NewRefreshTokenRepository()

		active, err := refreshRepo.CountActiveByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if active >= int64(srv.maxActiveSessions) {
			if err := refreshRepo.DeleteOldestByUser(ctx, userID, srv.maxActiveSessions-1); err != nil {
				return errors.Wrap(err, "failed to evict oldest sessions")
			}
		}

		if err := refreshRepo.Create(ctx, token); err != nil {
			return errors.Wrap(err, "failed to create refresh token")
		}

		return nil
	})
}

// Refresh rotates a refresh token and issues a new token pair.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.LoginOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token failed validation")
	}

	tokenHash := srv.tokenService.HashToken(refreshToken)

	var user *entity.User
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		refreshRepo := factory.NewRefreshTokenRepository()

		stored, findErr := refreshRepo.FindByTokenHash(ctx, tokenHash)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrRefreshTokenNotFound) {
				return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token unknown or revoked")
			}

			return errors.Wrap(findErr, "failed to load refresh token")
		}
		if stored.IsExpired(time.Now()) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token expired")
		}

		loaded, userErr := factory.NewUserRepository().FindByID(ctx, claims.UserID)
		if userErr != nil {
			return errors.Wrap(userErr, "failed to load user during refresh")
		}
		if loaded.Banned {
			return domainerrors.ErrUserBanned.WrapMessage("banned account attempted refresh")
		}

		// Rotation: the presented token is revoked before its successor exists.
		if err := refreshRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to revoke rotated refresh token")
		}

		user = loaded

		return nil
	})
	if err != nil {
		return nil, err
	}

	accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{user.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens during refresh")
	}

	if err := srv.storeRefreshToken(ctx, user.ID, newRefreshToken); err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: newRefreshToken,
	}, nil
}

// Logout revokes a refresh token. Unknown tokens are treated as already
// logged out.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	tokenHash := srv.tokenService.HashToken(refreshToken)

	if err := srv.refreshTokenRepo.DeleteByTokenHash(ctx, tokenHash); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// GetProfile retrieves the caller's own account.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile missing")
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return user, nil
}

// ListUsers retrieves a page of accounts for admin moderation.
func (srv *userService) ListUsers(ctx context.Context, caller policy.Caller, page, limit int) (*usecase.Page[*entity.User], error) {
	if !policy.CanModerateUsers(caller) {
		return nil, domainerrors.ErrForbidden.WrapMessage("caller cannot list users")
	}

	offset, page, limit := util.NormalizePaging(page, limit)
	users, total, err := srv.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return usecase.NewPage(users, page, limit, total), nil
}

// SetUserBanned toggles the banned flag on an account.
func (srv *userService) SetUserBanned(ctx context.Context, caller policy.Caller, userID uuid.UUID, banned bool) error {
	if !policy.CanModerateUsers(caller) {
		return domainerrors.ErrForbidden.WrapMessage("caller cannot ban users")
	}
	if caller.UserID == userID {
		return domainerrors.ErrForbidden.WrapMessage("admin cannot ban own account")
	}

	if err := srv.userRepo.SetBanned(ctx, userID, banned); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user missing on ban toggle")
		}

		return errors.Wrap(err, "failed to toggle banned flag")
	}

	srv.log(ctx).Info("User ban toggled", slog.Any("userID", userID), slog.Bool("banned", banned))

	return nil
}

// AddFavorite records a favorite business for the caller. Idempotent.
func (srv *userService) AddFavorite(ctx context.Context, caller policy.Caller, businessID uuid.UUID) error {
	if caller.IsAnonymous() {
		return domainerrors.ErrForbidden.WrapMessage("anonymous caller cannot add favorites")
	}

	if err := srv.userRepo.AddFavorite(ctx, caller.UserID, businessID); err != nil {
		return errors.Wrap(err, "failed to add favorite")
	}

	return nil
}

// RemoveFavorite removes a favorite business for the caller.
func (srv *userService) RemoveFavorite(ctx context.Context, caller policy.Caller, businessID uuid.UUID) error {
	if caller.IsAnonymous() {
		return domainerrors.ErrForbidden.WrapMessage("anonymous caller cannot remove favorites")
	}

	if err := srv.userRepo.RemoveFavorite(ctx, caller.UserID, businessID); err != nil {
		return errors.Wrap(err, "failed to remove favorite")
	}

	return nil
}

// ListFavorites retrieves the caller's favorite businesses.
func (srv *userService) ListFavorites(ctx context.Context, caller policy.Caller) ([]*entity.Business, error) {
	if caller.IsAnonymous() {
		return nil, domainerrors.ErrForbidden.WrapMessage("anonymous caller cannot list favorites")
	}

	businesses, err := srv.userRepo.FindFavorites(ctx, caller.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list favorites")
	}

	return businesses, nil
}
