package middleware

import (
	"net/http"
	"strings"

	"directory/internal/domain/entity"
	"directory/internal/domain/policy"
	"directory/internal/domain/repository"
	"directory/internal/domain/service"
	"directory/internal/errors"

	"github.com/labstack/echo/v4"
)

// CallerContextKey is the echo context key the authenticated caller is stored
// under. Handlers read it back through policy.Caller type assertion.
const CallerContextKey = "caller"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller, err := m.resolveCaller(c)
		if err != nil {
			return err
		}

		c.Set(CallerContextKey, caller)

		return next(c)
	}
}

// AuthenticateOptional resolves the caller when a Bearer token is present but
// lets anonymous requests through with a zero Caller. Public read endpoints
// use it so owners and admins can see their own non-approved listings.
func (m *AuthMiddleware) AuthenticateOptional(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			c.Set(CallerContextKey, policy.Caller{})

			return next(c)
		}

		caller, err := m.resolveCaller(c)
		if err != nil {
			return err
		}

		c.Set(CallerContextKey, caller)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := c.Get(CallerContextKey).(policy.Caller)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: caller information missing"})
			}

			if !caller.Roles.Contains(requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole.String() + "' role"})
			}

			return next(c)
		}
	}
}

// resolveCaller validates the Bearer token and loads the account so the
// banned flag reflects the database, not a stale token.
func (m *AuthMiddleware) resolveCaller(c echo.Context) (policy.Caller, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return policy.Caller{}, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return policy.Caller{}, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return policy.Caller{}, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
	}

	user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return policy.Caller{}, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Account no longer exists"})
		}

		return policy.Caller{}, errors.WithStack(err)
	}

	return policy.Caller{
		UserID: user.ID,
		Roles:  entity.RolesFromStrings(claims.Roles),
		Banned: user.Banned,
	}, nil
}
