package middleware

import (
	"strings"

	"tasklist/internal/domain/entity"
	domainerrors "tasklist/internal/domain/errors"
	"tasklist/internal/domain/repository"
	"tasklist/internal/domain/service"
	"tasklist/internal/errors"

	"github.com/labstack/echo/v4"
)

// userContextKey is where the authenticated user is stored on echo.Context.
const userContextKey = "currentUser"

// AuthMiddleware resolves the request's bearer token into the full user record.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and loads the user it names.
// The lookup hits the database on every request; nothing is cached, so a
// freshly disabled account is locked out on its next call.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrNotAuthorized.WrapMessage("missing Authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrNotAuthorized.WrapMessage("Authorization header is not a Bearer token")
		}

		// Verify distinguishes expired (401) from malformed/bad-signature (403).
		subject, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return err
		}

		userID, err := service.ParseSubject(subject)
		if err != nil {
			return domainerrors.ErrTokenInvalid.WrapMessage(err.Error())
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrNotAuthorized.WrapMessage("token user no longer exists")
			}

			return errors.Wrap(err, "failed to load user for token")
		}

		if user.Disabled {
			return domainerrors.ErrNotAuthorized.WrapMessage("account disabled")
		}

		c.Set(userContextKey, user)

		return next(c)
	}
}

// CurrentUser returns the authenticated user stored by Authenticate, or nil
// when the route is unprotected.
func CurrentUser(c echo.Context) *entity.User {
	user, _ := c.Get(userContextKey).(*entity.User)

	return user
}
