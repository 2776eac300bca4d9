package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	apperrors "wardrobe/internal/errors"
	"wardrobe/internal/model"
)

const (
	// userContextKey is where the middleware stashes the resolved user.
	userContextKey = "currentUser"
	// tokenContextKey is where the middleware stashes the raw bearer token,
	// so logout can revoke exactly the token it was called with.
	tokenContextKey = "sessionToken"
)

// UserResolver resolves a bearer token to its owning user.
type UserResolver interface {
	ResolveToken(ctx context.Context, token string) (*model.User, error)
}

// RequireUser returns middleware that authenticates the request via its
// Authorization header and stores the resolved user in the echo context.
func RequireUser(resolver UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized("missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized("authorization header format must be Bearer {token}")
			}
			token := parts[1]

			user, err := resolver.ResolveToken(c.Request().Context(), token)
			if err != nil {
				if err == apperrors.ErrInvalidToken {
					return unauthorized(err.Error())
				}
				httpErr := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
			}

			c.Set(userContextKey, user)
			c.Set(tokenContextKey, token)
			return next(c)
		}
	}
}

func unauthorized(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: message,
		Code:  "UNAUTHORIZED",
	})
}

// CurrentUser returns the authenticated user placed by RequireUser, or nil on
// unauthenticated routes.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}

// CurrentToken returns the bearer token the request authenticated with.
func CurrentToken(c echo.Context) string {
	token, _ := c.Get(tokenContextKey).(string)
	return token
}
