package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireToken returns middleware that rejects requests lacking a valid
// bearer token. A nil validator disables the guard, keeping local setups and
// deployments without an auth service working unchanged.
func RequireToken(validator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if validator == nil {
			return next
		}
		return func(c echo.Context) error {
			token := ExtractToken(c.Request(), "token")
			claims, err := validator.Validate(token)
			if err != nil {
				slog.Warn("auth token rejected", slog.String("path", c.Path()), slog.Any("error", err))
				if errors.Is(err, ErrMissingToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			c.Set("claims", claims)
			return next(c)
		}
	}
}
