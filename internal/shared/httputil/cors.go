package httputil

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// corsRejectedBody mirrors ErrorBody with the extra context the front-end
// shows when an origin is refused.
type corsRejectedBody struct {
	Kind           string   `json:"error"`
	Message        string   `json:"message"`
	Origin         string   `json:"origin"`
	AllowedOrigins []string `json:"allowedOrigins"`
}

// CORSWithAllowList returns middleware enforcing an explicit origin
// allow-list with credentialed requests enabled. Requests without an Origin
// header (direct API calls, curl) pass through untouched. A disallowed origin
// is answered with 403 and an explanatory body instead of a bare browser-side
// CORS failure.
func CORSWithAllowList(allowed []string) echo.MiddlewareFunc {
	allowAll := false
	allowList := make([]string, 0, len(allowed))
	for _, origin := range allowed {
		trimmed := strings.TrimRight(strings.TrimSpace(origin), "/")
		if trimmed == "" {
			continue
		}
		if trimmed == "*" {
			allowAll = true
			continue
		}
		allowList = append(allowList, trimmed)
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			origin := strings.TrimSpace(c.Request().Header.Get(echo.HeaderOrigin))
			if origin == "" {
				return next(c)
			}

			if !allowAll && !originAllowed(allowList, origin) {
				slog.Warn("cors origin rejected", slog.String("origin", origin), slog.String("path", c.Path()))
				return c.JSON(http.StatusForbidden, corsRejectedBody{
					Kind:           "cors_rejected",
					Message:        "this origin is not allowed to access the API",
					Origin:         origin,
					AllowedOrigins: allowList,
				})
			}

			header := c.Response().Header()
			header.Set(echo.HeaderAccessControlAllowOrigin, origin)
			header.Set(echo.HeaderAccessControlAllowCredentials, "true")
			header.Add(echo.HeaderVary, echo.HeaderOrigin)

			if c.Request().Method == http.MethodOptions {
				header.Set(echo.HeaderAccessControlAllowMethods, "GET, POST, PUT, DELETE, OPTIONS")
				header.Set(echo.HeaderAccessControlAllowHeaders, "Content-Type, Authorization")
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}

func originAllowed(allowList []string, origin string) bool {
	normalized := strings.TrimRight(origin, "/")
	for _, candidate := range allowList {
		if strings.EqualFold(candidate, normalized) {
			return true
		}
	}
	return false
}
