package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, subject string, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{
		Roles: []string{"owner"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestValidateAcceptsSignedToken(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	token := signToken(t, "user-1", time.Now().Add(time.Hour))

	claims, err := validator.Validate(token)
	if err != nil {
		t.Fatalf("expected valid token, got %v", err)
	}
	if claims.Subject != "user-1" {
		t.Fatalf("unexpected subject: %s", claims.Subject)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "owner" {
		t.Fatalf("unexpected roles: %v", claims.Roles)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	token := signToken(t, "user-1", time.Now().Add(-time.Hour))

	if _, err := validator.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateRejectsMissingToken(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	if _, err := validator.Validate("  "); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected ErrMissingToken, got %v", err)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	validator := NewJWTValidator("other-secret")
	token := signToken(t, "user-1", time.Now().Add(time.Hour))

	if _, err := validator.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestExtractBearerTokenFromHeader(t *testing.T) {
	if got := ExtractBearerTokenFromHeader("Bearer abc.def.ghi"); got != "abc.def.ghi" {
		t.Fatalf("unexpected token: %s", got)
	}
	if got := ExtractBearerTokenFromHeader("bearer abc"); got != "abc" {
		t.Fatalf("lowercase scheme should work, got %s", got)
	}
	if got := ExtractBearerTokenFromHeader("Basic abc"); got != "" {
		t.Fatalf("non-bearer scheme should yield empty, got %s", got)
	}
}

func TestRequireTokenMiddleware(t *testing.T) {
	validator := NewJWTValidator(testSecret)
	e := echo.New()
	e.PUT("/api/restaurant", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireToken(validator))

	req := httptest.NewRequest(http.MethodPut, "/api/restaurant", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/restaurant", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "user-1", time.Now().Add(time.Hour)))
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with token, got %d", rec.Code)
	}
}

func TestRequireTokenDisabledWithoutValidator(t *testing.T) {
	e := echo.New()
	e.PUT("/api/restaurant", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	}, RequireToken(nil))

	req := httptest.NewRequest(http.MethodPut, "/api/restaurant", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected guard disabled, got %d", rec.Code)
	}
}
