package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthbridge/internal/auth"
	"healthbridge/internal/handler"
)

func newSecuredEcho(t *testing.T, secret string) *echo.Echo {
	t.Helper()

	e := echo.New()
	e.GET("/whoami", func(c echo.Context) error {
		email, ok := handler.TokenSubject(c)
		if !ok {
			return echo.NewHTTPError(http.StatusUnauthorized, "no subject")
		}
		return c.String(http.StatusOK, email)
	}, JWTMiddleware(secret))
	return e
}

func TestJWTMiddlewareAcceptsBearerToken(t *testing.T) {
	secret := "test-secret"
	token, err := auth.NewJWTService(secret).GenerateToken("admin@healthbridge.com", "admin")
	require.NoError(t, err)

	e := newSecuredEcho(t, secret)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin@healthbridge.com", rec.Body.String())
}

func TestJWTMiddlewareRejectsBadRequests(t *testing.T) {
	secret := "test-secret"
	token, err := auth.NewJWTService(secret).GenerateToken("user@example.com", "user")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "no bearer scheme", header: token},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "wrong secret", header: "Bearer " + signedWith(t, "other-secret")},
	}

	e := newSecuredEcho(t, secret)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func signedWith(t *testing.T, secret string) string {
	t.Helper()
	token, err := auth.NewJWTService(secret).GenerateToken("user@example.com", "user")
	require.NoError(t, err)
	return token
}
