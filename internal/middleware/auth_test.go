package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktrack/internal/auth"
	"tasktrack/pkg/logger"
)

func newGuardedApp(t *testing.T, ttl time.Duration) (*fiber.App, *auth.Tokens) {
	t.Helper()
	logger.InitNop()
	tokens, err := auth.NewTokens("test-secret", "HS256", ttl)
	require.NoError(t, err)

	app := fiber.New()
	app.Get("/protected", AuthRequired(tokens), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"subject": Subject(c)})
	})
	return app, tokens
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	app, _ := newGuardedApp(t, time.Minute)

	req := httptest.NewRequest("GET", "/protected", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredRejectsBadFormat(t *testing.T) {
	app, tokens := newGuardedApp(t, time.Minute)
	signed, err := tokens.Issue("alice")
	require.NoError(t, err)

	for _, header := range []string{"Basic " + signed, signed, "Bearer"} {
		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", header)
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestAuthRequiredRejectsExpiredToken(t *testing.T) {
	app, tokens := newGuardedApp(t, -time.Minute)
	signed, err := tokens.Issue("alice")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthRequiredAdmitsValidTokenAndExposesSubject(t *testing.T) {
	app, tokens := newGuardedApp(t, time.Minute)
	signed, err := tokens.Issue("alice")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
