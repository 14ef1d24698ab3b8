package middleware

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktrack/internal/apperr"
	"tasktrack/internal/auth"
	"tasktrack/pkg/logger"
)

// SubjectKey is the Locals key under which the verified token subject (the
// user's login) is stored for downstream handlers.
const SubjectKey = "subject"

// AuthRequired guards a route group with bearer-token verification. The
// verifier is injected; there is no package-level secret.
func AuthRequired(tokens *auth.Tokens) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return unauthorized(c, "No token provided")
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return unauthorized(c, "Invalid token format")
		}

		subject, err := tokens.Verify(parts[1])
		if err != nil {
			logger.SecurityLogger.Warn("Token rejected", zap.Error(err))
			if errors.Is(err, apperr.ErrTokenExpired) {
				return unauthorized(c, "Token expired")
			}
			return unauthorized(c, "Invalid token")
		}

		c.Locals(SubjectKey, subject)
		return c.Next()
	}
}

// Subject returns the verified login stored by AuthRequired.
func Subject(c *fiber.Ctx) string {
	subject, _ := c.Locals(SubjectKey).(string)
	return subject
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": message,
		"success": false,
		"status":  fiber.StatusUnauthorized,
	})
}
