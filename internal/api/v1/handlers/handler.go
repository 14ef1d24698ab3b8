// Package handlers binds the core operations to HTTP. Handlers parse and
// validate input, invoke one core operation, and translate the error
// taxonomy into status codes; no domain logic lives here.
package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktrack/internal/accounts"
	"tasktrack/internal/apperr"
	"tasktrack/internal/cache"
	"tasktrack/internal/events"
	"tasktrack/internal/store"
	"tasktrack/pkg/logger"
)

// Handler carries every injected dependency the routes need. No globals.
type Handler struct {
	Accounts *accounts.Service
	Tasks    *store.Store
	Cache    *cache.TaskCache
	Events   *events.Hub
	Policy   OwnershipPolicy
	Validate *validator.Validate
}

func New(accountsSvc *accounts.Service, tasks *store.Store, opts ...Option) *Handler {
	h := &Handler{
		Accounts: accountsSvc,
		Tasks:    tasks,
		Validate: validator.New(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

type Option func(*Handler)

func WithCache(c *cache.TaskCache) Option { return func(h *Handler) { h.Cache = c } }
func WithEvents(hub *events.Hub) Option   { return func(h *Handler) { h.Events = hub } }
func WithPolicy(p OwnershipPolicy) Option { return func(h *Handler) { h.Policy = p } }

func ok(c *fiber.Ctx, status int, message string, data interface{}) error {
	body := fiber.Map{
		"message": message,
		"success": true,
		"status":  status,
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(status).JSON(body)
}

func failStatus(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
		"success": false,
		"status":  status,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return failStatus(c, fiber.StatusBadRequest, message)
}

// fail maps a core error onto the wire. StorageError detail goes to the
// error log only; the client sees an opaque failure.
func (h *Handler) fail(c *fiber.Ctx, op string, err error) error {
	switch {
	case errors.Is(err, apperr.ErrConflict):
		logger.SecurityLogger.Warn("Duplicate record", zap.String("op", op))
		return failStatus(c, fiber.StatusConflict, "Login or email already exists")
	case errors.Is(err, apperr.ErrNoOwner):
		return failStatus(c, fiber.StatusNotFound, "Owner not found")
	case errors.Is(err, apperr.ErrNotFound):
		return failStatus(c, fiber.StatusNotFound, "Not found")
	case errors.Is(err, apperr.ErrInvalidCredentials):
		// One generic answer for unknown login and wrong password.
		logger.SecurityLogger.Warn("Login failed", zap.String("op", op))
		return failStatus(c, fiber.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, apperr.ErrForbidden):
		logger.SecurityLogger.Warn("Forbidden", zap.String("op", op))
		return failStatus(c, fiber.StatusForbidden, "Forbidden")
	default:
		logger.ErrorLogger.Error("Operation failed", zap.String("op", op), zap.Error(err))
		return failStatus(c, fiber.StatusInternalServerError, "Internal server error")
	}
}
