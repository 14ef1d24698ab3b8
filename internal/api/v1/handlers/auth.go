package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktrack/internal/accounts"
	"tasktrack/pkg/logger"
)

type RegisterRequest struct {
	Login     string `json:"login" validate:"required,excludesall=@?"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Register creates a new account. 409 on duplicate login/email.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Bad request")
	}
	if err := h.Validate.Struct(req); err != nil {
		logger.AuditLogger.Warn("Validation error during register", zap.Error(err))
		return badRequest(c, "Validation error")
	}

	user, err := h.Accounts.Register(c.Context(), accounts.RegisterInput{
		Login:     req.Login,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return h.fail(c, "register", err)
	}

	logger.AuditLogger.Info("User registered", zap.Int("user_id", user.ID))
	return ok(c, fiber.StatusCreated, "User created successfully", user)
}

type LoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login verifies credentials and returns a bearer token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Bad request")
	}
	if err := h.Validate.Struct(req); err != nil {
		return badRequest(c, "Validation error")
	}

	result, err := h.Accounts.Login(c.Context(), req.Login, req.Password)
	if err != nil {
		return h.fail(c, "login", err)
	}

	logger.AuditLogger.Info("Login success", zap.String("login", req.Login))
	return ok(c, fiber.StatusOK, "Login success", result)
}
