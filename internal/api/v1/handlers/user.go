package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ListUsers returns every user, hashless.
func (h *Handler) ListUsers(c *fiber.Ctx) error {
	users, err := h.Accounts.ListUsers(c.Context())
	if err != nil {
		return h.fail(c, "list users", err)
	}
	return ok(c, fiber.StatusOK, "Users fetched successfully", users)
}

// GetUser returns a single user projection without the password hash.
func (h *Handler) GetUser(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	user, err := h.Accounts.GetUser(c.Context(), id)
	if err != nil {
		return h.fail(c, "get user", err)
	}
	return ok(c, fiber.StatusOK, "User found", user)
}
