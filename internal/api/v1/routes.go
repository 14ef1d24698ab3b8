package v1

import (
	"github.com/gofiber/fiber/v2"

	"tasktrack/internal/api/v1/handlers"
	"tasktrack/internal/auth"
	"tasktrack/internal/middleware"
)

// RegisterRoutes wires the HTTP surface. Auth routes are open; user and
// task routes require a bearer token.
func RegisterRoutes(app *fiber.App, h *handlers.Handler, tokens *auth.Tokens) {
	api := app.Group("/api/v1")

	api.Post("/register", h.Register)
	api.Post("/login", h.Login)

	userRoutes := api.Group("/users", middleware.AuthRequired(tokens))
	userRoutes.Get("/", h.ListUsers)
	userRoutes.Get("/:id", h.GetUser)

	taskRoutes := api.Group("/tasks", middleware.AuthRequired(tokens))
	taskRoutes.Post("/", h.CreateTask)
	taskRoutes.Get("/", h.ListTasks)
	taskRoutes.Get("/:id", h.GetTask)
	taskRoutes.Put("/:id", h.UpdateTask)
	taskRoutes.Delete("/:id", h.DeleteTask)
}
