package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"tasktrack/internal/events"
	"tasktrack/internal/models"
	"tasktrack/pkg/logger"
)

// TaskRequest is the full task payload. Create and update share it: updates
// are whole overwrites, so the caller always supplies every field.
type TaskRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description"`
	Status      string      `json:"status" validate:"required"`
	StartDate   models.Date `json:"start_date" validate:"required"`
	EndDate     models.Date `json:"end_date" validate:"required"`
	OwnerID     int         `json:"owner_id" validate:"required"`
}

func (r TaskRequest) fields() models.TaskFields {
	return models.TaskFields{
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		OwnerID:     r.OwnerID,
	}
}

func (h *Handler) parseTaskRequest(c *fiber.Ctx) (TaskRequest, error) {
	var req TaskRequest
	if err := c.BodyParser(&req); err != nil {
		return TaskRequest{}, badRequest(c, "Bad request")
	}
	if err := h.Validate.Struct(req); err != nil {
		return TaskRequest{}, badRequest(c, "Validation error")
	}
	return req, nil
}

// CreateTask inserts a task; 404 when the owner does not exist.
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	req, err := h.parseTaskRequest(c)
	if err != nil {
		return err
	}

	task, err := h.Tasks.CreateTask(c.Context(), req.fields())
	if err != nil {
		return h.fail(c, "create task", err)
	}

	h.Events.Publish(events.ActionCreated, task)
	logger.AuditLogger.Info("Task created", zap.Int("task_id", task.ID))
	return ok(c, fiber.StatusCreated, "Task created successfully", task)
}

// ListTasks returns all tasks ordered by id.
func (h *Handler) ListTasks(c *fiber.Ctx) error {
	tasks, err := h.Tasks.ListTasks(c.Context())
	if err != nil {
		return h.fail(c, "list tasks", err)
	}
	return ok(c, fiber.StatusOK, "Tasks fetched successfully", tasks)
}

// GetTask returns one task, served from the cache when possible.
func (h *Handler) GetTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid task ID")
	}

	if task, hit := h.Cache.Get(c.Context(), id); hit {
		if err := h.authorizeTask(c.Context(), c, task); err != nil {
			return h.fail(c, "get task", err)
		}
		return ok(c, fiber.StatusOK, "Task found", task)
	}

	task, err := h.Tasks.TaskByID(c.Context(), id)
	if err != nil {
		return h.fail(c, "get task", err)
	}
	if err := h.authorizeTask(c.Context(), c, task); err != nil {
		return h.fail(c, "get task", err)
	}

	h.Cache.Set(c.Context(), task)
	return ok(c, fiber.StatusOK, "Task found", task)
}

// UpdateTask overwrites every field of an existing task.
func (h *Handler) UpdateTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid task ID")
	}

	current, err := h.Tasks.TaskByID(c.Context(), id)
	if err != nil {
		return h.fail(c, "update task", err)
	}
	if err := h.authorizeTask(c.Context(), c, current); err != nil {
		return h.fail(c, "update task", err)
	}

	req, err := h.parseTaskRequest(c)
	if err != nil {
		return err
	}

	task, err := h.Tasks.UpdateTask(c.Context(), id, req.fields())
	if err != nil {
		return h.fail(c, "update task", err)
	}

	h.Cache.Invalidate(c.Context(), id)
	h.Events.Publish(events.ActionUpdated, task)
	logger.AuditLogger.Info("Task updated", zap.Int("task_id", id))
	return ok(c, fiber.StatusOK, "Task updated successfully", task)
}

// DeleteTask removes a task and returns the deleted record.
func (h *Handler) DeleteTask(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return badRequest(c, "Invalid task ID")
	}

	current, err := h.Tasks.TaskByID(c.Context(), id)
	if err != nil {
		return h.fail(c, "delete task", err)
	}
	if err := h.authorizeTask(c.Context(), c, current); err != nil {
		return h.fail(c, "delete task", err)
	}

	task, err := h.Tasks.DeleteTask(c.Context(), id)
	if err != nil {
		return h.fail(c, "delete task", err)
	}

	h.Cache.Invalidate(c.Context(), id)
	h.Events.Publish(events.ActionDeleted, task)
	logger.AuditLogger.Info("Task deleted", zap.Int("task_id", id))
	return ok(c, fiber.StatusOK, "Task deleted successfully", task)
}
