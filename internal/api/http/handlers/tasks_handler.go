package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-case-service/internal/api/dto"
	"github.com/spec-kit/legal-case-service/internal/auth"
	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/repository"
	"github.com/spec-kit/legal-case-service/internal/service"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

// TasksHandler exposes task endpoints.
type TasksHandler struct {
	tasks *service.TaskService
}

// NewTasksHandler constructs handler.
func NewTasksHandler(taskService *service.TaskService) *TasksHandler {
	return &TasksHandler{tasks: taskService}
}

// List handles GET /api/tasks.
func (h *TasksHandler) List(c *fiber.Ctx) error {
	tasks, err := h.tasks.List(c.Context(), repository.TaskFilter{
		Status:     c.Query("status"),
		AssignedID: c.Query("assignedId"),
		ProcessID:  c.Query("processId"),
	})
	if err != nil {
		return err
	}

	items := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		items = append(items, dto.NewTaskResponse(&tasks[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"tasks": items},
	})
}

// Create handles POST /api/tasks.
func (h *TasksHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized(apperrors.CodeMissingToken, "not authenticated")
	}

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	task, err := h.tasks.Create(c.Context(), principal.ID, service.TaskCreateInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
		AssignedID:  req.AssignedID,
		ProcessID:   req.ProcessID,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"task": dto.NewTaskResponse(task)},
		"message": "task created successfully",
	})
}

// Update handles PUT /api/tasks/:id.
func (h *TasksHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	task, err := h.tasks.Update(c.Context(), c.Params("id"), service.TaskUpdateInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.TaskStatus(req.Status),
		Priority:    domain.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
		AssignedID:  req.AssignedID,
		ProcessID:   req.ProcessID,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"task": dto.NewTaskResponse(task)},
		"message": "task updated successfully",
	})
}
