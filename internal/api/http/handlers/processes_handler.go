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

// ProcessesHandler exposes legal process endpoints.
type ProcessesHandler struct {
	processes *service.ProcessService
}

// NewProcessesHandler constructs handler.
func NewProcessesHandler(processService *service.ProcessService) *ProcessesHandler {
	return &ProcessesHandler{processes: processService}
}

// List handles GET /api/processes.
func (h *ProcessesHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	processes, total, err := h.processes.List(c.Context(), repository.ProcessFilter{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return err
	}

	items := make([]dto.ProcessResponse, 0, len(processes))
	for i := range processes {
		items = append(items, dto.NewProcessResponse(&processes[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"processes":  items,
			"pagination": dto.NewPagination(page, limit, total),
		},
	})
}

// Get handles GET /api/processes/:id.
func (h *ProcessesHandler) Get(c *fiber.Ctx) error {
	detail, err := h.processes.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	tasks := make([]dto.TaskResponse, 0, len(detail.Tasks))
	for i := range detail.Tasks {
		tasks = append(tasks, dto.NewTaskResponse(&detail.Tasks[i]))
	}
	audiences := make([]dto.AudienceResponse, 0, len(detail.Audiences))
	for i := range detail.Audiences {
		audiences = append(audiences, dto.NewAudienceResponse(&detail.Audiences[i]))
	}
	deadlines := make([]dto.DeadlineResponse, 0, len(detail.Deadlines))
	for i := range detail.Deadlines {
		deadlines = append(deadlines, dto.NewDeadlineResponse(&detail.Deadlines[i]))
	}
	movements := make([]dto.MovementResponse, 0, len(detail.Movements))
	for i := range detail.Movements {
		movements = append(movements, dto.NewMovementResponse(&detail.Movements[i]))
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"process":   dto.NewProcessResponse(detail.Process),
			"tasks":     tasks,
			"audiences": audiences,
			"deadlines": deadlines,
			"movements": movements,
		},
	})
}

// Create handles POST /api/processes. Responsibility defaults to the caller.
func (h *ProcessesHandler) Create(c *fiber.Ctx) error {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized(apperrors.CodeMissingToken, "not authenticated")
	}

	var req dto.CreateProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	responsibleID := req.ResponsibleID
	if responsibleID == "" {
		responsibleID = principal.ID
	}

	process, err := h.processes.Create(c.Context(), service.ProcessCreateInput{
		Number:        req.Number,
		Title:         req.Title,
		Description:   req.Description,
		Type:          domain.ProcessType(req.Type),
		Court:         req.Court,
		Judge:         req.Judge,
		OpposingParty: req.OpposingParty,
		Value:         req.Value,
		StartDate:     req.StartDate,
		ClientID:      req.ClientID,
		ResponsibleID: responsibleID,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"process": dto.NewProcessResponse(process)},
		"message": "process created successfully",
	})
}

// Update handles PUT /api/processes/:id.
func (h *ProcessesHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProcessRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	process, err := h.processes.Update(c.Context(), c.Params("id"), service.ProcessUpdateInput{
		Number:        req.Number,
		Title:         req.Title,
		Description:   req.Description,
		Type:          domain.ProcessType(req.Type),
		Status:        domain.ProcessStatus(req.Status),
		Court:         req.Court,
		Judge:         req.Judge,
		OpposingParty: req.OpposingParty,
		Value:         req.Value,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		ResponsibleID: req.ResponsibleID,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"process": dto.NewProcessResponse(process)},
		"message": "process updated successfully",
	})
}

// Delete handles DELETE /api/processes/:id (soft delete).
func (h *ProcessesHandler) Delete(c *fiber.Ctx) error {
	if err := h.processes.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "process deleted successfully",
	})
}
