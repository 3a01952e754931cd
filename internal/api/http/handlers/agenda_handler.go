package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-case-service/internal/api/dto"
	"github.com/spec-kit/legal-case-service/internal/service"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

// AgendaHandler exposes hearing, deadline and docket endpoints.
type AgendaHandler struct {
	agenda *service.AgendaService
}

// NewAgendaHandler constructs handler.
func NewAgendaHandler(agendaService *service.AgendaService) *AgendaHandler {
	return &AgendaHandler{agenda: agendaService}
}

// ListAudiences handles GET /api/audiences?processId=...
func (h *AgendaHandler) ListAudiences(c *fiber.Ctx) error {
	processID := c.Query("processId")
	if processID == "" {
		return apperrors.NewValidationError("processId query parameter is required", nil)
	}

	audiences, err := h.agenda.ListAudiences(c.Context(), processID)
	if err != nil {
		return err
	}

	items := make([]dto.AudienceResponse, 0, len(audiences))
	for i := range audiences {
		items = append(items, dto.NewAudienceResponse(&audiences[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"audiences": items}})
}

// CreateAudience handles POST /api/audiences.
func (h *AgendaHandler) CreateAudience(c *fiber.Ctx) error {
	var req dto.CreateAudienceRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	audience, err := h.agenda.CreateAudience(c.Context(), service.AudienceInput{
		ProcessID: req.ProcessID,
		Title:     req.Title,
		Date:      req.Date,
		Location:  req.Location,
		Notes:     req.Notes,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"audience": dto.NewAudienceResponse(audience)},
		"message": "audience scheduled successfully",
	})
}

// ListDeadlines handles GET /api/deadlines?processId=...
func (h *AgendaHandler) ListDeadlines(c *fiber.Ctx) error {
	processID := c.Query("processId")
	if processID == "" {
		return apperrors.NewValidationError("processId query parameter is required", nil)
	}

	deadlines, err := h.agenda.ListDeadlines(c.Context(), processID)
	if err != nil {
		return err
	}

	items := make([]dto.DeadlineResponse, 0, len(deadlines))
	for i := range deadlines {
		items = append(items, dto.NewDeadlineResponse(&deadlines[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"deadlines": items}})
}

// CreateDeadline handles POST /api/deadlines.
func (h *AgendaHandler) CreateDeadline(c *fiber.Ctx) error {
	var req dto.CreateDeadlineRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	deadline, err := h.agenda.CreateDeadline(c.Context(), service.DeadlineInput{
		ProcessID:   req.ProcessID,
		Title:       req.Title,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"deadline": dto.NewDeadlineResponse(deadline)},
		"message": "deadline created successfully",
	})
}

// ListMovements handles GET /api/movements?processId=...
func (h *AgendaHandler) ListMovements(c *fiber.Ctx) error {
	processID := c.Query("processId")
	if processID == "" {
		return apperrors.NewValidationError("processId query parameter is required", nil)
	}

	movements, err := h.agenda.ListMovements(c.Context(), processID)
	if err != nil {
		return err
	}

	items := make([]dto.MovementResponse, 0, len(movements))
	for i := range movements {
		items = append(items, dto.NewMovementResponse(&movements[i]))
	}
	return c.JSON(fiber.Map{"success": true, "data": fiber.Map{"movements": items}})
}

// CreateMovement handles POST /api/movements.
func (h *AgendaHandler) CreateMovement(c *fiber.Ctx) error {
	var req dto.CreateMovementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	movement, err := h.agenda.CreateMovement(c.Context(), service.MovementInput{
		ProcessID:   req.ProcessID,
		Date:        req.Date,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"movement": dto.NewMovementResponse(movement)},
		"message": "movement recorded successfully",
	})
}
