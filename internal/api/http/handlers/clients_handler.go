package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-case-service/internal/api/dto"
	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/repository"
	"github.com/spec-kit/legal-case-service/internal/service"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

// ClientsHandler exposes client CRUD endpoints.
type ClientsHandler struct {
	clients *service.ClientService
}

// NewClientsHandler constructs handler.
func NewClientsHandler(clientService *service.ClientService) *ClientsHandler {
	return &ClientsHandler{clients: clientService}
}

// List handles GET /api/clients.
func (h *ClientsHandler) List(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	clients, total, err := h.clients.List(c.Context(), repository.ClientFilter{
		Search: c.Query("search"),
		Limit:  limit,
		Offset: (page - 1) * limit,
	})
	if err != nil {
		return err
	}

	items := make([]dto.ClientResponse, 0, len(clients))
	for i := range clients {
		items = append(items, dto.NewClientResponse(&clients[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"clients":    items,
			"pagination": dto.NewPagination(page, limit, total),
		},
	})
}

// Get handles GET /api/clients/:id.
func (h *ClientsHandler) Get(c *fiber.Ctx) error {
	client, processes, err := h.clients.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}

	processItems := make([]dto.ProcessResponse, 0, len(processes))
	for i := range processes {
		processItems = append(processItems, dto.NewProcessResponse(&processes[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"client":    dto.NewClientResponse(client),
			"processes": processItems,
		},
	})
}

// Create handles POST /api/clients.
func (h *ClientsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	client, err := h.clients.Create(c.Context(), service.ClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Document: req.Document,
		Type:     domain.ClientType(req.Type),
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"client": dto.NewClientResponse(client)},
		"message": "client created successfully",
	})
}

// Update handles PUT /api/clients/:id.
func (h *ClientsHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateClientRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	client, err := h.clients.Update(c.Context(), c.Params("id"), service.ClientInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Document: req.Document,
		Type:     domain.ClientType(req.Type),
		Address:  req.Address,
		City:     req.City,
		State:    req.State,
		ZipCode:  req.ZipCode,
		Notes:    req.Notes,
	})
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"client": dto.NewClientResponse(client)},
		"message": "client updated successfully",
	})
}

// Delete handles DELETE /api/clients/:id (soft delete).
func (h *ClientsHandler) Delete(c *fiber.Ctx) error {
	if err := h.clients.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "client deleted successfully",
	})
}
