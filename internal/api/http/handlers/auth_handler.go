package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/legal-case-service/internal/api/dto"
	"github.com/spec-kit/legal-case-service/internal/auth"
	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/service"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

// AuthHandler exposes authentication and account endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	user, token, _, err := h.auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)},
	})
}

// Register handles POST /api/auth/register. The route is gated to ADMIN.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	role := domain.RoleAssistente
	if req.Role != "" {
		parsed, ok := domain.ParseUserRole(req.Role)
		if !ok {
			return apperrors.NewValidationError("role must be ADMIN, ADVOGADO or ASSISTENTE", nil)
		}
		role = parsed
	}

	user, err := h.auth.Register(c.Context(), req.Name, req.Email, req.Password, role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"user": dto.NewUserResponse(user)},
		"message": "user created successfully",
	})
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized(apperrors.CodeMissingToken, "not authenticated")
	}

	user, err := h.auth.Profile(c.Context(), principal.ID)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"user": dto.NewUserResponse(user)},
	})
}

// UpdatePassword handles PUT /api/auth/password.
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized(apperrors.CodeMissingToken, "not authenticated")
	}

	var req dto.UpdatePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := dto.Check(req); err != nil {
		return err
	}

	if err := h.auth.UpdatePassword(c.Context(), principal.ID, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "password updated successfully",
	})
}

// Verify handles GET /api/auth/verify. Reaching it means the gateway already
// validated the token and reloaded the user.
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		return apperrors.NewUnauthorized(apperrors.CodeMissingToken, "not authenticated")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"user":  dto.NewUserResponse(principal),
			"valid": true,
		},
	})
}

// ListUsers handles GET /api/users.
func (h *AuthHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.auth.ListUsers(c.Context())
	if err != nil {
		return err
	}

	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    fiber.Map{"users": items},
	})
}
