package dto

import (
	"time"

	"github.com/spec-kit/legal-case-service/internal/domain"
)

// CreateClientRequest payload for POST /api/clients.
type CreateClientRequest struct {
	Name     string  `json:"name" validate:"required"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Document string  `json:"document" validate:"required"`
	Type     string  `json:"type" validate:"omitempty,oneof=PESSOA_FISICA PESSOA_JURIDICA"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	ZipCode  *string `json:"zipCode"`
	Notes    *string `json:"notes"`
}

// UpdateClientRequest payload for PUT /api/clients/:id. All fields optional.
type UpdateClientRequest struct {
	Name     string  `json:"name"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Document string  `json:"document"`
	Type     string  `json:"type" validate:"omitempty,oneof=PESSOA_FISICA PESSOA_JURIDICA"`
	Address  *string `json:"address"`
	City     *string `json:"city"`
	State    *string `json:"state"`
	ZipCode  *string `json:"zipCode"`
	Notes    *string `json:"notes"`
}

// ClientResponse is the API shape of a client.
type ClientResponse struct {
	ID           string            `json:"id"`
	Name         string            `json:"name"`
	Email        *string           `json:"email"`
	Phone        *string           `json:"phone"`
	Document     string            `json:"document"`
	Type         domain.ClientType `json:"type"`
	Address      *string           `json:"address"`
	City         *string           `json:"city"`
	State        *string           `json:"state"`
	ZipCode      *string           `json:"zipCode"`
	Notes        *string           `json:"notes"`
	ProcessCount int               `json:"processCount"`
	CreatedAt    time.Time         `json:"createdAt"`
	UpdatedAt    time.Time         `json:"updatedAt"`
}

// NewClientResponse maps a domain client onto its API shape.
func NewClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ID:           client.ID,
		Name:         client.Name,
		Email:        client.Email,
		Phone:        client.Phone,
		Document:     client.Document,
		Type:         client.Type,
		Address:      client.Address,
		City:         client.City,
		State:        client.State,
		ZipCode:      client.ZipCode,
		Notes:        client.Notes,
		ProcessCount: client.ProcessCount,
		CreatedAt:    client.CreatedAt,
		UpdatedAt:    client.UpdatedAt,
	}
}
