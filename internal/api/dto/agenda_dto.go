package dto

import (
	"time"

	"github.com/spec-kit/legal-case-service/internal/domain"
)

// CreateAudienceRequest payload for POST /api/audiences.
type CreateAudienceRequest struct {
	ProcessID string    `json:"processId" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Date      time.Time `json:"date" validate:"required"`
	Location  *string   `json:"location"`
	Notes     *string   `json:"notes"`
}

// CreateDeadlineRequest payload for POST /api/deadlines.
type CreateDeadlineRequest struct {
	ProcessID   string    `json:"processId" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Description *string   `json:"description"`
}

// CreateMovementRequest payload for POST /api/movements.
type CreateMovementRequest struct {
	ProcessID   string    `json:"processId" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Description string    `json:"description" validate:"required"`
}

// AudienceResponse is the API shape of a hearing.
type AudienceResponse struct {
	ID        string    `json:"id"`
	ProcessID string    `json:"processId"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	Location  *string   `json:"location"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewAudienceResponse maps a domain audience onto its API shape.
func NewAudienceResponse(audience *domain.Audience) AudienceResponse {
	return AudienceResponse{
		ID:        audience.ID,
		ProcessID: audience.ProcessID,
		Title:     audience.Title,
		Date:      audience.Date,
		Location:  audience.Location,
		Notes:     audience.Notes,
		CreatedAt: audience.CreatedAt,
	}
}

// DeadlineResponse is the API shape of a deadline.
type DeadlineResponse struct {
	ID          string    `json:"id"`
	ProcessID   string    `json:"processId"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	Description *string   `json:"description"`
	Done        bool      `json:"done"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewDeadlineResponse maps a domain deadline onto its API shape.
func NewDeadlineResponse(deadline *domain.Deadline) DeadlineResponse {
	return DeadlineResponse{
		ID:          deadline.ID,
		ProcessID:   deadline.ProcessID,
		Title:       deadline.Title,
		Date:        deadline.Date,
		Description: deadline.Description,
		Done:        deadline.Done,
		CreatedAt:   deadline.CreatedAt,
	}
}

// MovementResponse is the API shape of a docket entry.
type MovementResponse struct {
	ID          string    `json:"id"`
	ProcessID   string    `json:"processId"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewMovementResponse maps a domain movement onto its API shape.
func NewMovementResponse(movement *domain.Movement) MovementResponse {
	return MovementResponse{
		ID:          movement.ID,
		ProcessID:   movement.ProcessID,
		Date:        movement.Date,
		Description: movement.Description,
		CreatedAt:   movement.CreatedAt,
	}
}
