package dto

import (
	"time"

	"github.com/spec-kit/legal-case-service/internal/domain"
)

// CreateProcessRequest payload for POST /api/processes. ResponsibleID
// defaults to the calling user when omitted.
type CreateProcessRequest struct {
	Number        string     `json:"number" validate:"required"`
	Title         string     `json:"title" validate:"required"`
	Description   *string    `json:"description"`
	Type          string     `json:"type" validate:"required,oneof=CIVEL TRABALHISTA CRIMINAL TRIBUTARIO PREVIDENCIARIO FAMILIA"`
	Court         *string    `json:"court"`
	Judge         *string    `json:"judge"`
	OpposingParty *string    `json:"opposingParty"`
	Value         *float64   `json:"value"`
	StartDate     *time.Time `json:"startDate"`
	ClientID      string     `json:"clientId" validate:"required"`
	ResponsibleID string     `json:"responsibleId"`
}

// UpdateProcessRequest payload for PUT /api/processes/:id. All fields optional.
type UpdateProcessRequest struct {
	Number        string     `json:"number"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	Type          string     `json:"type" validate:"omitempty,oneof=CIVEL TRABALHISTA CRIMINAL TRIBUTARIO PREVIDENCIARIO FAMILIA"`
	Status        string     `json:"status" validate:"omitempty,oneof=ATIVO SUSPENSO ARQUIVADO ENCERRADO"`
	Court         *string    `json:"court"`
	Judge         *string    `json:"judge"`
	OpposingParty *string    `json:"opposingParty"`
	Value         *float64   `json:"value"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	ResponsibleID string     `json:"responsibleId"`
}

// ProcessResponse is the API shape of a process summary.
type ProcessResponse struct {
	ID            string               `json:"id"`
	Number        string               `json:"number"`
	Title         string               `json:"title"`
	Description   *string              `json:"description"`
	Type          domain.ProcessType   `json:"type"`
	Status        domain.ProcessStatus `json:"status"`
	Court         *string              `json:"court"`
	Judge         *string              `json:"judge"`
	OpposingParty *string              `json:"opposingParty"`
	Value         *float64             `json:"value"`
	StartDate     *time.Time           `json:"startDate"`
	EndDate       *time.Time           `json:"endDate"`
	ClientID      string               `json:"clientId"`
	ResponsibleID string               `json:"responsibleId"`
	ClientName    *string              `json:"clientName,omitempty"`
	Responsible   *string              `json:"responsibleName,omitempty"`
	TaskCount     int                  `json:"taskCount"`
	AudienceCount int                  `json:"audienceCount"`
	DeadlineCount int                  `json:"deadlineCount"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

// NewProcessResponse maps a domain process onto its API shape.
func NewProcessResponse(process *domain.Process) ProcessResponse {
	return ProcessResponse{
		ID:            process.ID,
		Number:        process.Number,
		Title:         process.Title,
		Description:   process.Description,
		Type:          process.Type,
		Status:        process.Status,
		Court:         process.Court,
		Judge:         process.Judge,
		OpposingParty: process.OpposingParty,
		Value:         process.Value,
		StartDate:     process.StartDate,
		EndDate:       process.EndDate,
		ClientID:      process.ClientID,
		ResponsibleID: process.ResponsibleID,
		ClientName:    process.ClientName,
		Responsible:   process.ResponsibleName,
		TaskCount:     process.TaskCount,
		AudienceCount: process.AudienceCount,
		DeadlineCount: process.DeadlineCount,
		CreatedAt:     process.CreatedAt,
		UpdatedAt:     process.UpdatedAt,
	}
}
