package dto

import (
	"time"

	"github.com/spec-kit/legal-case-service/internal/domain"
)

// CreateTaskRequest payload for POST /api/tasks.
type CreateTaskRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedID  *string    `json:"assignedId"`
	ProcessID   *string    `json:"processId"`
}

// UpdateTaskRequest payload for PUT /api/tasks/:id. All fields optional.
type UpdateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=PENDENTE EM_ANDAMENTO CONCLUIDA CANCELADA"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=BAIXA MEDIA ALTA URGENTE"`
	DueDate     *time.Time `json:"dueDate"`
	AssignedID  *string    `json:"assignedId"`
	ProcessID   *string    `json:"processId"`
}

// TaskResponse is the API shape of a task.
type TaskResponse struct {
	ID            string              `json:"id"`
	Title         string              `json:"title"`
	Description   *string             `json:"description"`
	Status        domain.TaskStatus   `json:"status"`
	Priority      domain.TaskPriority `json:"priority"`
	DueDate       *time.Time          `json:"dueDate"`
	AssignedID    *string             `json:"assignedId"`
	AssignedName  *string             `json:"assignedName,omitempty"`
	CreatedByID   string              `json:"createdById"`
	CreatedByName *string             `json:"createdByName,omitempty"`
	ProcessID     *string             `json:"processId"`
	ProcessNumber *string             `json:"processNumber,omitempty"`
	ProcessTitle  *string             `json:"processTitle,omitempty"`
	CreatedAt     time.Time           `json:"createdAt"`
	UpdatedAt     time.Time           `json:"updatedAt"`
}

// NewTaskResponse maps a domain task onto its API shape.
func NewTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:            task.ID,
		Title:         task.Title,
		Description:   task.Description,
		Status:        task.Status,
		Priority:      task.Priority,
		DueDate:       task.DueDate,
		AssignedID:    task.AssignedID,
		AssignedName:  task.AssignedName,
		CreatedByID:   task.CreatedByID,
		CreatedByName: task.CreatedByName,
		ProcessID:     task.ProcessID,
		ProcessNumber: task.ProcessNumber,
		ProcessTitle:  task.ProcessTitle,
		CreatedAt:     task.CreatedAt,
		UpdatedAt:     task.UpdatedAt,
	}
}
