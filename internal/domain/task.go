package domain

import "time"

// TaskStatus enumerates task lifecycle states.
type TaskStatus string

const (
	TaskStatusPendente    TaskStatus = "PENDENTE"
	TaskStatusEmAndamento TaskStatus = "EM_ANDAMENTO"
	TaskStatusConcluida   TaskStatus = "CONCLUIDA"
	TaskStatusCancelada   TaskStatus = "CANCELADA"
)

// TaskPriority enumerates urgency levels.
type TaskPriority string

const (
	TaskPriorityBaixa   TaskPriority = "BAIXA"
	TaskPriorityMedia   TaskPriority = "MEDIA"
	TaskPriorityAlta    TaskPriority = "ALTA"
	TaskPriorityUrgente TaskPriority = "URGENTE"
)

// Task is a unit of work, optionally bound to a process and an assignee.
type Task struct {
	ID          string
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *time.Time
	AssignedID  *string
	CreatedByID string
	ProcessID   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	AssignedName  *string
	CreatedByName *string
	ProcessNumber *string
	ProcessTitle  *string
}
