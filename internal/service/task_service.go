package service

import (
	"context"
	"time"

	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/events"
	"github.com/spec-kit/legal-case-service/internal/repository"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

// TaskService coordinates task workflows.
type TaskService struct {
	tasks      repository.TaskRepository
	dispatcher events.Dispatcher
}

// NewTaskService constructs the service.
func NewTaskService(tasks repository.TaskRepository, dispatcher events.Dispatcher) *TaskService {
	return &TaskService{tasks: tasks, dispatcher: dispatcher}
}

// TaskCreateInput carries attributes for a new task.
type TaskCreateInput struct {
	Title       string
	Description *string
	Priority    domain.TaskPriority
	DueDate     *time.Time
	AssignedID  *string
	ProcessID   *string
}

// TaskUpdateInput carries optional attributes to overwrite.
type TaskUpdateInput struct {
	Title       string
	Description *string
	Status      domain.TaskStatus
	Priority    domain.TaskPriority
	DueDate     *time.Time
	AssignedID  *string
	ProcessID   *string
}

// List returns tasks matching the filter, newest first.
func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return s.tasks.List(ctx, filter)
}

// Create persists a new task attributed to the calling user.
func (s *TaskService) Create(ctx context.Context, createdByID string, input TaskCreateInput) (*domain.Task, error) {
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedia
	}
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      domain.TaskStatusPendente,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		AssignedID:  input.AssignedID,
		CreatedByID: createdByID,
		ProcessID:   input.ProcessID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	if task.AssignedID != nil {
		processID := ""
		if task.ProcessID != nil {
			processID = *task.ProcessID
		}
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventTaskAssigned,
			ProcessID: processID,
			Payload:   map[string]any{"taskId": task.ID, "assignedId": *task.AssignedID, "title": task.Title},
		})
	}
	return task, nil
}

// Update loads the task and overwrites the provided attributes. A newly set
// assignee triggers a task.assigned event.
func (s *TaskService) Update(ctx context.Context, id string, input TaskUpdateInput) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewNotFound("task")
		}
		return nil, err
	}

	previousAssignee := task.AssignedID

	if input.Title != "" {
		task.Title = input.Title
	}
	if input.Status != "" {
		task.Status = input.Status
	}
	if input.Priority != "" {
		task.Priority = input.Priority
	}
	if input.Description != nil {
		task.Description = input.Description
	}
	if input.DueDate != nil {
		task.DueDate = input.DueDate
	}
	if input.AssignedID != nil {
		task.AssignedID = input.AssignedID
	}
	if input.ProcessID != nil {
		task.ProcessID = input.ProcessID
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	if task.AssignedID != nil && (previousAssignee == nil || *previousAssignee != *task.AssignedID) {
		processID := ""
		if task.ProcessID != nil {
			processID = *task.ProcessID
		}
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventTaskAssigned,
			ProcessID: processID,
			Payload:   map[string]any{"taskId": task.ID, "assignedId": *task.AssignedID, "title": task.Title},
		})
	}
	return task, nil
}
