package service

import (
	"context"
	"time"

	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/events"
	"github.com/spec-kit/legal-case-service/internal/repository"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

// ProcessService coordinates legal process workflows.
type ProcessService struct {
	processes  repository.ProcessRepository
	tasks      repository.TaskRepository
	agenda     repository.AgendaRepository
	dispatcher events.Dispatcher
}

// NewProcessService constructs the service.
func NewProcessService(processes repository.ProcessRepository, tasks repository.TaskRepository, agenda repository.AgendaRepository, dispatcher events.Dispatcher) *ProcessService {
	return &ProcessService{processes: processes, tasks: tasks, agenda: agenda, dispatcher: dispatcher}
}

// ProcessCreateInput carries attributes for a new process.
type ProcessCreateInput struct {
	Number        string
	Title         string
	Description   *string
	Type          domain.ProcessType
	Court         *string
	Judge         *string
	OpposingParty *string
	Value         *float64
	StartDate     *time.Time
	ClientID      string
	ResponsibleID string
}

// ProcessUpdateInput carries optional attributes to overwrite.
type ProcessUpdateInput struct {
	Number        string
	Title         string
	Description   *string
	Type          domain.ProcessType
	Status        domain.ProcessStatus
	Court         *string
	Judge         *string
	OpposingParty *string
	Value         *float64
	StartDate     *time.Time
	EndDate       *time.Time
	ResponsibleID string
}

// ProcessDetail bundles a process with its related records.
type ProcessDetail struct {
	Process   *domain.Process
	Tasks     []domain.Task
	Audiences []domain.Audience
	Deadlines []domain.Deadline
	Movements []domain.Movement
}

// List returns active processes with pagination and filters.
func (s *ProcessService) List(ctx context.Context, filter repository.ProcessFilter) ([]domain.Process, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.processes.List(ctx, filter)
}

// Get returns one active process with tasks, hearings, deadlines and docket.
func (s *ProcessService) Get(ctx context.Context, id string) (*ProcessDetail, error) {
	process, err := s.processes.GetActiveByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewNotFound("process")
		}
		return nil, err
	}

	tasks, err := s.tasks.List(ctx, repository.TaskFilter{ProcessID: id})
	if err != nil {
		return nil, err
	}
	audiences, err := s.agenda.ListAudiences(ctx, id)
	if err != nil {
		return nil, err
	}
	deadlines, err := s.agenda.ListDeadlines(ctx, id)
	if err != nil {
		return nil, err
	}
	movements, err := s.agenda.ListMovements(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ProcessDetail{
		Process:   process,
		Tasks:     tasks,
		Audiences: audiences,
		Deadlines: deadlines,
		Movements: movements,
	}, nil
}

// Create persists a new process. Invalid client or responsible references
// surface as foreign key errors from the storage layer.
func (s *ProcessService) Create(ctx context.Context, input ProcessCreateInput) (*domain.Process, error) {
	process := &domain.Process{
		Number:        input.Number,
		Title:         input.Title,
		Description:   input.Description,
		Type:          input.Type,
		Status:        domain.ProcessStatusAtivo,
		Court:         input.Court,
		Judge:         input.Judge,
		OpposingParty: input.OpposingParty,
		Value:         input.Value,
		StartDate:     input.StartDate,
		ClientID:      input.ClientID,
		ResponsibleID: input.ResponsibleID,
	}
	if err := s.processes.Create(ctx, process); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventProcessCreated,
		ProcessID: process.ID,
		Payload:   map[string]any{"number": process.Number, "title": process.Title},
	})
	return process, nil
}

// Update loads the process and overwrites the provided attributes.
func (s *ProcessService) Update(ctx context.Context, id string, input ProcessUpdateInput) (*domain.Process, error) {
	process, err := s.processes.GetActiveByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.NewNotFound("process")
		}
		return nil, err
	}

	if input.Number != "" {
		process.Number = input.Number
	}
	if input.Title != "" {
		process.Title = input.Title
	}
	if input.Type != "" {
		process.Type = input.Type
	}
	if input.Status != "" {
		process.Status = input.Status
	}
	if input.ResponsibleID != "" {
		process.ResponsibleID = input.ResponsibleID
	}
	if input.Description != nil {
		process.Description = input.Description
	}
	if input.Court != nil {
		process.Court = input.Court
	}
	if input.Judge != nil {
		process.Judge = input.Judge
	}
	if input.OpposingParty != nil {
		process.OpposingParty = input.OpposingParty
	}
	if input.Value != nil {
		process.Value = input.Value
	}
	if input.StartDate != nil {
		process.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		process.EndDate = input.EndDate
	}

	if err := s.processes.Update(ctx, process); err != nil {
		return nil, err
	}
	return process, nil
}

// Delete marks the process inactive.
func (s *ProcessService) Delete(ctx context.Context, id string) error {
	if err := s.processes.SoftDelete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewNotFound("process")
		}
		return err
	}
	return nil
}
