package service

import (
	"context"
	"time"

	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/events"
	"github.com/spec-kit/legal-case-service/internal/repository"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

// AgendaService coordinates hearings, deadlines and docket movements.
type AgendaService struct {
	agenda     repository.AgendaRepository
	processes  repository.ProcessRepository
	dispatcher events.Dispatcher
}

// NewAgendaService constructs the service.
func NewAgendaService(agenda repository.AgendaRepository, processes repository.ProcessRepository, dispatcher events.Dispatcher) *AgendaService {
	return &AgendaService{agenda: agenda, processes: processes, dispatcher: dispatcher}
}

// AudienceInput carries attributes for a new hearing.
type AudienceInput struct {
	ProcessID string
	Title     string
	Date      time.Time
	Location  *string
	Notes     *string
}

// DeadlineInput carries attributes for a new deadline.
type DeadlineInput struct {
	ProcessID   string
	Title       string
	Date        time.Time
	Description *string
}

// MovementInput carries attributes for a new docket entry.
type MovementInput struct {
	ProcessID   string
	Date        time.Time
	Description string
}

func (s *AgendaService) requireProcess(ctx context.Context, id string) error {
	if _, err := s.processes.GetActiveByID(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.NewNotFound("process")
		}
		return err
	}
	return nil
}

// CreateAudience schedules a hearing for an active process.
func (s *AgendaService) CreateAudience(ctx context.Context, input AudienceInput) (*domain.Audience, error) {
	if err := s.requireProcess(ctx, input.ProcessID); err != nil {
		return nil, err
	}
	audience := &domain.Audience{
		ProcessID: input.ProcessID,
		Title:     input.Title,
		Date:      input.Date,
		Location:  input.Location,
		Notes:     input.Notes,
	}
	if err := s.agenda.CreateAudience(ctx, audience); err != nil {
		return nil, err
	}

	_ = s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventAudienceScheduled,
		ProcessID: audience.ProcessID,
		Payload:   map[string]any{"title": audience.Title, "date": audience.Date},
	})
	return audience, nil
}

// ListAudiences returns hearings for a process, soonest first.
func (s *AgendaService) ListAudiences(ctx context.Context, processID string) ([]domain.Audience, error) {
	return s.agenda.ListAudiences(ctx, processID)
}

// CreateDeadline records a procedural deadline for an active process.
func (s *AgendaService) CreateDeadline(ctx context.Context, input DeadlineInput) (*domain.Deadline, error) {
	if err := s.requireProcess(ctx, input.ProcessID); err != nil {
		return nil, err
	}
	deadline := &domain.Deadline{
		ProcessID:   input.ProcessID,
		Title:       input.Title,
		Date:        input.Date,
		Description: input.Description,
	}
	if err := s.agenda.CreateDeadline(ctx, deadline); err != nil {
		return nil, err
	}
	return deadline, nil
}

// ListDeadlines returns deadlines for a process, soonest first.
func (s *AgendaService) ListDeadlines(ctx context.Context, processID string) ([]domain.Deadline, error) {
	return s.agenda.ListDeadlines(ctx, processID)
}

// CreateMovement records a docket entry.
func (s *AgendaService) CreateMovement(ctx context.Context, input MovementInput) (*domain.Movement, error) {
	if err := s.requireProcess(ctx, input.ProcessID); err != nil {
		return nil, err
	}
	movement := &domain.Movement{
		ProcessID:   input.ProcessID,
		Date:        input.Date,
		Description: input.Description,
	}
	if err := s.agenda.CreateMovement(ctx, movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// ListMovements returns docket entries for a process, newest first.
func (s *AgendaService) ListMovements(ctx context.Context, processID string) ([]domain.Movement, error) {
	return s.agenda.ListMovements(ctx, processID)
}
