package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/events"
	"github.com/spec-kit/legal-case-service/internal/repository"
	apperrors "github.com/spec-kit/legal-case-service/pkg/util"
)

type stubTaskRepo struct {
	byID    map[string]*domain.Task
	created []*domain.Task
	updated []*domain.Task
}

func newStubTaskRepo(tasks ...*domain.Task) *stubTaskRepo {
	repo := &stubTaskRepo{byID: map[string]*domain.Task{}}
	for _, task := range tasks {
		repo.byID[task.ID] = task
	}
	return repo
}

func (s *stubTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	task.ID = "task-id"
	s.created = append(s.created, task)
	return nil
}

func (s *stubTaskRepo) Update(ctx context.Context, task *domain.Task) error {
	s.updated = append(s.updated, task)
	return nil
}

func (s *stubTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	if task, ok := s.byID[id]; ok {
		copied := *task
		return &copied, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubTaskRepo) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	return nil, nil
}

type recordingDispatcher struct {
	published []events.Event
}

func (d *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	d.published = append(d.published, event)
	return nil
}

func (d *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func strPtr(s string) *string { return &s }

func TestTaskCreateDefaults(t *testing.T) {
	repo := newStubTaskRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewTaskService(repo, dispatcher)

	task, err := svc.Create(context.Background(), "creator-id", TaskCreateInput{Title: "Elaborar contestação"})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusPendente, task.Status)
	assert.Equal(t, domain.TaskPriorityMedia, task.Priority)
	assert.Equal(t, "creator-id", task.CreatedByID)
	assert.Empty(t, dispatcher.published, "no assignment, no event")
}

func TestTaskCreateWithAssigneePublishesEvent(t *testing.T) {
	repo := newStubTaskRepo()
	dispatcher := &recordingDispatcher{}
	svc := NewTaskService(repo, dispatcher)

	task, err := svc.Create(context.Background(), "creator-id", TaskCreateInput{
		Title:      "Reunir documentos",
		Priority:   domain.TaskPriorityAlta,
		AssignedID: strPtr("assignee-id"),
		ProcessID:  strPtr("process-id"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPriorityAlta, task.Priority)

	require.Len(t, dispatcher.published, 1)
	event := dispatcher.published[0]
	assert.Equal(t, events.EventTaskAssigned, event.Type)
	assert.Equal(t, "process-id", event.ProcessID)
	assert.Equal(t, "assignee-id", event.Payload["assignedId"])
}

func TestTaskUpdateAssignmentEvents(t *testing.T) {
	tests := []struct {
		name       string
		existing   *string
		input      *string
		wantEvents int
	}{
		{"new assignee fires event", nil, strPtr("assignee-id"), 1},
		{"changed assignee fires event", strPtr("old-id"), strPtr("new-id"), 1},
		{"same assignee stays quiet", strPtr("assignee-id"), strPtr("assignee-id"), 0},
		{"no assignee change stays quiet", strPtr("assignee-id"), nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubTaskRepo(&domain.Task{
				ID:         "task-1",
				Title:      "Acompanhar prazo recursal",
				Status:     domain.TaskStatusPendente,
				Priority:   domain.TaskPriorityAlta,
				AssignedID: tt.existing,
			})
			dispatcher := &recordingDispatcher{}
			svc := NewTaskService(repo, dispatcher)

			_, err := svc.Update(context.Background(), "task-1", TaskUpdateInput{AssignedID: tt.input})
			require.NoError(t, err)
			assert.Len(t, dispatcher.published, tt.wantEvents)
		})
	}
}

func TestTaskUpdatePartialOverwrite(t *testing.T) {
	repo := newStubTaskRepo(&domain.Task{
		ID:       "task-1",
		Title:    "Elaborar contestação",
		Status:   domain.TaskStatusPendente,
		Priority: domain.TaskPriorityAlta,
	})
	svc := NewTaskService(repo, &recordingDispatcher{})

	task, err := svc.Update(context.Background(), "task-1", TaskUpdateInput{Status: domain.TaskStatusConcluida})
	require.NoError(t, err)

	assert.Equal(t, domain.TaskStatusConcluida, task.Status)
	assert.Equal(t, "Elaborar contestação", task.Title)
	assert.Equal(t, domain.TaskPriorityAlta, task.Priority)
	require.Len(t, repo.updated, 1)
}

func TestTaskUpdateNotFound(t *testing.T) {
	svc := NewTaskService(newStubTaskRepo(), &recordingDispatcher{})

	_, err := svc.Update(context.Background(), "missing", TaskUpdateInput{Title: "x"})
	require.Error(t, err)
	assert.Equal(t, apperrors.CodeNotFound, domainCode(t, err))
}
