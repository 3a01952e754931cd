package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-case-service/internal/domain"
)

// TaskFilter narrows task listings.
type TaskFilter struct {
	Status     string
	AssignedID string
	ProcessID  string
}

// TaskRepository defines persistence access for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	Update(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
}

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation.
func NewTaskRepository(pool *pgxpool.Pool) TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	const query = `
        INSERT INTO tasks (title, description, status, priority, due_date, assigned_id, created_by_id, process_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		task.AssignedID,
		task.CreatedByID,
		task.ProcessID,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func (r *taskRepository) Update(ctx context.Context, task *domain.Task) error {
	const query = `
        UPDATE tasks
        SET title=$1, description=$2, status=$3, priority=$4, due_date=$5,
            assigned_id=$6, process_id=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		task.Title,
		task.Description,
		task.Status,
		task.Priority,
		task.DueDate,
		task.AssignedID,
		task.ProcessID,
		task.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

const taskSelect = `
        SELECT t.id, t.title, t.description, t.status, t.priority, t.due_date,
               t.assigned_id, t.created_by_id, t.process_id, t.created_at, t.updated_at,
               ua.name, uc.name, p.number, p.title
        FROM tasks t
        LEFT JOIN users ua ON ua.id = t.assigned_id
        JOIN users uc ON uc.id = t.created_by_id
        LEFT JOIN processes p ON p.id = t.process_id`

func scanTask(row pgx.Row) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.Priority,
		&task.DueDate,
		&task.AssignedID,
		&task.CreatedByID,
		&task.ProcessID,
		&task.CreatedAt,
		&task.UpdatedAt,
		&task.AssignedName,
		&task.CreatedByName,
		&task.ProcessNumber,
		&task.ProcessTitle,
	); err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *taskRepository) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	const query = taskSelect + ` WHERE t.id=$1`
	return scanTask(r.pool.QueryRow(ctx, query, id))
}

func (r *taskRepository) List(ctx context.Context, filter TaskFilter) ([]domain.Task, error) {
	const query = taskSelect + `
        WHERE ($1 = '' OR t.status = $1)
          AND ($2 = '' OR t.assigned_id::text = $2)
          AND ($3 = '' OR t.process_id::text = $3)
        ORDER BY t.created_at DESC`

	rows, err := r.pool.Query(ctx, query, filter.Status, filter.AssignedID, filter.ProcessID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}
