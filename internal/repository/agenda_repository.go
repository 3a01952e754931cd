package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-case-service/internal/domain"
)

// AgendaRepository defines persistence access for per-process hearings,
// deadlines and docket movements.
type AgendaRepository interface {
	CreateAudience(ctx context.Context, audience *domain.Audience) error
	ListAudiences(ctx context.Context, processID string) ([]domain.Audience, error)
	CreateDeadline(ctx context.Context, deadline *domain.Deadline) error
	ListDeadlines(ctx context.Context, processID string) ([]domain.Deadline, error)
	ListDeadlinesDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Deadline, error)
	CreateMovement(ctx context.Context, movement *domain.Movement) error
	ListMovements(ctx context.Context, processID string) ([]domain.Movement, error)
}

type agendaRepository struct {
	pool *pgxpool.Pool
}

// NewAgendaRepository returns a Postgres-backed implementation.
func NewAgendaRepository(pool *pgxpool.Pool) AgendaRepository {
	return &agendaRepository{pool: pool}
}

func (r *agendaRepository) CreateAudience(ctx context.Context, audience *domain.Audience) error {
	const query = `
        INSERT INTO audiences (process_id, title, date, location, notes)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		audience.ProcessID,
		audience.Title,
		audience.Date,
		audience.Location,
		audience.Notes,
	).Scan(&audience.ID, &audience.CreatedAt)
}

func (r *agendaRepository) ListAudiences(ctx context.Context, processID string) ([]domain.Audience, error) {
	const query = `
        SELECT id, process_id, title, date, location, notes, created_at
        FROM audiences WHERE process_id=$1 ORDER BY date ASC`

	rows, err := r.pool.Query(ctx, query, processID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var audiences []domain.Audience
	for rows.Next() {
		var audience domain.Audience
		if err := rows.Scan(
			&audience.ID,
			&audience.ProcessID,
			&audience.Title,
			&audience.Date,
			&audience.Location,
			&audience.Notes,
			&audience.CreatedAt,
		); err != nil {
			return nil, err
		}
		audiences = append(audiences, audience)
	}
	return audiences, rows.Err()
}

func (r *agendaRepository) CreateDeadline(ctx context.Context, deadline *domain.Deadline) error {
	const query = `
        INSERT INTO deadlines (process_id, title, date, description)
        VALUES ($1, $2, $3, $4)
        RETURNING id, done, created_at`

	return r.pool.QueryRow(ctx, query,
		deadline.ProcessID,
		deadline.Title,
		deadline.Date,
		deadline.Description,
	).Scan(&deadline.ID, &deadline.Done, &deadline.CreatedAt)
}

func (r *agendaRepository) ListDeadlines(ctx context.Context, processID string) ([]domain.Deadline, error) {
	const query = `
        SELECT id, process_id, title, date, description, done, created_at
        FROM deadlines WHERE process_id=$1 ORDER BY date ASC`

	return r.queryDeadlines(ctx, query, processID)
}

// ListDeadlinesDueBefore returns open deadlines falling due before the cutoff,
// for reminder notifications.
func (r *agendaRepository) ListDeadlinesDueBefore(ctx context.Context, cutoff time.Time) ([]domain.Deadline, error) {
	const query = `
        SELECT id, process_id, title, date, description, done, created_at
        FROM deadlines WHERE NOT done AND date <= $1 ORDER BY date ASC`

	return r.queryDeadlines(ctx, query, cutoff)
}

func (r *agendaRepository) queryDeadlines(ctx context.Context, query string, arg any) ([]domain.Deadline, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var deadlines []domain.Deadline
	for rows.Next() {
		var deadline domain.Deadline
		if err := rows.Scan(
			&deadline.ID,
			&deadline.ProcessID,
			&deadline.Title,
			&deadline.Date,
			&deadline.Description,
			&deadline.Done,
			&deadline.CreatedAt,
		); err != nil {
			return nil, err
		}
		deadlines = append(deadlines, deadline)
	}
	return deadlines, rows.Err()
}

func (r *agendaRepository) CreateMovement(ctx context.Context, movement *domain.Movement) error {
	const query = `
        INSERT INTO movements (process_id, date, description)
        VALUES ($1, $2, $3)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		movement.ProcessID,
		movement.Date,
		movement.Description,
	).Scan(&movement.ID, &movement.CreatedAt)
}

func (r *agendaRepository) ListMovements(ctx context.Context, processID string) ([]domain.Movement, error) {
	const query = `
        SELECT id, process_id, date, description, created_at
        FROM movements WHERE process_id=$1 ORDER BY date DESC`

	rows, err := r.pool.Query(ctx, query, processID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []domain.Movement
	for rows.Next() {
		var movement domain.Movement
		if err := rows.Scan(
			&movement.ID,
			&movement.ProcessID,
			&movement.Date,
			&movement.Description,
			&movement.CreatedAt,
		); err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}
	return movements, rows.Err()
}
