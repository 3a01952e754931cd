package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-case-service/internal/domain"
)

// ProcessFilter narrows process listings.
type ProcessFilter struct {
	Search string
	Status string
	Type   string
	Limit  int
	Offset int
}

// ProcessRepository defines persistence access for legal processes.
type ProcessRepository interface {
	Create(ctx context.Context, process *domain.Process) error
	Update(ctx context.Context, process *domain.Process) error
	GetActiveByID(ctx context.Context, id string) (*domain.Process, error)
	List(ctx context.Context, filter ProcessFilter) ([]domain.Process, int, error)
	ListByClient(ctx context.Context, clientID string) ([]domain.Process, error)
	SoftDelete(ctx context.Context, id string) error
}

type processRepository struct {
	pool *pgxpool.Pool
}

// NewProcessRepository returns a Postgres-backed implementation.
func NewProcessRepository(pool *pgxpool.Pool) ProcessRepository {
	return &processRepository{pool: pool}
}

func (r *processRepository) Create(ctx context.Context, process *domain.Process) error {
	const query = `
        INSERT INTO processes (number, title, description, type, status, court, judge,
                               opposing_party, value, start_date, client_id, responsible_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        RETURNING id, active, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		process.Number,
		process.Title,
		process.Description,
		process.Type,
		process.Status,
		process.Court,
		process.Judge,
		process.OpposingParty,
		process.Value,
		process.StartDate,
		process.ClientID,
		process.ResponsibleID,
	).Scan(&process.ID, &process.Active, &process.CreatedAt, &process.UpdatedAt)
}

func (r *processRepository) Update(ctx context.Context, process *domain.Process) error {
	const query = `
        UPDATE processes
        SET number=$1, title=$2, description=$3, type=$4, status=$5, court=$6, judge=$7,
            opposing_party=$8, value=$9, start_date=$10, end_date=$11, client_id=$12,
            responsible_id=$13, updated_at=NOW()
        WHERE id=$14`

	cmd, err := r.pool.Exec(ctx, query,
		process.Number,
		process.Title,
		process.Description,
		process.Type,
		process.Status,
		process.Court,
		process.Judge,
		process.OpposingParty,
		process.Value,
		process.StartDate,
		process.EndDate,
		process.ClientID,
		process.ResponsibleID,
		process.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *processRepository) GetActiveByID(ctx context.Context, id string) (*domain.Process, error) {
	const query = `
        SELECT p.id, p.number, p.title, p.description, p.type, p.status, p.court, p.judge,
               p.opposing_party, p.value, p.start_date, p.end_date, p.client_id, p.responsible_id,
               p.active, p.created_at, p.updated_at,
               c.name, c.document, u.name
        FROM processes p
        JOIN clients c ON c.id = p.client_id
        JOIN users u ON u.id = p.responsible_id
        WHERE p.id=$1 AND p.active`

	var process domain.Process
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&process.ID,
		&process.Number,
		&process.Title,
		&process.Description,
		&process.Type,
		&process.Status,
		&process.Court,
		&process.Judge,
		&process.OpposingParty,
		&process.Value,
		&process.StartDate,
		&process.EndDate,
		&process.ClientID,
		&process.ResponsibleID,
		&process.Active,
		&process.CreatedAt,
		&process.UpdatedAt,
		&process.ClientName,
		&process.ClientDocument,
		&process.ResponsibleName,
	); err != nil {
		return nil, err
	}
	return &process, nil
}

func (r *processRepository) List(ctx context.Context, filter ProcessFilter) ([]domain.Process, int, error) {
	const query = `
        SELECT p.id, p.number, p.title, p.description, p.type, p.status, p.court, p.judge,
               p.opposing_party, p.value, p.start_date, p.end_date, p.client_id, p.responsible_id,
               p.active, p.created_at, p.updated_at,
               c.name, c.document, u.name,
               (SELECT COUNT(*) FROM tasks t WHERE t.process_id = p.id),
               (SELECT COUNT(*) FROM audiences a WHERE a.process_id = p.id),
               (SELECT COUNT(*) FROM deadlines d WHERE d.process_id = p.id)
        FROM processes p
        JOIN clients c ON c.id = p.client_id
        JOIN users u ON u.id = p.responsible_id
        WHERE p.active
          AND ($1 = '' OR p.number LIKE '%' || $1 || '%'
               OR p.title ILIKE '%' || $1 || '%'
               OR c.name ILIKE '%' || $1 || '%')
          AND ($2 = '' OR p.status = $2)
          AND ($3 = '' OR p.type = $3)
        ORDER BY p.created_at DESC
        LIMIT $4 OFFSET $5`

	rows, err := r.pool.Query(ctx, query, filter.Search, filter.Status, filter.Type, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var processes []domain.Process
	for rows.Next() {
		var process domain.Process
		if err := rows.Scan(
			&process.ID,
			&process.Number,
			&process.Title,
			&process.Description,
			&process.Type,
			&process.Status,
			&process.Court,
			&process.Judge,
			&process.OpposingParty,
			&process.Value,
			&process.StartDate,
			&process.EndDate,
			&process.ClientID,
			&process.ResponsibleID,
			&process.Active,
			&process.CreatedAt,
			&process.UpdatedAt,
			&process.ClientName,
			&process.ClientDocument,
			&process.ResponsibleName,
			&process.TaskCount,
			&process.AudienceCount,
			&process.DeadlineCount,
		); err != nil {
			return nil, 0, err
		}
		processes = append(processes, process)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	const countQuery = `
        SELECT COUNT(*)
        FROM processes p
        JOIN clients c ON c.id = p.client_id
        WHERE p.active
          AND ($1 = '' OR p.number LIKE '%' || $1 || '%'
               OR p.title ILIKE '%' || $1 || '%'
               OR c.name ILIKE '%' || $1 || '%')
          AND ($2 = '' OR p.status = $2)
          AND ($3 = '' OR p.type = $3)`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, filter.Search, filter.Status, filter.Type).Scan(&total); err != nil {
		return nil, 0, err
	}
	return processes, total, nil
}

func (r *processRepository) ListByClient(ctx context.Context, clientID string) ([]domain.Process, error) {
	const query = `
        SELECT id, number, title, description, type, status, court, judge, opposing_party,
               value, start_date, end_date, client_id, responsible_id, active, created_at, updated_at
        FROM processes
        WHERE client_id=$1 AND active
        ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var processes []domain.Process
	for rows.Next() {
		var process domain.Process
		if err := rows.Scan(
			&process.ID,
			&process.Number,
			&process.Title,
			&process.Description,
			&process.Type,
			&process.Status,
			&process.Court,
			&process.Judge,
			&process.OpposingParty,
			&process.Value,
			&process.StartDate,
			&process.EndDate,
			&process.ClientID,
			&process.ResponsibleID,
			&process.Active,
			&process.CreatedAt,
			&process.UpdatedAt,
		); err != nil {
			return nil, err
		}
		processes = append(processes, process)
	}
	return processes, rows.Err()
}

func (r *processRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `UPDATE processes SET active=FALSE, updated_at=NOW() WHERE id=$1 AND active`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
