package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-case-service/internal/domain"
)

// ClientFilter narrows client listings.
type ClientFilter struct {
	Search string
	Limit  int
	Offset int
}

// ClientRepository defines persistence access for clients.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	Update(ctx context.Context, client *domain.Client) error
	GetActiveByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context, filter ClientFilter) ([]domain.Client, int, error)
	SoftDelete(ctx context.Context, id string) error
}

type clientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a Postgres-backed implementation.
func NewClientRepository(pool *pgxpool.Pool) ClientRepository {
	return &clientRepository{pool: pool}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	const query = `
        INSERT INTO clients (name, email, phone, document, type, address, city, state, zip_code, notes)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        RETURNING id, active, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.Document,
		client.Type,
		client.Address,
		client.City,
		client.State,
		client.ZipCode,
		client.Notes,
	).Scan(&client.ID, &client.Active, &client.CreatedAt, &client.UpdatedAt)
}

func (r *clientRepository) Update(ctx context.Context, client *domain.Client) error {
	const query = `
        UPDATE clients
        SET name=$1, email=$2, phone=$3, document=$4, type=$5, address=$6,
            city=$7, state=$8, zip_code=$9, notes=$10, updated_at=NOW()
        WHERE id=$11`

	cmd, err := r.pool.Exec(ctx, query,
		client.Name,
		client.Email,
		client.Phone,
		client.Document,
		client.Type,
		client.Address,
		client.City,
		client.State,
		client.ZipCode,
		client.Notes,
		client.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *clientRepository) GetActiveByID(ctx context.Context, id string) (*domain.Client, error) {
	const query = `
        SELECT id, name, email, phone, document, type, address, city, state, zip_code, notes,
               active, created_at, updated_at
        FROM clients WHERE id=$1 AND active`

	var client domain.Client
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&client.ID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Document,
		&client.Type,
		&client.Address,
		&client.City,
		&client.State,
		&client.ZipCode,
		&client.Notes,
		&client.Active,
		&client.CreatedAt,
		&client.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context, filter ClientFilter) ([]domain.Client, int, error) {
	const query = `
        SELECT c.id, c.name, c.email, c.phone, c.document, c.type, c.address, c.city, c.state,
               c.zip_code, c.notes, c.active, c.created_at, c.updated_at,
               (SELECT COUNT(*) FROM processes p WHERE p.client_id = c.id AND p.active) AS process_count
        FROM clients c
        WHERE c.active
          AND ($1 = '' OR c.name ILIKE '%' || $1 || '%'
               OR c.email ILIKE '%' || $1 || '%'
               OR c.document LIKE '%' || $1 || '%')
        ORDER BY c.name ASC
        LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.Document,
			&client.Type,
			&client.Address,
			&client.City,
			&client.State,
			&client.ZipCode,
			&client.Notes,
			&client.Active,
			&client.CreatedAt,
			&client.UpdatedAt,
			&client.ProcessCount,
		); err != nil {
			return nil, 0, err
		}
		clients = append(clients, client)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	const countQuery = `
        SELECT COUNT(*) FROM clients c
        WHERE c.active
          AND ($1 = '' OR c.name ILIKE '%' || $1 || '%'
               OR c.email ILIKE '%' || $1 || '%'
               OR c.document LIKE '%' || $1 || '%')`

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, filter.Search).Scan(&total); err != nil {
		return nil, 0, err
	}
	return clients, total, nil
}

func (r *clientRepository) SoftDelete(ctx context.Context, id string) error {
	const query = `UPDATE clients SET active=FALSE, updated_at=NOW() WHERE id=$1 AND active`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
