package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/legal-case-service/internal/domain"
)

// DashboardRepository aggregates counts for the dashboard view.
type DashboardRepository interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
}

type dashboardRepository struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository returns a Postgres-backed implementation.
func NewDashboardRepository(pool *pgxpool.Pool) DashboardRepository {
	return &dashboardRepository{pool: pool}
}

func (r *dashboardRepository) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	const query = `
        SELECT
            (SELECT COUNT(*) FROM clients WHERE active),
            (SELECT COUNT(*) FROM processes WHERE active),
            (SELECT COUNT(*) FROM tasks),
            (SELECT COUNT(*) FROM tasks WHERE status = 'PENDENTE'),
            (SELECT COUNT(*) FROM processes WHERE active AND status = 'ATIVO')`

	var stats domain.DashboardStats
	if err := r.pool.QueryRow(ctx, query).Scan(
		&stats.TotalClients,
		&stats.TotalProcesses,
		&stats.TotalTasks,
		&stats.PendingTasks,
		&stats.ActiveProcesses,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}
