package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/legal-case-service/internal/domain"
	"github.com/spec-kit/legal-case-service/internal/persistence"
	"github.com/spec-kit/legal-case-service/internal/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 60 * time.Second
)

// DashboardService aggregates workload counts, caching them briefly in Redis.
type DashboardService struct {
	dashboard repository.DashboardRepository
	redis     *persistence.Redis
	logger    *zap.Logger
}

// NewDashboardService constructs the service.
func NewDashboardService(dashboard repository.DashboardRepository, redis *persistence.Redis, logger *zap.Logger) *DashboardService {
	return &DashboardService{dashboard: dashboard, redis: redis, logger: logger}
}

// Stats returns dashboard counters. Cache failures fall through to the
// database.
func (s *DashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	if s.redis != nil && s.redis.Client != nil {
		cached, err := s.redis.Client.Get(ctx, statsCacheKey).Bytes()
		if err == nil {
			var stats domain.DashboardStats
			if err := json.Unmarshal(cached, &stats); err == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.dashboard.Stats(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil && s.redis.Client != nil {
		if encoded, err := json.Marshal(stats); err == nil {
			if err := s.redis.Client.Set(ctx, statsCacheKey, encoded, statsCacheTTL).Err(); err != nil {
				s.logger.Debug("dashboard stats cache write failed", zap.Error(err))
			}
		}
	}
	return stats, nil
}
