package service

import (
	"context"
	"time"

	"bizops-dashboard/internal/repository"

	"github.com/go-redis/redis/v8"
)

// Health statuses.
const (
	StatusOK       = "ok"
	StatusDegraded = "degraded"
	StatusError    = "error"
	StatusDisabled = "disabled"
)

// HealthReport is the body of GET /api/health.
type HealthReport struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Cache     string    `json:"cache"`
	Timestamp time.Time `json:"timestamp"`
}

// Healthy reports whether the database is reachable.
func (h *HealthReport) Healthy() bool {
	return h.Database == StatusOK
}

type HealthService interface {
	Check(ctx context.Context) *HealthReport
}

type healthService struct {
	store *repository.Store
	rdb   *redis.Client
}

// NewHealthService checks the store and, when rdb is not nil, Redis.
func NewHealthService(store *repository.Store, rdb *redis.Client) HealthService {
	return &healthService{store: store, rdb: rdb}
}

func (s *healthService) Check(ctx context.Context) *HealthReport {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	report := &HealthReport{
		Status:    StatusOK,
		Database:  StatusOK,
		Cache:     StatusDisabled,
		Timestamp: time.Now().UTC(),
	}
	if err := s.store.Ping(ctx); err != nil {
		report.Database = StatusError
		report.Status = StatusError
	}
	if s.rdb != nil {
		report.Cache = StatusOK
		if err := s.rdb.Ping(ctx).Err(); err != nil {
			report.Cache = StatusError
			if report.Status == StatusOK {
				report.Status = StatusDegraded
			}
		}
	}
	return report
}
