package ports

import (
	"context"
	"field-schedule-service/internal/domain"
)

// Contract for caching optimization results by input key.
type ScheduleCache interface {
	// Return the cached result and whether the key was present.
	Get(ctx context.Context, key string) (*domain.ScheduleResult, bool, error)
	// Store a result under key.
	Put(ctx context.Context, key string, result *domain.ScheduleResult) error
}
