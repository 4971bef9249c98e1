package ports

import (
	"context"
	"field-schedule-service/internal/domain"
)

// Port: a boundary for retrieving the day's jobs from a data source.
type JobRepository interface {
	// Retrieve all jobs in a stable order; the order decides greedy ties.
	ListJobs(ctx context.Context) ([]domain.Job, error)
}
