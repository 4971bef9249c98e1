package repositories

import (
	"context"
	"field-schedule-service/internal/domain"
	"fmt"
)

// In-memory JobRepository used when no database is configured.
// The job list is fixed at construction.
type MemoryJobRepository struct {
	jobs []domain.Job
}

func NewMemoryJobRepository(jobs []domain.Job) *MemoryJobRepository {
	return &MemoryJobRepository{jobs: append([]domain.Job(nil), jobs...)}
}

// NewMemoryJobRepositoryFromFile loads a JSON seed file into memory.
func NewMemoryJobRepositoryFromFile(jsonPath string) (*MemoryJobRepository, error) {
	jobs, err := LoadSeedFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("memory job repository: %w", err)
	}
	return NewMemoryJobRepository(jobs), nil
}

// Return a copy of the stored jobs in insertion order.
func (m *MemoryJobRepository) ListJobs(ctx context.Context) ([]domain.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return append([]domain.Job(nil), m.jobs...), nil
}
