package repositories

import (
	"context"
	"database/sql"
	"errors"
	"field-schedule-service/internal/domain"
	"field-schedule-service/internal/platform/obs"
	"fmt"
)

// Postgres-backed implementation of the JobRepository port.
type PostgresJobRepository struct{ DB *sql.DB }

func NewPostgresJobRepository(db *sql.DB) *PostgresJobRepository {
	return &PostgresJobRepository{DB: db}
}

// Return all jobs stored in the database in seed order.
func (s *PostgresJobRepository) ListJobs(ctx context.Context) (_ []domain.Job, err error) {
	defer obs.Time(ctx, "jobs.repository.ListJobs")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres job repository: DB is nil")
	}

	query := `
	SELECT
		job_id,
		name,
		lat,
		lng,
		duration_minutes,
		window_start,
		window_end,
		sla_priority,
		rain_probability,
		irradiance
	FROM jobs
	ORDER BY sort_order, job_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list jobs: query jobs table: %w", err)
	}
	defer rows.Close()

	jobs := make([]domain.Job, 0, 32)
	for rows.Next() {
		var (
			j                      domain.Job
			windowStart, windowEnd sql.NullString
			rain, irradiance       sql.NullFloat64
		)
		err := rows.Scan(
			&j.ID,
			&j.Name,
			&j.Lat,
			&j.Lng,
			&j.DurationMinutes,
			&windowStart,
			&windowEnd,
			&j.SLAPriority,
			&rain,
			&irradiance,
		)
		if err != nil {
			return nil, fmt.Errorf("list jobs: scan row: %w", err)
		}

		if windowStart.Valid && windowEnd.Valid {
			j.PreferredWindow = &domain.TimeWindow{Start: windowStart.String, End: windowEnd.String}
		}
		if rain.Valid {
			v := rain.Float64
			j.RainProbability = &v
		}
		if irradiance.Valid {
			v := irradiance.Float64
			j.Irradiance = &v
		}

		jobs = append(jobs, j)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list jobs: row iteration: %w", err)
	}

	return jobs, nil
}
