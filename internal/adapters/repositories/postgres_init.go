package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createJobsQuery := `
	CREATE TABLE IF NOT EXISTS jobs (
		job_id TEXT PRIMARY KEY,
		sort_order INTEGER NOT NULL DEFAULT 0,
		name TEXT NOT NULL DEFAULT '',
		lat DOUBLE PRECISION NOT NULL,
		lng DOUBLE PRECISION NOT NULL,
		duration_minutes DOUBLE PRECISION NOT NULL CHECK (duration_minutes >= 0),
		window_start TEXT,
		window_end TEXT,
		sla_priority INTEGER NOT NULL CHECK (sla_priority BETWEEN 1 AND 5),
		rain_probability DOUBLE PRECISION,
		irradiance DOUBLE PRECISION
	);
	`

	// Tables created before fractional durations stored whole minutes.
	alterDurationQuery := `
	ALTER TABLE jobs ALTER COLUMN duration_minutes TYPE DOUBLE PRECISION;
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_jobs_sort_order
    ON jobs(sort_order, job_id);
	`

	statements := []string{
		createJobsQuery,
		alterDurationQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the jobs table contents with a JSON file: rows are upserted by id
// and rows missing from the file are deleted, all in one transaction.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) error {
	if db == nil {
		return errors.New("seed jobs: DB is nil")
	}

	jobs, err := LoadSeedFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed jobs: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed jobs: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT INTO jobs (
		job_id,
		sort_order,
		name,
		lat,
		lng,
		duration_minutes,
		window_start,
		window_end,
		sla_priority,
		rain_probability,
		irradiance
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	ON CONFLICT (job_id) DO UPDATE
	SET sort_order = EXCLUDED.sort_order,
		name = EXCLUDED.name,
		lat = EXCLUDED.lat,
		lng = EXCLUDED.lng,
		duration_minutes = EXCLUDED.duration_minutes,
		window_start = EXCLUDED.window_start,
		window_end = EXCLUDED.window_end,
		sla_priority = EXCLUDED.sla_priority,
		rain_probability = EXCLUDED.rain_probability,
		irradiance = EXCLUDED.irradiance;
	`
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM jobs WHERE NOT (job_id = ANY($1))`, ids); err != nil {
		return fmt.Errorf("seed jobs: delete stale rows: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed jobs: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, j := range jobs {
		var windowStart, windowEnd sql.NullString
		if j.PreferredWindow != nil {
			windowStart = sql.NullString{String: j.PreferredWindow.Start, Valid: true}
			windowEnd = sql.NullString{String: j.PreferredWindow.End, Valid: true}
		}

		if _, err := stmt.ExecContext(
			ctx,
			j.ID,
			i+1,
			j.Name,
			j.Lat,
			j.Lng,
			j.DurationMinutes,
			windowStart,
			windowEnd,
			j.SLAPriority,
			nullFloat(j.RainProbability),
			nullFloat(j.Irradiance),
		); err != nil {
			return fmt.Errorf("seed jobs: insert job_id=%q: %w", j.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed jobs: commit tx: %w", err)
	}

	return nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
