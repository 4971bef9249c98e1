//go:build postgres_integration

package repositories

import (
	"context"
	"field-schedule-service/internal/platform/db"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresSeedAndList(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	conn, err := db.Open(dsn)
	require.NoError(t, err)
	defer conn.Close()

	ctx := t.Context()
	require.NoError(t, InitSchema(ctx, conn))
	require.NoError(t, SeedFromJSON(ctx, conn, "../../../data/seeds/jobs.json"))

	repo := NewPostgresJobRepository(conn)
	jobs, err := repo.ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 3)

	assert.Equal(t, "J1", jobs[0].ID)
	require.NotNil(t, jobs[0].PreferredWindow)
	assert.Equal(t, "13:00", jobs[0].PreferredWindow.End)
	require.NotNil(t, jobs[0].Irradiance)
	assert.InDelta(t, 650, *jobs[0].Irradiance, 1e-9)

	assert.InDelta(t, 120, jobs[0].DurationMinutes, 1e-9)
}

func TestPostgresReseedDropsStaleJobs(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	conn, err := db.Open(dsn)
	require.NoError(t, err)
	defer conn.Close()

	ctx := t.Context()
	require.NoError(t, InitSchema(ctx, conn))
	require.NoError(t, SeedFromJSON(ctx, conn, "../../../data/seeds/jobs.json"))
	t.Cleanup(func() { _ = SeedFromJSON(context.Background(), conn, "../../../data/seeds/jobs.json") })

	smaller := writeSeed(t, `[{"id":"J2","name":"Office Park","lat":-26.1457,"lng":28.041,"duration_minutes":45.5,"sla_priority":3}]`)
	require.NoError(t, SeedFromJSON(ctx, conn, smaller))

	jobs, err := NewPostgresJobRepository(conn).ListJobs(ctx)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "J2", jobs[0].ID)
	assert.InDelta(t, 45.5, jobs[0].DurationMinutes, 1e-9)
}
