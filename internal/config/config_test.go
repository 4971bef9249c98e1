package config

import (
	"field-schedule-service/internal/services"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestGetHelpers(t *testing.T) {
	t.Setenv("FSS_STRING", "  value ")
	t.Setenv("FSS_FLOAT", "-26.2041")
	t.Setenv("FSS_INT", "12")
	t.Setenv("FSS_DURATION", "15m")
	t.Setenv("FSS_BAD", "nope")

	assert.Equal(t, "value", Get("FSS_STRING", "x"))
	assert.Equal(t, "fallback", Get("FSS_MISSING", "fallback"))

	f, err := GetFloat("FSS_FLOAT", 0)
	require.NoError(t, err)
	assert.InDelta(t, -26.2041, f, 1e-12)

	n, err := GetInt("FSS_INT", 0)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	d, err := GetDuration("FSS_DURATION", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, d)

	d, err = GetDuration("FSS_MISSING", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)

	_, err = GetFloat("FSS_BAD", 0)
	assert.Error(t, err)
	_, err = GetInt("FSS_BAD", 0)
	assert.Error(t, err)
	_, err = GetDuration("FSS_BAD", 0)
	assert.Error(t, err)
}

func TestLoadCostPolicyDefaults(t *testing.T) {
	p, err := LoadCostPolicy("")
	require.NoError(t, err)
	assert.Equal(t, services.DefaultCostPolicy(), p)
}

func TestLoadCostPolicyPartialOverride(t *testing.T) {
	path := writeFile(t, "window_miss_penalty: 90\nrain_penalty: 10\n")

	p, err := LoadCostPolicy(path)
	require.NoError(t, err)

	want := services.DefaultCostPolicy()
	want.WindowMissPenalty = 90
	want.RainPenalty = 10
	assert.Equal(t, want, p)
}

func TestLoadCostPolicyEmptyFile(t *testing.T) {
	p, err := LoadCostPolicy(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, services.DefaultCostPolicy(), p)
}

func TestLoadCostPolicyRejects(t *testing.T) {
	_, err := LoadCostPolicy(writeFile(t, "priority_bonus: -1\n"))
	assert.Error(t, err)

	_, err = LoadCostPolicy(writeFile(t, "unknown_knob: 3\n"))
	assert.Error(t, err)

	_, err = LoadCostPolicy(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
