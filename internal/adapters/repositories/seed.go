package repositories

import (
	"encoding/json"
	"field-schedule-service/internal/domain"
	"fmt"
	"os"
	"strings"
)

type windowSeed struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type JobSeed struct {
	ID              string      `json:"id"`
	Name            string      `json:"name"`
	Lat             float64     `json:"lat"`
	Lng             float64     `json:"lng"`
	DurationMinutes float64     `json:"duration_minutes"`
	PreferredWindow *windowSeed `json:"preferred_window,omitempty"`
	SLAPriority     int         `json:"sla_priority"`
	RainProbability *float64    `json:"rain_probability,omitempty"`
	Irradiance      *float64    `json:"irradiance,omitempty"`
}

func (s JobSeed) toDomain() domain.Job {
	j := domain.Job{
		ID:              strings.TrimSpace(s.ID),
		Name:            strings.TrimSpace(s.Name),
		Lat:             s.Lat,
		Lng:             s.Lng,
		DurationMinutes: s.DurationMinutes,
		SLAPriority:     s.SLAPriority,
		RainProbability: s.RainProbability,
		Irradiance:      s.Irradiance,
	}
	if s.PreferredWindow != nil {
		j.PreferredWindow = &domain.TimeWindow{Start: s.PreferredWindow.Start, End: s.PreferredWindow.End}
	}
	return j
}

// LoadSeedFile reads and validates a JSON job list.
// File order is preserved; it becomes the jobs' sort order.
func LoadSeedFile(jsonPath string) ([]domain.Job, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", jsonPath, err)
	}

	var data []JobSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return nil, fmt.Errorf("load seed: parse json: %w", err)
	}

	jobs := make([]domain.Job, 0, len(data))
	for _, item := range data {
		jobs = append(jobs, item.toDomain())
	}

	if err := domain.ValidateJobs(jobs); err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}

	return jobs, nil
}
