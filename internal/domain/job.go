package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	ErrInvalidJob        = errors.New("invalid job")
)

// Soft time constraint: arrival inside [Start, End] carries no penalty.
// Bounds are HH:MM clock strings on the same calendar day.
type TimeWindow struct {
	Start string
	End   string
}

// Represents a single on-site job to be visited during the day.
// Jobs are treated as immutable for the duration of one optimization run.
type Job struct {
	ID              string
	Name            string
	Lat             float64
	Lng             float64
	DurationMinutes float64
	PreferredWindow *TimeWindow
	SLAPriority     int
	RainProbability *float64
	Irradiance      *float64
}

func (j Job) Location() Coordinates { return Coordinates{Lat: j.Lat, Lng: j.Lng} }

// Validate checks caller input at the service boundary.
// The optimizer itself assumes pre-validated jobs.
func (j Job) Validate() error {
	if strings.TrimSpace(j.ID) == "" {
		return fmt.Errorf("%w: id must be non-empty", ErrInvalidJob)
	}

	if err := j.Location().Validate(); err != nil {
		return fmt.Errorf("job %q: %w", j.ID, err)
	}

	if j.DurationMinutes < 0 || math.IsNaN(j.DurationMinutes) || math.IsInf(j.DurationMinutes, 0) {
		return fmt.Errorf("%w: job %q duration_minutes must be a finite value >= 0, got %v", ErrInvalidJob, j.ID, j.DurationMinutes)
	}

	if j.SLAPriority < 1 || j.SLAPriority > 5 {
		return fmt.Errorf("%w: job %q sla_priority must be between 1 and 5, got %d", ErrInvalidJob, j.ID, j.SLAPriority)
	}

	if j.RainProbability != nil && (*j.RainProbability < 0 || *j.RainProbability > 1) {
		return fmt.Errorf("%w: job %q rain_probability must be between 0 and 1", ErrInvalidJob, j.ID)
	}

	if j.Irradiance != nil && *j.Irradiance < 0 {
		return fmt.Errorf("%w: job %q irradiance must be >= 0", ErrInvalidJob, j.ID)
	}

	if w := j.PreferredWindow; w != nil {
		if _, err := ParseClock(w.Start); err != nil {
			return fmt.Errorf("job %q window start: %w", j.ID, err)
		}
		if _, err := ParseClock(w.End); err != nil {
			return fmt.Errorf("job %q window end: %w", j.ID, err)
		}
	}

	return nil
}

// ValidateJobs validates each job and rejects duplicate ids.
func ValidateJobs(jobs []Job) error {
	seen := make(map[string]struct{}, len(jobs))
	for i, j := range jobs {
		if err := j.Validate(); err != nil {
			return fmt.Errorf("validate jobs: index %d: %w", i, err)
		}

		if _, ok := seen[j.ID]; ok {
			return fmt.Errorf("validate jobs: %w: duplicate id %q", ErrInvalidJob, j.ID)
		}
		seen[j.ID] = struct{}{}
	}

	return nil
}
