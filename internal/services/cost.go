package services

import (
	"field-schedule-service/internal/domain"
	"fmt"
	"math"
)

// CostPolicy holds the tuning knobs of the candidate scoring heuristic.
// All values are expressed in "travel minute" equivalents.
type CostPolicy struct {
	// Multiplier applied to minutes spent waiting for a window to open.
	WaitMultiplier float64 `yaml:"wait_multiplier" json:"wait_multiplier"`
	// Flat penalty when arrival is after the window end.
	WindowMissPenalty float64 `yaml:"window_miss_penalty" json:"window_miss_penalty"`
	// Penalty at rain probability 1.0, scaled linearly.
	RainPenalty float64 `yaml:"rain_penalty" json:"rain_penalty"`
	// Irradiance below this reference (W/m²) is penalized.
	IrradianceReference   float64 `yaml:"irradiance_reference" json:"irradiance_reference"`
	IrradianceCoefficient float64 `yaml:"irradiance_coefficient" json:"irradiance_coefficient"`
	// Bonus subtracted per SLA priority point.
	PriorityBonus float64 `yaml:"priority_bonus" json:"priority_bonus"`
}

func DefaultCostPolicy() CostPolicy {
	return CostPolicy{
		WaitMultiplier:        0.5,
		WindowMissPenalty:     60,
		RainPenalty:           30,
		IrradianceReference:   500,
		IrradianceCoefficient: 0.05,
		PriorityBonus:         5,
	}
}

func (p CostPolicy) Validate() error {
	knobs := []struct {
		name string
		v    float64
	}{
		{"wait_multiplier", p.WaitMultiplier},
		{"window_miss_penalty", p.WindowMissPenalty},
		{"rain_penalty", p.RainPenalty},
		{"irradiance_reference", p.IrradianceReference},
		{"irradiance_coefficient", p.IrradianceCoefficient},
		{"priority_bonus", p.PriorityBonus},
	}
	for _, k := range knobs {
		if k.v < 0 || math.IsNaN(k.v) || math.IsInf(k.v, 0) {
			return fmt.Errorf("cost policy: %s must be a finite value >= 0, got %v", k.name, k.v)
		}
	}
	return nil
}

// Stop is a job prepared for scoring: its window bounds are parsed once
// so that scoring itself cannot fail.
type Stop struct {
	Job         domain.Job
	windowStart float64
	windowEnd   float64
	hasWindow   bool
}

func NewStop(job domain.Job) (Stop, error) {
	s := Stop{Job: job}
	if w := job.PreferredWindow; w != nil {
		start, err := domain.ParseClock(w.Start)
		if err != nil {
			return Stop{}, fmt.Errorf("job %q window start: %w", job.ID, err)
		}
		end, err := domain.ParseClock(w.End)
		if err != nil {
			return Stop{}, fmt.Errorf("job %q window end: %w", job.ID, err)
		}
		s.windowStart, s.windowEnd, s.hasWindow = start, end, true
	}
	return s, nil
}

// Score rates visiting the stop next from the given position and clock time.
// Lower is better. The result may be negative and is only meaningful relative
// to other candidates scored from the same state.
func (p CostPolicy) Score(from domain.Coordinates, now float64, s Stop) float64 {
	travel := TravelMinutes(from, s.Job.Location())
	arrival := now + travel

	score := travel

	if s.hasWindow {
		if arrival < s.windowStart {
			score += (s.windowStart - arrival) * p.WaitMultiplier
		} else if arrival > s.windowEnd {
			score += p.WindowMissPenalty
		}
	}

	if s.Job.RainProbability != nil {
		score += *s.Job.RainProbability * p.RainPenalty
	}

	if s.Job.Irradiance != nil {
		score += math.Max(0, p.IrradianceReference-*s.Job.Irradiance) * p.IrradianceCoefficient
	}

	score -= float64(s.Job.SLAPriority) * p.PriorityBonus

	return score
}
