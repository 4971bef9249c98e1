package services

import (
	"field-schedule-service/internal/domain"
	"fmt"
)

const DefaultStartTime = "08:00"

// Optimizer turns a job list into a timed single-vehicle route.
// It holds no per-call state and is safe for concurrent use.
type Optimizer struct {
	Policy   CostPolicy
	Strategy SequencingStrategy
}

func NewOptimizer(policy CostPolicy, strategy SequencingStrategy) *Optimizer {
	if strategy == nil {
		strategy = GreedyStrategy{}
	}
	return &Optimizer{Policy: policy, Strategy: strategy}
}

// Optimize runs the default greedy optimizer with the default cost policy.
func Optimize(jobs []domain.Job, startLat, startLng float64, startTime string) (*domain.ScheduleResult, error) {
	return NewOptimizer(DefaultCostPolicy(), GreedyStrategy{}).Optimize(jobs, startLat, startLng, startTime)
}

// Optimize sequences jobs from the start location and time and computes the
// schedule. An empty startTime means DefaultStartTime. A malformed start time
// or window bound aborts the run with domain.ErrInvalidTimeFormat.
func (o *Optimizer) Optimize(
	jobs []domain.Job,
	startLat float64,
	startLng float64,
	startTime string,
) (*domain.ScheduleResult, error) {
	if startTime == "" {
		startTime = DefaultStartTime
	}

	start, err := domain.ParseClock(startTime)
	if err != nil {
		return nil, fmt.Errorf("optimize: start time: %w", err)
	}

	stops := make([]Stop, 0, len(jobs))
	for _, j := range jobs {
		s, err := NewStop(j)
		if err != nil {
			return nil, fmt.Errorf("optimize: %w", err)
		}
		stops = append(stops, s)
	}

	strategy := o.Strategy
	if strategy == nil {
		strategy = GreedyStrategy{}
	}

	p := &Problem{
		Start:     domain.Coordinates{Lat: startLat, Lng: startLng},
		StartTime: start,
		Stops:     stops,
		Policy:    o.Policy,
	}

	order := strategy.Sequence(p)
	if err := checkPermutation(order, len(stops)); err != nil {
		return nil, fmt.Errorf("optimize: strategy %s: %w", strategy.Name(), err)
	}

	return buildSchedule(p, order), nil
}

// buildSchedule walks the order and stamps travel, start and end on each job.
func buildSchedule(p *Problem, order []int) *domain.ScheduleResult {
	route := make([]domain.ScheduledJob, 0, len(order))
	cur := p.Start
	now := p.StartTime
	totalTravel := 0.0

	for _, idx := range order {
		job := p.Stops[idx].Job
		travel := TravelMinutes(cur, job.Location())
		startAt := now + travel
		endAt := startAt + job.DurationMinutes

		route = append(route, domain.ScheduledJob{
			Job:            job,
			ScheduledStart: domain.FormatClock(startAt),
			ScheduledEnd:   domain.FormatClock(endAt),
			TravelMinutes:  travel,
		})

		totalTravel += travel
		now = endAt
		cur = job.Location()
	}

	totalWork := 0.0
	for _, s := range p.Stops {
		totalWork += s.Job.DurationMinutes
	}

	return &domain.ScheduleResult{
		Route:              route,
		TotalTravelMinutes: totalTravel,
		TotalWorkMinutes:   totalWork,
		TotalMinutes:       totalTravel + totalWork,
	}
}

func checkPermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("returned %d stops, want %d", len(order), n)
	}
	seen := make([]bool, n)
	for _, idx := range order {
		if idx < 0 || idx >= n {
			return fmt.Errorf("stop index %d out of range", idx)
		}
		if seen[idx] {
			return fmt.Errorf("stop index %d repeated", idx)
		}
		seen[idx] = true
	}
	return nil
}
