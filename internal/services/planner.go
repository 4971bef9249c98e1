package services

import (
	"context"
	"errors"
	"field-schedule-service/internal/domain"
	"field-schedule-service/internal/metrics"
	"field-schedule-service/internal/platform/obs"
	"field-schedule-service/internal/ports"
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/singleflight"
)

type PlanRequest struct {
	StartLat  float64
	StartLng  float64
	StartTime string
	Strategy  string
}

// Planner orchestrates job loading, caching and optimization for callers.
// Identical concurrent requests share one optimization run.
type Planner struct {
	Repo   ports.JobRepository
	Cache  ports.ScheduleCache
	Policy CostPolicy

	group singleflight.Group
}

func NewPlanner(repo ports.JobRepository, cache ports.ScheduleCache, policy CostPolicy) *Planner {
	return &Planner{Repo: repo, Cache: cache, Policy: policy}
}

// PlanDay schedules every job held by the repository.
func (p *Planner) PlanDay(ctx context.Context, req PlanRequest) (_ *domain.ScheduleResult, err error) {
	defer obs.Time(ctx, "planner.PlanDay")(&err)

	if p.Repo == nil {
		return nil, errors.New("plan day: job repository is nil")
	}

	jobs, err := p.Repo.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan day: list jobs: %w", err)
	}

	res, err := p.Schedule(ctx, req, jobs)
	if err != nil {
		return nil, fmt.Errorf("plan day: %w", err)
	}

	return res, nil
}

// Schedule validates the input, consults the cache and optimizes on a miss.
// Cache failures are logged and never fail the request.
func (p *Planner) Schedule(ctx context.Context, req PlanRequest, jobs []domain.Job) (_ *domain.ScheduleResult, err error) {
	defer obs.Time(ctx, "planner.Schedule")(&err)

	start := domain.Coordinates{Lat: req.StartLat, Lng: req.StartLng}
	if err := start.Validate(); err != nil {
		return nil, fmt.Errorf("schedule: start location: %w", err)
	}

	if req.StartTime != "" {
		if _, err := domain.ParseClock(req.StartTime); err != nil {
			return nil, fmt.Errorf("schedule: start time: %w", err)
		}
	}

	if err := domain.ValidateJobs(jobs); err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	strategy, err := StrategyByName(req.Strategy)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	key, err := ScheduleKey(req, strategy.Name(), p.Policy, jobs)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	if p.Cache != nil {
		cached, ok, err := p.Cache.Get(ctx, key)
		switch {
		case err != nil:
			metrics.ScheduleCacheLookups.WithLabelValues("error").Inc()
			log.Printf("schedule cache read failed: key=%s err=%v", key, err)
		case ok:
			metrics.ScheduleCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.ScheduleCacheLookups.WithLabelValues("miss").Inc()
		}
	}

	v, err, _ := p.group.Do(key, func() (any, error) {
		began := time.Now()
		res, err := NewOptimizer(p.Policy, strategy).Optimize(jobs, req.StartLat, req.StartLng, req.StartTime)
		if err != nil {
			return nil, err
		}
		metrics.OptimizeDuration.WithLabelValues(strategy.Name()).Observe(time.Since(began).Seconds())
		metrics.OptimizedJobs.WithLabelValues(strategy.Name()).Observe(float64(len(jobs)))

		if p.Cache != nil {
			if err := p.Cache.Put(ctx, key, res); err != nil {
				log.Printf("schedule cache write failed: key=%s err=%v", key, err)
			}
		}
		return res, nil
	})
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}

	return v.(*domain.ScheduleResult), nil
}
