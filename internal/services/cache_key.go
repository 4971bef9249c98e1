package services

import (
	"encoding/json"
	"field-schedule-service/internal/domain"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

type keyMaterial struct {
	StartLat  float64
	StartLng  float64
	StartTime string
	Strategy  string
	Policy    CostPolicy
	Jobs      []domain.Job
}

// ScheduleKey derives a stable cache key for one optimization input.
// Job order is part of the key because it decides greedy ties.
func ScheduleKey(req PlanRequest, strategy string, policy CostPolicy, jobs []domain.Job) (string, error) {
	startTime := req.StartTime
	if startTime == "" {
		startTime = DefaultStartTime
	}

	b, err := json.Marshal(keyMaterial{
		StartLat:  req.StartLat,
		StartLng:  req.StartLng,
		StartTime: startTime,
		Strategy:  strategy,
		Policy:    policy,
		Jobs:      jobs,
	})
	if err != nil {
		return "", fmt.Errorf("schedule key: marshal: %w", err)
	}

	return strconv.FormatUint(xxhash.Sum64(b), 16), nil
}
