package dto

import "field-schedule-service/internal/domain"

// ScheduleRequest optimizes an inline job list.
type ScheduleRequest struct {
	StartLat  *float64 `json:"start_lat"`
	StartLng  *float64 `json:"start_lng"`
	StartTime string   `json:"start_time"`
	Strategy  string   `json:"strategy"`
	Jobs      []JobDTO `json:"jobs"`
}

// PlanRequest optimizes the stored job list; omitted fields use server defaults.
type PlanRequest struct {
	StartLat  *float64 `json:"start_lat"`
	StartLng  *float64 `json:"start_lng"`
	StartTime string   `json:"start_time"`
	Strategy  string   `json:"strategy"`
}

type ScheduledJobResponse struct {
	Seq int `json:"seq"`
	JobDTO
	ScheduledStart string  `json:"scheduled_start"`
	ScheduledEnd   string  `json:"scheduled_end"`
	TravelMinutes  float64 `json:"travel_minutes"`
}

type ScheduleResponse struct {
	StartTime          string                 `json:"start_time"`
	Strategy           string                 `json:"strategy"`
	Route              []ScheduledJobResponse `json:"route"`
	TotalTravelMinutes float64                `json:"total_travel_minutes"`
	TotalWorkMinutes   float64                `json:"total_work_minutes"`
	TotalMinutes       float64                `json:"total_minutes"`
	TotalTravelLabel   string                 `json:"total_travel_label"`
	TotalWorkLabel     string                 `json:"total_work_label"`
	TotalDayLabel      string                 `json:"total_day_label"`
}

func ScheduleFromDomain(res *domain.ScheduleResult, startTime, strategy string) ScheduleResponse {
	out := ScheduleResponse{
		StartTime:          startTime,
		Strategy:           strategy,
		Route:              make([]ScheduledJobResponse, 0, len(res.Route)),
		TotalTravelMinutes: res.TotalTravelMinutes,
		TotalWorkMinutes:   res.TotalWorkMinutes,
		TotalMinutes:       res.TotalMinutes,
		TotalTravelLabel:   domain.FormatDuration(res.TotalTravelMinutes),
		TotalWorkLabel:     domain.FormatDuration(res.TotalWorkMinutes),
		TotalDayLabel:      domain.FormatDuration(res.TotalMinutes),
	}

	for i, s := range res.Route {
		out.Route = append(out.Route, ScheduledJobResponse{
			Seq:            i + 1,
			JobDTO:         JobFromDomain(s.Job),
			ScheduledStart: s.ScheduledStart,
			ScheduledEnd:   s.ScheduledEnd,
			TravelMinutes:  s.TravelMinutes,
		})
	}

	return out
}
