package dto

import "field-schedule-service/internal/domain"

type WindowDTO struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type JobDTO struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Lat             float64    `json:"lat"`
	Lng             float64    `json:"lng"`
	DurationMinutes float64    `json:"duration_minutes"`
	PreferredWindow *WindowDTO `json:"preferred_window,omitempty"`
	SLAPriority     int        `json:"sla_priority"`
	RainProbability *float64   `json:"rain_probability,omitempty"`
	Irradiance      *float64   `json:"irradiance,omitempty"`
}

type ListJobsResponse struct {
	Jobs []JobDTO `json:"jobs"`
}

func JobFromDomain(j domain.Job) JobDTO {
	out := JobDTO{
		ID:              j.ID,
		Name:            j.Name,
		Lat:             j.Lat,
		Lng:             j.Lng,
		DurationMinutes: j.DurationMinutes,
		SLAPriority:     j.SLAPriority,
		RainProbability: j.RainProbability,
		Irradiance:      j.Irradiance,
	}
	if j.PreferredWindow != nil {
		out.PreferredWindow = &WindowDTO{Start: j.PreferredWindow.Start, End: j.PreferredWindow.End}
	}
	return out
}

func (j JobDTO) ToDomain() domain.Job {
	out := domain.Job{
		ID:              j.ID,
		Name:            j.Name,
		Lat:             j.Lat,
		Lng:             j.Lng,
		DurationMinutes: j.DurationMinutes,
		SLAPriority:     j.SLAPriority,
		RainProbability: j.RainProbability,
		Irradiance:      j.Irradiance,
	}
	if j.PreferredWindow != nil {
		out.PreferredWindow = &domain.TimeWindow{Start: j.PreferredWindow.Start, End: j.PreferredWindow.End}
	}
	return out
}
