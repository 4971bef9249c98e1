package handlers

import (
	"field-schedule-service/internal/api/dto"
	"field-schedule-service/internal/domain"
	"field-schedule-service/internal/services"
	"net/http"
	"strings"
)

// StartDefaults is where and when the working day begins when a request omits it.
type StartDefaults struct {
	Location  domain.Coordinates
	StartTime string
}

type ScheduleHandler struct {
	Planner  *services.Planner
	Defaults StartDefaults
}

// Create optimizes the job list carried in the request body.
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.ScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.StartLat == nil || req.StartLng == nil {
		writeError(w, r, http.StatusBadRequest, "start_lat and start_lng are required")
		return
	}

	jobs := make([]domain.Job, 0, len(req.Jobs))
	for _, j := range req.Jobs {
		jobs = append(jobs, j.ToDomain())
	}

	svcReq := services.PlanRequest{
		StartLat:  *req.StartLat,
		StartLng:  *req.StartLng,
		StartTime: strings.TrimSpace(req.StartTime),
		Strategy:  req.Strategy,
	}

	res, err := h.Planner.Schedule(r.Context(), svcReq, jobs)
	if err != nil {
		writeServiceError(w, r, "schedule", err)
		return
	}

	writeJSON(w, r, http.StatusOK, scheduleResponse(res, svcReq))
}

// Plan optimizes the stored jobs. Omitted start fields use the configured defaults.
func (h *ScheduleHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req dto.PlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	svcReq := services.PlanRequest{
		StartLat:  h.Defaults.Location.Lat,
		StartLng:  h.Defaults.Location.Lng,
		StartTime: strings.TrimSpace(req.StartTime),
		Strategy:  req.Strategy,
	}
	if req.StartLat != nil {
		svcReq.StartLat = *req.StartLat
	}
	if req.StartLng != nil {
		svcReq.StartLng = *req.StartLng
	}
	if svcReq.StartTime == "" {
		svcReq.StartTime = h.Defaults.StartTime
	}

	res, err := h.Planner.PlanDay(r.Context(), svcReq)
	if err != nil {
		writeServiceError(w, r, "plan day", err)
		return
	}

	writeJSON(w, r, http.StatusOK, scheduleResponse(res, svcReq))
}

// Demo schedules the built-in sample day from the sample depot.
func (h *ScheduleHandler) Demo(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	svcReq := services.PlanRequest{
		StartLat:  services.DemoStart.Lat,
		StartLng:  services.DemoStart.Lng,
		StartTime: services.DefaultStartTime,
		Strategy:  r.URL.Query().Get("strategy"),
	}

	res, err := h.Planner.Schedule(r.Context(), svcReq, services.DemoJobs())
	if err != nil {
		writeServiceError(w, r, "demo schedule", err)
		return
	}

	writeJSON(w, r, http.StatusOK, scheduleResponse(res, svcReq))
}

// Policy reports the cost weights the planner scores with.
func (h *ScheduleHandler) Policy(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	writeJSON(w, r, http.StatusOK, h.Planner.Policy)
}

func scheduleResponse(res *domain.ScheduleResult, req services.PlanRequest) dto.ScheduleResponse {
	startTime := req.StartTime
	if startTime == "" {
		startTime = services.DefaultStartTime
	}

	// The planner already accepted the name, so the lookup cannot fail here.
	strategy := services.StrategyGreedy
	if s, err := services.StrategyByName(req.Strategy); err == nil {
		strategy = s.Name()
	}

	return dto.ScheduleFromDomain(res, startTime, strategy)
}
