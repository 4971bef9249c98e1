package api

import (
	"field-schedule-service/internal/api/handlers"
	"field-schedule-service/internal/metrics"
	"field-schedule-service/internal/ports"
	"field-schedule-service/internal/services"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"
)

const (
	pathHealth       = "/health"
	pathJobs         = "/jobs"
	pathSchedules    = "/schedules"
	pathDemoSchedule = "/schedules/demo"
	pathPlans        = "/plans"
	pathPolicy       = "/policy"
	pathMetrics      = "/metrics"
)

var knownPaths = map[string]bool{
	pathHealth:       true,
	pathJobs:         true,
	pathSchedules:    true,
	pathDemoSchedule: true,
	pathPlans:        true,
	pathPolicy:       true,
	pathMetrics:      true,
}

// routeLabel keeps metric label cardinality bounded to the registered routes.
func routeLabel(path string) string {
	if knownPaths[path] {
		return path
	}
	return "other"
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.JobRepository, planner *services.Planner, defaults handlers.StartDefaults, limiter *rate.Limiter) http.Handler {
	mux := http.NewServeMux()

	jobHandler := &handlers.JobHandler{Repo: repo}
	scheduleHandler := &handlers.ScheduleHandler{
		Planner:  planner,
		Defaults: defaults,
	}

	mux.HandleFunc(pathHealth, handlers.Health)
	mux.HandleFunc(pathJobs, jobHandler.List)
	mux.HandleFunc(pathSchedules, scheduleHandler.Create)
	mux.HandleFunc(pathDemoSchedule, scheduleHandler.Demo)
	mux.HandleFunc(pathPlans, scheduleHandler.Plan)
	mux.HandleFunc(pathPolicy, scheduleHandler.Policy)
	mux.Handle(pathMetrics, promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(rateLimitMiddleware(limiter, metricsMiddleware(loggingMiddleware(mux))))
}
