package domain

// A Job placed on the route with its computed times.
// Built once when the job is appended to the route and never mutated afterwards.
type ScheduledJob struct {
	Job
	ScheduledStart string
	ScheduledEnd   string
	TravelMinutes  float64
}

// Represents the planned single-vehicle day.
// Route holds every input job exactly once, in visiting order.
type ScheduleResult struct {
	Route              []ScheduledJob
	TotalTravelMinutes float64
	TotalWorkMinutes   float64
	TotalMinutes       float64
}
