package handlers

import (
	"field-schedule-service/internal/api/dto"
	"field-schedule-service/internal/ports"
	"log"
	"net/http"
)

type JobHandler struct {
	Repo ports.JobRepository
}

// List returns the stored jobs in their scheduling order.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	jobs, err := h.Repo.ListJobs(r.Context())
	if err != nil {
		log.Printf("list jobs failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListJobsResponse{Jobs: make([]dto.JobDTO, 0, len(jobs))}
	for _, j := range jobs {
		res.Jobs = append(res.Jobs, dto.JobFromDomain(j))
	}

	writeJSON(w, r, http.StatusOK, res)
}
