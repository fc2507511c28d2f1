package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
)

// deleteAcceptedResponse is the 202 body returned when a delete is enqueued.
// Status is the fixed acceptance marker "accepted" — the job itself starts
// out "pending"; poll the location to watch it move.
type deleteAcceptedResponse struct {
	JobID    string `json:"job_id"`
	Status   string `json:"status"`
	Location string `json:"location"`
}

// deleteAddress handles DELETE /addresses/{id}.
// The address is not removed synchronously: the handler verifies it exists,
// schedules the deletion, and hands back a job URL to poll.
func (s *Server) deleteAddress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondServiceError(w, err, "")
		return
	}

	job, err := s.jobs.EnqueueDelete(r.Context(), id)
	if err != nil {
		respondServiceError(w, err, "address not found")
		return
	}

	location := "/jobs/" + job.ID
	w.Header().Set("Location", location)
	respondJSON(w, http.StatusAccepted, deleteAcceptedResponse{
		JobID:    job.ID,
		Status:   "accepted",
		Location: location,
	})
}

// getJob handles GET /jobs/{jobID}.
// A pending job answers 202 with a Retry-After hint; a terminal job answers
// 200. Either way the body is the job's current snapshot.
func (s *Server) getJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.jobs.Get(chi.URLParam(r, "jobID"))
	if err != nil {
		respondServiceError(w, err, "job not found")
		return
	}

	if job.Status == domain.JobPending {
		w.Header().Set("Retry-After", "2")
		respondJSON(w, http.StatusAccepted, job)
		return
	}
	respondJSON(w, http.StatusOK, job)
}
