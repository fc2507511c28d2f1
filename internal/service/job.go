package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/domain"
	"github.com/Untitled-Cloud-CU/Untitled-storage-rental-location-microservice/internal/repo"
)

// JobService tracks asynchronous address deletions.
//
// Jobs live only in this process: the map is never persisted and never
// evicted, so a long-running process accumulates one small entry per delete.
// Durability and eviction are explicitly out of scope — a restart forgets all
// jobs, and clients are expected to poll reasonably soon after the 202.
//
// The map is shared between request goroutines (enqueue, poll) and the
// background workers (terminal transition), so every access goes through the
// mutex.
type JobService struct {
	repo  repo.AddressRepo
	delay time.Duration

	mu   sync.RWMutex
	jobs map[string]domain.Job
}

// NewJobService constructs a JobService backed by the provided AddressRepo.
// delay is how long a worker waits before actually deleting, simulating a
// slow downstream decommission step; tests pass a few milliseconds.
func NewJobService(r repo.AddressRepo, delay time.Duration) *JobService {
	return &JobService{
		repo:  r,
		delay: delay,
		jobs:  make(map[string]domain.Job),
	}
}

// EnqueueDelete verifies the address exists, records a pending job, and
// schedules the deletion in the background. The returned job is already
// visible to Get.
//
// Returns domain.ErrNotFound — and creates no job — if the address does not
// exist at enqueue time. The deletion itself runs after the configured delay
// and is decoupled from the requesting client: it cannot be cancelled, and
// its outcome is only observable through Get.
func (s *JobService) EnqueueDelete(ctx context.Context, addressID uuid.UUID) (domain.Job, error) {
	if _, err := s.repo.GetByID(ctx, addressID); err != nil {
		return domain.Job{}, fmt.Errorf("service.JobService.EnqueueDelete: %w", err)
	}

	job := domain.Job{
		ID:        uuid.NewString(),
		Status:    domain.JobPending,
		AddressID: addressID,
	}

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.mu.Unlock()

	// The worker must outlive the request: keep the context's values (request
	// id for logging) but detach from its cancellation.
	go s.runDelete(context.WithoutCancel(ctx), job.ID, addressID)

	return job, nil
}

// Get returns a snapshot of a job's current state.
// Returns domain.ErrNotFound for unknown job IDs.
func (s *JobService) Get(jobID string) (domain.Job, error) {
	s.mu.RLock()
	job, ok := s.jobs[jobID]
	s.mu.RUnlock()
	if !ok {
		return domain.Job{}, fmt.Errorf("service.JobService.Get: %w", domain.ErrNotFound)
	}
	return job, nil
}

// runDelete is the background worker for one enqueued deletion. It waits out
// the simulated decommission delay, performs the delete, and records the
// terminal state exactly once.
func (s *JobService) runDelete(ctx context.Context, jobID string, addressID uuid.UUID) {
	time.Sleep(s.delay)

	if _, err := s.repo.Delete(ctx, addressID); err != nil {
		s.finish(jobID, domain.JobFailed, err.Error())
		slog.Error("address delete job failed", "job_id", jobID, "address_id", addressID, "error", err)
		return
	}

	s.finish(jobID, domain.JobCompleted, "")
	slog.Info("address delete job completed", "job_id", jobID, "address_id", addressID)
}

// finish moves a job from pending to a terminal state. A job that already
// reached a terminal state is never overwritten, so the first outcome wins.
func (s *JobService) finish(jobID string, status domain.JobStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok || job.Status != domain.JobPending {
		return
	}
	job.Status = status
	job.Error = errMsg
	s.jobs[jobID] = job
}
