package domain

import "github.com/google/uuid"

// JobStatus is the lifecycle state of an asynchronous delete job.
// The only legal transitions are pending → completed and pending → failed;
// terminal states are final.
type JobStatus string

const (
	JobPending   JobStatus = "pending"
	JobCompleted JobStatus = "completed"
	JobFailed    JobStatus = "failed"
)

// Job tracks one asynchronous address deletion. Jobs live only in process
// memory: they are created when a DELETE request is accepted, mutated exactly
// once by the background worker, and never evicted for the process lifetime.
type Job struct {
	ID        string    `json:"job_id"`
	Status    JobStatus `json:"status"`
	AddressID uuid.UUID `json:"address_id"`
	// Error holds the captured backend message; set only when Status is failed.
	Error string `json:"error,omitempty"`
}
