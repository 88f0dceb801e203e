package remotejob

import (
	"fmt"
	"time"
)

// Status tracks the lifecycle of one outstanding remote job.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusTimedOut  Status = "timed_out"
)

// Job represents one submitted generation request. It only moves
// forward: pending -> {completed | failed | timed_out}, and is never
// polled again after reaching a terminal state.
type Job struct {
	ID          string
	SubmittedAt time.Time
	Timeout     time.Duration
	Status      Status
}

func newJob(id string, timeout time.Duration) *Job {
	return &Job{
		ID:          id,
		SubmittedAt: time.Now(),
		Timeout:     timeout,
		Status:      StatusPending,
	}
}

// IsTerminal reports whether the job reached a final state.
func (j *Job) IsTerminal() bool {
	return j.Status != StatusPending
}

// transition applies a forward-only state change.
func (j *Job) transition(to Status) error {
	if j.IsTerminal() {
		return fmt.Errorf("invalid transition: %s -> %s", j.Status, to)
	}
	j.Status = to
	return nil
}

// Expired reports whether the wall-clock budget has been spent.
func (j *Job) Expired() bool {
	return time.Since(j.SubmittedAt) > j.Timeout
}
