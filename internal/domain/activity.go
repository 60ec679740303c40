package domain

import "time"

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
)

// ActivityEvent records one mutating request the console sent to the backend.
type ActivityEvent struct {
	ID         string        `db:"id" json:"id"`
	Method     string        `db:"method" json:"method"`
	Path       string        `db:"path" json:"path"`
	Resource   string        `db:"resource" json:"resource"` // first path segment, e.g. "posts"
	ResourceID *int64        `db:"resource_id" json:"resource_id,omitempty"`
	Action     string        `db:"action" json:"action"` // trailing verb segment, e.g. "schedule"
	StatusCode int           `db:"status_code" json:"status_code"`
	Outcome    Outcome       `db:"outcome" json:"outcome"`
	Error      *string       `db:"error" json:"error,omitempty"`
	Duration   time.Duration `db:"duration_ns" json:"duration_ns"`
	OccurredAt time.Time     `db:"occurred_at" json:"occurred_at"`
}

// ActivityTally aggregates events per resource.
type ActivityTally struct {
	Resource    string    `db:"resource"`
	Succeeded   int64     `db:"succeeded"`
	Failed      int64     `db:"failed"`
	LastEventAt time.Time `db:"last_event_at"`
}

// PruneStats summarizes one retention pass over the journal.
type PruneStats struct {
	Cutoff   time.Time
	Deleted  int64
	Duration time.Duration
}
