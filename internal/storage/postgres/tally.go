package postgres

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"content_studio/internal/domain"
)

type TallyStore struct {
	db *sqlx.DB
}

func NewTallyStore(db *sqlx.DB) *TallyStore {
	return &TallyStore{db: db}
}

// Increment bumps the counter matching outcome, creating the row on first use.
// last_event_at never moves backwards.
func (s *TallyStore) Increment(ctx context.Context, resource string, outcome domain.Outcome, at time.Time) error {
	var succeeded, failed int64
	if outcome == domain.OutcomeFailed {
		failed = 1
	} else {
		succeeded = 1
	}

	query := `
		INSERT INTO activity_tallies (resource, succeeded, failed, last_event_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (resource) DO UPDATE SET
			succeeded = activity_tallies.succeeded + EXCLUDED.succeeded,
			failed = activity_tallies.failed + EXCLUDED.failed,
			last_event_at = GREATEST(activity_tallies.last_event_at, EXCLUDED.last_event_at)`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, resource, succeeded, failed, at)
	return err
}

func (s *TallyStore) List(ctx context.Context) ([]domain.ActivityTally, error) {
	query := `
		SELECT resource, succeeded, failed, last_event_at
		FROM activity_tallies
		ORDER BY resource`

	var tallies []domain.ActivityTally
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &tallies, query); err != nil {
		return nil, err
	}
	return tallies, nil
}
