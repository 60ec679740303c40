package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"content_studio/internal/domain"
)

type ActivityStore struct {
	db *sqlx.DB
}

func NewActivityStore(db *sqlx.DB) *ActivityStore {
	return &ActivityStore{db: db}
}

func (s *ActivityStore) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	query := `
		INSERT INTO activity_events (
			id, method, path, resource, resource_id, action,
			status_code, outcome, error, duration_ns, occurred_at
		) VALUES (
			:id, :method, :path, :resource, :resource_id, :action,
			:status_code, :outcome, :error, :duration_ns, :occurred_at
		)`

	if _, err := sqlx.NamedExecContext(ctx, GetExecutor(ctx, s.db), query, event); err != nil {
		return fmt.Errorf("insert activity event %s: %w", event.ID, err)
	}
	return nil
}

// Recent returns the newest events first.
func (s *ActivityStore) Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error) {
	query := `
		SELECT id, method, path, resource, resource_id, action,
		       status_code, outcome, error, duration_ns, occurred_at
		FROM activity_events
		ORDER BY occurred_at DESC, id
		LIMIT $1`

	var events []domain.ActivityEvent
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &events, query, limit); err != nil {
		return nil, err
	}
	return events, nil
}

func (s *ActivityStore) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`DELETE FROM activity_events WHERE occurred_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
