package activity

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"content_studio/internal/domain"
)

type EventStore interface {
	Insert(ctx context.Context, event *domain.ActivityEvent) error
	Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error)
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type TallyStore interface {
	Increment(ctx context.Context, resource string, outcome domain.Outcome, at time.Time) error
	List(ctx context.Context) ([]domain.ActivityTally, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, event *domain.ActivityEvent) error
	Close() error
}
