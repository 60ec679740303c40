// Package activity keeps the journal of mutations the console sent to the
// content API.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"content_studio/internal/domain"
	"content_studio/internal/metrics"
)

const (
	recordTimeout = 10 * time.Second
	drainTimeout  = 15 * time.Second

	DefaultQueueSize = 256
)

type Service struct {
	events    EventStore
	tallies   TallyStore
	txManager TransactionManager
	publisher Publisher
	logger    *slog.Logger
	retention time.Duration
	queue     chan domain.ActivityEvent
	now       func() time.Time
}

// NewService builds the journal. publisher may be nil. Observed events wait
// in a queue of queueSize until Run records them.
func NewService(
	events EventStore,
	tallies TallyStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	retention time.Duration,
	queueSize int,
) *Service {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Service{
		events:    events,
		tallies:   tallies,
		txManager: txManager,
		publisher: publisher,
		logger:    logger.With("component", "activity"),
		retention: retention,
		queue:     make(chan domain.ActivityEvent, queueSize),
		now:       time.Now,
	}
}

// Observe hands event to the worker and returns at once. When the queue is
// full the event is dropped and counted.
func (s *Service) Observe(_ context.Context, event domain.ActivityEvent) {
	select {
	case s.queue <- event:
	default:
		metrics.ActivityDroppedTotal.Inc()
		s.logger.Warn("activity queue full, dropping event",
			"method", event.Method,
			"path", event.Path,
		)
	}
}

// Run records queued events until ctx is done. What is still queued then is
// recorded within drainTimeout before Run returns.
func (s *Service) Run(ctx context.Context) error {
	s.logger.Info("activity worker started", "queue_size", cap(s.queue))

	for {
		select {
		case event := <-s.queue:
			s.record(context.Background(), event)
		case <-ctx.Done():
			s.drain()
			return ctx.Err()
		}
	}
}

func (s *Service) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	var drained int
	for {
		select {
		case event := <-s.queue:
			s.record(ctx, event)
			drained++
		default:
			s.logger.Info("activity worker stopped", "drained", drained)
			return
		}
		if ctx.Err() != nil {
			s.logger.Warn("activity drain timed out", "left", len(s.queue))
			return
		}
	}
}

func (s *Service) record(parent context.Context, event domain.ActivityEvent) {
	ctx, cancel := context.WithTimeout(parent, recordTimeout)
	defer cancel()

	if err := s.Record(ctx, &event); err != nil {
		s.logger.Error("record activity",
			"error", err,
			"method", event.Method,
			"path", event.Path,
		)
	}
}

// Record stores event and its tally in one transaction, then publishes it.
// A publish failure is reported only after the event is safely stored.
func (s *Service) Record(ctx context.Context, event *domain.ActivityEvent) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.events.Insert(txCtx, event); err != nil {
			return fmt.Errorf("insert event: %w", err)
		}
		if err := s.tallies.Increment(txCtx, event.Resource, event.Outcome, event.OccurredAt); err != nil {
			return fmt.Errorf("increment tally: %w", err)
		}
		return nil
	})
	metrics.RecordActivity("store", err)
	if err != nil {
		return err
	}

	if s.publisher == nil {
		return nil
	}

	err = s.publisher.Publish(ctx, event)
	metrics.RecordActivity("publish", err)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

func (s *Service) Recent(ctx context.Context, limit int) ([]domain.ActivityEvent, error) {
	events, err := s.events.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	return events, nil
}

func (s *Service) Tallies(ctx context.Context) ([]domain.ActivityTally, error) {
	tallies, err := s.tallies.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tallies: %w", err)
	}
	return tallies, nil
}

// Prune deletes events older than the retention window. Tallies are
// lifetime counters and are left alone.
func (s *Service) Prune(ctx context.Context) (*domain.PruneStats, error) {
	start := s.now()
	stats := &domain.PruneStats{Cutoff: start.Add(-s.retention).UTC()}

	deleted, err := s.events.DeleteBefore(ctx, stats.Cutoff)
	if err != nil {
		return nil, fmt.Errorf("delete expired events: %w", err)
	}

	stats.Deleted = deleted
	stats.Duration = s.now().Sub(start)
	metrics.ActivityPrunedTotal.Add(float64(deleted))

	s.logger.Info("pruned activity journal",
		"cutoff", stats.Cutoff,
		"deleted", stats.Deleted,
		"duration", stats.Duration,
	)
	return stats, nil
}
