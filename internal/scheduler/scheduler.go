// Package scheduler runs the journal's retention pass on a fixed interval.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"content_studio/internal/domain"
)

const defaultRunTimeout = 5 * time.Minute

// Pruner removes expired journal entries.
type Pruner interface {
	Prune(ctx context.Context) (*domain.PruneStats, error)
}

type Scheduler struct {
	pruner     Pruner
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger

	failures int
}

func NewScheduler(pruner Pruner, interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		pruner:     pruner,
		interval:   interval,
		runTimeout: defaultRunTimeout,
		logger:     logger.With("component", "scheduler"),
	}
}

// Start prunes once right away, then once per interval, until ctx ends.
// It always returns ctx's error.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("retention scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.tick(ctx)

		select {
		case <-ctx.Done():
			s.logger.Info("retention scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	stats, err := s.pruner.Prune(runCtx)
	if err != nil {
		s.failures++
		s.logger.Error("retention pass failed", "error", err, "consecutive_failures", s.failures)
		return
	}
	if s.failures > 0 {
		s.logger.Info("retention pass recovered", "after_failures", s.failures)
		s.failures = 0
	}
	s.logger.Debug("retention pass finished", "deleted", stats.Deleted, "cutoff", stats.Cutoff)
}
