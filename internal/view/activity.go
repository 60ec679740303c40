package view

import (
	"context"
	"time"

	"content_studio/internal/domain"
)

// ActivityPage lists the mutations this console sent to the backend.
type ActivityPage struct {
	Feedback
	env   *Env
	log   ActivityLog
	limit int

	Events  []domain.ActivityEvent
	Tallies []domain.ActivityTally
}

func NewActivityPage(env *Env, log ActivityLog, limit int) *ActivityPage {
	return &ActivityPage{env: env, log: log, limit: limit}
}

func (p *ActivityPage) Load(ctx context.Context) error {
	events, err := p.log.Recent(ctx, p.limit)
	if err != nil {
		p.env.logFailure("activity.recent", err)
		p.Error = p.env.L.T("activity.load_failed")
		return err
	}
	tallies, err := p.log.Tallies(ctx)
	if err != nil {
		p.env.logFailure("activity.tallies", err)
		p.Error = p.env.L.T("activity.load_failed")
		return err
	}
	p.Events = events
	p.Tallies = tallies
	return nil
}

func (p *ActivityPage) When(e domain.ActivityEvent) string {
	return p.FormatTime(e.OccurredAt)
}

func (p *ActivityPage) FormatTime(t time.Time) string {
	return FormatDateTime(t, p.env.Location)
}
