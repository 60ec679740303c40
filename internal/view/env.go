// Package view holds the page models of the console. A page is built per
// request: it fetches what it shows, applies one user action, reconciles its
// local collections from the response and is then rendered.
package view

import (
	"errors"
	"log/slog"
	"time"

	"content_studio/internal/backend"
	"content_studio/internal/i18n"
)

// Env is shared by every page of one console instance.
type Env struct {
	L             *i18n.Localizer
	Location      *time.Location
	ToastDuration time.Duration
	Logger        *slog.Logger
	Now           func() time.Time
}

func NewEnv(l *i18n.Localizer, loc *time.Location, toast time.Duration, logger *slog.Logger) *Env {
	return &Env{
		L:             l,
		Location:      loc,
		ToastDuration: toast,
		Logger:        logger.With("component", "view"),
		Now:           time.Now,
	}
}

// Confirm asks the user to approve a destructive or publishing action.
// Returning false must leave everything untouched.
type Confirm func(message string) bool

// Feedback is what a page reports back besides its data.
type Feedback struct {
	// Alerts are shown one after another as blocking browser alerts.
	Alerts []string
	// Error is the page's error banner.
	Error string
	Toast *Toast
}

func (f *Feedback) Alert(msg string) {
	f.Alerts = append(f.Alerts, msg)
}

// Report exposes the feedback of any page that embeds it.
func (f *Feedback) Report() *Feedback {
	return f
}

// Toast is a transient success message.
type Toast struct {
	Message   string
	ExpiresAt time.Time
}

// MillisLeft is how long the toast stays visible after now.
func (t *Toast) MillisLeft(now time.Time) int64 {
	left := t.ExpiresAt.Sub(now).Milliseconds()
	if left < 0 {
		return 0
	}
	return left
}

func (e *Env) toast(msg string) *Toast {
	return &Toast{Message: msg, ExpiresAt: e.Now().Add(e.ToastDuration)}
}

// describe prefers the server's detail message over the localized fallback.
func describe(err error, fallback string) string {
	if detail, ok := backend.DetailOf(err); ok {
		return detail
	}
	return fallback
}

// logFailure records an action error that is shown to the user as text.
func (e *Env) logFailure(action string, err error) {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		e.Logger.Warn("action rejected by content api", "action", action, "status", apiErr.StatusCode, "detail", apiErr.Detail)
		return
	}
	e.Logger.Error("action failed", "action", action, "error", err)
}
