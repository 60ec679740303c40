package view

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"content_studio/internal/i18n"
)

var (
	fixedNow = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	jst      = time.FixedZone("JST", 9*60*60)
)

func newTestEnv() *Env {
	env := NewEnv(i18n.MustNew("ja"), jst, 3*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
	env.Now = func() time.Time { return fixedNow }
	return env
}

func accept(string) bool { return true }

func decline(string) bool { return false }

// askedWith records the confirmation message and answers yes.
func askedWith(msg *string) Confirm {
	return func(m string) bool {
		*msg = m
		return true
	}
}

// barrier returns a wait func that blocks until n callers have entered it.
// Callers that would only ever arrive one after another time out instead of
// hanging the test.
func barrier(n int) func() error {
	var wg sync.WaitGroup
	wg.Add(n)
	all := make(chan struct{})
	go func() {
		wg.Wait()
		close(all)
	}()
	return func() error {
		wg.Done()
		select {
		case <-all:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("calls did not overlap")
		}
	}
}
