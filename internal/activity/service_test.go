package activity

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"content_studio/internal/activity/mocks"
	"content_studio/internal/backend"
	"content_studio/internal/domain"
	"content_studio/internal/metrics"
)

type ServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	events    *mocks.MockEventStore
	tallies   *mocks.MockTallyStore
	txManager *mocks.MockTransactionManager
	publisher *mocks.MockPublisher

	service *Service
	logger  *slog.Logger
	now     time.Time
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.events = mocks.NewMockEventStore(s.ctrl)
	s.tallies = mocks.NewMockTallyStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.now = time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)

	s.service = NewService(s.events, s.tallies, s.txManager, s.publisher, s.logger, 30*24*time.Hour, 4)
	s.service.now = func() time.Time { return s.now }
}

func (s *ServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) expectTransaction() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func (s *ServiceTestSuite) scheduleEvent() *domain.ActivityEvent {
	return &domain.ActivityEvent{
		ID:         "3f1c6f1e-8a6a-4a39-9a53-1f9f4f1d0b11",
		Method:     "POST",
		Path:       "/posts/7/schedule",
		Resource:   "posts",
		ResourceID: domain.Ptr(int64(7)),
		Action:     "schedule",
		StatusCode: 200,
		Outcome:    domain.OutcomeSucceeded,
		Duration:   120 * time.Millisecond,
		OccurredAt: s.now,
	}
}

func (s *ServiceTestSuite) TestRecord_StoresAndPublishes() {
	ctx := context.Background()
	event := s.scheduleEvent()

	s.expectTransaction()
	s.events.EXPECT().Insert(gomock.Any(), event).Return(nil)
	s.tallies.EXPECT().Increment(gomock.Any(), "posts", domain.OutcomeSucceeded, s.now).Return(nil)
	s.publisher.EXPECT().Publish(ctx, event).Return(nil)

	s.NoError(s.service.Record(ctx, event))
}

func (s *ServiceTestSuite) TestRecord_InsertFailureSkipsPublish() {
	ctx := context.Background()
	event := s.scheduleEvent()

	s.expectTransaction()
	s.events.EXPECT().Insert(gomock.Any(), event).Return(errors.New("db down"))

	err := s.service.Record(ctx, event)
	s.Error(err)
	s.Contains(err.Error(), "insert event")
}

func (s *ServiceTestSuite) TestRecord_TallyFailureRollsBack() {
	ctx := context.Background()
	event := s.scheduleEvent()

	s.expectTransaction()
	s.events.EXPECT().Insert(gomock.Any(), event).Return(nil)
	s.tallies.EXPECT().Increment(gomock.Any(), "posts", domain.OutcomeSucceeded, s.now).Return(errors.New("deadlock"))

	err := s.service.Record(ctx, event)
	s.Error(err)
	s.Contains(err.Error(), "increment tally")
}

func (s *ServiceTestSuite) TestRecord_PublishFailure() {
	ctx := context.Background()
	event := s.scheduleEvent()

	s.expectTransaction()
	s.events.EXPECT().Insert(gomock.Any(), event).Return(nil)
	s.tallies.EXPECT().Increment(gomock.Any(), "posts", domain.OutcomeSucceeded, s.now).Return(nil)
	s.publisher.EXPECT().Publish(ctx, event).Return(errors.New("channel closed"))

	err := s.service.Record(ctx, event)
	s.Error(err)
	s.Contains(err.Error(), "publish event")
}

func (s *ServiceTestSuite) TestRecord_WithoutPublisher() {
	service := NewService(s.events, s.tallies, s.txManager, nil, s.logger, time.Hour, 0)
	event := s.scheduleEvent()
	event.Outcome = domain.OutcomeFailed

	s.expectTransaction()
	s.events.EXPECT().Insert(gomock.Any(), event).Return(nil)
	s.tallies.EXPECT().Increment(gomock.Any(), "posts", domain.OutcomeFailed, s.now).Return(nil)

	s.NoError(service.Record(context.Background(), event))
}

func (s *ServiceTestSuite) TestRun_DrainsQueueOnStop() {
	reqCtx, cancelReq := context.WithCancel(context.Background())
	cancelReq()
	s.service.Observe(reqCtx, *s.scheduleEvent())

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			s.NoError(ctx.Err())
			return fn(ctx)
		},
	)
	s.events.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
	s.tallies.EXPECT().Increment(gomock.Any(), "posts", domain.OutcomeSucceeded, s.now).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(s.service.Run(ctx), context.Canceled)
	s.Empty(s.service.queue)
}

func (s *ServiceTestSuite) TestRun_SwallowsRecordErrors() {
	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(2)

	s.service.Observe(context.Background(), *s.scheduleEvent())
	s.service.Observe(context.Background(), *s.scheduleEvent())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(s.service.Run(ctx), context.Canceled)
	s.Empty(s.service.queue)
}

func (s *ServiceTestSuite) TestObserve_DropsWhenQueueFull() {
	before := testutil.ToFloat64(metrics.ActivityDroppedTotal)

	for range 6 {
		s.service.Observe(context.Background(), *s.scheduleEvent())
	}

	s.Len(s.service.queue, 4)
	s.Equal(before+2, testutil.ToFloat64(metrics.ActivityDroppedTotal))
}

func (s *ServiceTestSuite) TestObserve_SlowStoreDoesNotDelayMutation() {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /posts/7", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":7,"project_id":1,"content":"edited","status":"draft"}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := backend.New(backend.Config{BaseURL: server.URL, Timeout: 5 * time.Second}, s.logger).WithObserver(s.service)

	inserting := make(chan struct{})
	release := make(chan struct{})
	s.expectTransaction()
	s.events.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ *domain.ActivityEvent) error {
			close(inserting)
			select {
			case <-release:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)
	s.tallies.EXPECT().Increment(gomock.Any(), "posts", domain.OutcomeSucceeded, gomock.Any()).Return(nil)
	s.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.service.Run(ctx) }()

	start := time.Now()
	post, err := client.UpdatePost(context.Background(), 7, "edited")
	s.Require().NoError(err)
	s.Equal("edited", post.Content)
	s.Less(time.Since(start), time.Second)

	select {
	case <-inserting:
	case <-time.After(2 * time.Second):
		s.FailNow("event never reached the store")
	}
	close(release)
	stop()
	s.ErrorIs(<-done, context.Canceled)
}

func (s *ServiceTestSuite) TestRecentAndTallies() {
	ctx := context.Background()
	events := []domain.ActivityEvent{*s.scheduleEvent()}
	tallies := []domain.ActivityTally{{Resource: "posts", Succeeded: 3, Failed: 1, LastEventAt: s.now}}

	s.events.EXPECT().Recent(ctx, 50).Return(events, nil)
	s.tallies.EXPECT().List(ctx).Return(tallies, nil)

	gotEvents, err := s.service.Recent(ctx, 50)
	s.NoError(err)
	s.Equal(events, gotEvents)

	gotTallies, err := s.service.Tallies(ctx)
	s.NoError(err)
	s.Equal(tallies, gotTallies)
}

func (s *ServiceTestSuite) TestRecent_Error() {
	ctx := context.Background()
	s.events.EXPECT().Recent(ctx, 10).Return(nil, errors.New("timeout"))

	events, err := s.service.Recent(ctx, 10)
	s.Error(err)
	s.Nil(events)
}

func (s *ServiceTestSuite) TestPrune() {
	ctx := context.Background()
	cutoff := s.now.Add(-30 * 24 * time.Hour)

	s.events.EXPECT().DeleteBefore(ctx, cutoff).Return(int64(12), nil)

	stats, err := s.service.Prune(ctx)
	s.NoError(err)
	s.Equal(cutoff, stats.Cutoff)
	s.Equal(int64(12), stats.Deleted)
}

func (s *ServiceTestSuite) TestPrune_Error() {
	ctx := context.Background()
	s.events.EXPECT().DeleteBefore(ctx, gomock.Any()).Return(int64(0), errors.New("locked"))

	stats, err := s.service.Prune(ctx)
	s.Error(err)
	s.Nil(stats)
}
