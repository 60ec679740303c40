package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"content_studio/internal/activity"
	"content_studio/internal/backend"
	"content_studio/internal/config"
	"content_studio/internal/i18n"
	"content_studio/internal/publisher"
	"content_studio/internal/scheduler"
	"content_studio/internal/storage/postgres"
	"content_studio/internal/view"
	"content_studio/internal/web"
)

const shutdownTimeout = 30 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	localizer, err := i18n.New(cfg.UI.Language)
	if err != nil {
		logger.Error("failed to load messages", "error", err)
		os.Exit(1)
	}

	client := backend.New(backend.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: cfg.API.UserAgent,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	deps := web.Deps{
		Env:            view.NewEnv(localizer, cfg.UI.Location(), cfg.UI.ToastDuration, logger),
		Backend:        client,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		Logger:         logger,
	}

	stopJournal := func() {}
	if cfg.Journal.Enabled {
		journal, closeJournal, err := openJournal(cfg, logger)
		if err != nil {
			logger.Error("failed to open activity journal", "error", err)
			os.Exit(1)
		}
		defer closeJournal()

		client.WithObserver(journal)
		deps.Activity = journal
		deps.ActivityPageSize = cfg.Journal.PageSize

		workerCtx, stopWorker := context.WithCancel(context.Background())
		workerDone := make(chan struct{})
		go func() {
			defer close(workerDone)
			if err := journal.Run(workerCtx); err != nil && err != context.Canceled {
				logger.Error("activity worker error", "error", err)
			}
		}()
		// The worker outlives the server so events from draining requests
		// are still recorded.
		stopJournal = func() {
			stopWorker()
			<-workerDone
		}

		sched := scheduler.NewScheduler(journal, cfg.Journal.PruneInterval, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && err != context.Canceled {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	router, err := web.NewRouter(deps)
	if err != nil {
		logger.Error("failed to build router", "error", err)
		os.Exit(1)
	}

	server := web.NewServer(cfg.Server, router, logger)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()

		stopCtx, stopCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer stopCancel()
		if err := server.Stop(stopCtx); err != nil {
			logger.Error("graceful shutdown failed", "error", err)
		}
		stopJournal()
	}()

	logger.Info("starting content studio",
		"api", cfg.API.BaseURL,
		"language", cfg.UI.Language,
		"journal", cfg.Journal.Enabled,
		"rabbitmq", cfg.RabbitMQ.Enabled,
	)

	if err := server.Start(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
	<-stopped
}

// openJournal connects the activity journal and, when enabled, its RabbitMQ
// fan-out. The returned func releases both.
func openJournal(cfg *config.Config, logger *slog.Logger) (*activity.Service, func(), error) {
	db, err := sqlx.Connect("postgres", cfg.Journal.Database.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}
	logger.Info("connected to database")

	closers := []func(){func() { _ = db.Close() }}
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	var pub activity.Publisher
	if cfg.RabbitMQ.Enabled {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		closers = append(closers, func() { _ = rabbitMQ.Close() })
		pub = rabbitMQ
	}

	service := activity.NewService(
		postgres.NewActivityStore(db),
		postgres.NewTallyStore(db),
		postgres.NewTransactionManager(db),
		pub,
		logger,
		cfg.Journal.Retention,
		cfg.Journal.QueueSize,
	)
	return service, closeAll, nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
