// Package publisher fans activity events out to RabbitMQ.
package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"content_studio/internal/domain"
)

var ErrClosed = errors.New("rabbitmq connection closed")

type Config struct {
	URL        string
	Exchange   string
	RoutingKey string
	QueueName  string
}

// ActivityMessage is the JSON body of every published event.
type ActivityMessage struct {
	Event     domain.ActivityEvent `json:"event"`
	Timestamp time.Time            `json:"timestamp"`
}

// RabbitMQ publishes on a single channel. Publishes are serialized because
// events arrive from concurrent requests.
type RabbitMQ struct {
	cfg    Config
	logger *slog.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  bool
}

func NewRabbitMQ(cfg Config, logger *slog.Logger) (*RabbitMQ, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := declareTopology(ch, cfg); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, err
	}

	r := &RabbitMQ{
		cfg:     cfg,
		logger:  logger.With("component", "publisher", "exchange", cfg.Exchange),
		conn:    conn,
		channel: ch,
	}
	go r.watch(conn.NotifyClose(make(chan *amqp.Error, 1)))

	r.logger.Info("connected to rabbitmq",
		"queue", cfg.QueueName,
		"routing_key", cfg.RoutingKey,
	)
	return r, nil
}

// declareTopology binds a durable queue to a durable direct exchange so
// events survive a broker restart even before a consumer attaches.
func declareTopology(ch *amqp.Channel, cfg Config) error {
	if err := ch.ExchangeDeclare(cfg.Exchange, amqp.ExchangeDirect, true, false, false, false, nil); err != nil {
		return fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}
	q, err := ch.QueueDeclare(cfg.QueueName, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("declare queue %s: %w", cfg.QueueName, err)
	}
	if err := ch.QueueBind(q.Name, cfg.RoutingKey, cfg.Exchange, false, nil); err != nil {
		return fmt.Errorf("bind queue %s: %w", q.Name, err)
	}
	return nil
}

// watch marks the publisher closed when the broker drops the connection.
// The journal keeps storing events; only the fan-out stops.
func (r *RabbitMQ) watch(closed <-chan *amqp.Error) {
	reason, ok := <-closed
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	if ok && reason != nil {
		r.logger.Error("rabbitmq connection lost", "code", reason.Code, "reason", reason.Reason)
	}
}

// Publish sends event to the configured exchange. Outcome and action are
// copied into headers so consumers can filter without decoding the body.
func (r *RabbitMQ) Publish(ctx context.Context, event *domain.ActivityEvent) error {
	now := time.Now().UTC()
	body, err := json.Marshal(ActivityMessage{Event: *event, Timestamp: now})
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	msg := amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    event.ID,
		Type:         event.Resource,
		Timestamp:    now,
		Headers: amqp.Table{
			"outcome": string(event.Outcome),
			"action":  event.Action,
		},
		Body: body,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return ErrClosed
	}
	if err := r.channel.PublishWithContext(ctx, r.cfg.Exchange, r.cfg.RoutingKey, false, false, msg); err != nil {
		return fmt.Errorf("publish activity %s: %w", event.ID, err)
	}

	r.logger.Debug("published activity",
		"id", event.ID,
		"resource", event.Resource,
		"outcome", event.Outcome,
	)
	return nil
}

func (r *RabbitMQ) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true

	if r.channel != nil {
		_ = r.channel.Close()
	}
	if r.conn != nil && !r.conn.IsClosed() {
		return r.conn.Close()
	}
	return nil
}
