package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"content_studio/internal/domain"
	"content_studio/internal/metrics"
)

// Config holds content API client configuration.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Observer is told about every mutating request after it resolves.
type Observer interface {
	Observe(ctx context.Context, event domain.ActivityEvent)
}

// Client talks to the content API. It never retries: every failure is
// returned to the caller as is.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	observer   Observer
	logger     *slog.Logger
}

// New creates a new content API client.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		logger:    logger.With("component", "backend"),
	}
}

// WithObserver registers o to receive an event per mutating request.
func (c *Client) WithObserver(o Observer) *Client {
	c.observer = o
	return c
}

// BaseURL returns the API origin the client is bound to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) (err error) {
	start := time.Now()
	status := 0

	defer func() {
		elapsed := time.Since(start)
		route := parseRoute(path)
		metrics.RecordBackendRequest(method, route.resource, status, elapsed.Seconds())

		if err != nil {
			c.logger.Warn("content api request failed",
				"method", method,
				"path", path,
				"status", status,
				"duration", elapsed,
				"error", err,
			)
		} else {
			c.logger.Debug("content api request",
				"method", method,
				"path", path,
				"status", status,
				"duration", elapsed,
			)
		}

		if method != http.MethodGet && c.observer != nil {
			c.observer.Observe(ctx, newEvent(method, path, route, status, elapsed, start, err))
		}
	}()

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return readAPIError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

type route struct {
	resource string
	id       *int64
	action   string
}

// parseRoute splits "/posts/3/schedule" into posts, 3 and schedule.
func parseRoute(path string) route {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	r := route{resource: segments[0]}
	rest := segments[1:]

	if len(rest) > 0 {
		if id, err := strconv.ParseInt(rest[0], 10, 64); err == nil {
			r.id = &id
			rest = rest[1:]
		}
	}
	r.action = strings.Join(rest, "/")
	return r
}

func newEvent(method, path string, r route, status int, elapsed time.Duration, at time.Time, err error) domain.ActivityEvent {
	event := domain.ActivityEvent{
		ID:         uuid.NewString(),
		Method:     method,
		Path:       path,
		Resource:   r.resource,
		ResourceID: r.id,
		Action:     r.action,
		StatusCode: status,
		Outcome:    domain.OutcomeSucceeded,
		Duration:   elapsed,
		OccurredAt: at.UTC(),
	}
	if err != nil {
		event.Outcome = domain.OutcomeFailed
		msg := err.Error()
		event.Error = &msg
	}
	return event
}

func itemPath(collection string, id int64, suffix ...string) string {
	path := fmt.Sprintf("/%s/%d", collection, id)
	for _, s := range suffix {
		path += "/" + s
	}
	return path
}
