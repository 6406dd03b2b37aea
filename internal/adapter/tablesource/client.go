package tablesource

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker/v2"

	"github.com/couchcryptid/grib-metadata-etl/internal/observability"
)

// maxTableBytes caps a single table download.
const maxTableBytes = 8 << 20

// Client reads table files from an HTTP mirror of the CSV table directory.
// It implements fs.FS and fs.ReadFileFS, so it can back a
// gribmeta.CSVProvider directly. A 404 is reported as fs.ErrNotExist.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	newBackOff func() backoff.BackOff
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBackOff sets the retry policy factory. Each ReadFile gets a fresh policy.
func WithBackOff(f func() backoff.BackOff) Option {
	return func(c *Client) { c.newBackOff = f }
}

// WithBreaker replaces the circuit breaker.
func WithBreaker(cb *gobreaker.CircuitBreaker[[]byte]) Option {
	return func(c *Client) { c.breaker = cb }
}

// NewClient creates a mirror client rooted at baseURL. timeout bounds each
// HTTP attempt. metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse table url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("table url %q: scheme must be http or https", baseURL)
	}
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}

	c := &Client{
		baseURL:    u,
		httpClient: &http.Client{Timeout: timeout},
		breaker:    NewBreaker("grib-tables"),
		newBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = 250 * time.Millisecond
			bo.MaxElapsedTime = 4 * timeout
			return bo
		},
		metrics: metrics,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// NewBreaker returns the circuit breaker the client uses by default. It
// opens after more than five consecutive failed attempts; a missing file is
// not a failure.
func NewBreaker(name string) *gobreaker.CircuitBreaker[[]byte] {
	return gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 5
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, fs.ErrNotExist)
		},
	})
}

// Open implements fs.FS.
func (c *Client) Open(name string) (fs.File, error) {
	data, err := c.ReadFile(name)
	if err != nil {
		return nil, err
	}
	return newMemFile(name, data), nil
}

// ReadFile implements fs.ReadFileFS.
func (c *Client) ReadFile(name string) ([]byte, error) {
	return c.ReadFileContext(context.Background(), name)
}

// ReadFileContext downloads one table file, retrying transient failures
// (network errors, 429 and 5xx) with exponential backoff.
func (c *Client) ReadFileContext(ctx context.Context, name string) ([]byte, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrInvalid}
	}
	target := c.baseURL.JoinPath(name).String()

	var data []byte
	operation := func() error {
		start := time.Now()
		body, err := c.breaker.Execute(func() ([]byte, error) {
			return c.fetch(ctx, target)
		})
		c.observe(err, time.Since(start))

		switch {
		case err == nil:
			data = body
			return nil
		case errors.Is(err, fs.ErrNotExist):
			return backoff.Permanent(err)
		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			return backoff.Permanent(err)
		case ctx.Err() != nil:
			return backoff.Permanent(ctx.Err())
		}
		var perm *permanentError
		if errors.As(err, &perm) {
			return backoff.Permanent(err)
		}
		c.logger.Warn("table fetch failed, retrying", "file", name, "error", err)
		return err
	}

	if err := backoff.Retry(operation, backoff.WithContext(c.newBackOff(), ctx)); err != nil {
		return nil, &fs.PathError{Op: "read", Path: name, Err: err}
	}
	return data, nil
}

// permanentError marks a response that retrying will not fix.
type permanentError struct {
	status int
	body   string
}

func (e *permanentError) Error() string {
	return fmt.Sprintf("table mirror: status %d: %s", e.status, e.body)
}

func (c *Client) fetch(ctx context.Context, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &permanentError{body: err.Error()}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("table request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, fs.ErrNotExist
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, fmt.Errorf("table mirror: status %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &permanentError{status: resp.StatusCode, body: string(body)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxTableBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read table body: %w", err)
	}
	if len(body) > maxTableBytes {
		return nil, &permanentError{status: resp.StatusCode, body: "table exceeds size limit"}
	}
	return body, nil
}

func (c *Client) observe(err error, elapsed time.Duration) {
	if c.metrics == nil {
		return
	}
	status := "ok"
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		status = "not_found"
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		status = "open"
	default:
		status = "error"
	}
	c.metrics.TableFetchRequests.WithLabelValues(status).Inc()
	c.metrics.TableFetchDuration.WithLabelValues(status).Observe(elapsed.Seconds())
}
