// Package client is the typed HTTP client for the urepair backend.
// The backend is an opaque HTTP/JSON service: list endpoints wrap
// their arrays in a "<entity>_table" object, updates are full-object
// POSTs to /<entity>/<id>, and session auth rides on cookies.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/urepair/console/internal/config"
	"github.com/urepair/console/pkg/circuitbreaker"
	"github.com/urepair/console/pkg/errors"
	"github.com/urepair/console/pkg/logger"
	"github.com/urepair/console/pkg/metrics"
)

const headerXRequestID = "X-Request-ID"

// Client issues requests against the backend. It carries a cookie
// jar for session credentials, stamps a request id on every call,
// and rate-limits outgoing requests so bulk fan-outs cannot flood
// the backend. It performs no retries: failures surface to the
// caller exactly once.
type Client struct {
	base    *url.URL
	http    *http.Client
	limiter *rate.Limiter
	breaker *circuitbreaker.Breaker
	logger  *logger.Logger
	metrics *metrics.Metrics
}

func New(cfg config.APIConfig, log *logger.Logger, m *metrics.Metrics) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	var breaker *circuitbreaker.Breaker
	if cfg.BreakerThreshold > 0 {
		breaker = circuitbreaker.New(cfg.BreakerThreshold, cfg.BreakerCooldown())
	}

	return &Client{
		base: base,
		http: &http.Client{
			Jar:     jar,
			Timeout: cfg.Timeout(),
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		breaker: breaker,
		logger:  log,
		metrics: m,
	}, nil
}

// do runs one request. body is marshalled as JSON when non-nil; out
// is decoded from the response body when non-nil. A non-2xx response
// is an error and out stays untouched.
func (c *Client) do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	if c.breaker != nil {
		if err := c.breaker.Allow(); err != nil {
			c.metrics.APIRequests.WithLabelValues(operation, "short_circuit").Inc()
			return errors.Transport(err)
		}
	}

	var reqBody *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	requestID := uuid.New().String()
	req.Header.Set(headerXRequestID, requestID)

	c.metrics.InFlight.Inc()
	start := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(start)
	c.metrics.InFlight.Dec()
	c.metrics.APILatency.WithLabelValues(operation).Observe(elapsed.Seconds())

	if err != nil {
		if c.breaker != nil {
			c.breaker.Failure()
		}
		c.metrics.APIRequests.WithLabelValues(operation, "transport_error").Inc()
		c.logger.Error(err, "request failed", "operation", operation, "request_id", requestID)
		return errors.Transport(err)
	}
	defer resp.Body.Close()

	// Any HTTP response, error status included, means the backend is
	// reachable.
	if c.breaker != nil {
		c.breaker.Success()
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.APIRequests.WithLabelValues(operation, fmt.Sprint(resp.StatusCode)).Inc()
		c.logger.Error(nil, "request rejected",
			"operation", operation, "status", resp.StatusCode, "request_id", requestID)
		return errors.HTTP(resp.StatusCode, method, path)
	}

	c.metrics.APIRequests.WithLabelValues(operation, "ok").Inc()
	c.logger.Debug("request completed",
		"operation", operation, "status", resp.StatusCode, "duration", elapsed.String())

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
