// Package fetch implements the rate-limited paginated Reddit client: account
// metadata plus the submissions and comments listing streams, with mandatory
// inter-request delay, retry with exponential backoff, and page caching.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/laasya2505/reddit-persona/internal/cache"
	"github.com/laasya2505/reddit-persona/internal/model"
)

// sleepFunc is swapped out in tests to keep backoff instant.
var sleepFunc = time.Sleep

// Client issues read-only requests against the public .json endpoints.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	maxBytes    int64
	limiter     *Limiter
	robots      *RobotsChecker
	pages       cache.Cache
	retryBudget int
	backoffBase time.Duration
	pageSize    int
}

// NewClient builds a client from configuration. Caching and robots checking
// are optional; the request delay is not.
func NewClient(cfg *model.Config) *Client {
	interval := rate.Inf
	if cfg.Fetch.RequestDelay > 0 {
		interval = rate.Every(cfg.Fetch.RequestDelay)
	}

	var pages cache.Cache
	if cfg.Cache.Enabled {
		pages = cache.NewLayered(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
	}

	var robots *RobotsChecker
	if cfg.Fetch.RespectRobots {
		robots = NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				Proxy: proxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy),
			},
		},
		baseURL:     cfg.HTTP.BaseURL,
		userAgent:   cfg.HTTP.UserAgent,
		maxBytes:    cfg.HTTP.MaxBodyBytes,
		limiter:     NewLimiter(interval),
		robots:      robots,
		pages:       pages,
		retryBudget: cfg.Fetch.RetryBudget,
		backoffBase: cfg.Fetch.BackoffBase,
		pageSize:    cfg.Fetch.PageSize,
	}
}

// statusError carries the HTTP status so retry classification and the
// account-level error mapping can inspect it.
type statusError struct {
	code   int
	status string
}

func (e *statusError) Error() string {
	return "unexpected status: " + e.status
}

// transientError marks transport-level failures (timeouts, resets) that are
// worth retrying.
type transientError struct {
	err error
}

func (e *transientError) Error() string {
	return "fetch: " + e.err.Error()
}

func (e *transientError) Unwrap() error {
	return e.err
}

// isRetryable reports whether the request may be reissued: HTTP 429, any
// 5xx, or a transport failure. 404/403 and body/decoding problems are
// permanent.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	var te *transientError
	return errors.As(err, &te)
}

// fetchState drives the retry loop. Modeling the loop as an explicit state
// machine keeps the retry policy testable on its own.
type fetchState int

const (
	stateFetching fetchState = iota
	stateBackingOff
	stateExhausted
	stateFailed
	stateDone
)

// getJSON fetches rawURL and decodes the JSON body into out. limiterKey
// selects which delay bucket the request draws from, one per stream.
func (c *Client) getJSON(ctx context.Context, limiterKey, rawURL string, out interface{}) error {
	if c.pages != nil {
		if body, ok := c.pages.Get(cache.Key(rawURL)); ok {
			return json.Unmarshal(body, out)
		}
	}

	if c.robots != nil && !c.robots.Allowed(ctx, rawURL) {
		return fmt.Errorf("blocked by robots.txt: %s", rawURL)
	}

	var (
		body    []byte
		lastErr error
		attempt int
	)

	state := stateFetching
	for state != stateDone {
		switch state {
		case stateFetching:
			attempt++
			if err := c.limiter.Wait(ctx, limiterKey); err != nil {
				return err
			}
			body, lastErr = c.do(ctx, rawURL)
			switch {
			case lastErr == nil:
				state = stateDone
			case !isRetryable(lastErr):
				state = stateFailed
			case attempt >= c.retryBudget:
				state = stateExhausted
			default:
				state = stateBackingOff
			}

		case stateBackingOff:
			sleepFunc(c.backoffBase << (attempt - 1))
			state = stateFetching

		case stateExhausted:
			return fmt.Errorf("retries exhausted after %d attempts: %w", attempt, lastErr)

		case stateFailed:
			return lastErr
		}
	}

	if c.pages != nil {
		c.pages.Set(cache.Key(rawURL), body)
	}
	return json.Unmarshal(body, out)
}

// do issues a single GET and returns the size-limited body.
func (c *Client) do(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &transientError{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &statusError{code: resp.StatusCode, status: resp.Status}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}
