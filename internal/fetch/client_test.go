package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/laasya2505/reddit-persona/internal/model"
)

// newTestClient builds a client pointed at a test server, with the delay,
// cache and robots checking disabled.
func newTestClient(baseURL string) *Client {
	cfg := model.DefaultConfig()
	cfg.HTTP.BaseURL = baseURL
	cfg.HTTP.Timeout = 5 * time.Second
	cfg.Fetch.RequestDelay = 0
	cfg.Fetch.RespectRobots = false
	cfg.Cache.Enabled = false
	return NewClient(cfg)
}

func noSleep(t *testing.T) {
	t.Helper()
	orig := sleepFunc
	sleepFunc = func(time.Duration) {}
	t.Cleanup(func() { sleepFunc = orig })
}

func TestGetJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer server.Close()

	var out struct {
		OK bool `json:"ok"`
	}
	c := newTestClient(server.URL)
	if err := c.getJSON(context.Background(), "test", server.URL, &out); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !out.OK {
		t.Error("Expected decoded body")
	}
}

func TestGetJSON_TransientThenSuccess(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) <= 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"ok":true}`)
	}))
	defer server.Close()

	var out struct{ OK bool }
	c := newTestClient(server.URL)
	if err := c.getJSON(context.Background(), "test", server.URL, &out); err != nil {
		t.Fatalf("Expected success after retries, got %v", err)
	}
	if attempts.Load() != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts.Load())
	}
}

func TestGetJSON_RateLimitedRetried(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	var out struct{}
	c := newTestClient(server.URL)
	if err := c.getJSON(context.Background(), "test", server.URL, &out); err != nil {
		t.Fatalf("Expected success after 429 retry, got %v", err)
	}
	if attempts.Load() != 2 {
		t.Errorf("Expected 2 attempts, got %d", attempts.Load())
	}
}

func TestGetJSON_NotFoundFailsImmediately(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	var out struct{}
	c := newTestClient(server.URL)
	err := c.getJSON(context.Background(), "test", server.URL, &out)
	if err == nil {
		t.Fatal("Expected error for 404")
	}
	if attempts.Load() != 1 {
		t.Errorf("Expected 404 to fail without retry, got %d attempts", attempts.Load())
	}
}

func TestGetJSON_BudgetExhausted(t *testing.T) {
	noSleep(t)

	var attempts atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	var out struct{}
	c := newTestClient(server.URL)
	err := c.getJSON(context.Background(), "test", server.URL, &out)
	if err == nil {
		t.Fatal("Expected error after exhausting retries")
	}
	if attempts.Load() != 3 {
		t.Errorf("Expected 3 attempts (retry budget), got %d", attempts.Load())
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{"nil", nil, false},
		{"503", &statusError{code: 503, status: "503 Service Unavailable"}, true},
		{"500", &statusError{code: 500, status: "500 Internal Server Error"}, true},
		{"429", &statusError{code: 429, status: "429 Too Many Requests"}, true},
		{"404", &statusError{code: 404, status: "404 Not Found"}, false},
		{"403", &statusError{code: 403, status: "403 Forbidden"}, false},
		{"transport", &transientError{err: fmt.Errorf("connection reset")}, true},
		{"decode", fmt.Errorf("read body: unexpected EOF"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetryable(tt.err); got != tt.retryable {
				t.Errorf("isRetryable = %v, want %v", got, tt.retryable)
			}
		})
	}
}

func TestLimiter_FirstRequestWaits(t *testing.T) {
	// New buckets start empty, so even the first Wait observes the delay.
	l := NewLimiter(rate.Every(50 * time.Millisecond))

	start := time.Now()
	if err := l.Wait(context.Background(), "stream"); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Errorf("Expected first request to be delayed, waited only %v", elapsed)
	}
}

func TestLimiter_IndependentKeys(t *testing.T) {
	l := NewLimiter(rate.Every(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	// Both keys should block independently; the second key must not be
	// affected by the first having been created.
	if err := l.Wait(ctx, "a"); err == nil {
		t.Error("Expected hour-scale delay to outlive the context for key a")
	}
	if err := l.Wait(ctx, "b"); err == nil {
		t.Error("Expected hour-scale delay to outlive the context for key b")
	}
}
