package ratelimit

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type memCounter struct {
	mu     sync.Mutex
	counts map[string]int64
	err    error
}

func (c *memCounter) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	if c.err != nil {
		return 0, c.err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.counts == nil {
		c.counts = map[string]int64{}
	}
	c.counts[key]++
	return c.counts[key], nil
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

type countingObserver struct{ n int }

func (o *countingObserver) IncRateLimited(string) { o.n++ }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
}

func doRequest(h http.Handler, remote string) int {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestLimiter_RejectsOverLimit(t *testing.T) {
	obs := &countingObserver{}
	l := New(&memCounter{}, Config{Limit: 2, Window: time.Minute}, nopLogger{}, obs)
	h := l.Middleware("create_appointment")(okHandler())

	assert.Equal(t, http.StatusCreated, doRequest(h, "10.0.0.1:5000"))
	assert.Equal(t, http.StatusCreated, doRequest(h, "10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(h, "10.0.0.1:5002"))
	assert.Equal(t, http.StatusCreated, doRequest(h, "10.0.0.2:5000"))
	assert.Equal(t, 1, obs.n)
}

func TestLimiter_CounterFailure(t *testing.T) {
	failing := &memCounter{err: errors.New("redis down")}

	open := New(failing, Config{Limit: 1, FailOpen: true}, nopLogger{}, nil).Middleware("x")(okHandler())
	assert.Equal(t, http.StatusCreated, doRequest(open, "10.0.0.1:1"))

	closed := New(failing, Config{Limit: 1}, nopLogger{}, nil).Middleware("x")(okHandler())
	assert.Equal(t, http.StatusServiceUnavailable, doRequest(closed, "10.0.0.1:1"))
}

func TestClientKey(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	assert.Equal(t, "203.0.113.7", ClientKey(req))
}
