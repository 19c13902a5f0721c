package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/barbershop-booking/pkg/logger"
)

func TestReady(t *testing.T) {
	h := NewHandler(logger.Discard())
	h.Register("database", PingFunc(func(context.Context) error { return nil }))

	rec := httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","checks":{"database":"ok"}}`, rec.Body.String())

	h.Register("redis", PingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }))

	rec = httptest.NewRecorder()
	h.Ready(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unavailable","checks":{"database":"ok","redis":"unavailable"}}`, rec.Body.String())
}

func TestLive(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(logger.Discard()).Live(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
