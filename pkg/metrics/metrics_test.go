package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("barbershop-booking")

	m.IncBookingsCreated()
	m.IncBookingsCreated()
	m.IncSlotConflicts()
	m.IncNotificationFailures("function")
	m.ObserveDBQuery("exec", errors.New("boom"), 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("barbershop-booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotConflicts.WithLabelValues("barbershop-booking")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationFailures.WithLabelValues("barbershop-booking", "function")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("barbershop-booking", "exec", "error")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingsCreated()
		m.IncSlotConflicts()
		m.IncNotificationFailures("kafka")
		m.ObserveHTTPRequest(http.MethodGet, "/x", 200, time.Second)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("barbershop-booking")
	m.ObserveHTTPRequest(http.MethodPost, "/api/v1/appointments", http.StatusCreated, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `http_requests_total{method="POST",route="/api/v1/appointments",service="barbershop-booking",status="201"} 1`)
}
