package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса на собственном реестре.
// Методы безопасно вызывать на nil (метрики выключены).
type Metrics struct {
	registry *prometheus.Registry
	service  string

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueriesTotal    *prometheus.CounterVec
	DBQueryDuration   *prometheus.HistogramVec
	DBConnectionsOpen *prometheus.GaugeVec

	BookingsCreated      *prometheus.CounterVec
	SlotConflicts        *prometheus.CounterVec
	NotificationFailures *prometheus.CounterVec
	RateLimited          *prometheus.CounterVec
}

// New регистрирует все метрики сервиса
func New(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		service:  serviceName,

		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "route", "status"}),

		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "route"}),

		DBQueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		DBConnectionsOpen: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections",
			Help: "Database connection pool state",
		}, []string{"service", "state"}),

		BookingsCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Appointments committed",
		}, []string{"service"}),

		SlotConflicts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_slot_conflicts_total",
			Help: "Booking attempts rejected because the slot was already taken",
		}, []string{"service"}),

		NotificationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "notification_failures_total",
			Help: "Booking notifications that failed to dispatch",
		}, []string{"service", "transport"}),

		RateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter",
		}, []string{"service", "route"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueriesTotal,
		m.DBQueryDuration,
		m.DBConnectionsOpen,
		m.BookingsCreated,
		m.SlotConflicts,
		m.NotificationFailures,
		m.RateLimited,
	)

	return m
}

// Handler отдаёт метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry реестр метрик (нужен тестам)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(m.service, method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.service, method, route).Observe(duration.Seconds())
}

func (m *Metrics) ObserveDBQuery(operation string, err error, duration time.Duration) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.DBQueriesTotal.WithLabelValues(m.service, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(m.service, operation).Observe(duration.Seconds())
}

func (m *Metrics) SetDBConnections(state string, value int) {
	if m == nil {
		return
	}
	m.DBConnectionsOpen.WithLabelValues(m.service, state).Set(float64(value))
}

func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.WithLabelValues(m.service).Inc()
}

func (m *Metrics) IncSlotConflicts() {
	if m == nil {
		return
	}
	m.SlotConflicts.WithLabelValues(m.service).Inc()
}

func (m *Metrics) IncNotificationFailures(transport string) {
	if m == nil {
		return
	}
	m.NotificationFailures.WithLabelValues(m.service, transport).Inc()
}

func (m *Metrics) IncRateLimited(route string) {
	if m == nil {
		return
	}
	m.RateLimited.WithLabelValues(m.service, route).Inc()
}
