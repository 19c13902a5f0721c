package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics struct {
	mu       sync.Mutex
	failures map[string]int
}

func (m *countingMetrics) IncNotificationFailures(transport string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failures == nil {
		m.failures = map[string]int{}
	}
	m.failures[transport]++
}

func (m *countingMetrics) get(transport string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.failures[transport]
}

func appointment() *domain.Appointment {
	return &domain.Appointment{
		ID:              uuid.New(),
		CustomerName:    "Mads Jensen",
		CustomerEmail:   "mads@example.dk",
		CustomerPhone:   "+4512345678",
		BarberID:        uuid.New(),
		AppointmentDate: types.MustDate("2026-03-10"),
		AppointmentTime: types.MustTimeString("10:00"),
		Status:          domain.StatusConfirmed,
	}
}

func TestFunctionClient_Send(t *testing.T) {
	var got BookingNotification
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewFunctionClient(server.URL, "secret", time.Second, nil)
	a := appointment()

	require.NoError(t, client.Send(context.Background(), NewBookingNotification(a, "Ali", "Classic Haircut")))
	assert.Equal(t, "Mads Jensen", got.CustomerName)
	assert.Equal(t, "2026-03-10", got.AppointmentDate)
	assert.Equal(t, "10:00", got.AppointmentTime)
	assert.Equal(t, "Ali", got.BarberName)
}

func TestFunctionClient_SendFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewFunctionClient(server.URL, "", time.Second, nil)

	err := client.Send(context.Background(), NewBookingNotification(appointment(), "Ali", ""))
	require.ErrorIs(t, err, ErrNotificationFailed)
	require.ErrorIs(t, err, ErrInvalidResponse)
}

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestKafkaPublisher_Send(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewKafkaPublisher(writer, "")
	a := appointment()

	require.NoError(t, publisher.Send(context.Background(), NewBookingNotification(a, "Ali", "")))
	require.Len(t, writer.msgs, 1)

	msg := writer.msgs[0]
	assert.Equal(t, EventBookingConfirmed, msg.Topic)
	assert.Equal(t, a.ID.String(), string(msg.Key))

	var payload BookingNotification
	require.NoError(t, json.Unmarshal(msg.Value, &payload))
	assert.Equal(t, a.ID, payload.AppointmentID)

	writer.err = errors.New("broker down")
	require.ErrorIs(t, publisher.Send(context.Background(), NewBookingNotification(a, "Ali", "")), ErrNotificationFailed)
}

type fakeSender struct {
	name  string
	err   error
	mu    sync.Mutex
	calls int
	block chan struct{}
}

func (s *fakeSender) Name() string { return s.name }

func (s *fakeSender) Send(ctx context.Context, _ BookingNotification) error {
	if s.block != nil {
		<-s.block
	}
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return s.err
}

func TestDispatcher_NotifyBooking(t *testing.T) {
	ok := &fakeSender{name: "function"}
	broken := &fakeSender{name: "kafka", err: ErrNotificationFailed}
	metrics := &countingMetrics{}
	d := NewDispatcher([]Sender{ok, broken}, time.Second, 4, nopLogger{}, metrics)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, d.NotifyBooking(ctx, appointment(), "Ali", ""))
	cancel()

	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, 1, ok.calls)
	assert.Equal(t, 1, broken.calls)
	assert.Equal(t, 0, metrics.get("function"))
	assert.Equal(t, 1, metrics.get("kafka"))

	require.ErrorIs(t, d.NotifyBooking(context.Background(), appointment(), "Ali", ""), ErrDispatcherClosed)
}

func TestDispatcher_QueueFull(t *testing.T) {
	slow := &fakeSender{name: "function", block: make(chan struct{})}
	metrics := &countingMetrics{}
	d := NewDispatcher([]Sender{slow}, time.Second, 1, nopLogger{}, metrics)

	require.NoError(t, d.NotifyBooking(context.Background(), appointment(), "Ali", ""))
	require.NoError(t, d.NotifyBooking(context.Background(), appointment(), "Ali", ""))
	assert.Equal(t, 1, metrics.get("function"))

	close(slow.block)
	require.NoError(t, d.Close(context.Background()))
	assert.Equal(t, 1, slow.calls)
}

func TestNoop(t *testing.T) {
	var n Noop
	require.NoError(t, n.NotifyBooking(context.Background(), appointment(), "Ali", ""))
	require.NoError(t, n.Close(context.Background()))
}
