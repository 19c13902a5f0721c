package create_appointment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/catalog"
	"github.com/m04kA/barbershop-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	availabilityRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/availability"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	"github.com/m04kA/barbershop-booking/internal/infra/storage/storagetest"
	"github.com/m04kA/barbershop-booking/pkg/clock"
	"github.com/m04kA/barbershop-booking/pkg/ptr"
	"github.com/m04kA/barbershop-booking/pkg/txmanager"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type countingMetrics struct {
	created   int
	conflicts int
}

func (m *countingMetrics) IncBookingsCreated() { m.created++ }
func (m *countingMetrics) IncSlotConflicts()   { m.conflicts++ }

type recordingNotifier struct {
	mu     sync.Mutex
	sent   []string
	err    error
	barber string
}

func (n *recordingNotifier) NotifyBooking(_ context.Context, a *domain.Appointment, barberName, _ string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, a.ID.String())
	n.barber = barberName
	return n.err
}

// racingRepo не видит чужих записей при проверке, как вторая из двух одновременных транзакций
type racingRepo struct {
	*appointmentRepo.Repository
}

func (r racingRepo) FindConfirmed(context.Context, uuid.UUID, types.Date, types.TimeString) (*domain.Appointment, error) {
	return nil, appointmentRepo.ErrAppointmentNotFound
}

const services = `[{"id": "classic-cut", "name": "Classic Haircut", "price": 300, "category": "men"}]`

// 2026-03-10 14:32 UTC
var now = time.Date(2026, 3, 10, 14, 32, 0, 0, time.UTC)

type fixture struct {
	barber   uuid.UUID
	inactive uuid.UUID
	appts    *appointmentRepo.Repository
	metrics  *countingMetrics
	notifier *recordingNotifier
	build    func(repo AppointmentRepository) *UseCase
	uc       *UseCase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := storagetest.Open(t)
	ctx := context.Background()

	f := &fixture{
		barber:   storagetest.InsertBarber(t, db, "Ali", true),
		inactive: storagetest.InsertBarber(t, db, "Lars", false),
		appts:    appointmentRepo.NewRepository(db, storagetest.Builder()),
		metrics:  &countingMetrics{},
		notifier: &recordingNotifier{},
	}

	windows := availabilityRepo.NewRepository(db, storagetest.Builder())
	_, err := windows.Create(ctx, &domain.AvailabilityWindow{
		BarberID:    f.barber,
		FromDate:    types.MustDate("2026-03-01"),
		ToDate:      types.MustDate("2026-03-31"),
		StartTime:   types.MustTimeString("09:00"),
		EndTime:     types.MustTimeString("18:00"),
		IsAvailable: true,
	})
	require.NoError(t, err)

	cat, err := catalog.Parse([]byte(services), nopLogger{})
	require.NoError(t, err)

	tm := txmanager.NewTransactionManager(db, txmanager.WithDefaultIsolationOnly())
	f.build = func(repo AppointmentRepository) *UseCase {
		return NewUseCase(repo, windows, barberRepo.NewRepository(db, storagetest.Builder()), cat, f.notifier, f.metrics, tm,
			clock.Fixed(now), nopLogger{}, "+45")
	}
	f.uc = f.build(f.appts)
	return f
}

func (f *fixture) request(date, at string) *Request {
	return &Request{
		CustomerName:    "Mads Jensen",
		CustomerEmail:   "mads@example.dk",
		CustomerPhone:   "12 34 56 78",
		BarberID:        f.barber.String(),
		ServiceID:       ptr.Ptr("classic-cut"),
		AppointmentDate: date,
		AppointmentTime: at,
	}
}

func TestExecute_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Execute(ctx, f.request("2026-03-17", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, "+4512345678", resp.CustomerPhone)
	assert.Equal(t, "Ali", resp.BarberName)
	assert.Equal(t, "Classic Haircut", resp.ServiceName)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)

	found, err := f.appts.FindConfirmed(ctx, f.barber, types.MustDate("2026-03-17"), types.MustTimeString("10:00"))
	require.NoError(t, err)
	assert.Equal(t, resp.ID, found.ID)

	assert.Equal(t, 1, f.metrics.created)
	assert.Equal(t, []string{resp.ID.String()}, f.notifier.sent)
	assert.Equal(t, "Ali", f.notifier.barber)
}

func TestExecute_SecondSubmissionConflicts(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, f.request("2026-03-17", "10:00"))
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, f.request("2026-03-17", "10:00"))
	require.ErrorIs(t, err, ErrSlotConflict)
	assert.Equal(t, 1, f.metrics.conflicts)
	assert.Len(t, f.notifier.sent, 1)
}

func TestExecute_RaceClosedByUniqueIndex(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, f.request("2026-03-17", "10:00"))
	require.NoError(t, err)

	racing := f.build(racingRepo{f.appts})
	_, err = racing.Execute(ctx, f.request("2026-03-17", "10:00"))
	require.ErrorIs(t, err, ErrSlotConflict)

	list, err := f.appts.ListConfirmedTimes(ctx, f.barber, types.MustDate("2026-03-17"))
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"10:00"}, list)
}

func TestExecute_SlotNotOffered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name string
		date string
		at   string
	}{
		{name: "outside window", date: "2026-03-17", at: "18:00"},
		{name: "off grid", date: "2026-03-17", at: "10:15"},
		{name: "no window that day", date: "2026-04-01", at: "10:00"},
		{name: "already started today", date: "2026-03-10", at: "14:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(ctx, f.request(tt.date, tt.at))
			require.ErrorIs(t, err, ErrSlotNotOffered)
		})
	}

	_, err := f.uc.Execute(ctx, f.request("2026-03-10", "15:00"))
	require.NoError(t, err)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(r *Request)
		field  string
	}{
		{name: "short name", mutate: func(r *Request) { r.CustomerName = " A " }, field: "customerName"},
		{name: "bad email", mutate: func(r *Request) { r.CustomerEmail = "mads@" }, field: "customerEmail"},
		{name: "short phone", mutate: func(r *Request) { r.CustomerPhone = "+45 1234" }, field: "customerPhone"},
		{name: "letters in phone", mutate: func(r *Request) { r.CustomerPhone = "12 34 AB 78" }, field: "customerPhone"},
		{name: "bad barber", mutate: func(r *Request) { r.BarberID = "ali" }, field: "barberId"},
		{name: "bad date", mutate: func(r *Request) { r.AppointmentDate = "17/03/2026" }, field: "appointmentDate"},
		{name: "past date", mutate: func(r *Request) { r.AppointmentDate = "2026-03-09" }, field: "appointmentDate"},
		{name: "bad time", mutate: func(r *Request) { r.AppointmentTime = "ten" }, field: "appointmentTime"},
		{name: "unknown service", mutate: func(r *Request) { r.ServiceID = ptr.Ptr("perm") }, field: "serviceId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := f.request("2026-03-17", "10:00")
			tt.mutate(req)

			_, err := f.uc.Execute(ctx, req)
			require.ErrorIs(t, err, ErrInvalidInput)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestExecute_Barber(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	req := f.request("2026-03-17", "10:00")
	req.BarberID = f.inactive.String()
	_, err := f.uc.Execute(ctx, req)
	require.ErrorIs(t, err, ErrBarberNotFound)

	req.BarberID = uuid.NewString()
	_, err = f.uc.Execute(ctx, req)
	require.ErrorIs(t, err, ErrBarberNotFound)
}

func TestExecute_NotificationFailureIgnored(t *testing.T) {
	f := newFixture(t)
	f.notifier.err = errors.New("queue full")

	resp, err := f.uc.Execute(context.Background(), f.request("2026-03-17", "11:00"))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, resp.ID)
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{raw: "12345678", want: "+4512345678", ok: true},
		{raw: "+45 12 34 56 78", want: "+4512345678", ok: true},
		{raw: "0046 (70) 123-45-67", want: "+46701234567", ok: true},
		{raw: "+1 555.123.4567", want: "+15551234567", ok: true},
		{raw: "1234", ok: false},
		{raw: "+1234567890123456", ok: false},
		{raw: "+45 12x45678", ok: false},
		{raw: "", ok: false},
	}

	for _, tt := range tests {
		got, ok := normalizePhone(tt.raw, "+45")
		assert.Equal(t, tt.ok, ok, tt.raw)
		assert.Equal(t, tt.want, got, tt.raw)
	}
}
