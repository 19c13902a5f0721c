package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	barberRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/barber"
	"github.com/m04kA/barbershop-booking/pkg/clock"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeAvailability struct {
	windows []*domain.AvailabilityWindow
	err     error
}

func (f *fakeAvailability) ListForDate(_ context.Context, barberID uuid.UUID, date types.Date) ([]*domain.AvailabilityWindow, error) {
	return f.windows, f.err
}

type fakeAppointments struct {
	booked []types.TimeString
	err    error
}

func (f *fakeAppointments) ListConfirmedTimes(context.Context, uuid.UUID, types.Date) ([]types.TimeString, error) {
	return f.booked, f.err
}

type fakeBarbers map[uuid.UUID]*domain.Barber

func (f fakeBarbers) GetByID(_ context.Context, id uuid.UUID) (*domain.Barber, error) {
	b, ok := f[id]
	if !ok {
		return nil, barberRepo.ErrBarberNotFound
	}
	return b, nil
}

// 2026-03-10 вторник
var now = time.Date(2026, 3, 10, 14, 32, 0, 0, time.UTC)

type fixture struct {
	barber       uuid.UUID
	availability *fakeAvailability
	appointments *fakeAppointments
	barbers      fakeBarbers
	uc           *UseCase
}

func newFixture(start, end string) *fixture {
	barber := uuid.New()
	f := &fixture{
		barber: barber,
		availability: &fakeAvailability{windows: []*domain.AvailabilityWindow{{
			ID:          uuid.New(),
			BarberID:    barber,
			FromDate:    types.MustDate("2026-03-01"),
			ToDate:      types.MustDate("2026-03-31"),
			StartTime:   types.MustTimeString(start),
			EndTime:     types.MustTimeString(end),
			IsAvailable: true,
		}}},
		appointments: &fakeAppointments{},
		barbers:      fakeBarbers{barber: {ID: barber, Name: "Ali", IsActive: true}},
	}
	f.uc = NewUseCase(f.availability, f.appointments, f.barbers, clock.Fixed(now), nopLogger{})
	return f
}

func times(slots []domain.TimeSlot, pred func(domain.TimeSlot) bool) []string {
	var out []string
	for _, s := range slots {
		if pred(s) {
			out = append(out, s.Time.String())
		}
	}
	return out
}

func TestExecute_FutureDayAllAvailable(t *testing.T) {
	f := newFixture("09:00", "12:00")

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: f.barber, Date: types.MustDate("2026-03-17")})
	require.NoError(t, err)

	all := times(resp.Slots, func(domain.TimeSlot) bool { return true })
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30", "11:00", "11:30"}, all)
	assert.Equal(t, 6, resp.AvailableCount)
	assert.Equal(t, 6, resp.TotalCount)
}

func TestExecute_BookedSlot(t *testing.T) {
	f := newFixture("09:00", "12:00")
	f.appointments.booked = []types.TimeString{"10:00"}

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: f.barber, Date: types.MustDate("2026-03-17")})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 6)
	slot := resp.Slots[2]
	assert.Equal(t, types.TimeString("10:00"), slot.Time)
	assert.False(t, slot.Available)
	assert.True(t, slot.Booked)
	assert.Equal(t, domain.ReasonAlreadyBooked, slot.Reason)
	assert.Equal(t, 5, resp.AvailableCount)
}

func TestExecute_TodayPastSlots(t *testing.T) {
	f := newFixture("09:00", "18:00")

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: f.barber, Date: types.MustDate("2026-03-10")})
	require.NoError(t, err)

	past := times(resp.Slots, func(s domain.TimeSlot) bool { return s.IsPast })
	available := times(resp.Slots, func(s domain.TimeSlot) bool { return s.Available })

	// текущая минута 14:32, слот 14:30 уже начался
	assert.Equal(t, "09:00", past[0])
	assert.Equal(t, "14:30", past[len(past)-1])
	assert.Equal(t, []string{"15:00", "15:30", "16:00", "16:30", "17:00", "17:30"}, available)
}

func TestExecute_NoWindow(t *testing.T) {
	f := newFixture("09:00", "12:00")
	f.availability.windows = nil

	resp, err := f.uc.Execute(context.Background(), &Request{BarberID: f.barber, Date: types.MustDate("2026-03-17")})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
	assert.Zero(t, resp.TotalCount)
}

func TestExecute_Errors(t *testing.T) {
	f := newFixture("09:00", "12:00")
	ctx := context.Background()

	_, err := f.uc.Execute(ctx, &Request{BarberID: f.barber, Date: types.MustDate("2026-03-09")})
	require.ErrorIs(t, err, ErrInvalidDate)

	_, err = f.uc.Execute(ctx, &Request{Date: types.MustDate("2026-03-17")})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.uc.Execute(ctx, &Request{BarberID: uuid.New(), Date: types.MustDate("2026-03-17")})
	require.ErrorIs(t, err, ErrBarberNotFound)

	f.barbers[f.barber].IsActive = false
	_, err = f.uc.Execute(ctx, &Request{BarberID: f.barber, Date: types.MustDate("2026-03-17")})
	require.ErrorIs(t, err, ErrBarberNotFound)

	f.barbers[f.barber].IsActive = true
	f.appointments.err = errors.New("connection reset")
	_, err = f.uc.Execute(ctx, &Request{BarberID: f.barber, Date: types.MustDate("2026-03-17")})
	require.ErrorIs(t, err, ErrStoreUnavailable)
}
