package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from AppointmentStatus
		to   AppointmentStatus
		want bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusCancelled, StatusConfirmed, true},
		{StatusCancelled, StatusCompleted, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.want, a.CanTransitionTo(tt.to))
		})
	}
}

func TestAvailabilityWindow_Validate(t *testing.T) {
	w := AvailabilityWindow{
		FromDate:  types.MustDate("2026-03-01"),
		ToDate:    types.MustDate("2026-03-31"),
		StartTime: types.MustTimeString("09:00"),
		EndTime:   types.MustTimeString("17:00"),
	}
	require.NoError(t, w.Validate())
	assert.True(t, w.Covers(types.MustDate("2026-03-31")))
	assert.False(t, w.Covers(types.MustDate("2026-04-01")))

	reversed := w
	reversed.FromDate, reversed.ToDate = w.ToDate, w.FromDate
	require.ErrorIs(t, reversed.Validate(), ErrInvalidDateRange)

	empty := w
	empty.EndTime = w.StartTime
	require.ErrorIs(t, empty.Validate(), ErrInvalidTimeRange)
}

func TestService_Localized(t *testing.T) {
	s := Service{Name: "Haircut", NameDa: "Klipning", Description: "Classic cut"}

	assert.Equal(t, "Klipning", s.LocalizedName("da"))
	assert.Equal(t, "Haircut", s.LocalizedName("en"))
	assert.Equal(t, "Classic cut", s.LocalizedDescription("da"))
}
