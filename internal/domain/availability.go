package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// AvailabilityWindow рабочее окно барбера: диапазон дат и ежедневные часы.
// Естественный ключ (BarberID, FromDate, ToDate).
type AvailabilityWindow struct {
	ID          uuid.UUID
	BarberID    uuid.UUID
	FromDate    types.Date
	ToDate      types.Date
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Covers попадает ли дата в окно (границы включительно)
func (w *AvailabilityWindow) Covers(date types.Date) bool {
	return date.Between(w.FromDate, w.ToDate)
}

// Validate проверяет FromDate <= ToDate и StartTime < EndTime
func (w *AvailabilityWindow) Validate() error {
	if err := w.FromDate.Validate(); err != nil {
		return err
	}
	if err := w.ToDate.Validate(); err != nil {
		return err
	}
	if w.ToDate.Before(w.FromDate) {
		return ErrInvalidDateRange
	}
	if err := w.StartTime.Validate(); err != nil {
		return err
	}
	if err := w.EndTime.Validate(); err != nil {
		return err
	}
	if !w.StartTime.IsBefore(w.EndTime) {
		return ErrInvalidTimeRange
	}
	return nil
}
