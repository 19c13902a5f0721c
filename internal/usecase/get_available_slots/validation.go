package get_available_slots

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BarberID == uuid.Nil {
		return fmt.Errorf("%w: barberId is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate дата не раньше сегодняшней в зоне салона
func validateDate(date types.Date, now time.Time) error {
	if date.Before(types.DateOf(now)) {
		return ErrInvalidDate
	}
	return nil
}
