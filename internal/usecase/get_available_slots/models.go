package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модель запроса на получение слотов барбера
type Request struct {
	BarberID uuid.UUID
	Date     types.Date
}

// Response модель ответа со списком слотов
type Response struct {
	BarberID       uuid.UUID
	Date           types.Date
	Slots          []domain.TimeSlot // в хронологическом порядке
	AvailableCount int
	TotalCount     int
}
