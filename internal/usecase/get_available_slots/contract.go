package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	// ListForDate активные окна барбера, покрывающие дату
	ListForDate(ctx context.Context, barberID uuid.UUID, date types.Date) ([]*domain.AvailabilityWindow, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// ListConfirmedTimes занятые времена барбера на дату
	ListConfirmedTimes(ctx context.Context, barberID uuid.UUID, date types.Date) ([]types.TimeString, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
