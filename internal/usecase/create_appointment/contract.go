package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	FindConfirmed(ctx context.Context, barberID uuid.UUID, date types.Date, t types.TimeString) (*domain.Appointment, error)
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
}

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	ListForDate(ctx context.Context, barberID uuid.UUID, date types.Date) ([]*domain.AvailabilityWindow, error)
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
}

// ServiceCatalog каталог услуг
type ServiceCatalog interface {
	Get(id string) (*domain.Service, error)
}

// Notifier фоновая отправка уведомления о записи
type Notifier interface {
	NotifyBooking(ctx context.Context, a *domain.Appointment, barberName, serviceName string) error
}

// Metrics доменные счётчики
type Metrics interface {
	IncBookingsCreated()
	IncSlotConflicts()
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
