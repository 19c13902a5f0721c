package availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// AvailabilityRepository интерфейс репозитория окон доступности
type AvailabilityRepository interface {
	Create(ctx context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	Update(ctx context.Context, w *domain.AvailabilityWindow) (*domain.AvailabilityWindow, error)
	GetByKey(ctx context.Context, barberID uuid.UUID, from, to types.Date) (*domain.AvailabilityWindow, error)
	ListByBarber(ctx context.Context, barberID uuid.UUID) ([]*domain.AvailabilityWindow, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Barber, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
