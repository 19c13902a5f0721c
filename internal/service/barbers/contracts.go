package barbers

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	ListActive(ctx context.Context) ([]*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
