package list_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/service/availability/models"
)

type AvailabilityService interface {
	ListByBarber(ctx context.Context, barberID uuid.UUID) (*models.BarberAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
