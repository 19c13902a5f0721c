package upsert_availability

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/service/availability/models"
)

type AvailabilityService interface {
	Upsert(ctx context.Context, barberID uuid.UUID, req *models.UpsertRequest) (*models.WindowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
