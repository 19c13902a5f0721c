package delete_availability

import (
	"context"

	"github.com/google/uuid"
)

type AvailabilityService interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
