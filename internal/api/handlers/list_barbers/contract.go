package list_barbers

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/service/barbers"
)

type BarberService interface {
	ListActive(ctx context.Context) ([]barbers.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
