package notifier

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Noop не отправляет ничего, когда транспорты не настроены
type Noop struct{}

// NotifyBooking ничего не делает
func (Noop) NotifyBooking(context.Context, *domain.Appointment, string, string) error {
	return nil
}

// Close ничего не делает
func (Noop) Close(context.Context) error {
	return nil
}
