package notifier

import (
	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// BookingNotification тело уведомления о подтверждённой записи
type BookingNotification struct {
	AppointmentID   uuid.UUID `json:"appointmentId"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	BarberName      string    `json:"barberName"`
	ServiceName     string    `json:"serviceName,omitempty"`
}

// NewBookingNotification собирает уведомление из записи
func NewBookingNotification(a *domain.Appointment, barberName, serviceName string) BookingNotification {
	return BookingNotification{
		AppointmentID:   a.ID,
		CustomerName:    a.CustomerName,
		CustomerEmail:   a.CustomerEmail,
		CustomerPhone:   a.CustomerPhone,
		AppointmentDate: a.AppointmentDate.String(),
		AppointmentTime: a.AppointmentTime.String(),
		BarberName:      barberName,
		ServiceName:     serviceName,
	}
}
