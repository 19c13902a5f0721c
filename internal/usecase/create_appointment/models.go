package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модель запроса на запись. Поля приходят строками и проверяются use case.
type Request struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BarberID        string
	ServiceID       *string // ID услуги из каталога (опционально)
	AppointmentDate string  // "2026-03-10"
	AppointmentTime string  // "10:00"
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string // нормализованный, "+4512345678"
	BarberID        uuid.UUID
	BarberName      string
	ServiceID       *string
	ServiceName     string
	AppointmentDate types.Date
	AppointmentTime types.TimeString
	Status          string
	CreatedAt       time.Time
}

// validated проверенные и нормализованные поля запроса
type validated struct {
	name      string
	email     string
	phone     string
	barberID  uuid.UUID
	serviceID *string
	date      types.Date
	time      types.TimeString
}
