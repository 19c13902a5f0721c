package create_appointment

import (
	"time"

	"github.com/google/uuid"

	createAppointment "github.com/m04kA/barbershop-booking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	CustomerName    string  `json:"customerName"`
	CustomerEmail   string  `json:"customerEmail"`
	CustomerPhone   string  `json:"customerPhone"`
	BarberID        string  `json:"barberId"`
	ServiceID       *string `json:"serviceId,omitempty"`
	AppointmentDate string  `json:"appointmentDate"` // "2026-03-10"
	AppointmentTime string  `json:"appointmentTime"` // "10:00"
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() *createAppointment.Request {
	return &createAppointment.Request{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		BarberID:        r.BarberID,
		ServiceID:       r.ServiceID,
		AppointmentDate: r.AppointmentDate,
		AppointmentTime: r.AppointmentTime,
	}
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	BarberID        uuid.UUID `json:"barberId"`
	BarberName      string    `json:"barberName"`
	ServiceID       *string   `json:"serviceId,omitempty"`
	ServiceName     string    `json:"serviceName,omitempty"`
	AppointmentDate string    `json:"appointmentDate"`
	AppointmentTime string    `json:"appointmentTime"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		CustomerName:    resp.CustomerName,
		CustomerEmail:   resp.CustomerEmail,
		CustomerPhone:   resp.CustomerPhone,
		BarberID:        resp.BarberID,
		BarberName:      resp.BarberName,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		AppointmentDate: resp.AppointmentDate.String(),
		AppointmentTime: resp.AppointmentTime.String(),
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt,
	}
}
