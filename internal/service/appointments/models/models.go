package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Поля сортировки списка записей
const (
	SortByDate     = "date"
	SortByTime     = "time"
	SortByCustomer = "customer"
	SortByBarber   = "barber"
	SortByStatus   = "status"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Request модели

// ListRequest запрос списка записей для панели администратора.
// Пустые поля означают значения по умолчанию: scope=all, sortBy=date, order=desc.
type ListRequest struct {
	Scope    string     `json:"scope,omitempty"`
	Status   *string    `json:"status,omitempty"`
	BarberID *uuid.UUID `json:"barberId,omitempty"`
	SortBy   string     `json:"sortBy,omitempty"`
	Order    string     `json:"order,omitempty"`
}

// UpdateStatusRequest запрос на смену статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse запись с именем барбера
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	BarberID        uuid.UUID `json:"barberId"`
	BarberName      string    `json:"barberName"`
	ServiceType     *string   `json:"serviceType,omitempty"`
	AppointmentDate string    `json:"appointmentDate"` // "2026-03-10"
	AppointmentTime string    `json:"appointmentTime"` // "10:00"
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// DashboardStatsResponse сводка для панели администратора
type DashboardStatsResponse struct {
	Date                  string `json:"date"`
	TodayTotal            int    `json:"todayTotal"`
	TodayConfirmed        int    `json:"todayConfirmed"`
	UpcomingWeek          int    `json:"upcomingWeek"`
	ActiveBarbers         int    `json:"activeBarbers"`
	BarbersAvailableToday int    `json:"barbersAvailableToday"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment, barberName string) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		CustomerName:    a.CustomerName,
		CustomerEmail:   a.CustomerEmail,
		CustomerPhone:   a.CustomerPhone,
		BarberID:        a.BarberID,
		BarberName:      barberName,
		ServiceType:     a.ServiceType,
		AppointmentDate: a.AppointmentDate.String(),
		AppointmentTime: a.AppointmentTime.String(),
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
	}
}
