package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/pkg/types"
)

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment запись клиента к барберу.
// Среди записей со статусом confirmed тройка (BarberID, AppointmentDate, AppointmentTime) уникальна.
type Appointment struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	BarberID        uuid.UUID
	ServiceType     *string // ID услуги из каталога
	AppointmentDate types.Date
	AppointmentTime types.TimeString
	Status          AppointmentStatus
	CreatedAt       time.Time
}

// IsValid проверяет, что статус известен
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// allowedTransitions допустимые переходы статусов из панели администратора
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCancelled: {StatusConfirmed},
	StatusCompleted: {},
}

// CanTransitionTo можно ли перевести запись в статус next
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	for _, s := range allowedTransitions[a.Status] {
		if s == next {
			return true
		}
	}
	return false
}

// OccupiesSlot занимает ли запись слот барбера
func (a *Appointment) OccupiesSlot() bool {
	return a.Status == StatusConfirmed
}

// AppointmentScope вкладки панели администратора
type AppointmentScope string

const (
	ScopeToday    AppointmentScope = "today"
	ScopeUpcoming AppointmentScope = "upcoming"
	ScopeAll      AppointmentScope = "all"
)

// AppointmentsFilter фильтр списка записей
type AppointmentsFilter struct {
	FromDate *types.Date // включительно
	ToDate   *types.Date // включительно
	BarberID *uuid.UUID
	Status   *AppointmentStatus
}
