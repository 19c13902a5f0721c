package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Request модели

// UpsertRequest окно доступности барбера. Ключ окна (барбер, fromDate, toDate):
// существующее окно перезаписывается, иначе создаётся новое.
type UpsertRequest struct {
	FromDate    string `json:"fromDate"`  // "2026-03-01"
	ToDate      string `json:"toDate"`    // "2026-03-31"
	StartTime   string `json:"startTime"` // "09:00"
	EndTime     string `json:"endTime"`   // "17:00"
	IsAvailable bool   `json:"isAvailable"`
}

// ToDomainWindow разбирает и проверяет поля запроса
func (r *UpsertRequest) ToDomainWindow(barberID uuid.UUID) (*domain.AvailabilityWindow, error) {
	from, err := types.ParseDate(r.FromDate)
	if err != nil {
		return nil, fmt.Errorf("fromDate: %w", err)
	}
	to, err := types.ParseDate(r.ToDate)
	if err != nil {
		return nil, fmt.Errorf("toDate: %w", err)
	}
	start, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("startTime: %w", err)
	}
	end, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("endTime: %w", err)
	}

	w := &domain.AvailabilityWindow{
		BarberID:    barberID,
		FromDate:    from,
		ToDate:      to,
		StartTime:   start,
		EndTime:     end,
		IsAvailable: r.IsAvailable,
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}

// Response модели

// WindowResponse окно доступности
type WindowResponse struct {
	ID          uuid.UUID `json:"id"`
	BarberID    uuid.UUID `json:"barberId"`
	FromDate    string    `json:"fromDate"`
	ToDate      string    `json:"toDate"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// BarberAvailabilityResponse окна барбера и признак работы сегодня
type BarberAvailabilityResponse struct {
	BarberID       uuid.UUID        `json:"barberId"`
	AvailableToday bool             `json:"availableToday"`
	Windows        []WindowResponse `json:"windows"`
}

// FromDomainWindow конвертирует domain модель в DTO
func FromDomainWindow(w *domain.AvailabilityWindow) *WindowResponse {
	if w == nil {
		return nil
	}

	return &WindowResponse{
		ID:          w.ID,
		BarberID:    w.BarberID,
		FromDate:    w.FromDate.String(),
		ToDate:      w.ToDate.String(),
		StartTime:   w.StartTime.String(),
		EndTime:     w.EndTime.String(),
		IsAvailable: w.IsAvailable,
		CreatedAt:   w.CreatedAt,
		UpdatedAt:   w.UpdatedAt,
	}
}
