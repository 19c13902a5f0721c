package get_available_slots

import (
	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/locale"
	getAvailableSlots "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	BarberID       uuid.UUID `json:"barberId"`
	Date           string    `json:"date"`
	AvailableCount int       `json:"availableCount"`
	TotalCount     int       `json:"totalCount"`
	Slots          []Slot    `json:"slots"`
}

// Slot модель временного слота
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
	IsPast    bool   `json:"isPast"`
	Reason    string `json:"reason,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response, lang locale.Lang) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:      slot.Time.String(),
			Available: slot.Available,
			Booked:    slot.Booked,
			IsPast:    slot.IsPast,
			Reason:    locale.SlotReason(lang, slot.Reason),
		}
	}

	return &AvailableSlotsResponse{
		BarberID:       resp.BarberID,
		Date:           resp.Date.String(),
		AvailableCount: resp.AvailableCount,
		TotalCount:     resp.TotalCount,
		Slots:          slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(barberIDStr, dateStr string) (*getAvailableSlots.Request, error) {
	barberID, err := uuid.Parse(barberIDStr)
	if err != nil {
		return nil, errInvalidBarberID
	}

	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	return &getAvailableSlots.Request{
		BarberID: barberID,
		Date:     date,
	}, nil
}
