package domain

import "github.com/m04kA/barbershop-booking/pkg/types"

// SlotReason причина недоступности слота
type SlotReason string

const (
	ReasonNone          SlotReason = ""
	ReasonAlreadyBooked SlotReason = "already booked"
	ReasonPastTime      SlotReason = "past time"
)

// TimeSlot слот для показа клиенту. Вычисляется, не хранится.
type TimeSlot struct {
	Time      types.TimeString
	Available bool
	Booked    bool
	IsPast    bool
	Reason    SlotReason
}
