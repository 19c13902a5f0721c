package slots

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Classify размечает слоты: сначала занятые, затем прошедшие (только для сегодняшней даты,
// слот не позже текущей минуты). Порядок входа сохраняется, причина не более одной.
func Classify(raw, booked []types.TimeString, date types.Date, now time.Time) []domain.TimeSlot {
	bookedSet := make(map[types.TimeString]struct{}, len(booked))
	for _, b := range booked {
		bookedSet[b] = struct{}{}
	}

	isToday := date == types.DateOf(now)
	nowMinutes := now.Hour()*60 + now.Minute()

	result := make([]domain.TimeSlot, 0, len(raw))
	for _, ts := range raw {
		slot := domain.TimeSlot{Time: ts, Available: true}

		if _, ok := bookedSet[ts]; ok {
			slot.Available = false
			slot.Booked = true
			slot.Reason = domain.ReasonAlreadyBooked
		} else if isToday && ts.Minutes() <= nowMinutes {
			slot.Available = false
			slot.IsPast = true
			slot.Reason = domain.ReasonPastTime
		}

		result = append(result, slot)
	}

	return result
}

// Offered входит ли время в список доступных слотов
func Offered(classified []domain.TimeSlot, t types.TimeString) bool {
	for _, s := range classified {
		if s.Time == t {
			return s.Available
		}
	}
	return false
}

// CountAvailable количество доступных слотов
func CountAvailable(classified []domain.TimeSlot) int {
	n := 0
	for _, s := range classified {
		if s.Available {
			n++
		}
	}
	return n
}
