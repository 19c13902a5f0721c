package slots

import (
	"slices"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Resolve собирает слоты барбера на дату из всех подходящих окон.
// Окно подходит, если совпадает барбер, IsAvailable и дата в диапазоне окна.
// Результат без повторов, по возрастанию; пересекающиеся окна сливаются.
func Resolve(windows []*domain.AvailabilityWindow, barberID uuid.UUID, date types.Date) []types.TimeString {
	seen := make(map[types.TimeString]struct{})
	result := make([]types.TimeString, 0)

	for _, w := range windows {
		if w == nil || w.BarberID != barberID || !w.IsAvailable || !w.Covers(date) {
			continue
		}
		for ts := range Generate(w.StartTime, w.EndTime) {
			if _, ok := seen[ts]; ok {
				continue
			}
			seen[ts] = struct{}{}
			result = append(result, ts)
		}
	}

	slices.SortFunc(result, func(a, b types.TimeString) int {
		return a.Minutes() - b.Minutes()
	})

	return result
}
