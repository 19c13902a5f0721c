// Package slots вычисляет сетку слотов барбера на день:
// генерация по окну, объединение окон и разметка занятых и прошедших слотов.
package slots

import (
	"iter"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/types"
)

// Generate отдаёт времена от start включительно до end исключительно с шагом SlotIntervalMinutes.
// При start >= end последовательность пуста. Каждый range начинает заново.
func Generate(start, end types.TimeString) iter.Seq[types.TimeString] {
	return func(yield func(types.TimeString) bool) {
		from, to := start.Minutes(), end.Minutes()
		if from < 0 || to < 0 {
			return
		}
		for m := from; m < to; m += domain.SlotIntervalMinutes {
			ts, err := types.FromMinutes(m)
			if err != nil {
				return
			}
			if !yield(ts) {
				return
			}
		}
	}
}
