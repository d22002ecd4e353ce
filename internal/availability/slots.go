package availability

import (
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// GenerateSlots генерирует упорядоченный список начал слотов на день.
//
// Слоты идут от открытия до закрытия (не включая) с шагом SlotDurationMinutes.
// Слот пропускается, если его начало попадает в перерыв [start, end) или в окно
// частичного закрытия. Последний слот может выходить за время закрытия:
// длительность конкретной услуги здесь не проверяется.
func GenerateSlots(hours domain.BusinessHours, closure domain.ClosureResult) ([]types.TimeOfDay, error) {
	// Закрыто на весь день - пустой список, это не ошибка
	if closure.IsFullDay() {
		return []types.TimeOfDay{}, nil
	}

	if hours.SlotDurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: slot duration must be positive, got %d",
			domain.ErrInvalidConfiguration, hours.SlotDurationMinutes)
	}

	if hours.OpeningTime > hours.ClosingTime {
		return nil, fmt.Errorf("%w: opening time %s is after closing time %s",
			domain.ErrInvalidConfiguration, hours.OpeningTime, hours.ClosingTime)
	}

	capacity := (hours.ClosingTime.Minutes() - hours.OpeningTime.Minutes() + hours.SlotDurationMinutes - 1) /
		hours.SlotDurationMinutes
	slots := make([]types.TimeOfDay, 0, capacity)

	for t := hours.OpeningTime.Minutes(); t < hours.ClosingTime.Minutes(); t += hours.SlotDurationMinutes {
		start := types.TimeOfDay(t)

		if inBreak(start, hours.Breaks) {
			continue
		}

		if closure.ClosedAt(start) {
			continue
		}

		slots = append(slots, start)
	}

	return slots, nil
}

func inBreak(t types.TimeOfDay, breaks []domain.BreakPeriod) bool {
	for _, b := range breaks {
		if b.Contains(t) {
			return true
		}
	}
	return false
}
