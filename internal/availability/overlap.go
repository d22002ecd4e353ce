package availability

import (
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// IsAvailable проверяет, что интервал [candidateStart, candidateStart+duration)
// не пересекается ни с одной активной записью.
// Отмененные записи и неявки слот не занимают.
//
// Вызывающий код отвечает за то, чтобы appointments были актуальными записями
// нужного мастера на нужную дату.
func IsAvailable(candidateStart types.TimeOfDay, durationMinutes int, appointments []*domain.Appointment) bool {
	return countOverlapping(candidateStart, durationMinutes, appointments) == 0
}

// countOverlapping подсчитывает активные записи, пересекающиеся с кандидатом
func countOverlapping(candidateStart types.TimeOfDay, durationMinutes int, appointments []*domain.Appointment) int {
	start := candidateStart.Minutes()
	end := start + durationMinutes

	count := 0
	for _, a := range appointments {
		if a == nil || !a.IsActive() {
			continue
		}
		if Overlaps(start, end, a.StartMinute(), a.EndMinute()) {
			count++
		}
	}
	return count
}

// FilterAvailable оставляет слоты, на которые можно записаться на durationMinutes,
// сохраняя порядок
func FilterAvailable(slots []types.TimeOfDay, durationMinutes int, appointments []*domain.Appointment) []types.TimeOfDay {
	result := make([]types.TimeOfDay, 0, len(slots))
	for _, s := range slots {
		if IsAvailable(s, durationMinutes, appointments) {
			result = append(result, s)
		}
	}
	return result
}

// AvailableSlots композиция генерации слотов и проверки пересечений:
// GenerateSlots(...) ∩ { t : IsAvailable(t, duration, appointments) }
func AvailableSlots(
	hours domain.BusinessHours,
	closure domain.ClosureResult,
	durationMinutes int,
	appointments []*domain.Appointment,
) ([]types.TimeOfDay, error) {
	slots, err := GenerateSlots(hours, closure)
	if err != nil {
		return nil, err
	}
	return FilterAvailable(slots, durationMinutes, appointments), nil
}
