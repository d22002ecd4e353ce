package availability

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// ResolveClosure определяет закрытие салона на указанную дату.
//
// Учитываются только записи с той же календарной датой. Если среди них есть
// закрытие на весь день, оно имеет приоритет над частичными. Иначе возвращается
// частичное закрытие со всеми окнами за эту дату, отсортированными по началу.
func ResolveClosure(date time.Time, closures []domain.ShopClosure) domain.ClosureResult {
	var windows []domain.TimeWindow
	var reason string

	for i := range closures {
		c := &closures[i]
		if !c.IsOnDate(date) {
			continue
		}

		if c.IsFullDay {
			return domain.FullDayClosure(c.Reason)
		}

		// Частичное закрытие без времени не соответствует инварианту, пропускаем
		if c.StartTime == nil || c.EndTime == nil {
			continue
		}

		windows = append(windows, domain.TimeWindow{Start: *c.StartTime, End: *c.EndTime})
		if reason == "" {
			reason = c.Reason
		}
	}

	if len(windows) == 0 {
		return domain.NoClosure()
	}

	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].Start < windows[j].Start
	})

	result := domain.PartialClosure(windows[0].Start, windows[0].End, reason)
	result.Windows = windows
	return result
}

// ResolveDay как ResolveClosure, но сначала учитывает еженедельные выходные
func ResolveDay(date time.Time, hours domain.BusinessHours, closures []domain.ShopClosure) domain.ClosureResult {
	if hours.IsDayOff(date) {
		return domain.FullDayClosure(domain.DayOffClosureReason)
	}
	return ResolveClosure(date, closures)
}

// IsClosedAt проверяет, закрыт ли салон в указанные дату и время:
// закрытие на весь день → всегда true, частичное → true внутри [start, end),
// без закрытия → false
func IsClosedAt(date time.Time, t types.TimeOfDay, closures []domain.ShopClosure) bool {
	return ResolveClosure(date, closures).ClosedAt(t)
}
