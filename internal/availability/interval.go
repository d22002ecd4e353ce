// Package availability вычисляет доступные для записи слоты.
// Все функции пакета чистые: не хранят состояние и не выполняют I/O,
// поэтому безопасны для конкурентного вызова.
package availability

// Overlaps проверяет пересечение полуинтервалов [aStart, aEnd) и [bStart, bEnd).
// Интервалы, которые только касаются концами (aEnd == bStart), НЕ пересекаются.
//
// Примеры:
// - [11:30, 12:00) и [11:20, 11:40) → пересекаются
// - [11:30, 12:00) и [11:00, 11:30) → не пересекаются (граничат)
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
