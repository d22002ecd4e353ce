package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60

	// DateLayout формат даты YYYY-MM-DD
	DateLayout = "2006-01-02"
)

var (
	// ErrInvalidFormat возвращается при некорректной строке времени или даты
	ErrInvalidFormat = errors.New("types: invalid format")

	// ErrOutOfRange возвращается, когда время выходит за пределы суток
	ErrOutOfRange = errors.New("types: time of day out of range")
)

// TimeOfDay время суток в минутах от полуночи (0..1439).
// Никогда не переходит через полночь.
type TimeOfDay int

// NewTimeOfDay создает время из количества минут от полуночи
func NewTimeOfDay(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return 0, fmt.Errorf("%w: %d minutes", ErrOutOfRange, minutes)
	}
	return TimeOfDay(minutes), nil
}

// MustTimeOfDay как ParseTimeOfDay, но паникует при ошибке (для констант и тестов)
func MustTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseTimeOfDay разбирает строку строго в формате HH:MM
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: time %q, expected HH:MM", ErrInvalidFormat, s)
	}

	hours, ok := parseTwoDigits(s[0:2])
	if !ok || hours > 23 {
		return 0, fmt.Errorf("%w: time %q, hours must be 00-23", ErrInvalidFormat, s)
	}

	minutes, ok := parseTwoDigits(s[3:5])
	if !ok || minutes > 59 {
		return 0, fmt.Errorf("%w: time %q, minutes must be 00-59", ErrInvalidFormat, s)
	}

	return TimeOfDay(hours*60 + minutes), nil
}

func parseTwoDigits(s string) (int, bool) {
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

// FromTime возвращает время суток из time.Time (секунды отбрасываются)
func FromTime(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// Minutes возвращает количество минут от полуночи
func (t TimeOfDay) Minutes() int {
	return int(t)
}

// Hour возвращает час
func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute возвращает минуты внутри часа
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

// String форматирует время как HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// IsValid проверяет инвариант 0 <= t < 1440
func (t TimeOfDay) IsValid() bool {
	return t >= 0 && int(t) < MinutesPerDay
}

// AddMinutes прибавляет минуты, результат должен остаться в пределах суток
func (t TimeOfDay) AddMinutes(minutes int) (TimeOfDay, error) {
	return NewTimeOfDay(int(t) + minutes)
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON разбирает строку "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: time must be a string: %v", ErrInvalidFormat, err)
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value хранит время в БД как количество минут (SMALLINT)
func (t TimeOfDay) Value() (driver.Value, error) {
	return int64(t), nil
}

// Scan читает время из БД: минуты (целое) или строка TIME "HH:MM[:SS]"
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case int64:
		parsed, err := NewTimeOfDay(int(v))
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	case time.Time:
		*t = FromTime(v)
		return nil
	case nil:
		return fmt.Errorf("%w: cannot scan NULL into TimeOfDay", ErrInvalidFormat)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidFormat, src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	if len(s) > 5 && strings.Count(s, ":") == 2 {
		s = s[:5]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseDate разбирает дату в формате YYYY-MM-DD (UTC, без времени)
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q, expected YYYY-MM-DD", ErrInvalidFormat, s)
	}
	return d, nil
}

// DateOnly обнуляет время, оставляя календарную дату
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDate проверяет, что две даты относятся к одному календарному дню
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
