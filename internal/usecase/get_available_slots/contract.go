package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// BusinessHoursRepository интерфейс репозитория расписания салона
type BusinessHoursRepository interface {
	Get(ctx context.Context) (*domain.BusinessHours, error)
}

// ClosureProvider источник закрытий на дату (кеш или репозиторий)
type ClosureProvider interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.ShopClosure, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetByStaffAndDate получает записи мастера на дату
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
}

// Metrics интерфейс метрик
type Metrics interface {
	ObserveSlots(closureKind string, count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
