package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
}

// BusinessHoursRepository интерфейс репозитория расписания салона
type BusinessHoursRepository interface {
	Get(ctx context.Context) (*domain.BusinessHours, error)
}

// ClosureRepository интерфейс репозитория закрытий.
// Здесь используется репозиторий, а не кеш: решение о записи принимается
// по данным, прочитанным в той же транзакции
type ClosureRepository interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.ShopClosure, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics интерфейс метрик
type Metrics interface {
	IncAppointmentCreated(status string)
	IncSlotConflict(reason string)
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
