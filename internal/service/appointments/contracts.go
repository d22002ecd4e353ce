package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByStaffAndDate(ctx context.Context, staffID int64, date time.Time, includeInactive bool) ([]*domain.Appointment, error)
	Cancel(ctx context.Context, id int64, reason *string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
