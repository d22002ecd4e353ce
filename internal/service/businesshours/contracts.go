package businesshours

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// BusinessHoursRepository интерфейс репозитория расписания
type BusinessHoursRepository interface {
	Get(ctx context.Context) (*domain.BusinessHours, error)
	Save(ctx context.Context, hours *domain.BusinessHours) (*domain.BusinessHours, error)
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
