package check_closure

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// BusinessHoursRepository нужен для учета еженедельных выходных
type BusinessHoursRepository interface {
	Get(ctx context.Context) (*domain.BusinessHours, error)
}

// ClosureProvider источник закрытий на дату (кеш или репозиторий)
type ClosureProvider interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.ShopClosure, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
