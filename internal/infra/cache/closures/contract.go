package closures

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// Source источник закрытий (репозиторий)
type Source interface {
	GetByDate(ctx context.Context, date time.Time) ([]domain.ShopClosure, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// Metrics счетчик попаданий в кеш
type Metrics interface {
	IncClosureCache(result string)
}
