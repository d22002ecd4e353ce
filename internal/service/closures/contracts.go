package closures

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// ClosureRepository интерфейс репозитория закрытий
type ClosureRepository interface {
	Create(ctx context.Context, closure *domain.ShopClosure) (*domain.ShopClosure, error)
	GetByID(ctx context.Context, id int64) (*domain.ShopClosure, error)
	GetByDate(ctx context.Context, date time.Time) ([]domain.ShopClosure, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]domain.ShopClosure, error)
	Update(ctx context.Context, closure *domain.ShopClosure) (*domain.ShopClosure, error)
	Delete(ctx context.Context, id int64) error
}

// ClosureCache кеш закрытий, сбрасывается после каждого изменения
type ClosureCache interface {
	Invalidate(ctx context.Context, date time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
