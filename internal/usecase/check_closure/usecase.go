package check_closure

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/availability"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	businessHoursRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/businesshours"
)

// UseCase проверка, закрыт ли салон на дату или в конкретное время
type UseCase struct {
	hoursRepo BusinessHoursRepository
	closures  ClosureProvider
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(hoursRepo BusinessHoursRepository, closures ClosureProvider, logger Logger) *UseCase {
	return &UseCase{
		hoursRepo: hoursRepo,
		closures:  closures,
		logger:    logger,
	}
}

// Execute выполняет проверку закрытия
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Time != nil && !req.Time.IsValid() {
		return nil, fmt.Errorf("%w: time must be within a day", ErrInvalidInput)
	}

	// 2. Расписание нужно только для выходных, его отсутствие не ошибка
	hours, err := uc.hoursRepo.Get(ctx)
	if err != nil && !errors.Is(err, businessHoursRepo.ErrBusinessHoursNotFound) {
		uc.logger.Error("CheckClosure: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}
	if hours == nil {
		hours = &domain.BusinessHours{}
	}

	// 3. Получаем закрытия на дату
	closures, err := uc.closures.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("CheckClosure: failed to get closures: %v", err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	// 4. Определяем статус
	closure := availability.ResolveDay(req.Date, *hours, closures)

	response := &Response{
		Date:      req.Date,
		Time:      req.Time,
		IsFullDay: closure.IsFullDay(),
		IsDayOff:  hours.IsDayOff(req.Date),
		Reason:    closure.Reason,
		Windows:   []Window{},
	}

	if closure.IsPartial() {
		for _, w := range closure.Windows {
			response.Windows = append(response.Windows, Window{Start: w.Start, End: w.End})
		}
	}

	if req.Time != nil {
		response.IsClosed = closure.ClosedAt(*req.Time)
	} else {
		response.IsClosed = closure.IsFullDay()
	}

	uc.logger.Info("CheckClosure: date=%s closed=%t kind=%s",
		req.Date.Format(domain.DateFormat), response.IsClosed, closure.Kind)

	return response, nil
}
