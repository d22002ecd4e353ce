package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/availability"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	businessHoursRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/businesshours"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// UseCase use case для получения доступных слотов мастера
type UseCase struct {
	hoursRepo       BusinessHoursRepository
	closures        ClosureProvider
	appointmentRepo AppointmentRepository
	policy          domain.BookingPolicy
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hoursRepo BusinessHoursRepository,
	closures ClosureProvider,
	appointmentRepo AppointmentRepository,
	policy domain.BookingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		hoursRepo:       hoursRepo,
		closures:        closures,
		appointmentRepo: appointmentRepo,
		policy:          policy,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: staff=%d, date=%s, duration=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.ServiceDurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.policy); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем расписание салона
	hours, err := uc.hoursRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, businessHoursRepo.ErrBusinessHoursNotFound) {
			uc.logger.Error("GetAvailableSlots: business hours are not configured")
			return nil, ErrBusinessHoursNotConfigured
		}
		uc.logger.Error("GetAvailableSlots: failed to get business hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
	}

	duration := req.ServiceDurationMinutes
	if duration == 0 {
		duration = hours.SlotDurationMinutes
	}

	response := &Response{
		Date:            req.Date,
		StaffID:         req.StaffID,
		DurationMinutes: duration,
		Slots:           []types.TimeOfDay{},
	}

	// 4. Получаем закрытия и определяем статус дня
	closures, err := uc.closures.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get closures: %v", err)
		return nil, fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
	}

	closure := availability.ResolveDay(req.Date, *hours, closures)
	response.Closure = toClosure(closure)

	if closure.IsFullDay() {
		uc.logger.Info("GetAvailableSlots: shop is closed on %s (%s)",
			req.Date.Format(domain.DateFormat), closure.Reason)
		uc.metrics.ObserveSlots(string(closure.Kind), 0)
		return response, nil
	}

	// 5. Получаем активные записи мастера на дату
	appointments, err := uc.appointmentRepo.GetByStaffAndDate(ctx, req.StaffID, req.Date, false)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 6. Генерируем слоты и отбрасываем занятые
	slots, err := availability.AvailableSlots(*hours, closure, duration, appointments)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		if errors.Is(err, domain.ErrInvalidConfiguration) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
		}
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	// 7. На сегодня оставляем только слоты с учетом минимального времени до записи
	if uc.policy.IsToday(req.Date, now) {
		slots = filterByNotice(slots, now, uc.policy)
	}

	response.Slots = slots
	uc.metrics.ObserveSlots(string(closure.Kind), len(slots))

	uc.logger.Info("GetAvailableSlots: %d slots for staff=%d on %s",
		len(slots), req.StaffID, req.Date.Format(domain.DateFormat))

	return response, nil
}

// filterByNotice отбрасывает слоты раньше now + MinNoticeMinutes
func filterByNotice(slots []types.TimeOfDay, now time.Time, policy domain.BookingPolicy) []types.TimeOfDay {
	earliest, ok := policy.EarliestStart(now)
	if !ok {
		return []types.TimeOfDay{}
	}

	result := make([]types.TimeOfDay, 0, len(slots))
	for _, s := range slots {
		if s >= earliest {
			result = append(result, s)
		}
	}
	return result
}

func toClosure(c domain.ClosureResult) Closure {
	result := Closure{
		IsClosed:  c.IsFullDay(),
		IsPartial: c.IsPartial(),
		Reason:    c.Reason,
		Windows:   []Window{},
	}
	if c.IsPartial() {
		for _, w := range c.Windows {
			result.Windows = append(result.Windows, Window{Start: w.Start, End: w.End})
		}
	}
	return result
}
