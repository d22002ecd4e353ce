package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/availability"
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	businessHoursRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/businesshours"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// UseCase use case для создания записи к мастеру
type UseCase struct {
	appointmentRepo AppointmentRepository
	hoursRepo       BusinessHoursRepository
	closureRepo     ClosureRepository
	txManager       TransactionManager
	policy          domain.BookingPolicy
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	hoursRepo BusinessHoursRepository,
	closureRepo ClosureRepository,
	txManager TransactionManager,
	policy domain.BookingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		hoursRepo:       hoursRepo,
		closureRepo:     closureRepo,
		txManager:       txManager,
		policy:          policy,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка слота и вставка выполняются в одной сериализуемой транзакции,
// поэтому две параллельные записи на пересекающееся время не пройдут обе
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: staff=%d, date=%s, time=%s, duration=%d",
		req.StaffID, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время и проверяем дату
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, uc.policy); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Appointment

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем расписание салона
		hours, err := uc.hoursRepo.Get(txCtx)
		if err != nil {
			if errors.Is(err, businessHoursRepo.ErrBusinessHoursNotFound) {
				uc.logger.Error("CreateAppointment: business hours are not configured")
				return ErrBusinessHoursNotConfigured
			}
			uc.logger.Error("CreateAppointment: failed to get business hours: %v", err)
			return fmt.Errorf("%w: failed to get business hours: %v", ErrInternal, err)
		}

		// 3.2. Получаем закрытия и определяем статус дня
		closures, err := uc.closureRepo.GetByDate(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get closures: %v", err)
			return fmt.Errorf("%w: failed to get closures: %v", ErrInternal, err)
		}

		closure := availability.ResolveDay(req.Date, *hours, closures)
		if closure.IsFullDay() {
			uc.logger.Warn("CreateAppointment: shop is closed on %s (%s)",
				req.Date.Format(domain.DateFormat), closure.Reason)
			uc.metrics.IncSlotConflict("closed")
			return ErrShopClosed
		}

		// 3.3. Время начала должно быть одним из слотов дня
		slots, err := availability.GenerateSlots(*hours, closure)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to generate slots: %v", err)
			return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
		}
		if !isGeneratedSlot(req.StartTime, slots) {
			uc.logger.Warn("CreateAppointment: %s is not a slot on %s",
				req.StartTime, req.Date.Format(domain.DateFormat))
			uc.metrics.IncSlotConflict("invalid_slot")
			return ErrInvalidTimeSlot
		}

		// 3.4. Минимальное время до записи
		if !uc.policy.CanStartAt(req.Date, req.StartTime, now) {
			uc.logger.Warn("CreateAppointment: too late to book %s %s (notice %d min)",
				req.Date.Format(domain.DateFormat), req.StartTime, uc.policy.MinNoticeMinutes)
			uc.metrics.IncSlotConflict("too_late")
			return ErrTooLateToBook
		}

		duration := req.DurationMinutes
		if duration == 0 {
			duration = hours.SlotDurationMinutes
		}
		if _, err := req.StartTime.AddMinutes(duration); err != nil {
			uc.logger.Warn("CreateAppointment: %s+%dm ends after midnight", req.StartTime, duration)
			return fmt.Errorf("%w: appointment ends after midnight: %v", ErrInvalidInput, err)
		}

		// 3.5. Получаем активные записи мастера с блокировкой (FOR UPDATE)
		appointments, err := uc.appointmentRepo.GetByStaffAndDate(txCtx, req.StaffID, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 3.6. Проверяем пересечения
		if !availability.IsAvailable(req.StartTime, duration, appointments) {
			uc.logger.Warn("CreateAppointment: slot %s+%dm is taken for staff=%d",
				req.StartTime, duration, req.StaffID)
			uc.metrics.IncSlotConflict("overlap")
			return ErrSlotNotAvailable
		}

		// 3.7. Создаем запись
		appointment := &domain.Appointment{
			StaffID:         req.StaffID,
			ClientName:      req.ClientName,
			ClientPhone:     req.ClientPhone,
			ServiceName:     req.ServiceName,
			Date:            types.DateOnly(req.Date),
			StartTime:       req.StartTime,
			DurationMinutes: duration,
			Status:          domain.StatusConfirmed,
			Notes:           req.Notes,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appointment)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	endTime, err := result.EndTime()
	if err != nil {
		uc.logger.Error("CreateAppointment: created appointment id=%d has invalid end: %v", result.ID, err)
		return nil, fmt.Errorf("%w: invalid end time: %v", ErrInternal, err)
	}

	uc.metrics.IncAppointmentCreated(string(result.Status))
	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		StaffID:         result.StaffID,
		ClientName:      result.ClientName,
		ClientPhone:     result.ClientPhone,
		ServiceName:     result.ServiceName,
		Date:            result.Date,
		StartTime:       result.StartTime,
		EndTime:         endTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
