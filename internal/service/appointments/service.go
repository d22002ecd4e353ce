package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// GetStaffSchedule получает записи мастера на дату
func (s *Service) GetStaffSchedule(ctx context.Context, req *models.GetStaffScheduleRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetStaffSchedule: staff=%d, date=%s, includeInactive=%t",
		req.StaffID, req.Date.Format(domain.DateFormat), req.IncludeInactive)

	if req.StaffID <= 0 {
		return nil, fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetByStaffAndDate(ctx, req.StaffID, req.Date, req.IncludeInactive)
	if err != nil {
		s.logger.Error("GetStaffSchedule: repository error for staff=%d: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: GetStaffSchedule - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStaffSchedule: fetched %d appointments for staff=%d", len(appointments), req.StaffID)
	return models.FromDomainAppointmentList(appointments), nil
}

// Cancel отменяет запись. Отменить можно только ожидающую или подтвержденную запись.
// После отмены интервал снова считается свободным
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelAppointmentRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d", id)

	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is longer than %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var result *domain.Appointment

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Получаем запись
		appointment, err := s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				s.logger.Warn("Cancel: appointment id=%d not found", id)
				return ErrAppointmentNotFound
			}
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - get appointment: %v", ErrInternal, err)
		}

		// 2. Проверяем статус
		if !appointment.CanBeCancelled() {
			s.logger.Warn("Cancel: appointment id=%d has status=%s and cannot be cancelled", id, appointment.Status)
			return fmt.Errorf("%w: status is %s", ErrCannotCancel, appointment.Status)
		}

		// 3. Отменяем
		if err := s.appointmentRepo.Cancel(txCtx, id, req.CancellationReason); err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return ErrAppointmentNotFound
			}
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// 4. Перечитываем запись с временем отмены
		result, err = s.appointmentRepo.GetByID(txCtx, id)
		if err != nil {
			s.logger.Error("Cancel: failed to reload appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - reload appointment: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(result), nil
}
