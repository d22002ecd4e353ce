package businesshours

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	businessHoursRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/businesshours"
	"github.com/m04kA/SMC-BarbershopService/internal/service/businesshours/models"
)

// Service сервис для работы с расписанием салона
type Service struct {
	hoursRepo BusinessHoursRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(hoursRepo BusinessHoursRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Get получает текущее расписание
func (s *Service) Get(ctx context.Context) (*models.BusinessHoursResponse, error) {
	hours, err := s.hoursRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, businessHoursRepo.ErrBusinessHoursNotFound) {
			s.logger.Warn("Get: business hours are not configured")
			return nil, ErrBusinessHoursNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBusinessHours(hours), nil
}

// Update полностью заменяет расписание, включая перерывы и выходные
func (s *Service) Update(ctx context.Context, req *models.UpdateBusinessHoursRequest) (*models.BusinessHoursResponse, error) {
	s.logger.Info("Update: %s-%s, slot=%dm, breaks=%d, daysOff=%v",
		req.OpeningTime, req.ClosingTime, req.SlotDurationMinutes, len(req.Breaks), req.DaysOff)

	// 1. Конвертируем и валидируем
	hours, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Update: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := hours.Validate(); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Сохраняем расписание и перерывы атомарно
	var saved *domain.BusinessHours
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		saved, err = s.hoursRepo.Save(txCtx, hours)
		return err
	})
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: business hours saved")
	return models.FromDomainBusinessHours(saved), nil
}
