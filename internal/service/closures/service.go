package closures

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	closureRepo "github.com/m04kA/SMC-BarbershopService/internal/infra/storage/closure"
	"github.com/m04kA/SMC-BarbershopService/internal/service/closures/models"
)

// Service сервис управления закрытиями салона
type Service struct {
	closureRepo ClosureRepository
	cache       ClosureCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса закрытий
func NewService(closureRepo ClosureRepository, cache ClosureCache, logger Logger) *Service {
	return &Service{
		closureRepo: closureRepo,
		cache:       cache,
		logger:      logger,
	}
}

// Create создает закрытие
func (s *Service) Create(ctx context.Context, req *models.ClosureRequest) (*models.ClosureResponse, error) {
	s.logger.Info("Create: closure on %s, fullDay=%t", req.Date, req.IsFullDay)

	closure, err := s.toValidDomain(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	s.warnOnSameDate(ctx, closure, "Create")

	created, err := s.closureRepo.Create(ctx, closure)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.cache.Invalidate(ctx, created.Date)

	s.logger.Info("Create: closure id=%d created", created.ID)
	return models.FromDomainClosure(created), nil
}

// GetByID получает закрытие по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ClosureResponse, error) {
	closure, err := s.closureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("GetByID", id, err)
	}
	return models.FromDomainClosure(closure), nil
}

// List получает закрытия за период
func (s *Service) List(ctx context.Context, req *models.ListClosuresRequest) (*models.ClosureListResponse, error) {
	if req.From.IsZero() || req.To.IsZero() {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidPeriod)
	}
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: to is before from", ErrInvalidPeriod)
	}
	if req.To.Sub(req.From).Hours()/24 > domain.MaxClosureListPeriodDays {
		return nil, fmt.Errorf("%w: period is longer than %d days", ErrInvalidPeriod, domain.MaxClosureListPeriodDays)
	}

	closures, err := s.closureRepo.ListByPeriod(ctx, req.From, req.To)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: %d closures from %s to %s",
		len(closures), req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
	return models.FromDomainClosureList(closures), nil
}

// Update изменяет закрытие. Кеш сбрасывается и для старой, и для новой даты
func (s *Service) Update(ctx context.Context, id int64, req *models.ClosureRequest) (*models.ClosureResponse, error) {
	s.logger.Info("Update: closure id=%d", id)

	closure, err := s.toValidDomain(req)
	if err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	existing, err := s.closureRepo.GetByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	closure.ID = id
	updated, err := s.closureRepo.Update(ctx, closure)
	if err != nil {
		return nil, s.mapRepoError("Update", id, err)
	}

	s.cache.Invalidate(ctx, existing.Date)
	s.cache.Invalidate(ctx, updated.Date)

	s.logger.Info("Update: closure id=%d updated", id)
	return models.FromDomainClosure(updated), nil
}

// Delete удаляет закрытие
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: closure id=%d", id)

	existing, err := s.closureRepo.GetByID(ctx, id)
	if err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	if err := s.closureRepo.Delete(ctx, id); err != nil {
		return s.mapRepoError("Delete", id, err)
	}

	s.cache.Invalidate(ctx, existing.Date)

	s.logger.Info("Delete: closure id=%d deleted", id)
	return nil
}

func (s *Service) toValidDomain(req *models.ClosureRequest) (*domain.ShopClosure, error) {
	closure, err := req.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := closure.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return closure, nil
}

// warnOnSameDate предупреждает о нескольких закрытиях на одну дату.
// Это допустимо: закрытие на весь день перекрывает частичные
func (s *Service) warnOnSameDate(ctx context.Context, closure *domain.ShopClosure, op string) {
	existing, err := s.closureRepo.GetByDate(ctx, closure.Date)
	if err != nil {
		s.logger.Warn("%s: failed to check closures on %s: %v", op, closure.Date.Format(domain.DateFormat), err)
		return
	}
	if len(existing) > 0 {
		s.logger.Warn("%s: %d closure(s) already exist on %s",
			op, len(existing), closure.Date.Format(domain.DateFormat))
	}
}

func (s *Service) mapRepoError(op string, id int64, err error) error {
	if errors.Is(err, closureRepo.ErrClosureNotFound) {
		s.logger.Warn("%s: closure id=%d not found", op, id)
		return ErrClosureNotFound
	}
	s.logger.Error("%s: repository error for closure id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
