package create_appointment

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxNameLength {
		return fmt.Errorf("%w: clientName is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: serviceName is required", ErrInvalidInput)
	}
	if len(req.ServiceName) > domain.MaxNameLength {
		return fmt.Errorf("%w: serviceName is longer than %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.StartTime.IsValid() {
		return fmt.Errorf("%w: startTime must be within a day", ErrInvalidInput)
	}

	if req.DurationMinutes < 0 || req.DurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between 0 and %d minutes",
			ErrInvalidInput, domain.MaxServiceDurationMinutes)
	}

	// Запись может выходить за время закрытия, но не за полночь
	if req.DurationMinutes > 0 && req.StartTime.Minutes()+req.DurationMinutes >= types.MinutesPerDay {
		return fmt.Errorf("%w: appointment %s+%dm ends after midnight",
			ErrInvalidInput, req.StartTime, req.DurationMinutes)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что на дату можно записаться
func validateDate(date, now time.Time, policy domain.BookingPolicy) error {
	if policy.IsDateInPast(date, now) {
		return ErrInvalidDate
	}

	if policy.IsBeyondHorizon(date, now) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, policy.AdvanceBookingDays)
	}

	return nil
}

// isGeneratedSlot проверяет, что start есть среди сгенерированных слотов
func isGeneratedSlot(start types.TimeOfDay, slots []types.TimeOfDay) bool {
	for _, s := range slots {
		if s == start {
			return true
		}
	}
	return false
}
