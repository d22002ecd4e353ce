package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return fmt.Errorf("%w: staffID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.ServiceDurationMinutes < 0 || req.ServiceDurationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between 0 and %d minutes",
			ErrInvalidInput, domain.MaxServiceDurationMinutes)
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
