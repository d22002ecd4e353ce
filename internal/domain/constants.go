package domain

import "github.com/m04kA/SMC-BarbershopService/pkg/types"

// Default configuration values
const (
	DefaultMinBookingNoticeMinutes = 0
	DefaultAdvanceBookingDays      = 0 // 0 = unlimited
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 5
	MaxSlotDurationMinutes      = 480 // 8 hours
	MaxServiceDurationMinutes   = 720
	MaxBreaksPerDay             = 10
	MaxNameLength               = 100
	MaxReasonLength             = 500
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxClosureListPeriodDays    = 366
	BusinessHoursSingletonID    = 1
	DayOffClosureReason         = "day off"
)

// DateFormat YYYY-MM-DD
const DateFormat = types.DateLayout

// InactiveStatuses statuses that do not occupy the staff member's time
var InactiveStatuses = []AppointmentStatus{
	StatusCancelled,
	StatusNoShow,
}
