package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// BusinessHours is the shop-level daily schedule.
// Mutated rarely by an admin, read on every availability computation.
type BusinessHours struct {
	OpeningTime         types.TimeOfDay
	ClosingTime         types.TimeOfDay
	SlotDurationMinutes int
	Breaks              []BreakPeriod
	DaysOff             []time.Weekday // weekdays the shop never opens
	UpdatedAt           time.Time
}

// BreakPeriod is a recurring daily interval (e.g. lunch) excluded from bookable slots
type BreakPeriod struct {
	Name  string
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// Contains reports whether t falls within [Start, End)
func (b BreakPeriod) Contains(t types.TimeOfDay) bool {
	return b.Start <= t && t < b.End
}

// IsDayOff returns true if the weekday of date is a configured day off
func (h *BusinessHours) IsDayOff(date time.Time) bool {
	weekday := date.Weekday()
	for _, d := range h.DaysOff {
		if d == weekday {
			return true
		}
	}
	return false
}

// Validate checks the admin-facing invariants of the schedule
func (h *BusinessHours) Validate() error {
	if !h.OpeningTime.IsValid() || !h.ClosingTime.IsValid() {
		return fmt.Errorf("%w: opening and closing time must be within a day", ErrInvalidConfiguration)
	}

	if h.OpeningTime >= h.ClosingTime {
		return fmt.Errorf("%w: opening time %s must be before closing time %s",
			ErrInvalidConfiguration, h.OpeningTime, h.ClosingTime)
	}

	if h.SlotDurationMinutes < MinSlotDurationMinutes || h.SlotDurationMinutes > MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidConfiguration, MinSlotDurationMinutes, MaxSlotDurationMinutes)
	}

	if len(h.Breaks) > MaxBreaksPerDay {
		return fmt.Errorf("%w: at most %d breaks per day", ErrInvalidConfiguration, MaxBreaksPerDay)
	}

	for _, b := range h.Breaks {
		if err := b.validate(h.OpeningTime, h.ClosingTime); err != nil {
			return err
		}
	}

	seen := make(map[time.Weekday]bool, len(h.DaysOff))
	for _, d := range h.DaysOff {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: invalid weekday %d", ErrInvalidConfiguration, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate day off %s", ErrInvalidConfiguration, d)
		}
		seen[d] = true
	}

	return nil
}

func (b BreakPeriod) validate(opening, closing types.TimeOfDay) error {
	if len(b.Name) > MaxNameLength {
		return fmt.Errorf("%w: break name is longer than %d characters", ErrInvalidConfiguration, MaxNameLength)
	}
	if b.Start >= b.End {
		return fmt.Errorf("%w: break %q start %s must be before end %s",
			ErrInvalidConfiguration, b.Name, b.Start, b.End)
	}
	if b.Start < opening || b.End > closing {
		return fmt.Errorf("%w: break %q %s-%s is outside business hours %s-%s",
			ErrInvalidConfiguration, b.Name, b.Start, b.End, opening, closing)
	}
	return nil
}
