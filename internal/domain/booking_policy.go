package domain

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// BookingPolicy holds the shop's booking window rules.
// Calendar decisions are made in Location, the shop's time zone.
type BookingPolicy struct {
	MinNoticeMinutes   int
	AdvanceBookingDays int
	Location           *time.Location
}

// DefaultBookingPolicy no notice, no horizon, UTC
func DefaultBookingPolicy() BookingPolicy {
	return BookingPolicy{
		MinNoticeMinutes:   DefaultMinBookingNoticeMinutes,
		AdvanceBookingDays: DefaultAdvanceBookingDays,
		Location:           time.UTC,
	}
}

// LocalNow converts now into the shop's time zone
func (p BookingPolicy) LocalNow(now time.Time) time.Time {
	if p.Location == nil {
		return now
	}
	return now.In(p.Location)
}

// IsDateInPast reports whether date is before the shop's today
func (p BookingPolicy) IsDateInPast(date, now time.Time) bool {
	return calendarDay(date).Before(calendarDay(p.LocalNow(now)))
}

// IsBeyondHorizon reports whether date is more than AdvanceBookingDays ahead.
// Zero means unlimited.
func (p BookingPolicy) IsBeyondHorizon(date, now time.Time) bool {
	if p.AdvanceBookingDays <= 0 {
		return false
	}
	maxDate := calendarDay(p.LocalNow(now)).AddDate(0, 0, p.AdvanceBookingDays)
	return calendarDay(date).After(maxDate)
}

// IsToday reports whether date is the shop's today
func (p BookingPolicy) IsToday(date, now time.Time) bool {
	return types.SameDate(date, p.LocalNow(now))
}

// EarliestStart returns the earliest bookable start for today.
// ok is false when the notice period pushes past midnight.
func (p BookingPolicy) EarliestStart(now time.Time) (types.TimeOfDay, bool) {
	local := p.LocalNow(now)
	minutes := local.Hour()*60 + local.Minute() + p.MinNoticeMinutes
	if local.Second() > 0 || local.Nanosecond() > 0 {
		minutes++
	}
	if minutes >= types.MinutesPerDay {
		return 0, false
	}
	return types.TimeOfDay(minutes), true
}

// CanStartAt reports whether an appointment at date/start respects the notice period
func (p BookingPolicy) CanStartAt(date time.Time, start types.TimeOfDay, now time.Time) bool {
	if p.IsDateInPast(date, now) {
		return false
	}
	if !p.IsToday(date, now) {
		return true
	}
	earliest, ok := p.EarliestStart(now)
	return ok && start >= earliest
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
