package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// ShopClosure is an ad-hoc closure of the shop on a specific date.
// A full-day closure has no times; a partial closure has both StartTime and EndTime.
type ShopClosure struct {
	ID        int64
	Date      time.Time
	Reason    string
	IsFullDay bool
	StartTime *types.TimeOfDay
	EndTime   *types.TimeOfDay
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOnDate returns true if the closure applies to the calendar date
func (c *ShopClosure) IsOnDate(date time.Time) bool {
	return types.SameDate(c.Date, date)
}

// Validate checks the closure invariants
func (c *ShopClosure) Validate() error {
	if c.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidClosure)
	}
	if len(c.Reason) > MaxReasonLength {
		return fmt.Errorf("%w: reason is longer than %d characters", ErrInvalidClosure, MaxReasonLength)
	}

	if c.IsFullDay {
		if c.StartTime != nil || c.EndTime != nil {
			return fmt.Errorf("%w: full-day closure must not have start/end time", ErrInvalidClosure)
		}
		return nil
	}

	if c.StartTime == nil || c.EndTime == nil {
		return fmt.Errorf("%w: partial closure requires start and end time", ErrInvalidClosure)
	}
	if !c.StartTime.IsValid() || !c.EndTime.IsValid() {
		return fmt.Errorf("%w: start and end time must be within a day", ErrInvalidClosure)
	}
	if *c.StartTime >= *c.EndTime {
		return fmt.Errorf("%w: start time %s must be before end time %s", ErrInvalidClosure, *c.StartTime, *c.EndTime)
	}

	return nil
}

// ClosureKind kind of closure resolved for a date
type ClosureKind string

const (
	ClosureNone    ClosureKind = "none"
	ClosureFullDay ClosureKind = "full_day"
	ClosurePartial ClosureKind = "partial"
)

// TimeWindow half-open interval [Start, End) within a day
type TimeWindow struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}

// Contains reports whether t falls within [Start, End)
func (w TimeWindow) Contains(t types.TimeOfDay) bool {
	return w.Start <= t && t < w.End
}

// ClosureResult is the outcome of closure resolution for one date.
// For a partial closure Start/End hold the earliest window and Windows holds
// every partial window on that date, sorted by start.
type ClosureResult struct {
	Kind    ClosureKind
	Reason  string
	Start   types.TimeOfDay
	End     types.TimeOfDay
	Windows []TimeWindow
}

// NoClosure the shop is open as usual
func NoClosure() ClosureResult {
	return ClosureResult{Kind: ClosureNone}
}

// FullDayClosure the shop is closed for the entire date
func FullDayClosure(reason string) ClosureResult {
	return ClosureResult{Kind: ClosureFullDay, Reason: reason}
}

// PartialClosure the shop is closed during [start, end)
func PartialClosure(start, end types.TimeOfDay, reason string) ClosureResult {
	return ClosureResult{
		Kind:    ClosurePartial,
		Reason:  reason,
		Start:   start,
		End:     end,
		Windows: []TimeWindow{{Start: start, End: end}},
	}
}

func (r ClosureResult) IsFullDay() bool {
	return r.Kind == ClosureFullDay
}

func (r ClosureResult) IsPartial() bool {
	return r.Kind == ClosurePartial
}

// IsOpen true when no closure applies at all
func (r ClosureResult) IsOpen() bool {
	return r.Kind == ClosureNone || r.Kind == ""
}

// ClosedAt reports whether the resolved closure covers time t
func (r ClosureResult) ClosedAt(t types.TimeOfDay) bool {
	switch r.Kind {
	case ClosureFullDay:
		return true
	case ClosurePartial:
		for _, w := range r.partialWindows() {
			if w.Contains(t) {
				return true
			}
		}
	}
	return false
}

func (r ClosureResult) partialWindows() []TimeWindow {
	if len(r.Windows) > 0 {
		return r.Windows
	}
	return []TimeWindow{{Start: r.Start, End: r.End}}
}
