package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarbershopService/pkg/ptr"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

func tod(s string) types.TimeOfDay {
	return types.MustTimeOfDay(s)
}

func validHours() BusinessHours {
	return BusinessHours{
		OpeningTime:         tod("09:00"),
		ClosingTime:         tod("17:00"),
		SlotDurationMinutes: 30,
		Breaks:              []BreakPeriod{{Name: "lunch", Start: tod("12:00"), End: tod("13:00")}},
		DaysOff:             []time.Weekday{time.Sunday},
	}
}

func TestBusinessHours_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(h *BusinessHours)
		wantErr bool
	}{
		{name: "valid", mutate: func(h *BusinessHours) {}},
		{name: "opening equals closing", mutate: func(h *BusinessHours) { h.ClosingTime = h.OpeningTime }, wantErr: true},
		{name: "opening after closing", mutate: func(h *BusinessHours) { h.OpeningTime = tod("18:00") }, wantErr: true},
		{name: "zero slot duration", mutate: func(h *BusinessHours) { h.SlotDurationMinutes = 0 }, wantErr: true},
		{name: "negative slot duration", mutate: func(h *BusinessHours) { h.SlotDurationMinutes = -30 }, wantErr: true},
		{name: "break starts before opening", mutate: func(h *BusinessHours) {
			h.Breaks = []BreakPeriod{{Name: "early", Start: tod("08:30"), End: tod("09:30")}}
		}, wantErr: true},
		{name: "break ends after closing", mutate: func(h *BusinessHours) {
			h.Breaks = []BreakPeriod{{Name: "late", Start: tod("16:30"), End: tod("17:30")}}
		}, wantErr: true},
		{name: "break ending at closing", mutate: func(h *BusinessHours) {
			h.Breaks = []BreakPeriod{{Name: "cleanup", Start: tod("16:30"), End: tod("17:00")}}
		}},
		{name: "empty break", mutate: func(h *BusinessHours) {
			h.Breaks = []BreakPeriod{{Name: "lunch", Start: tod("12:00"), End: tod("12:00")}}
		}, wantErr: true},
		{name: "duplicate day off", mutate: func(h *BusinessHours) {
			h.DaysOff = []time.Weekday{time.Monday, time.Monday}
		}, wantErr: true},
		{name: "invalid weekday", mutate: func(h *BusinessHours) {
			h.DaysOff = []time.Weekday{7}
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := validHours()
			tt.mutate(&h)
			err := h.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBusinessHours_IsDayOff(t *testing.T) {
	h := validHours()
	sunday := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	monday := sunday.AddDate(0, 0, 1)

	assert.True(t, h.IsDayOff(sunday))
	assert.False(t, h.IsDayOff(monday))
}

func TestShopClosure_Validate(t *testing.T) {
	date := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		closure ShopClosure
		wantErr bool
	}{
		{name: "full day", closure: ShopClosure{Date: date, IsFullDay: true, Reason: "holiday"}},
		{name: "partial", closure: ShopClosure{Date: date, StartTime: ptr.Ptr(tod("14:00")), EndTime: ptr.Ptr(tod("20:00"))}},
		{name: "missing date", closure: ShopClosure{IsFullDay: true}, wantErr: true},
		{name: "partial without end", closure: ShopClosure{Date: date, StartTime: ptr.Ptr(tod("14:00"))}, wantErr: true},
		{name: "partial reversed", closure: ShopClosure{Date: date, StartTime: ptr.Ptr(tod("15:00")), EndTime: ptr.Ptr(tod("14:00"))}, wantErr: true},
		{name: "partial empty", closure: ShopClosure{Date: date, StartTime: ptr.Ptr(tod("15:00")), EndTime: ptr.Ptr(tod("15:00"))}, wantErr: true},
		{name: "full day with times", closure: ShopClosure{Date: date, IsFullDay: true, StartTime: ptr.Ptr(tod("10:00"))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.closure.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidClosure)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClosureResult_ClosedAt(t *testing.T) {
	assert.False(t, NoClosure().ClosedAt(tod("10:00")))
	assert.True(t, NoClosure().IsOpen())

	full := FullDayClosure("holiday")
	assert.True(t, full.ClosedAt(tod("00:00")))
	assert.True(t, full.IsFullDay())

	partial := PartialClosure(tod("14:00"), tod("16:00"), "training")
	assert.True(t, partial.IsPartial())
	assert.False(t, partial.ClosedAt(tod("13:59")))
	assert.True(t, partial.ClosedAt(tod("14:00")))
	assert.True(t, partial.ClosedAt(tod("15:59")))
	assert.False(t, partial.ClosedAt(tod("16:00")))
}

func TestAppointment_IsActive(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted} {
		a := Appointment{Status: s}
		assert.True(t, a.IsActive(), s)
	}
	for _, s := range InactiveStatuses {
		a := Appointment{Status: s}
		assert.False(t, a.IsActive(), s)
	}

	a := Appointment{StartTime: tod("10:00"), DurationMinutes: 45, Status: StatusConfirmed}
	assert.Equal(t, 600, a.StartMinute())
	assert.Equal(t, 645, a.EndMinute())

	end, err := a.EndTime()
	require.NoError(t, err)
	assert.Equal(t, tod("10:45"), end)

	late := Appointment{StartTime: tod("23:30"), DurationMinutes: 30}
	_, err = late.EndTime()
	assert.Error(t, err)
	assert.True(t, a.CanBeCancelled())
	assert.False(t, (&Appointment{Status: StatusCompleted}).CanBeCancelled())
	assert.False(t, AppointmentStatus("archived").IsValid())
}
