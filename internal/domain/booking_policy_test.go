package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingPolicy(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 20, 0, 0, time.UTC)
	today := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	p := BookingPolicy{MinNoticeMinutes: 30, AdvanceBookingDays: 7, Location: time.UTC}

	assert.True(t, p.IsDateInPast(today.AddDate(0, 0, -1), now))
	assert.False(t, p.IsDateInPast(today, now))

	assert.False(t, p.IsBeyondHorizon(today.AddDate(0, 0, 7), now))
	assert.True(t, p.IsBeyondHorizon(today.AddDate(0, 0, 8), now))
	assert.False(t, DefaultBookingPolicy().IsBeyondHorizon(today.AddDate(1, 0, 0), now))

	earliest, ok := p.EarliestStart(now)
	assert.True(t, ok)
	assert.Equal(t, tod("10:50"), earliest)

	assert.False(t, p.CanStartAt(today, tod("10:30"), now))
	assert.True(t, p.CanStartAt(today, tod("11:00"), now))
	assert.True(t, p.CanStartAt(today.AddDate(0, 0, 1), tod("00:00"), now))
	assert.False(t, p.CanStartAt(today.AddDate(0, 0, -1), tod("12:00"), now))

	late := time.Date(2026, 3, 14, 23, 45, 0, 0, time.UTC)
	_, ok = p.EarliestStart(late)
	assert.False(t, ok)
}

func TestBookingPolicy_Location(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	p := BookingPolicy{Location: loc}

	// 22:30 UTC on the 14th is already the 15th locally
	now := time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC)
	assert.True(t, p.IsDateInPast(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC), now))
	assert.True(t, p.IsToday(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), now))

	earliest, ok := p.EarliestStart(now)
	assert.True(t, ok)
	assert.Equal(t, tod("01:30"), earliest)
}
