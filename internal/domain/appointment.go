package domain

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending    AppointmentStatus = "pending"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// IsValid returns true for a known status
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// Appointment represents a booking of a staff member's time
type Appointment struct {
	ID              int64
	StaffID         int64
	ClientName      string
	ClientPhone     *string
	ServiceName     string
	Date            time.Time
	StartTime       types.TimeOfDay
	DurationMinutes int
	Status          AppointmentStatus
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies its interval.
// Cancelled and no-show appointments free the slot.
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled && a.Status != StatusNoShow
}

// CanBeCancelled returns true if the appointment can be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// StartMinute returns the start as minutes since midnight
func (a *Appointment) StartMinute() int {
	return a.StartTime.Minutes()
}

// EndMinute returns the exclusive end as minutes since midnight
func (a *Appointment) EndMinute() int {
	return a.StartTime.Minutes() + a.DurationMinutes
}

// EndTime returns the exclusive end. An appointment never runs past midnight,
// so an end outside the day is an error.
func (a *Appointment) EndTime() (types.TimeOfDay, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}
