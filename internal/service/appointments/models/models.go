package models

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
)

// Request модели

// CancelAppointmentRequest запрос на отмену записи
type CancelAppointmentRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// GetStaffScheduleRequest запрос на получение записей мастера на дату
type GetStaffScheduleRequest struct {
	StaffID         int64
	Date            time.Time
	IncludeInactive bool // Включить отмененные записи и неявки
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	StaffID         int64   `json:"staffId"`
	ClientName      string  `json:"clientName"`
	ClientPhone     *string `json:"clientPhone,omitempty"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`              // "2026-03-14"
	StartTime       string  `json:"startTime"`         // "10:00"
	EndTime         string  `json:"endTime,omitempty"` // "10:30"
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // RFC 3339

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		StaffID:            a.StaffID,
		ClientName:         a.ClientName,
		ClientPhone:        a.ClientPhone,
		ServiceName:        a.ServiceName,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		DurationMinutes:    a.DurationMinutes,
		Status:             string(a.Status),
		Notes:              a.Notes,
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	// Конец за полночь не отдается: такие записи не создаются через API
	if end, err := a.EndTime(); err == nil {
		resp.EndTime = end.String()
	}

	if a.CancelledAt != nil {
		cancelledAt := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		if a == nil {
			continue
		}
		result.Appointments = append(result.Appointments, *FromDomainAppointment(a))
	}
	return result
}
