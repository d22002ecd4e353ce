package create_appointment

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	createAppointment "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

var (
	errInvalidDate      = errors.New("invalid appointment date")
	errInvalidStartTime = errors.New("invalid start time")
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	StaffID         int64   `json:"staffId"`
	ClientName      string  `json:"clientName"`
	ClientPhone     *string `json:"clientPhone,omitempty"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`      // "2026-10-15"
	StartTime       string  `json:"startTime"` // "10:00"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	StaffID         int64   `json:"staffId"`
	ClientName      string  `json:"clientName"`
	ClientPhone     *string `json:"clientPhone,omitempty"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidDate, err)
	}

	startTime, err := types.ParseTimeOfDay(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidStartTime, err)
	}

	return &createAppointment.Request{
		StaffID:         r.StaffID,
		ClientName:      r.ClientName,
		ClientPhone:     r.ClientPhone,
		ServiceName:     r.ServiceName,
		Date:            date,
		StartTime:       startTime,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		StaffID:         resp.StaffID,
		ClientName:      resp.ClientName,
		ClientPhone:     resp.ClientPhone,
		ServiceName:     resp.ServiceName,
		Date:            resp.Date.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		EndTime:         resp.EndTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
