package get_staff_appointments

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetStaffSchedule(ctx context.Context, req *models.GetStaffScheduleRequest) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
