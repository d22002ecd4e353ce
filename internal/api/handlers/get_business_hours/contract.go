package get_business_hours

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/businesshours/models"
)

type BusinessHoursService interface {
	Get(ctx context.Context) (*models.BusinessHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
