package create_closure

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/closures/models"
)

type ClosureService interface {
	Create(ctx context.Context, req *models.ClosureRequest) (*models.ClosureResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
