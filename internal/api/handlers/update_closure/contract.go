package update_closure

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/closures/models"
)

type ClosureService interface {
	Update(ctx context.Context, id int64, req *models.ClosureRequest) (*models.ClosureResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
