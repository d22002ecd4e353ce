package list_closures

import (
	"context"

	"github.com/m04kA/SMC-BarbershopService/internal/service/closures/models"
)

type ClosureService interface {
	List(ctx context.Context, req *models.ListClosuresRequest) (*models.ClosureListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
