package check_closure

import (
	"context"

	checkClosure "github.com/m04kA/SMC-BarbershopService/internal/usecase/check_closure"
)

type CheckClosureUseCase interface {
	Execute(ctx context.Context, req *checkClosure.Request) (*checkClosure.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
