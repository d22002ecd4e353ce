package appointment

import "github.com/m04kA/SMC-BarbershopService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
