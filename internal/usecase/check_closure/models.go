package check_closure

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модель запроса проверки закрытия
type Request struct {
	Date time.Time
	Time *types.TimeOfDay // Если не задано, проверяется закрытие на весь день
}

// Response модель ответа
type Response struct {
	Date      time.Time
	Time      *types.TimeOfDay
	IsClosed  bool // Закрыт на весь день или в указанное время
	IsFullDay bool
	IsDayOff  bool
	Reason    string
	Windows   []Window // Окна частичного закрытия
}

// Window окно частичного закрытия [Start, End)
type Window struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}
