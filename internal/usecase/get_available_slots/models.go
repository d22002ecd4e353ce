package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	StaffID                int64     // ID мастера
	Date                   time.Time // Дата (без времени)
	ServiceDurationMinutes int       // Длительность услуги, 0 - длительность слота
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time
	StaffID         int64
	DurationMinutes int               // Длительность, для которой проверялась доступность
	Closure         Closure           // Закрытие салона на дату
	Slots           []types.TimeOfDay // Доступные начала, по возрастанию
}

// Closure информация о закрытии салона на дату
type Closure struct {
	IsClosed  bool // Закрыт весь день
	IsPartial bool
	Reason    string
	Windows   []Window
}

// Window окно частичного закрытия [Start, End)
type Window struct {
	Start types.TimeOfDay
	End   types.TimeOfDay
}
