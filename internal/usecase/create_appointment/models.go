package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	StaffID         int64           // ID мастера
	ClientName      string          // Имя клиента
	ClientPhone     *string         // Телефон клиента (опционально)
	ServiceName     string          // Название услуги
	Date            time.Time       // Дата записи (без времени)
	StartTime       types.TimeOfDay // Время начала, должно совпадать с одним из слотов
	DurationMinutes int             // Длительность услуги, 0 - длительность слота
	Notes           *string         // Дополнительные заметки (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID              int64
	StaffID         int64
	ClientName      string
	ClientPhone     *string
	ServiceName     string
	Date            time.Time
	StartTime       types.TimeOfDay
	EndTime         types.TimeOfDay // Может выходить за время закрытия
	DurationMinutes int
	Status          string
	Notes           *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
