package get_available_slots

import (
	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string            `json:"date"`
	StaffID         int64             `json:"staffId"`
	DurationMinutes int               `json:"durationMinutes"`
	Closure         ClosureInfo       `json:"closure"`
	Slots           []types.TimeOfDay `json:"slots"`
}

// ClosureInfo закрытие салона на запрошенную дату
type ClosureInfo struct {
	IsClosed  bool           `json:"isClosed"`
	IsPartial bool           `json:"isPartial"`
	Reason    string         `json:"reason,omitempty"`
	Windows   []ClosedWindow `json:"windows,omitempty"`
}

type ClosedWindow struct {
	Start types.TimeOfDay `json:"start"`
	End   types.TimeOfDay `json:"end"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := resp.Slots
	if slots == nil {
		slots = []types.TimeOfDay{}
	}

	var windows []ClosedWindow
	for _, w := range resp.Closure.Windows {
		windows = append(windows, ClosedWindow{Start: w.Start, End: w.End})
	}

	return &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		StaffID:         resp.StaffID,
		DurationMinutes: resp.DurationMinutes,
		Closure: ClosureInfo{
			IsClosed:  resp.Closure.IsClosed,
			IsPartial: resp.Closure.IsPartial,
			Reason:    resp.Closure.Reason,
			Windows:   windows,
		},
		Slots: slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(staffID int64, dateStr string, durationMinutes int) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		StaffID:                staffID,
		Date:                   date,
		ServiceDurationMinutes: durationMinutes,
	}, nil
}
