package check_closure

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	checkClosure "github.com/m04kA/SMC-BarbershopService/internal/usecase/check_closure"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

var errInvalidTime = errors.New("invalid time")

// ClosureStatusResponse HTTP response model
type ClosureStatusResponse struct {
	Date      string         `json:"date"`
	Time      *string        `json:"time,omitempty"`
	IsClosed  bool           `json:"isClosed"`
	IsFullDay bool           `json:"isFullDay"`
	IsDayOff  bool           `json:"isDayOff"`
	Reason    string         `json:"reason,omitempty"`
	Windows   []ClosedWindow `json:"windows,omitempty"`
}

type ClosedWindow struct {
	Start types.TimeOfDay `json:"start"`
	End   types.TimeOfDay `json:"end"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(dateStr, timeStr string) (*checkClosure.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, err
	}

	req := &checkClosure.Request{Date: date}
	if timeStr != "" {
		t, err := types.ParseTimeOfDay(timeStr)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidTime, err)
		}
		req.Time = &t
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkClosure.Response) *ClosureStatusResponse {
	out := &ClosureStatusResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		IsClosed:  resp.IsClosed,
		IsFullDay: resp.IsFullDay,
		IsDayOff:  resp.IsDayOff,
		Reason:    resp.Reason,
	}
	if resp.Time != nil {
		s := resp.Time.String()
		out.Time = &s
	}
	for _, w := range resp.Windows {
		out.Windows = append(out.Windows, ClosedWindow{Start: w.Start, End: w.End})
	}
	return out
}
