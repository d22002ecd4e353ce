package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модели

// UpdateBusinessHoursRequest запрос на замену расписания салона
type UpdateBusinessHoursRequest struct {
	OpeningTime         types.TimeOfDay `json:"openingTime"` // "09:00"
	ClosingTime         types.TimeOfDay `json:"closingTime"` // "20:00"
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	Breaks              []BreakPeriod   `json:"breaks"`
	DaysOff             []string        `json:"daysOff"` // "sunday", "monday", ...
}

// BreakPeriod ежедневный перерыв
type BreakPeriod struct {
	Name  string          `json:"name"`
	Start types.TimeOfDay `json:"start"`
	End   types.TimeOfDay `json:"end"`
}

// ToDomain конвертирует запрос в domain модель
func (r *UpdateBusinessHoursRequest) ToDomain() (*domain.BusinessHours, error) {
	hours := &domain.BusinessHours{
		OpeningTime:         r.OpeningTime,
		ClosingTime:         r.ClosingTime,
		SlotDurationMinutes: r.SlotDurationMinutes,
		Breaks:              make([]domain.BreakPeriod, 0, len(r.Breaks)),
		DaysOff:             make([]time.Weekday, 0, len(r.DaysOff)),
	}

	for _, b := range r.Breaks {
		hours.Breaks = append(hours.Breaks, domain.BreakPeriod{Name: b.Name, Start: b.Start, End: b.End})
	}

	for _, d := range r.DaysOff {
		weekday, err := ParseWeekday(d)
		if err != nil {
			return nil, err
		}
		hours.DaysOff = append(hours.DaysOff, weekday)
	}

	return hours, nil
}

// Response модели

// BusinessHoursResponse ответ с расписанием салона
type BusinessHoursResponse struct {
	OpeningTime         string        `json:"openingTime"`
	ClosingTime         string        `json:"closingTime"`
	SlotDurationMinutes int           `json:"slotDurationMinutes"`
	Breaks              []BreakPeriod `json:"breaks"`
	DaysOff             []string      `json:"daysOff"`
	UpdatedAt           time.Time     `json:"updatedAt"`
}

// FromDomainBusinessHours конвертирует domain модель в DTO
func FromDomainBusinessHours(h *domain.BusinessHours) *BusinessHoursResponse {
	if h == nil {
		return nil
	}

	resp := &BusinessHoursResponse{
		OpeningTime:         h.OpeningTime.String(),
		ClosingTime:         h.ClosingTime.String(),
		SlotDurationMinutes: h.SlotDurationMinutes,
		Breaks:              make([]BreakPeriod, 0, len(h.Breaks)),
		DaysOff:             make([]string, 0, len(h.DaysOff)),
		UpdatedAt:           h.UpdatedAt,
	}

	for _, b := range h.Breaks {
		resp.Breaks = append(resp.Breaks, BreakPeriod{Name: b.Name, Start: b.Start, End: b.End})
	}
	for _, d := range h.DaysOff {
		resp.DaysOff = append(resp.DaysOff, strings.ToLower(d.String()))
	}

	return resp
}

// ParseWeekday разбирает название дня недели без учета регистра
func ParseWeekday(s string) (time.Weekday, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}
