package models

import (
	"time"

	"github.com/m04kA/SMC-BarbershopService/internal/domain"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

// Request модели

// ClosureRequest запрос на создание или изменение закрытия.
// Для закрытия на весь день время не указывается
type ClosureRequest struct {
	Date      string           `json:"date"` // "2026-03-14"
	Reason    string           `json:"reason"`
	IsFullDay bool             `json:"isFullDay"`
	StartTime *types.TimeOfDay `json:"startTime,omitempty"`
	EndTime   *types.TimeOfDay `json:"endTime,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *ClosureRequest) ToDomain() (*domain.ShopClosure, error) {
	date, err := types.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &domain.ShopClosure{
		Date:      date,
		Reason:    r.Reason,
		IsFullDay: r.IsFullDay,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
	}, nil
}

// ListClosuresRequest запрос на получение закрытий за период (включительно)
type ListClosuresRequest struct {
	From time.Time
	To   time.Time
}

// Response модели

// ClosureResponse ответ с данными закрытия
type ClosureResponse struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason"`
	IsFullDay bool      `json:"isFullDay"`
	StartTime *string   `json:"startTime,omitempty"`
	EndTime   *string   `json:"endTime,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClosureListResponse ответ со списком закрытий
type ClosureListResponse struct {
	Closures []ClosureResponse `json:"closures"`
}

// FromDomainClosure конвертирует domain модель в DTO
func FromDomainClosure(c *domain.ShopClosure) *ClosureResponse {
	if c == nil {
		return nil
	}

	resp := &ClosureResponse{
		ID:        c.ID,
		Date:      c.Date.Format(domain.DateFormat),
		Reason:    c.Reason,
		IsFullDay: c.IsFullDay,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}

	if c.StartTime != nil {
		start := c.StartTime.String()
		resp.StartTime = &start
	}
	if c.EndTime != nil {
		end := c.EndTime.String()
		resp.EndTime = &end
	}

	return resp
}

// FromDomainClosureList конвертирует список domain моделей в DTO
func FromDomainClosureList(closures []domain.ShopClosure) *ClosureListResponse {
	result := &ClosureListResponse{Closures: make([]ClosureResponse, 0, len(closures))}
	for i := range closures {
		result.Closures = append(result.Closures, *FromDomainClosure(&closures[i]))
	}
	return result
}
