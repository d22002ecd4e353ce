package get_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/businesshours"
)

const msgNotConfigured = "расписание салона не настроено"

type Handler struct {
	service BusinessHoursService
	logger  Logger
}

func NewHandler(service BusinessHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		if errors.Is(err, businesshours.ErrBusinessHoursNotFound) {
			h.logger.Warn("GET /business-hours - Business hours not configured")
			handlers.RespondNotFound(w, msgNotConfigured)
			return
		}

		h.logger.Error("GET /business-hours - Failed to get business hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /business-hours - Business hours retrieved successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
