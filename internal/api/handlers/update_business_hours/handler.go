package update_business_hours

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/businesshours"
	"github.com/m04kA/SMC-BarbershopService/internal/service/businesshours/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные расписания"
)

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

// Handle PUT /api/v1/business-hours
// Расписание заменяется целиком, включая перерывы и выходные
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateBusinessHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		if errors.Is(err, businesshours.ErrInvalidInput) {
			h.logger.Warn("PUT /business-hours - Invalid business hours: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidData+": "+err.Error())
			return
		}

		h.logger.Error("PUT /business-hours - Failed to update business hours: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /business-hours - Business hours updated: opening=%s, closing=%s, slot=%d",
		result.OpeningTime, result.ClosingTime, result.SlotDurationMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
