package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-BarbershopService/internal/usecase/get_available_slots"
)

const (
	msgInvalidStaffID         = "некорректный ID мастера"
	msgInvalidDuration        = "некорректная длительность услуги"
	msgMissingDate            = "дата обязательна"
	msgInvalidDate            = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput           = "некорректные параметры запроса"
	msgDateInPast             = "нельзя получить слоты на прошедшую дату"
	msgDateTooFar             = "дата превышает горизонт записи"
	msgHoursNotConfigured     = "расписание салона не настроено"
	msgInvalidHoursConfigured = "расписание салона настроено некорректно"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/available-slots
// Query params: date (required, YYYY-MM-DD), duration (optional, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	staffID, err := strconv.ParseInt(vars["staffId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-slots - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /staff/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Длительность опциональна, по умолчанию берется длительность слота
	duration := 0
	if durationStr := query.Get("duration"); durationStr != "" {
		duration, err = strconv.Atoi(durationStr)
		if err != nil || duration <= 0 {
			h.logger.Warn("GET /staff/{id}/available-slots - Invalid duration: %q", durationStr)
			handlers.RespondBadRequest(w, msgInvalidDuration)
			return
		}
	}

	useCaseReq, err := ToUseCaseRequest(staffID, dateStr, duration)
	if err != nil {
		h.logger.Warn("GET /staff/{id}/available-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /staff/{id}/available-slots - Invalid input: staff_id=%d, error=%v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /staff/{id}/available-slots - Date in the past: staff_id=%d, date=%s", staffID, dateStr)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, getAvailableSlots.ErrDateTooFarInFuture):
			h.logger.Warn("GET /staff/{id}/available-slots - Date beyond horizon: staff_id=%d, date=%s", staffID, dateStr)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, getAvailableSlots.ErrBusinessHoursNotConfigured):
			h.logger.Error("GET /staff/{id}/available-slots - Business hours not configured")
			handlers.RespondNotFound(w, msgHoursNotConfigured)

		case errors.Is(err, getAvailableSlots.ErrInvalidConfiguration):
			h.logger.Error("GET /staff/{id}/available-slots - Invalid business hours: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgInvalidHoursConfigured)

		default:
			h.logger.Error("GET /staff/{id}/available-slots - Failed to get slots: staff_id=%d, date=%s, error=%v",
				staffID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /staff/{id}/available-slots - Slots retrieved successfully: staff_id=%d, date=%s, slots_count=%d",
		staffID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
