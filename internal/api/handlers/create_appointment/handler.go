package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	createAppointment "github.com/m04kA/SMC-BarbershopService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты записи, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidInput       = "некорректные данные записи"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgShopClosed         = "салон закрыт в выбранную дату"
	msgDateInPast         = "нельзя записаться на прошедшую дату"
	msgDateTooFar         = "дата записи слишком далеко в будущем"
	msgInvalidTimeSlot    = "выбранное время не совпадает ни с одним доступным слотом"
	msgTooLateToBook      = "слишком поздно для записи на это время"
	msgHoursNotConfigured = "расписание салона не настроено"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, errInvalidStartTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: staff_id=%d, date=%s, start=%s",
				req.StaffID, req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrShopClosed):
			h.logger.Warn("POST /appointments - Shop closed: staff_id=%d, date=%s", req.StaffID, req.Date)
			handlers.RespondConflict(w, msgShopClosed)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: staff_id=%d, date=%s, start=%s",
				req.StaffID, req.Date, req.StartTime)
			handlers.RespondUnprocessable(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrTooLateToBook):
			h.logger.Warn("POST /appointments - Too late to book: staff_id=%d, date=%s, start=%s",
				req.StaffID, req.Date, req.StartTime)
			handlers.RespondUnprocessable(w, msgTooLateToBook)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Date in the past: staff_id=%d, date=%s", req.StaffID, req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrDateTooFarInFuture):
			h.logger.Warn("POST /appointments - Date too far in future: staff_id=%d, date=%s", req.StaffID, req.Date)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrBusinessHoursNotConfigured):
			h.logger.Error("POST /appointments - Business hours not configured")
			handlers.RespondNotFound(w, msgHoursNotConfigured)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: staff_id=%d, date=%s, error=%v",
				req.StaffID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, staff_id=%d, date=%s, start=%s",
		result.ID, result.StaffID, req.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
