package check_closure

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	checkClosure "github.com/m04kA/SMC-BarbershopService/internal/usecase/check_closure"
)

const (
	msgMissingDate  = "дата обязательна"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime  = "некорректный формат времени, ожидается HH:MM"
	msgInvalidInput = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckClosureUseCase
	logger  Logger
}

func NewHandler(useCase CheckClosureUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/closures/status
// Query params: date (required, YYYY-MM-DD), time (optional, HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /closures/status - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("time"))
	if err != nil {
		h.logger.Warn("GET /closures/status - Invalid params: %v", err)
		if errors.Is(err, errInvalidTime) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkClosure.ErrInvalidInput):
			h.logger.Warn("GET /closures/status - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /closures/status - Failed to check closure: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /closures/status - Closure checked: date=%s, closed=%t", dateStr, result.IsClosed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
