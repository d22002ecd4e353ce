package create_closure

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/closures"
	"github.com/m04kA/SMC-BarbershopService/internal/service/closures/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные закрытия"
)

type Handler struct {
	service ClosureService
	logger  Logger
}

func NewHandler(service ClosureService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/closures
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.ClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /closures - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, closures.ErrInvalidInput) {
			h.logger.Warn("POST /closures - Invalid closure: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidData+": "+err.Error())
			return
		}

		h.logger.Error("POST /closures - Failed to create closure: date=%s, error=%v", req.Date, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /closures - Closure created successfully: closure_id=%d, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
