package update_closure

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/closures"
	"github.com/m04kA/SMC-BarbershopService/internal/service/closures/models"
)

const (
	msgInvalidClosureID   = "некорректный ID закрытия"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные закрытия"
	msgNotFound           = "закрытие не найдено"
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

// Handle PUT /api/v1/closures/{closureId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	closureID, err := strconv.ParseInt(vars["closureId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /closures/{id} - Invalid closure ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClosureID)
		return
	}

	var req models.ClosureRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /closures/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), closureID, &req)
	if err != nil {
		switch {
		case errors.Is(err, closures.ErrInvalidInput):
			h.logger.Warn("PUT /closures/{id} - Invalid closure: closure_id=%d, error=%v", closureID, err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidData+": "+err.Error())

		case errors.Is(err, closures.ErrClosureNotFound):
			h.logger.Warn("PUT /closures/{id} - Closure not found: closure_id=%d", closureID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /closures/{id} - Failed to update closure: closure_id=%d, error=%v", closureID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /closures/{id} - Closure updated successfully: closure_id=%d", closureID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
