package list_closures

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-BarbershopService/internal/api/handlers"
	"github.com/m04kA/SMC-BarbershopService/internal/service/closures"
	"github.com/m04kA/SMC-BarbershopService/internal/service/closures/models"
	"github.com/m04kA/SMC-BarbershopService/pkg/types"
)

const (
	msgInvalidParams = "некорректные параметры запроса, ожидаются from и to в формате YYYY-MM-DD"
	msgInvalidPeriod = "некорректный период"
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

// Handle GET /api/v1/closures
// Query params: from, to (required, YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := types.ParseDate(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /closures - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	to, err := types.ParseDate(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /closures - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), &models.ListClosuresRequest{From: from, To: to})
	if err != nil {
		if errors.Is(err, closures.ErrInvalidPeriod) {
			h.logger.Warn("GET /closures - Invalid period: %v", err)
			handlers.RespondError(w, http.StatusBadRequest, msgInvalidPeriod+": "+err.Error())
			return
		}

		h.logger.Error("GET /closures - Failed to list closures: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /closures - Closures retrieved successfully: count=%d", len(result.Closures))
	handlers.RespondJSON(w, http.StatusOK, result)
}
