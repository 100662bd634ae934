package get_service

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/FIX-BookingService/internal/api/handlers"
	"github.com/m04kA/FIX-BookingService/internal/service/catalog"
)

const msgServiceNotFound = "Serviço não encontrado."

type Handler struct {
	catalogService CatalogService
	logger         Logger
}

func NewHandler(catalogService CatalogService, logger Logger) *Handler {
	return &Handler{
		catalogService: catalogService,
		logger:         logger,
	}
}

// Handle GET /api/v1/services/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	result, err := h.catalogService.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id} - Service not found: service_id=%s", id)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /services/{id} - Failed to fetch service: service_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id} - Fetched service: service_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
