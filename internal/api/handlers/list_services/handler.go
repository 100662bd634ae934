package list_services

import (
	"errors"
	"net/http"

	"github.com/m04kA/FIX-BookingService/internal/api/handlers"
	"github.com/m04kA/FIX-BookingService/internal/service/catalog"
)

const msgInvalidCategory = "categoria inválida"

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

// Handle GET /api/v1/services?category=haircut
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var category *string
	if raw := r.URL.Query().Get("category"); raw != "" {
		category = &raw
	}

	result, err := h.catalogService.List(r.Context(), category)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidCategory):
			h.logger.Warn("GET /services - Invalid category: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /services - Failed to fetch services: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services - Fetched %d services", len(result.Services))
	handlers.RespondJSON(w, http.StatusOK, result)
}
