package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/FIX-BookingService/internal/api/handlers"
	"github.com/m04kA/FIX-BookingService/internal/domain"
	getAvailability "github.com/m04kA/FIX-BookingService/internal/usecase/get_availability"
)

const (
	msgMissingDate = "parâmetro date é obrigatório"
	msgInvalidDate = "formato de data inválido, esperado YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		h.logger.Warn("GET /availability - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, rawDate)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: date=%s", rawDate)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailability.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to fetch availability: date=%s, error=%v", rawDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Fetched availability: date=%s, blocks=%d", rawDate, len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
