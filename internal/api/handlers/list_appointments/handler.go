package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/FIX-BookingService/internal/api/handlers"
	"github.com/m04kA/FIX-BookingService/internal/service/appointments"
	"github.com/m04kA/FIX-BookingService/internal/service/appointments/models"
)

const msgInvalidDate = "formato de data inválido, esperado YYYY-MM-DD"

type Handler struct {
	appointmentsService AppointmentsService
	logger              Logger
}

func NewHandler(appointmentsService AppointmentsService, logger Logger) *Handler {
	return &Handler{
		appointmentsService: appointmentsService,
		logger:              logger,
	}
}

// Handle GET /api/v1/appointments?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListAppointmentsRequest{}
	if raw := r.URL.Query().Get("date"); raw != "" {
		req.Date = &raw
	}

	result, err := h.appointmentsService.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid date filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /appointments - Failed to fetch appointments: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Fetched %d appointments", len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
