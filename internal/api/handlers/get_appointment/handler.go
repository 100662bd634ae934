package get_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/FIX-BookingService/internal/api/handlers"
	"github.com/m04kA/FIX-BookingService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "id de agendamento inválido"
	msgAppointmentNotFound  = "Agendamento não encontrado."
)

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

// Handle GET /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /appointments/{id} - Invalid id: %s", vars["id"])
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	result, err := h.appointmentsService.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/{id} - Appointment not found: appointment_id=%d", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("GET /appointments/{id} - Failed to fetch appointment: appointment_id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/{id} - Fetched appointment: appointment_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
