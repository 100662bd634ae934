package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/FIX-BookingService/internal/api/handlers"
	"github.com/m04kA/FIX-BookingService/internal/domain"
	createAppointment "github.com/m04kA/FIX-BookingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgInvalidDate          = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidTime          = "formato de horário inválido, esperado HH:MM"
	msgEmptyCart            = "Carrinho vazio."
	msgUnknownService       = "Serviço inválido no carrinho."
	msgInvalidQuantity      = "Quantidade inválida."
	msgInvalidPaymentMethod = "Método de pagamento inválido."
	msgMissingDateTime      = "Data e hora são obrigatórias."
	msgPastDate             = "Selecione uma data futura."
	msgNotesTooLong         = "Observações não podem ter mais de 500 caracteres."
	msgSlotTaken            = "Este horário já está reservado."
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

	// Дата и время обязательны до какого-либо парсинга
	if req.Date == "" || req.Time == "" {
		h.logger.Warn("POST /appointments - Missing date or time")
		handlers.RespondBadRequest(w, msgMissingDateTime)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if _, dateErr := time.Parse(domain.DateFormat, req.Date); dateErr != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
		} else {
			handlers.RespondBadRequest(w, msgInvalidTime)
		}
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		// Обработка ошибок use case
		switch {
		case errors.Is(err, createAppointment.ErrTimeSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, createAppointment.ErrEmptyCart):
			h.logger.Warn("POST /appointments - Empty cart")
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, createAppointment.ErrUnknownService):
			h.logger.Warn("POST /appointments - Unknown service in cart: %v", err)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createAppointment.ErrInvalidQuantity):
			h.logger.Warn("POST /appointments - Invalid quantity: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuantity)

		case errors.Is(err, createAppointment.ErrInvalidPaymentMethod):
			h.logger.Warn("POST /appointments - Invalid payment method: %s", req.PaymentMethod)
			handlers.RespondBadRequest(w, msgInvalidPaymentMethod)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("POST /appointments - Invalid date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createAppointment.ErrInvalidTime):
			h.logger.Warn("POST /appointments - Invalid time: time=%s", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createAppointment.ErrNotesTooLong):
			h.logger.Warn("POST /appointments - Notes too long")
			handlers.RespondBadRequest(w, msgNotesTooLong)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: date=%s, time=%s, error=%v",
				req.Date, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Формируем HTTP ответ
	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, date=%s, time=%s",
		result.ID, req.Date, req.Time)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
