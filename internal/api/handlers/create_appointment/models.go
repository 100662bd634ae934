package create_appointment

import (
	"time"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	createAppointment "github.com/m04kA/FIX-BookingService/internal/usecase/create_appointment"
	"github.com/m04kA/FIX-BookingService/pkg/types"
)

// CartItem позиция корзины в HTTP запросе
type CartItem struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"qty"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Date          string     `json:"date"` // "2025-10-15"
	Time          string     `json:"time"` // "09:30"
	Items         []CartItem `json:"items"`
	PaymentMethod string     `json:"paymentMethod"` // "online" | "presencial" | легаси-алиас "cash"
	Notes         *string    `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64      `json:"id"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	DurationMinutes int        `json:"durationMinutes"`
	PaymentMethod   string     `json:"paymentMethod"`
	Notes           *string    `json:"notes,omitempty"`
	Items           []CartItem `json:"items"`
	CreatedAt       string     `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Алиас метода оплаты нормализуется здесь, на границе - внутрь ядра
// внешние значения не просачиваются
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	// Парсим время
	startTime, err := types.NewTimeStringFromString(r.Time)
	if err != nil {
		return nil, err
	}

	items := make([]createAppointment.Item, len(r.Items))
	for i, item := range r.Items {
		items[i] = createAppointment.Item{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
		}
	}

	return &createAppointment.Request{
		Date:          date,
		StartTime:     startTime,
		Items:         items,
		PaymentMethod: domain.NormalizePaymentMethod(r.PaymentMethod),
		Notes:         r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	items := make([]CartItem, len(resp.Items))
	for i, item := range resp.Items {
		items[i] = CartItem{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
		}
	}

	return &AppointmentResponse{
		ID:              resp.ID,
		Date:            resp.Date.Format(domain.DateFormat),
		Time:            resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		PaymentMethod:   resp.PaymentMethod,
		Notes:           resp.Notes,
		Items:           items,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
	}
}
