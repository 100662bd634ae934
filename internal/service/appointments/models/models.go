package models

import (
	"time"

	"github.com/m04kA/FIX-BookingService/internal/domain"
)

// Request модели

// ListAppointmentsRequest запрос на получение бронирований
type ListAppointmentsRequest struct {
	Date *string `json:"date,omitempty"` // Фильтр по дате YYYY-MM-DD (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &date
	}

	return filter, nil
}

// Response модели

// LineItemResponse позиция корзины бронирования
type LineItemResponse struct {
	ServiceID string `json:"serviceId"`
	Quantity  int    `json:"quantity"`
}

// AppointmentResponse ответ с данными бронирования
type AppointmentResponse struct {
	ID              int64              `json:"id"`
	Date            string             `json:"date"`      // "2025-10-15"
	StartTime       string             `json:"time"`      // "10:00"
	DurationMinutes int                `json:"durationMinutes"`
	PaymentMethod   string             `json:"paymentMethod"`
	Notes           *string            `json:"notes,omitempty"`
	Items           []LineItemResponse `json:"items"`
	CreatedAt       time.Time          `json:"createdAt"`
}

// AppointmentListResponse ответ со списком бронирований
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	items := make([]LineItemResponse, 0, len(a.Items))
	for _, item := range a.Items {
		items = append(items, LineItemResponse{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
		})
	}

	return &AppointmentResponse{
		ID:              a.ID,
		Date:            a.Date.Format(domain.DateFormat),
		StartTime:       a.StartTime.String(),
		DurationMinutes: a.DurationMinutes,
		PaymentMethod:   string(a.PaymentMethod),
		Notes:           a.Notes,
		Items:           items,
		CreatedAt:       a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(appointments))
	for _, a := range appointments {
		result = append(result, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: result}
}
