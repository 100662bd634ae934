package domain

import (
	"time"

	"github.com/m04kA/FIX-BookingService/pkg/types"
)

// PaymentMethod represents how the client pays for an appointment
type PaymentMethod string

const (
	PaymentOnline   PaymentMethod = "online"
	PaymentInPerson PaymentMethod = "presencial"
)

// IsValid returns true for a canonical payment method value
func (p PaymentMethod) IsValid() bool {
	return p == PaymentOnline || p == PaymentInPerson
}

// NormalizePaymentMethod приводит внешние алиасы к каноническому значению
// Легаси-клиенты присылают "cash" вместо "presencial"
func NormalizePaymentMethod(raw string) PaymentMethod {
	if raw == "cash" {
		return PaymentInPerson
	}
	return PaymentMethod(raw)
}

// LineItem represents one service position in the booking cart
type LineItem struct {
	ServiceID string
	Quantity  int
}

// Appointment represents a confirmed booking in the system
// Создается только после прохождения проверки пересечений; неизменяемо
type Appointment struct {
	ID              int64
	Date            time.Time
	StartTime       types.TimeString
	DurationMinutes int // Denormalized total over all items
	PaymentMethod   PaymentMethod
	Notes           *string
	Items           []LineItem

	CreatedAt time.Time
}

// AppointmentsFilter фильтр для выборки бронирований
type AppointmentsFilter struct {
	Date *time.Time // Конкретная дата (опционально, если nil - все бронирования)
}
