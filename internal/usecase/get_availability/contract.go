package get_availability

import (
	"context"

	"github.com/m04kA/FIX-BookingService/internal/domain"
)

// AppointmentRepository интерфейс репозитория бронирований
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
