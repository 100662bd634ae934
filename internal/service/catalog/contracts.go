package catalog

import (
	"context"

	"github.com/m04kA/FIX-BookingService/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	GetAll(ctx context.Context, category *domain.ServiceCategory) ([]*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
