package list_services

import (
	"context"

	"github.com/m04kA/FIX-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	List(ctx context.Context, category *string) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
