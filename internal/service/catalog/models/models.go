package models

import "github.com/m04kA/FIX-BookingService/internal/domain"

// Response модели

// ServiceResponse ответ с данными услуги каталога
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"duration"`
	Image           string  `json:"image"`
	Category        string  `json:"category"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		Image:           s.Image,
		Category:        string(s.Category),
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	result := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		result = append(result, *FromDomainService(s))
	}
	return &ServiceListResponse{Services: result}
}
