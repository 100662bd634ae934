package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	serviceRepo "github.com/m04kA/FIX-BookingService/internal/infra/storage/service"
	"github.com/m04kA/FIX-BookingService/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List получает услуги каталога, опционально по категории
func (s *Service) List(ctx context.Context, category *string) (*models.ServiceListResponse, error) {
	var domainCategory *domain.ServiceCategory
	if category != nil {
		c := domain.ServiceCategory(*category)
		if !c.IsValid() {
			s.logger.Warn("List: invalid category=%s", *category)
			return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, *category)
		}
		domainCategory = &c
	}

	services, err := s.serviceRepo.GetAll(ctx, domainCategory)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetByID получает услугу по идентификатору каталога
func (s *Service) GetByID(ctx context.Context, id string) (*models.ServiceResponse, error) {
	svc, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(svc), nil
}
