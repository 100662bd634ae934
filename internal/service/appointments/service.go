package appointments

import (
	"context"
	"errors"
	"fmt"

	apptRepo "github.com/m04kA/FIX-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/FIX-BookingService/internal/service/appointments/models"
)

// Service сервис для чтения бронирований
type Service struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(apptRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.apptRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apptRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает бронирования, опционально на конкретную дату
func (s *Service) List(ctx context.Context, req *models.ListAppointmentsRequest) (*models.AppointmentListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid date filter", ErrInvalidInput)
	}

	appointments, err := s.apptRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}
