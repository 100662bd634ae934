package get_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	"github.com/m04kA/FIX-BookingService/internal/scheduling"
)

// UseCase use case для получения занятости на дату
type UseCase struct {
	apptRepo AppointmentRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(apptRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		apptRepo: apptRepo,
		logger:   logger,
	}
}

// Execute выполняет use case получения занятости
// Возвращает сырые блоки (время + длительность) и развёрнутый набор занятых
// 30-минутных слотов; слот, которого нет в наборе, можно предлагать клиенту
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: date=%s", req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 2. Получаем все бронирования на дату
	appointments, err := uc.apptRepo.GetWithFilter(ctx, domain.AppointmentsFilter{Date: &req.Date})
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 3. Строим окно каждого бронирования тем же способом, что и проверка
	// пересечений: сохраненная суммарная длительность от времени начала
	blocks := make([]Block, 0, len(appointments))
	windows := make([]scheduling.Window, 0, len(appointments))

	for _, appt := range appointments {
		w, err := scheduling.ComputeWindow(appt.StartTime, appt.DurationMinutes)
		if err != nil {
			uc.logger.Warn("GetAvailability: skipping appointment id=%d with bad start_time: %v", appt.ID, err)
			continue
		}

		blocks = append(blocks, Block{
			StartTime:    appt.StartTime,
			TotalMinutes: appt.DurationMinutes,
		})
		windows = append(windows, w)
	}

	// 4. Раскладываем окна в дискретные занятые слоты для отображения
	occupied := scheduling.OccupiedSlots(windows)

	uc.logger.Info("GetAvailability: date=%s, blocks=%d, occupied_slots=%d",
		req.Date.Format(domain.DateFormat), len(blocks), len(occupied))

	return &Response{
		Date:          req.Date,
		Blocks:        blocks,
		OccupiedSlots: occupied,
	}, nil
}
