package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	apptRepo "github.com/m04kA/FIX-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/FIX-BookingService/internal/scheduling"
)

// UseCase use case для создания бронирования
type UseCase struct {
	apptRepo     AppointmentRepository
	catalog      ServiceCatalog
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apptRepo AppointmentRepository,
	catalog ServiceCatalog,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apptRepo:     apptRepo,
		catalog:      catalog,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Использует сериализуемую транзакцию для предотвращения гонки данных между
// проверкой пересечений и вставкой; уникальное ограничение БД на
// (appointment_date, start_time) остается страховкой на случай, если гонку
// не поймала транзакция
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: date=%s, time=%s, items=%d, payment=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, len(req.Items), req.PaymentMethod)

	// 1. Валидация входных данных - до какой-либо работы планировщика
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата бронирования не должна быть в прошлом
	now := uc.timeProvider.Now()
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateAppointment: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	// 3. Загружаем каталог и валидируем позиции против него
	services, err := uc.catalog.GetAll(ctx, nil)
	if err != nil {
		uc.logger.Error("CreateAppointment: failed to load service catalog: %v", err)
		return nil, fmt.Errorf("%w: failed to load service catalog: %v", ErrInternal, err)
	}

	durations := domain.DurationIndex(services)
	if err := validateItemsAgainstCatalog(req.Items, durations); err != nil {
		uc.logger.Warn("CreateAppointment: catalog validation failed: %v", err)
		return nil, err
	}

	// 4. Вычисляем суммарную длительность корзины и запрошенное окно
	items := toDomainItems(req.Items)
	totalMinutes := scheduling.ResolveDuration(items, durations)

	requested, err := scheduling.ComputeWindow(req.StartTime, totalMinutes)
	if err != nil {
		// Формат уже проверен валидацией, сюда попадать не должны
		uc.logger.Warn("CreateAppointment: failed to compute window: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidTime, err)
	}

	notes := normalizeNotes(req.Notes)

	// Переменная для хранения результата
	var result *domain.Appointment

	// 5. Проверка пересечений и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем все бронирования на эту дату с блокировкой (FOR UPDATE)
		existing, err := uc.apptRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{Date: &req.Date})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		// 5.2. Строим окна существующих бронирований из их сохраненной
		// суммарной длительности (длительность фиксируется при создании,
		// последующие правки каталога не двигают существующие окна)
		windows := make([]scheduling.Window, 0, len(existing))
		for _, appt := range existing {
			w, err := scheduling.ComputeWindow(appt.StartTime, appt.DurationMinutes)
			if err != nil {
				// Невалидное время в БД пропускаем, не роняя бронирование
				uc.logger.Warn("CreateAppointment: skipping appointment id=%d with bad start_time: %v", appt.ID, err)
				continue
			}
			windows = append(windows, w)
		}

		// 5.3. Проверяем запрошенное окно против каждого существующего
		if scheduling.HasConflict(requested, windows) {
			uc.logger.Warn("CreateAppointment: window [%d, %d) overlaps an existing appointment on %s",
				requested.Start, requested.End, req.Date.Format(domain.DateFormat))
			return ErrTimeSlotTaken
		}

		// 5.4. Создаем бронирование
		appt := &domain.Appointment{
			Date:            req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: totalMinutes,
			PaymentMethod:   req.PaymentMethod,
			Notes:           notes,
			Items:           items,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			// Отказ уникального ограничения - тот же исход, что и pre-check
			if errors.Is(err, apptRepo.ErrTimeSlotTaken) {
				uc.logger.Warn("CreateAppointment: unique constraint rejected insert for %s %s",
					req.Date.Format(domain.DateFormat), req.StartTime)
				return ErrTimeSlotTaken
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d, window=[%d, %d)",
		result.ID, requested.Start, requested.End)

	// Конвертируем в response
	return &Response{
		ID:              result.ID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		PaymentMethod:   string(result.PaymentMethod),
		Notes:           result.Notes,
		Items:           req.Items,
		CreatedAt:       result.CreatedAt,
	}, nil
}

// toDomainItems конвертирует позиции запроса в доменные, сохраняя порядок
func toDomainItems(items []Item) []domain.LineItem {
	result := make([]domain.LineItem, len(items))
	for i, item := range items {
		result[i] = domain.LineItem{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
		}
	}
	return result
}
