package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	"github.com/m04kA/FIX-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FIX-BookingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pgUniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование вместе с позициями корзины
// Если в контексте передана активная транзакция (через context.Value), использует её.
//
// Уникальное ограничение БД на (appointment_date, start_time) служит страховкой
// от гонки check-then-act: если два конкурентных запроса прошли проверку
// пересечений, вторая вставка будет отклонена и вернется ErrTimeSlotTaken
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"appointment_date",
			"start_time",
			"duration_minutes",
			"payment_method",
			"notes",
		).
		Values(
			appt.Date,
			appt.StartTime,
			appt.DurationMinutes,
			appt.PaymentMethod,
			appt.Notes,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrTimeSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time

	// Позиции корзины вставляются одним запросом, порядок сохраняется
	if len(appt.Items) > 0 {
		insertBuilder := psqlbuilder.Insert("appointment_items").
			Columns("appointment_id", "service_id", "quantity", "position")

		for i, item := range appt.Items {
			insertBuilder = insertBuilder.Values(appt.ID, item.ServiceID, item.Quantity, i)
		}

		query, args, err = insertBuilder.ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build items insert query: %v", ErrBuildQuery, err)
		}

		if _, err = executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - execute items insert: %v", ErrExecQuery, err)
		}
	}

	return appt, nil
}

// GetByID получает бронирование по ID вместе с позициями
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"appointment_date",
		"start_time",
		"duration_minutes",
		"payment_method",
		"notes",
		"created_at",
	).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var appt domain.Appointment
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&appt.Date,
		&appt.StartTime,
		&appt.DurationMinutes,
		&appt.PaymentMethod,
		&appt.Notes,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	appt.CreatedAt = createdAt.Time

	if err := r.loadItems(ctx, executor, []*domain.Appointment{&appt}); err != nil {
		return nil, err
	}

	return &appt, nil
}

// GetWithFilter получает бронирования с фильтрацией
//
// Примеры использования:
//
//  1. Все бронирования:
//     filter := domain.AppointmentsFilter{}
//
//  2. Бронирования на конкретную дату (для проверки пересечений):
//     date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
//     filter := domain.AppointmentsFilter{Date: &date}
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"appointment_date",
		"start_time",
		"duration_minutes",
		"payment_method",
		"notes",
		"created_at",
	).
		From("appointments")

	if filter.Date != nil {
		selectBuilder = selectBuilder.
			Where(squirrel.Eq{"appointment_date": *filter.Date}).
			OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("appointment_date DESC, start_time DESC")
	}

	// Внутри транзакции выборка на дату блокируется FOR UPDATE -
	// используется usecase создания бронирования для проверки пересечений
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	appointments, err := r.scanAppointments(rows)
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, executor, appointments); err != nil {
		return nil, err
	}

	return appointments, nil
}

// loadItems загружает позиции корзины для набора бронирований одним запросом
func (r *Repository) loadItems(ctx context.Context, executor DBExecutor, appointments []*domain.Appointment) error {
	if len(appointments) == 0 {
		return nil
	}

	ids := make([]int64, len(appointments))
	index := make(map[int64]*domain.Appointment, len(appointments))
	for i, appt := range appointments {
		ids[i] = appt.ID
		index[appt.ID] = appt
	}

	query, args, err := psqlbuilder.Select(
		"appointment_id",
		"service_id",
		"quantity",
	).
		From("appointment_items").
		Where(squirrel.Eq{"appointment_id": ids}).
		OrderBy("appointment_id ASC, position ASC").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: loadItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var apptID int64
		var item domain.LineItem

		if err := rows.Scan(&apptID, &item.ServiceID, &item.Quantity); err != nil {
			return fmt.Errorf("%w: loadItems - scan row: %v", ErrScanRow, err)
		}

		if appt, ok := index[apptID]; ok {
			appt.Items = append(appt.Items, item)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadItems - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// scanAppointments сканирует результаты запроса в слайс бронирований
func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.Date,
			&appt.StartTime,
			&appt.DurationMinutes,
			&appt.PaymentMethod,
			&appt.Notes,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time

		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}

// isUniqueViolation проверяет, что ошибка вызвана нарушением уникального ограничения
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}
