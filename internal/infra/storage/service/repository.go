package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	"github.com/m04kA/FIX-BookingService/pkg/dbmetrics"
	"github.com/m04kA/FIX-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с каталогом услуг
// Каталог заполняется миграциями, репозиторий read-only
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll получает все услуги каталога, опционально по категории
func (r *Repository) GetAll(ctx context.Context, category *domain.ServiceCategory) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"price",
		"duration_minutes",
		"image",
		"category",
	).
		From("services").
		OrderBy("category ASC, price ASC")

	if category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *category})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.Service, 0)

	for rows.Next() {
		var svc domain.Service

		err := rows.Scan(
			&svc.ID,
			&svc.Name,
			&svc.Description,
			&svc.Price,
			&svc.DurationMinutes,
			&svc.Image,
			&svc.Category,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}

		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetByID получает услугу по строковому идентификатору каталога
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"description",
		"price",
		"duration_minutes",
		"image",
		"category",
	).
		From("services").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var svc domain.Service

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&svc.ID,
		&svc.Name,
		&svc.Description,
		&svc.Price,
		&svc.DurationMinutes,
		&svc.Image,
		&svc.Category,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan service: %v", ErrScanRow, err)
	}

	return &svc, nil
}
