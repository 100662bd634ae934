package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	apptRepo "github.com/m04kA/FIX-BookingService/internal/infra/storage/appointment"
	"github.com/m04kA/FIX-BookingService/pkg/ptr"
	"github.com/m04kA/FIX-BookingService/pkg/types"
)

type fakeApptRepo struct {
	createFn func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	getFn    func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

func (f *fakeApptRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if f.createFn == nil {
		panic("Create not configured")
	}
	return f.createFn(ctx, appt)
}

func (f *fakeApptRepo) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.getFn == nil {
		panic("GetWithFilter not configured")
	}
	return f.getFn(ctx, filter)
}

type fakeCatalog struct {
	services []*domain.Service
	err      error
}

func (f *fakeCatalog) GetAll(ctx context.Context, category *domain.ServiceCategory) ([]*domain.Service, error) {
	return f.services, f.err
}

// fakeTxManager выполняет функцию без настоящей транзакции
type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testCatalog = []*domain.Service{
	{ID: "haircut-classic", Name: "Corte Clássico", DurationMinutes: 30, Price: 50, Category: domain.CategoryHaircut},
	{ID: "beard-trim", Name: "Aparação de Barba", DurationMinutes: 25, Price: 35, Category: domain.CategoryBeard},
}

func newTestUseCase(repo *fakeApptRepo, catalog *fakeCatalog) *UseCase {
	uc := NewUseCase(repo, catalog, &fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fakeClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		Date:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		Items: []Item{
			{ServiceID: "haircut-classic", Quantity: 1},
			{ServiceID: "beard-trim", Quantity: 1},
		},
		PaymentMethod: domain.PaymentOnline,
	}
}

func TestExecute_CreatesAppointmentOnFreeDay(t *testing.T) {
	var stored *domain.Appointment
	repo := &fakeApptRepo{
		getFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			require.NotNil(t, filter.Date)
			return nil, nil
		},
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			stored = appt
			appt.ID = 42
			appt.CreatedAt = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
			return appt, nil
		},
	}

	uc := newTestUseCase(repo, &fakeCatalog{services: testCatalog})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	// haircut 30 + beard 25 = 55 минут
	assert.Equal(t, 55, resp.DurationMinutes)
	require.NotNil(t, stored)
	assert.Equal(t, 55, stored.DurationMinutes)
	assert.Equal(t, types.TimeString("09:00"), stored.StartTime)
	assert.Equal(t, domain.PaymentOnline, stored.PaymentMethod)
	assert.Len(t, stored.Items, 2)
}

func TestExecute_ValidationRunsBeforeScheduling(t *testing.T) {
	// Репозиторий не настроен: любое обращение к нему - паника.
	// Валидация обязана отклонить запрос до работы планировщика.
	repo := &fakeApptRepo{}
	uc := newTestUseCase(repo, &fakeCatalog{services: testCatalog})

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
	}{
		{
			name:    "empty cart",
			mutate:  func(req *Request) { req.Items = nil },
			wantErr: ErrEmptyCart,
		},
		{
			name:    "quantity below range",
			mutate:  func(req *Request) { req.Items[0].Quantity = 0 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "quantity above range",
			mutate:  func(req *Request) { req.Items[0].Quantity = 11 },
			wantErr: ErrInvalidQuantity,
		},
		{
			name:    "unknown service",
			mutate:  func(req *Request) { req.Items[0].ServiceID = "massage" },
			wantErr: ErrUnknownService,
		},
		{
			name:    "missing date",
			mutate:  func(req *Request) { req.Date = time.Time{} },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "past date",
			mutate:  func(req *Request) { req.Date = time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC) },
			wantErr: ErrInvalidDate,
		},
		{
			name:    "missing time",
			mutate:  func(req *Request) { req.StartTime = "" },
			wantErr: ErrInvalidTime,
		},
		{
			name:    "malformed time",
			mutate:  func(req *Request) { req.StartTime = "9h30" },
			wantErr: ErrInvalidTime,
		},
		{
			name:    "invalid payment method",
			mutate:  func(req *Request) { req.PaymentMethod = "bitcoin" },
			wantErr: ErrInvalidPaymentMethod,
		},
		{
			name: "notes too long",
			mutate: func(req *Request) {
				long := make([]rune, domain.MaxNotesLength+1)
				for i := range long {
					long[i] = 'a'
				}
				req.Notes = ptr.Ptr(string(long))
			},
			wantErr: ErrNotesTooLong,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RejectsOverlappingWindow(t *testing.T) {
	// Существующее бронирование 09:00 на 60 минут занимает [540, 600)
	existing := &domain.Appointment{
		ID:              1,
		Date:            time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 60,
	}

	repo := &fakeApptRepo{
		getFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			return []*domain.Appointment{existing}, nil
		},
	}

	uc := newTestUseCase(repo, &fakeCatalog{services: testCatalog})

	req := validRequest()
	req.StartTime = "09:30"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeSlotTaken)
}

func TestExecute_AllowsBackToBackBooking(t *testing.T) {
	existing := &domain.Appointment{
		ID:              1,
		Date:            time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 60,
	}

	repo := &fakeApptRepo{
		getFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			return []*domain.Appointment{existing}, nil
		},
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			appt.ID = 2
			return appt, nil
		},
	}

	uc := newTestUseCase(repo, &fakeCatalog{services: testCatalog})

	// Существующее окно заканчивается ровно в 10:00 - начало впритык легально
	req := validRequest()
	req.StartTime = "10:00"

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.ID)
}

func TestExecute_CartScenarioConflict(t *testing.T) {
	// Первое бронирование: haircut + beard = 55 минут с 09:00 → [540, 595)
	existing := &domain.Appointment{
		ID:              1,
		Date:            time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime:       "09:00",
		DurationMinutes: 55,
	}

	repo := &fakeApptRepo{
		getFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			return []*domain.Appointment{existing}, nil
		},
	}

	uc := newTestUseCase(repo, &fakeCatalog{services: testCatalog})

	// 09:40 (580) < 595 → пересечение при любой длительности корзины
	req := validRequest()
	req.StartTime = "09:40"
	req.Items = []Item{{ServiceID: "haircut-classic", Quantity: 1}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrTimeSlotTaken)
}

func TestExecute_UniqueViolationMapsToSlotTaken(t *testing.T) {
	// Гонка: pre-check прошел, но вставку отклонило уникальное ограничение БД
	repo := &fakeApptRepo{
		getFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			return nil, apptRepo.ErrTimeSlotTaken
		},
	}

	uc := newTestUseCase(repo, &fakeCatalog{services: testCatalog})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrTimeSlotTaken)
}

func TestExecute_NormalizesNotes(t *testing.T) {
	var stored *domain.Appointment
	repo := &fakeApptRepo{
		getFn: func(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
			return nil, nil
		},
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			stored = appt
			return appt, nil
		},
	}

	uc := newTestUseCase(repo, &fakeCatalog{services: testCatalog})

	t.Run("trims whitespace", func(t *testing.T) {
		req := validRequest()
		req.Notes = ptr.Ptr("  sem máquina, por favor  ")

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		require.NotNil(t, stored.Notes)
		assert.Equal(t, "sem máquina, por favor", *stored.Notes)
	})

	t.Run("whitespace-only becomes absent", func(t *testing.T) {
		req := validRequest()
		req.Notes = ptr.Ptr("   ")

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
		assert.Nil(t, stored.Notes)
	})
}
