package create_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/FIX-BookingService/internal/domain"
	createAppointment "github.com/m04kA/FIX-BookingService/internal/usecase/create_appointment"
)

type fakeUseCase struct {
	executeFn func(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error)
	lastReq   *createAppointment.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	f.lastReq = req
	return f.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func postAppointment(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_CreatesAppointment(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
			return &createAppointment.Response{
				ID:              42,
				Date:            req.Date,
				StartTime:       req.StartTime,
				DurationMinutes: 55,
				PaymentMethod:   string(req.PaymentMethod),
				Items: []createAppointment.Item{
					{ServiceID: "haircut-classic", Quantity: 1},
					{ServiceID: "beard-trim", Quantity: 1},
				},
				CreatedAt: time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := postAppointment(t, h, `{
		"date": "2025-10-15",
		"time": "09:00",
		"items": [
			{"serviceId": "haircut-classic", "qty": 1},
			{"serviceId": "beard-trim", "qty": 1}
		],
		"paymentMethod": "online"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":42`)
	assert.Contains(t, rec.Body.String(), `"durationMinutes":55`)
	assert.Contains(t, rec.Body.String(), `"time":"09:00"`)
}

func TestHandle_NormalizesLegacyPaymentAlias(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
			return &createAppointment.Response{
				ID:            1,
				Date:          req.Date,
				StartTime:     req.StartTime,
				PaymentMethod: string(req.PaymentMethod),
			}, nil
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := postAppointment(t, h, `{
		"date": "2025-10-15",
		"time": "10:00",
		"items": [{"serviceId": "haircut-classic", "qty": 1}],
		"paymentMethod": "cash"
	}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	// Легаси-алиас нормализован до входа в use case
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, domain.PaymentInPerson, uc.lastReq.PaymentMethod)
}

func TestHandle_SlotTakenReturnsConflict(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
			return nil, createAppointment.ErrTimeSlotTaken
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := postAppointment(t, h, `{
		"date": "2025-10-15",
		"time": "09:00",
		"items": [{"serviceId": "haircut-classic", "qty": 1}],
		"paymentMethod": "online"
	}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "Este horário já está reservado.")
}

func TestHandle_ValidationErrors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		useCaseErr error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "invalid json",
			body:       `{not json`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "corpo da requisição inválido",
		},
		{
			name:       "missing date and time",
			body:       `{"items": [{"serviceId": "haircut-classic", "qty": 1}], "paymentMethod": "online"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Data e hora são obrigatórias.",
		},
		{
			name:       "malformed date",
			body:       `{"date": "15/10/2025", "time": "09:00", "items": [{"serviceId": "haircut-classic", "qty": 1}], "paymentMethod": "online"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "formato de data inválido",
		},
		{
			name:       "malformed time",
			body:       `{"date": "2025-10-15", "time": "9am", "items": [{"serviceId": "haircut-classic", "qty": 1}], "paymentMethod": "online"}`,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "formato de horário inválido",
		},
		{
			name:       "empty cart",
			body:       `{"date": "2025-10-15", "time": "09:00", "items": [], "paymentMethod": "online"}`,
			useCaseErr: createAppointment.ErrEmptyCart,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Carrinho vazio.",
		},
		{
			name:       "unknown service",
			body:       `{"date": "2025-10-15", "time": "09:00", "items": [{"serviceId": "nope", "qty": 1}], "paymentMethod": "online"}`,
			useCaseErr: createAppointment.ErrUnknownService,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Serviço inválido no carrinho.",
		},
		{
			name:       "invalid payment method",
			body:       `{"date": "2025-10-15", "time": "09:00", "items": [{"serviceId": "haircut-classic", "qty": 1}], "paymentMethod": "pix"}`,
			useCaseErr: createAppointment.ErrInvalidPaymentMethod,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Método de pagamento inválido.",
		},
		{
			name:       "past date",
			body:       `{"date": "2020-01-01", "time": "09:00", "items": [{"serviceId": "haircut-classic", "qty": 1}], "paymentMethod": "online"}`,
			useCaseErr: createAppointment.ErrInvalidDate,
			wantStatus: http.StatusBadRequest,
			wantMsg:    "Selecione uma data futura.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{
				executeFn: func(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
					if tt.useCaseErr != nil {
						return nil, tt.useCaseErr
					}
					t.Fatal("use case should not succeed in this scenario")
					return nil, nil
				},
			}
			h := NewHandler(uc, nopLogger{})

			rec := postAppointment(t, h, tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMsg)
		})
	}
}

func TestHandle_InternalErrorHidesDetails(t *testing.T) {
	uc := &fakeUseCase{
		executeFn: func(ctx context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
			return nil, createAppointment.ErrInternal
		},
	}
	h := NewHandler(uc, nopLogger{})

	rec := postAppointment(t, h, `{
		"date": "2025-10-15",
		"time": "09:00",
		"items": [{"serviceId": "haircut-classic", "qty": 1}],
		"paymentMethod": "online"
	}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "erro interno do servidor")
	assert.NotContains(t, rec.Body.String(), "internal error")
}
